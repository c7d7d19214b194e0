package bounddatamodel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BoundDataRepository keeps the data set each credential was rendered
// from. Documents live in one collection per template, keyed by the
// credential id.
type BoundDataRepository struct {
	db *mongo.Database
}

type boundDataDocument struct {
	ID        string            `bson:"_id"`
	Data      map[string]string `bson:"data"`
	CreatedAt time.Time         `bson:"created_at"`
}

func NewBoundDataRepository(db *mongo.Database) *BoundDataRepository {
	return &BoundDataRepository{db: db}
}

func collectionName(templateId string) string {
	return fmt.Sprintf("bound-data-%s", templateId)
}

func (r *BoundDataRepository) Put(ctx context.Context, templateId string, credentialId string, data map[string]string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	doc := boundDataDocument{ID: credentialId, Data: data, CreatedAt: time.Now()}
	if _, err := r.db.Collection(collectionName(templateId)).InsertOne(ctx, doc); err != nil {
		slog.Error("BoundData Put", "error", err, "template_id", templateId, "credential_id", credentialId)
		return err
	}
	return nil
}

func (r *BoundDataRepository) Get(ctx context.Context, templateId string, credentialId string) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var doc boundDataDocument
	err := r.db.Collection(collectionName(templateId)).FindOne(ctx, bson.M{"_id": credentialId}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		slog.Error("BoundData Get", "error", err, "template_id", templateId, "credential_id", credentialId)
		return nil, err
	}
	return doc.Data, nil
}

func (r *BoundDataRepository) Delete(ctx context.Context, templateId string, credentialId string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := r.db.Collection(collectionName(templateId)).DeleteOne(ctx, bson.M{"_id": credentialId}); err != nil {
		slog.Error("BoundData Delete", "error", err, "template_id", templateId, "credential_id", credentialId)
		return err
	}
	return nil
}
