package issuance

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

type IssueInput struct {
	TemplateID string
	// Recipient is the recipient's email address.
	Recipient string
	Data      map[string]string
}

type IssueResult struct {
	CredentialID string `json:"credentialId"`
	ArtifactRef  string `json:"artifactRef"`
	VerifyURL    string `json:"verifyUrl"`
}

// serverKeys are never taken from the caller.
var serverKeys = map[string]bool{IssueDateKey: true}

// IssueCredential binds data to a template, renders the artifact and writes
// the credential. The credential record is the consistency boundary: when
// it cannot be written, the stored artifact and bound data are removed.
// List appends and the notification happen after it and never fail the
// call.
func (e *Engine) IssueCredential(ctx context.Context, ownerID string, in IssueInput) (*IssueResult, error) {
	tmpl, err := e.GetTemplate(ctx, ownerID, in.TemplateID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Recipient))
	if err := e.validate.Var(email, "required,email"); err != nil {
		return nil, apperror.Validation("recipient", "A valid recipient email is required")
	}

	now := e.cfg.Now()
	data := make(map[string]string, len(in.Data)+len(serverKeys))
	maps.Copy(data, in.Data)
	data[IssueDateKey] = now.UTC().Format(time.DateOnly)

	for _, p := range tmpl.Placeholders {
		if serverKeys[p.Key] {
			continue
		}
		if strings.TrimSpace(data[p.Key]) == "" {
			return nil, apperror.Validation(p.Key, "Missing data for placeholder %s", p.Key)
		}
	}

	recipient, err := e.deps.Recipients.Resolve(ctx, email)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to resolve recipient")
	}

	bg, err := e.loadBackground(ctx, tmpl)
	if err != nil {
		return nil, err
	}
	artifact, err := e.renderer.RenderFinal(ctx, tmpl.Document(), bg, data)
	if err != nil {
		return nil, renderFailure(err)
	}

	credentialID := e.cfg.NewID()
	artifactRef, err := e.deps.Blobs.Put(ctx, e.cfg.CredentialBucket, fmt.Sprintf("credentials/%s.%s", credentialID, artifact.Extension), artifact.Data, artifact.ContentType)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to store credential image")
	}

	if err := e.deps.BoundData.Put(ctx, tmpl.ID, credentialID, data); err != nil {
		e.removeBlob(ctx, artifactRef)
		return nil, apperror.Persistence(err, "Failed to store credential data")
	}

	cred := &model.Credential{
		ID:          credentialID,
		TemplateID:  tmpl.ID,
		OwnerID:     ownerID,
		RecipientID: recipient.ID,
		IssueDate:   now.UTC(),
		ArtifactRef: artifactRef,
		IsRevoked:   false,
	}
	if err := e.deps.Credentials.Create(ctx, cred); err != nil {
		e.removeBlob(ctx, artifactRef)
		if delErr := e.deps.BoundData.Delete(context.WithoutCancel(ctx), tmpl.ID, credentialID); delErr != nil {
			slog.Error("Issuance cleanup bound data failed", "error", delErr, "credential_id", credentialID)
		}
		return nil, apperror.Persistence(err, "Failed to save credential")
	}

	e.appendWithRetry(ctx, "organization", credentialID, func() error {
		return e.deps.Organizations.AppendCredential(ctx, ownerID, credentialID)
	})
	e.appendWithRetry(ctx, "recipient", credentialID, func() error {
		return e.deps.Recipients.AppendCredential(ctx, recipient.ID, credentialID)
	})

	verifyURL := e.VerifyURL(credentialID)
	e.notify(ctx, Notification{
		Email:        email,
		CredentialID: credentialID,
		TemplateName: tmpl.Name,
		IssuerName:   e.issuerName(ctx, ownerID),
		VerifyURL:    verifyURL,
		Artifact:     artifact.Data,
		ContentType:  artifact.ContentType,
		Extension:    artifact.Extension,
	})

	slog.Info("Issuance IssueCredential", "credential_id", credentialID, "template_id", tmpl.ID, "owner_id", ownerID, "recipient_id", recipient.ID)
	return &IssueResult{CredentialID: credentialID, ArtifactRef: artifactRef, VerifyURL: verifyURL}, nil
}

// appendWithRetry retries an idempotent list append with exponential
// backoff. A final failure is logged; the credential record already exists.
func (e *Engine) appendWithRetry(ctx context.Context, list string, credentialID string, op func() error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = e.cfg.RetryInterval
	bo.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, e.cfg.AppendRetries), ctx)

	notifyRetry := func(err error, wait time.Duration) {
		slog.Warn("Issuance append retry", "error", err, "list", list, "credential_id", credentialID, "wait", wait)
	}
	if err := backoff.RetryNotify(op, policy, notifyRetry); err != nil {
		slog.Error("Issuance append failed", "error", err, "list", list, "credential_id", credentialID)
	}
}

func (e *Engine) notify(ctx context.Context, n Notification) {
	if e.deps.Notifier == nil {
		return
	}
	if err := e.deps.Notifier.Notify(ctx, n); err != nil {
		slog.Error("Issuance notification failed", "error", err, "credential_id", n.CredentialID, "email", n.Email)
	}
}

func (e *Engine) issuerName(ctx context.Context, ownerID string) string {
	org, err := e.deps.Organizations.GetById(ctx, ownerID)
	if err != nil || org == nil {
		return ""
	}
	return org.Name
}
