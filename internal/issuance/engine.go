// Package issuance runs template creation, credential issuance, revocation
// and verification on top of the layout engine and the render backends.
package issuance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	bounddatamodel "github.com/sunthewhat/easy-cred-api/api/model/boundDataModel"
	credentialmodel "github.com/sunthewhat/easy-cred-api/api/model/credentialModel"
	organizationmodel "github.com/sunthewhat/easy-cred-api/api/model/organizationModel"
	recipientmodel "github.com/sunthewhat/easy-cred-api/api/model/recipientModel"
	templatemodel "github.com/sunthewhat/easy-cred-api/api/model/templateModel"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
	"github.com/sunthewhat/easy-cred-api/internal/renderer"
)

// IssueDateKey is injected by the server on every issuance.
const IssueDateKey = "issueDate"

const maxPreviewSide = 4096

// BlobStore holds raster bytes behind opaque references.
type BlobStore interface {
	Put(ctx context.Context, bucket string, object string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, ref string) ([]byte, error)
	Remove(ctx context.Context, ref string) error
}

// Notification is what a recipient is told about a new credential.
type Notification struct {
	Email        string
	CredentialID string
	TemplateName string
	IssuerName   string
	VerifyURL    string
	Artifact     []byte
	ContentType  string
	Extension    string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Fetcher downloads a background image given by URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FontSource both validates font references and provides faces for drawing.
type FontSource interface {
	layout.FontResolver
	renderer.FaceSource
}

type Dependencies struct {
	Templates     templatemodel.ITemplateRepository
	Credentials   credentialmodel.ICredentialRepository
	Organizations organizationmodel.IOrganizationRepository
	Recipients    recipientmodel.IRecipientRepository
	BoundData     bounddatamodel.IBoundDataRepository
	Blobs         BlobStore
	Fonts         FontSource
	// Notifier and Fetcher are optional.
	Notifier      Notifier
	Fetcher       Fetcher
}

type Config struct {
	ResourceBucket   string
	CredentialBucket string
	VerifyHost       string
	Render           renderer.Options
	Signer           *renderer.PDFSigner
	// AppendRetries bounds retries of credential list appends.
	AppendRetries    uint64
	RetryInterval    time.Duration
	Now              func() time.Time
	NewID            func() string
}

type Engine struct {
	deps     Dependencies
	cfg      Config
	renderer *renderer.Renderer
	validate *validator.Validate
}

func NewEngine(deps Dependencies, cfg Config) *Engine {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	if cfg.AppendRetries == 0 {
		cfg.AppendRetries = 3
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 200 * time.Millisecond
	}
	return &Engine{
		deps:     deps,
		cfg:      cfg,
		renderer: renderer.New(deps.Fonts, cfg.Render),
		validate: validator.New(),
	}
}

// VerifyURL is the public link printed on notifications and PDFs.
func (e *Engine) VerifyURL(credentialID string) string {
	return fmt.Sprintf("%s/credentials/%s", strings.TrimRight(e.cfg.VerifyHost, "/"), credentialID)
}
