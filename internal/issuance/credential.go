package issuance

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/internal/renderer"
	"github.com/sunthewhat/easy-cred-api/type/shared/model"
)

// VerificationResult is the public view of a credential. Issuer fields are
// only set when the credential is valid.
type VerificationResult struct {
	Valid      bool   `json:"valid"`
	IssuerName string `json:"issuerName,omitempty"`
	IssueDate  string `json:"issueDate,omitempty"`
}

type DashboardStats struct {
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	TotalTemplates         int64 `json:"totalTemplates"`
	TotalCredentialsIssued int64 `json:"totalCredentialsIssued"`
	RecentTemplates        int64 `json:"recentTemplates"`
}

const recentWindow = 30 * 24 * time.Hour

// RevokeCredential marks an owned credential revoked. Revoking twice
// succeeds with the same result.
func (e *Engine) RevokeCredential(ctx context.Context, ownerID string, credentialID string) (*model.Credential, error) {
	if _, err := e.GetCredential(ctx, ownerID, credentialID); err != nil {
		return nil, err
	}
	cred, err := e.deps.Credentials.Revoke(ctx, credentialID)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to revoke credential")
	}
	if cred == nil {
		return nil, apperror.NotFound("Credential not found")
	}
	slog.Info("Issuance RevokeCredential", "credential_id", credentialID, "owner_id", ownerID)
	return cred, nil
}

// VerifyCredential needs no caller identity. Absent and revoked
// credentials both yield an invalid result.
func (e *Engine) VerifyCredential(ctx context.Context, credentialID string) (*VerificationResult, error) {
	cred, err := e.deps.Credentials.GetById(ctx, credentialID)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to load credential")
	}
	if cred == nil || cred.IsRevoked {
		return &VerificationResult{Valid: false}, nil
	}
	return &VerificationResult{
		Valid:      true,
		IssuerName: e.issuerName(ctx, cred.OwnerID),
		IssueDate:  cred.IssueDate.UTC().Format(time.DateOnly),
	}, nil
}

func (e *Engine) GetCredential(ctx context.Context, ownerID string, credentialID string) (*model.Credential, error) {
	cred, err := e.deps.Credentials.GetById(ctx, credentialID)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to load credential")
	}
	if cred == nil || cred.OwnerID != ownerID {
		return nil, apperror.NotFound("Credential not found")
	}
	return cred, nil
}

func (e *Engine) ListCredentials(ctx context.Context, ownerID string) ([]*model.Credential, error) {
	creds, err := e.deps.Credentials.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to list credentials")
	}
	if creds == nil {
		creds = []*model.Credential{}
	}
	return creds, nil
}

// RecipientCredentials lists the ids the owner issued to one recipient. An
// unknown email has no credentials.
func (e *Engine) RecipientCredentials(ctx context.Context, ownerID string, email string) ([]string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := e.validate.Var(email, "required,email"); err != nil {
		return nil, apperror.Validation("email", "A valid recipient email is required")
	}
	recipient, err := e.deps.Recipients.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to load recipient")
	}
	if recipient == nil {
		return []string{}, nil
	}
	ids, err := e.deps.Credentials.GetIdsByRecipient(ctx, recipient.ID, ownerID)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to list recipient credentials")
	}
	return ids, nil
}

// Artifact returns the rendered image of a valid credential with its
// content type.
func (e *Engine) Artifact(ctx context.Context, credentialID string) ([]byte, string, error) {
	cred, err := e.publicCredential(ctx, credentialID)
	if err != nil {
		return nil, "", err
	}
	b, err := e.deps.Blobs.Get(ctx, cred.ArtifactRef)
	if err != nil {
		return nil, "", apperror.Persistence(err, "Failed to load credential image")
	}
	return b, mimetype.Detect(b).String(), nil
}

// ExportPDF wraps the artifact in a one-page PDF carrying a verification QR.
func (e *Engine) ExportPDF(ctx context.Context, credentialID string) ([]byte, error) {
	b, _, err := e.Artifact(ctx, credentialID)
	if err != nil {
		return nil, err
	}
	pdf, err := renderer.ConvertToPDF(b, e.VerifyURL(credentialID), credentialID, e.cfg.Signer)
	if err != nil {
		return nil, apperror.Render(err, "Failed to export credential")
	}
	return pdf, nil
}

func (e *Engine) publicCredential(ctx context.Context, credentialID string) (*model.Credential, error) {
	cred, err := e.deps.Credentials.GetById(ctx, credentialID)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to load credential")
	}
	if cred == nil {
		return nil, apperror.NotFound("Credential not found")
	}
	if cred.IsRevoked {
		return nil, apperror.Validation("credential", "This credential has been revoked")
	}
	return cred, nil
}

func (e *Engine) Dashboard(ctx context.Context, ownerID string) (*DashboardStats, error) {
	org, err := e.deps.Organizations.GetById(ctx, ownerID)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to load organization")
	}
	if org == nil {
		return nil, apperror.NotFound("Organization not found")
	}
	total, err := e.deps.Templates.CountByOwner(ctx, ownerID, time.Time{})
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to count templates")
	}
	recent, err := e.deps.Templates.CountByOwner(ctx, ownerID, e.cfg.Now().Add(-recentWindow))
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to count templates")
	}
	issued, err := e.deps.Credentials.CountActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.Persistence(err, "Failed to count credentials")
	}
	return &DashboardStats{
		Name:                   org.Name,
		Email:                  org.Email,
		TotalTemplates:         total,
		TotalCredentialsIssued: issued,
		RecentTemplates:        recent,
	}, nil
}
