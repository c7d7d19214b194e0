package util

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"strings"

	"github.com/sunthewhat/easy-cred-api/common"
	"github.com/sunthewhat/easy-cred-api/internal/issuance"
	"github.com/sunthewhat/easy-cred-api/internal/renderer"
	"gopkg.in/gomail.v2"
)

const defaultMailPort = 587

func InitDialer() {
	port := defaultMailPort
	if common.Config.MailPort != nil {
		port = *common.Config.MailPort
	}
	common.Dialer = gomail.NewDialer(*common.Config.MailHost, port, *common.Config.MailUser, *common.Config.MailPass)
}

// MailSender is satisfied by *gomail.Dialer.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// MailNotifier emails recipients their new credential with the artifact
// attached and a QR code linking to the verification page.
type MailNotifier struct {
	sender MailSender
	from   string
}

var _ issuance.Notifier = (*MailNotifier)(nil)

func NewMailNotifier(sender MailSender, from string) *MailNotifier {
	return &MailNotifier{sender: sender, from: from}
}

var credentialMail = template.Must(template.New("credential").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #1f2937;">
	<h2 style="color: #244dad;">{{.TemplateName}}</h2>
	<p>You have received a new credential{{if .IssuerName}} from <strong>{{.IssuerName}}</strong>{{end}}.</p>
	<p>Your credential is attached to this email. Anyone can confirm it is genuine at:</p>
	<p><a href="{{.VerifyURL}}">{{.VerifyURL}}</a></p>
	<p><img src="cid:verify-qr.png" alt="Verification QR code" width="200" height="200"></p>
	<p style="font-size: 13px; color: #9ca3af;">Credential ID: {{.CredentialID}}</p>
</body>
</html>`))

func (n *MailNotifier) Notify(ctx context.Context, msg issuance.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body strings.Builder
	if err := credentialMail.Execute(&body, msg); err != nil {
		return fmt.Errorf("render mail body: %w", err)
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", n.from)
	mailer.SetHeader("To", msg.Email)
	mailer.SetHeader("Subject", "Your new credential")
	mailer.SetBody("text/html", body.String())

	qr, err := renderer.VerificationQR(msg.VerifyURL, 256)
	if err != nil {
		slog.Warn("MailNotifier QR generation failed", "error", err, "credential_id", msg.CredentialID)
	} else {
		mailer.Embed("verify-qr.png", gomail.SetCopyFunc(copyBytes(qr)))
	}

	if len(msg.Artifact) > 0 {
		mailer.Attach("credential"+msg.Extension,
			gomail.SetCopyFunc(copyBytes(msg.Artifact)),
			gomail.SetHeader(map[string][]string{"Content-Type": {msg.ContentType}}),
		)
	}

	if err := n.sender.DialAndSend(mailer); err != nil {
		slog.Error("Error Sending Mail", "error", err, "recipient", msg.Email, "credential_id", msg.CredentialID)
		return err
	}

	slog.Info("Email sent successfully", "recipient", msg.Email, "credential_id", msg.CredentialID)
	return nil
}

func copyBytes(b []byte) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	}
}
