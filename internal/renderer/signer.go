package renderer

import (
	"bytes"
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"
)

type SigningConfig struct {
	Enabled  bool
	CertPath string
	KeyPath  string
	// Issuer appears as the signer name in the PDF signature dictionary.
	Issuer string
}

// PDFSigner applies a certification signature to exported credentials.
type PDFSigner struct {
	certificate *x509.Certificate
	privateKey  crypto.Signer
	issuer      string
	enabled     bool
}

func NewPDFSigner(cfg SigningConfig) (*PDFSigner, error) {
	if !cfg.Enabled {
		slog.Info("PDF signing disabled in configuration")
		return &PDFSigner{enabled: false}, nil
	}
	if cfg.CertPath == "" || cfg.KeyPath == "" {
		return nil, fmt.Errorf("signing enabled but certificate or key path not configured")
	}

	certPEM, err := os.ReadFile(cfg.CertPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", cfg.CertPath, err)
	}
	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil {
		return nil, fmt.Errorf("failed to decode certificate PEM from %s", cfg.CertPath)
	}
	certificate, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}

	keyPEM, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", cfg.KeyPath, err)
	}
	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return nil, fmt.Errorf("failed to decode private key PEM from %s", cfg.KeyPath)
	}
	privateKey, err := parsePrivateKey(keyBlock.Bytes)
	if err != nil {
		return nil, err
	}

	issuer := cfg.Issuer
	if issuer == "" {
		issuer = certificate.Subject.CommonName
	}

	slog.Info("PDF signer initialized", "cert_subject", certificate.Subject.String(), "cert_expiry", certificate.NotAfter)
	return &PDFSigner{certificate: certificate, privateKey: privateKey, issuer: issuer, enabled: true}, nil
}

func parsePrivateKey(der []byte) (crypto.Signer, error) {
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not RSA format")
	}
	return rsaKey, nil
}

func (s *PDFSigner) IsEnabled() bool {
	return s != nil && s.enabled
}

// SignPDF returns the signed document. A panic inside the signing library
// is turned into an error.
func (s *PDFSigner) SignPDF(pdfBytes []byte, credentialID string) (signed []byte, err error) {
	if !s.IsEnabled() {
		return pdfBytes, nil
	}
	if len(pdfBytes) == 0 {
		return nil, fmt.Errorf("empty PDF bytes")
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic occurred during PDF signing", "panic", r, "credential_id", credentialID)
			signed, err = nil, fmt.Errorf("pdf signing panicked: %v", r)
		}
	}()

	input := bytes.NewReader(pdfBytes)
	reader, err := digitorus_pdf.NewReader(input, int64(len(pdfBytes)))
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	if _, err := input.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	signData := sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     s.issuer,
				Location: "Credential issuance service",
				Reason:   fmt.Sprintf("Credential %s", credentialID),
				Date:     time.Now(),
			},
			CertType:   sign.CertificationSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	}

	var out bytes.Buffer
	if err := sign.Sign(input, &out, reader, int64(len(pdfBytes)), signData); err != nil {
		return nil, fmt.Errorf("failed to sign PDF: %w", err)
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("signing produced empty output")
	}

	slog.Info("PDF signed", "credential_id", credentialID, "original_size", len(pdfBytes), "signed_size", out.Len())
	return out.Bytes(), nil
}
