package renderer

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// VerificationQR encodes a verify link as a PNG QR code.
func VerificationQR(verifyURL string, size int) ([]byte, error) {
	qrBytes, err := qrcode.Encode(verifyURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return qrBytes, nil
}

// ConvertToPDF wraps a rendered artifact in a single page of the same
// pixel size. When verifyURL is set a QR code linking to it is stamped in
// the bottom-right corner. The result is signed when signer is enabled.
func ConvertToPDF(artifact []byte, verifyURL string, credentialID string, signer *PDFSigner) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(artifact))
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact header: %w", err)
	}
	imageType := "PNG"
	if format == "jpeg" {
		imageType = "JPG"
	}
	w, h := float64(cfg.Width), float64(cfg.Height)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader("artifact", opts, bytes.NewReader(artifact))
	pdf.ImageOptions("artifact", 0, 0, w, h, false, opts, 0, "")

	if verifyURL != "" {
		qrBytes, err := VerificationQR(verifyURL, 256)
		if err != nil {
			return nil, err
		}
		side := math.Round(math.Min(w, h) * 0.12)
		margin := math.Round(side / 4)
		qrOpts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("verify-qr", qrOpts, bytes.NewReader(qrBytes))
		pdf.ImageOptions("verify-qr", w-side-margin, h-side-margin, side, side, false, qrOpts, 0, verifyURL)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	pdfBytes := buf.Bytes()

	if signer != nil && signer.IsEnabled() {
		signed, err := signer.SignPDF(pdfBytes, credentialID)
		if err != nil {
			slog.Warn("Failed to sign PDF, returning unsigned version", "error", err, "credential_id", credentialID)
		} else if len(signed) > 0 {
			pdfBytes = signed
		}
	}

	return pdfBytes, nil
}
