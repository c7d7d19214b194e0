package fonts

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var ErrUnknownFamily = errors.New("font family not registered")

type Config struct {
	// Family is the one family name placeholders may reference.
	Family string
	// SystemLookup searches installed fonts for Family before falling
	// back to the embedded Go fonts.
	SystemLookup bool
	// Fallback maps unknown family names onto Family instead of failing.
	Fallback bool
}

// Registry holds the four variants of a single family. Parsed fonts are
// shared; faces are created per caller since they carry glyph buffers.
type Registry struct {
	mu       sync.RWMutex
	family   string
	fallback bool
	fonts    map[layout.FontStyle]*opentype.Font
	warned   map[string]bool
}

var variants = []struct {
	style    layout.FontStyle
	embedded []byte
	suffixes []string
}{
	{layout.FontStyle{Weight: layout.WeightNormal, Slant: layout.SlantNormal}, goregular.TTF, []string{"", " Regular"}},
	{layout.FontStyle{Weight: layout.WeightBold, Slant: layout.SlantNormal}, gobold.TTF, []string{" Bold", "bd"}},
	{layout.FontStyle{Weight: layout.WeightNormal, Slant: layout.SlantItalic}, goitalic.TTF, []string{" Italic", "i"}},
	{layout.FontStyle{Weight: layout.WeightBold, Slant: layout.SlantItalic}, gobolditalic.TTF, []string{" Bold Italic", "bi"}},
}

func NewRegistry(cfg Config) (*Registry, error) {
	family := strings.TrimSpace(cfg.Family)
	if family == "" {
		family = layout.DefaultFontFamily
	}
	r := &Registry{
		family:   family,
		fallback: cfg.Fallback,
		fonts:    make(map[layout.FontStyle]*opentype.Font, len(variants)),
		warned:   make(map[string]bool),
	}

	for _, v := range variants {
		var f *opentype.Font
		if cfg.SystemLookup {
			f = findSystemVariant(family, v.suffixes)
		}
		if f == nil {
			parsed, err := opentype.Parse(v.embedded)
			if err != nil {
				return nil, fmt.Errorf("failed to parse embedded font for %s: %w", v.style, err)
			}
			f = parsed
		}
		r.fonts[v.style] = f
	}

	slog.Info("Font registry initialized", "family", family, "system_lookup", cfg.SystemLookup, "fallback", cfg.Fallback)
	return r, nil
}

func findSystemVariant(family string, suffixes []string) *opentype.Font {
	for _, suffix := range suffixes {
		name := family + suffix
		for _, candidate := range []string{name + ".ttf", strings.ToLower(strings.ReplaceAll(name, " ", "")) + ".ttf"} {
			path, err := findfont.Find(candidate)
			if err != nil {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				slog.Warn("Font registry read failed", "path", path, "error", err)
				continue
			}
			f, err := opentype.Parse(data)
			if err != nil {
				slog.Warn("Font registry parse failed", "path", path, "error", err)
				continue
			}
			slog.Info("Font registry using system font", "family", family, "path", path)
			return f
		}
	}
	return nil
}

func (r *Registry) Family() string {
	return r.family
}

// Resolve implements layout.FontResolver.
func (r *Registry) Resolve(family string, style layout.FontStyle) error {
	_, err := r.font(family, style)
	return err
}

// Face returns a new face for the family at size pixels (72 DPI, unhinted
// so advances are fractional). Callers should Close it when done.
func (r *Registry) Face(family string, style layout.FontStyle, size float64) (font.Face, error) {
	f, err := r.font(family, style)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %.2f", size)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func (r *Registry) font(family string, style layout.FontStyle) (*opentype.Font, error) {
	if normalize(family) != normalize(r.family) {
		if !r.fallback {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
		}
		r.warnOnce(family)
	}
	if style.Weight == "" {
		style.Weight = layout.WeightNormal
	}
	if style.Slant == "" {
		style.Slant = layout.SlantNormal
	}
	r.mu.RLock()
	f, ok := r.fonts[style]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q %s", ErrUnknownFamily, family, style)
	}
	return f, nil
}

func (r *Registry) warnOnce(family string) {
	key := normalize(family)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.warned[key] {
		return
	}
	r.warned[key] = true
	slog.Warn("Font registry substituting family", "requested", family, "using", r.family)
}

func normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
