package renderer

import (
	"github.com/sunthewhat/easy-cred-api/internal/layout"
	"golang.org/x/image/font"
)

// FaceSource hands out font faces; *fonts.Registry satisfies it.
type FaceSource interface {
	Face(family string, style layout.FontStyle, size float64) (font.Face, error)
}

// faceCache keeps faces for the life of one canvas. Faces are not safe for
// concurrent use, so the cache is never shared between renders.
type faceCache struct {
	src   FaceSource
	faces map[layout.Face]font.Face
}

func newFaceCache(src FaceSource) *faceCache {
	return &faceCache{src: src, faces: make(map[layout.Face]font.Face)}
}

func (c *faceCache) get(f layout.Face) (font.Face, error) {
	if face, ok := c.faces[f]; ok {
		return face, nil
	}
	face, err := c.src.Face(f.Family, f.Style, f.Size)
	if err != nil {
		return nil, err
	}
	c.faces[f] = face
	return face, nil
}

func (c *faceCache) close() {
	for k, face := range c.faces {
		face.Close()
		delete(c.faces, k)
	}
}
