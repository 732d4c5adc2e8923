package model

import (
	"bytes"
	"image"

	// Register decoders so AddImage can sniff dimensions for the formats a
	// word-processing writer accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image represents an embedded raster image. Format and pixel dimensions
// are sniffed from the data at append time; the bytes themselves are kept
// as given for the writer to embed.
type Image struct {
	elem
	Data    []byte
	Format  string // registered format name: "png", "jpeg", "gif", "bmp", "tiff", "webp"
	Width   int    // pixels
	Height  int    // pixels
	AltText string
}

func (i *Image) Type() ElementType { return ElementTypeImage }

// AddImage appends an image element built from the given encoded bytes.
// The format and pixel dimensions are decoded from the header only; data
// that no registered decoder recognizes yields a *ValidationError and
// nothing is appended.
func (c *Container) AddImage(data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, NewValidationError("unsupported image data: %v", err)
	}
	img := &Image{
		Data:   data,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
	c.append(img)
	return img, nil
}
