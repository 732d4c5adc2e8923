// Package folio provides an in-memory composite model for building
// word-processing documents section by section, ready for a file-format
// writer (OOXML, ODT, RTF) to serialize.
//
// Basic usage:
//
//	doc := folio.New()
//	sec, err := doc.AddSection(nil)
//	if err != nil {
//	    // handle error
//	}
//	sec.AddTitle("Introduction", 1)
//	sec.AddParagraph("It was a dark and stormy night.")
//
// With section settings and a first-page header:
//
//	sec, _ := doc.AddSection(map[string]interface{}{
//	    "orientation": "landscape",
//	    "colCount":    2,
//	})
//	hdr := folio.Must(sec.AddHeader(model.PlacementFirst))
//	hdr.AddParagraph("Confidential")
//
// For the full model surface, the model, style, and document packages are
// also available.
package folio

import (
	"github.com/tsawler/folio/document"
	"github.com/tsawler/folio/model"
)

// New creates a new empty document. It is shorthand for document.New.
func New() *document.Document {
	return document.New()
}

// Placement type aliases, so simple builders need only this package.
const (
	PlacementAuto  = model.PlacementAuto
	PlacementFirst = model.PlacementFirst
	PlacementEven  = model.PlacementEven
)

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	hdr := folio.Must(sec.AddHeader(folio.PlacementAuto))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
