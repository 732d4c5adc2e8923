// Package document provides the document-level registry that owns the
// sections of a generated word-processing document.
//
// A [Document] creates sections with sequential IDs, assigns bookmark IDs
// to titles as sections attach them, and keeps the flat title list a writer
// consults to resolve table-of-contents placeholders:
//
//	doc := document.New()
//	doc.Metadata.Title = "Annual Report"
//
//	sec, err := doc.AddSection(nil)
//	if err != nil {
//	    // handle error
//	}
//	sec.AddTitle("Introduction", 1)
//
// The Document satisfies model.Registry; every section it creates holds a
// back-reference to it. Sections built directly with model.NewSection and a
// nil registry work too, they just never receive bookmark IDs.
package document
