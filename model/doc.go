// Package model provides the in-memory composite model for one region of a
// generated word-processing document.
//
// This package defines the user-facing data structures a document builder
// assembles before handing the tree to a file-format writer (OOXML, ODT, RTF).
// The writer is an external consumer: it walks the model and routes each
// element into the correct output stream using the part address stamped onto
// it, but never lives in this package.
//
// # Sections
//
// The [Section] type is the composite root for one region of a document. A
// section owns one [style.Settings] value, up to three header variants, up to
// three footer variants, and an ordered sequence of body elements:
//
//	sec := model.NewSection(1, nil)
//	sec.AddTitle("Introduction", 1)
//	sec.AddParagraph("Hello, world.")
//
// Sections are normally created through document.Document, which assigns
// sequential IDs and registers titles for bookmarking. A section constructed
// with a nil registry is fully functional; titles simply keep a zero
// bookmark ID.
//
// # Headers and footers
//
// Each section holds independent, 1-based, append-only collections of
// [Header] and [Footer] variants, distinguished by [PlacementType]:
//
//   - [PlacementAuto] - same content on every page
//   - [PlacementFirst] - first page of the section only
//   - [PlacementEven] - even pages only
//
// A header with [PlacementFirst] anywhere in the section is the sole signal
// that the section renders a distinct first page; query it with
// [Section.HasDifferentFirstPage]. Variants are never removed or re-typed
// after creation.
//
// # Elements
//
// All body content implements the [Element] interface. The concrete types are:
//
//   - [Title] - headings that participate in bookmarking and TOC resolution
//   - [Paragraph] - plain text paragraphs
//   - [Table] - tables with rows, cells, and row/column spans
//   - [PageBreak] - explicit page breaks
//   - [TOC] - a table-of-contents placeholder with depth bounds
//   - [Image] - embedded raster images with sniffed dimensions
//
// Elements are appended through the factory methods on [Container], the
// shared capability embedded by sections, headers, and footers. Insertion
// order is serialization order.
//
// # Part addressing
//
// Every element carries a [PartRef], the (kind, id) pair identifying the
// output stream it belongs to: the body of section N, header V, or footer V
// of that section. Containers stamp the address at append time; callers
// never set it.
package model
