package model

// ElementType represents the type of a body element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeTitle
	ElementTypePageBreak
	ElementTypeTable
	ElementTypeTOC
	ElementTypeImage
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeTitle:
		return "Title"
	case ElementTypePageBreak:
		return "PageBreak"
	case ElementTypeTable:
		return "Table"
	case ElementTypeTOC:
		return "TOC"
	case ElementTypeImage:
		return "Image"
	default:
		return "Unknown"
	}
}

// PartKind identifies which class of output stream an element belongs to.
type PartKind int

const (
	PartSection PartKind = iota
	PartHeader
	PartFooter
)

func (pk PartKind) String() string {
	switch pk {
	case PartSection:
		return "section"
	case PartHeader:
		return "header"
	case PartFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// PartRef is the document part address stamped onto every element: the
// (kind, id) pair a writer uses to route the element into the correct
// output stream. For a section body the ID is the section ordinal; for a
// header or footer it is the variant index within its section.
type PartRef struct {
	Kind PartKind
	ID   int
}

// Element is the interface for all body elements. The concrete set is
// closed: stamping the part address is internal to this package.
type Element interface {
	Type() ElementType
	Part() PartRef
	setPart(PartRef)
}

// TextElement is an interface for elements carrying plain text.
type TextElement interface {
	Element
	GetText() string
}

// elem carries the stamped part address shared by all concrete elements.
type elem struct {
	part PartRef
}

func (e *elem) Part() PartRef       { return e.part }
func (e *elem) setPart(ref PartRef) { e.part = ref }

// Paragraph represents a paragraph of text
type Paragraph struct {
	elem
	Text     string
	StyleRef string // named paragraph style, empty for default
}

func (p *Paragraph) Type() ElementType { return ElementTypeParagraph }
func (p *Paragraph) GetText() string   { return p.Text }

// Title represents a heading that participates in bookmarking and
// table-of-contents resolution.
type Title struct {
	elem
	Text  string
	Depth int // heading level, 1 is the outermost

	// BookmarkID is assigned by the owning document registry when the title
	// is attached to a section. Zero means no registry was present.
	BookmarkID int
}

func (t *Title) Type() ElementType { return ElementTypeTitle }
func (t *Title) GetText() string   { return t.Text }

// PageBreak represents an explicit page break. It carries no state beyond
// its part address.
type PageBreak struct {
	elem
}

func (pb *PageBreak) Type() ElementType { return ElementTypePageBreak }

// TOC represents a table-of-contents placeholder. Which titles fall inside
// the depth bounds is resolved by the writer at serialization time, via the
// document registry; the bounds are stored here exactly as given.
type TOC struct {
	elem
	MinDepth int
	MaxDepth int

	FontStyleRef string // named font style for the entries, empty for default
	TOCStyleRef  string // named TOC style, empty for default
}

func (t *TOC) Type() ElementType { return ElementTypeTOC }
