package document

import (
	"time"

	"github.com/tsawler/folio/model"
)

// Document is the root of one generated document: metadata, the ordered
// section list, and the title registry behind bookmark assignment and TOC
// resolution.
type Document struct {
	Metadata Metadata

	sections       []*model.Section
	titles         []*model.Title
	nextBookmarkID int
}

// Metadata contains document-level information
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Creator  string
	Created  time.Time
	// Custom metadata
	Custom map[string]string
}

// New creates a new empty document
func New() *Document {
	return &Document{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		sections:       make([]*model.Section, 0),
		titles:         make([]*model.Title, 0),
		nextBookmarkID: 1,
	}
}

// AddSection creates a section with the next sequential ID (1-indexed),
// applies the given settings overrides, and appends it. A nil or empty
// overrides map leaves the default settings untouched. When the overrides
// are rejected the section is not added and the settings error is returned
// unchanged.
func (d *Document) AddSection(overrides map[string]interface{}) (*model.Section, error) {
	sec := model.NewSection(len(d.sections)+1, d)
	if err := sec.ApplySettings(overrides); err != nil {
		return nil, err
	}
	d.sections = append(d.sections, sec)
	return sec, nil
}

// Sections returns the document's sections in creation order. The returned
// slice is the document's own backing store; callers must not modify it.
func (d *Document) Sections() []*model.Section { return d.sections }

// SectionCount returns the total number of sections
func (d *Document) SectionCount() int { return len(d.sections) }

// GetSection returns a section by ID (1-indexed), or nil if out of range.
func (d *Document) GetSection(id int) *model.Section {
	if id < 1 || id > len(d.sections) {
		return nil
	}
	return d.sections[id-1]
}

// RegisterTitle assigns the next bookmark ID to the title and records it
// for TOC resolution. IDs start at 1 and increase monotonically across the
// whole document; a zero bookmark ID on a title therefore always means it
// was attached without a registry. Satisfies model.Registry.
func (d *Document) RegisterTitle(t *model.Title) int {
	id := d.nextBookmarkID
	d.nextBookmarkID++
	d.titles = append(d.titles, t)
	return id
}

// Titles returns every registered title in registration order.
func (d *Document) Titles() []*model.Title { return d.titles }

// TitlesInRange returns the registered titles whose depth falls within
// [minDepth, maxDepth], in registration order. This is the query a writer
// runs to expand a TOC placeholder.
func (d *Document) TitlesInRange(minDepth, maxDepth int) []*model.Title {
	var out []*model.Title
	for _, t := range d.titles {
		if t.Depth >= minDepth && t.Depth <= maxDepth {
			out = append(out, t)
		}
	}
	return out
}
