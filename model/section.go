package model

import (
	"github.com/tsawler/folio/style"
)

// Section is the composite root for one region of a document: one settings
// value, independent append-only header and footer collections, and an
// ordered body element sequence via the embedded Container.
type Section struct {
	Container

	id       int
	settings *style.Settings
	headers  []*Header
	footers  []*Footer
}

// NewSection creates a section with the given ordinal and an optional
// document registry. The ordinal becomes both the section ID and the ID of
// the section's body part address; uniqueness is the caller's
// responsibility. Settings start at their defaults.
func NewSection(ordinal int, registry Registry) *Section {
	return &Section{
		Container: newContainer(PartRef{Kind: PartSection, ID: ordinal}, registry),
		id:        ordinal,
		settings:  style.NewSettings(),
		headers:   make([]*Header, 0),
		footers:   make([]*Footer, 0),
	}
}

// ID returns the section's immutable ordinal.
func (s *Section) ID() int { return s.id }

// Settings returns the section's formatting configuration.
func (s *Section) Settings() *style.Settings { return s.settings }

// ApplySettings merges the given overrides into the section's settings.
// A nil override value means "leave the current value"; omitted keys are
// never reset. Unknown keys and mistyped values are rejected by the
// settings object with a *style.ConfigurationError, in which case no
// override is applied.
func (s *Section) ApplySettings(overrides map[string]interface{}) error {
	return s.settings.Apply(overrides)
}

// AddTitle appends a heading with the given text and depth (1 is the
// outermost level; depth is stored as given). When a document registry is
// attached the title is registered and receives its bookmark ID before it
// is appended; without a registry the bookmark ID stays zero.
func (s *Section) AddTitle(text string, depth int) *Title {
	t := &Title{Text: text, Depth: depth}
	if s.registry != nil {
		t.BookmarkID = s.registry.RegisterTitle(t)
	}
	s.append(t)
	return t
}

// AddTOC appends a table-of-contents placeholder covering titles whose
// depth falls within [minDepth, maxDepth]. The usual bounds are 1 and 9.
// Bounds are stored exactly as given; which titles fall in range is
// resolved by the writer at serialization time. Style references can be
// set on the returned TOC.
func (s *Section) AddTOC(minDepth, maxDepth int) *TOC {
	toc := &TOC{MinDepth: minDepth, MaxDepth: maxDepth}
	s.append(toc)
	return toc
}

// AddHeader appends a new header variant with the given placement type and
// returns it. The variant's index is one greater than the current header
// count; headers and footers are numbered independently. An unrecognized
// placement type yields a *ValidationError and leaves the collection
// untouched.
func (s *Section) AddHeader(placement PlacementType) (*Header, error) {
	index, err := s.nextVariantIndex(placement, len(s.headers))
	if err != nil {
		return nil, err
	}
	h := newHeader(s.id, index, placement, s.registry)
	s.headers = append(s.headers, h)
	return h, nil
}

// AddFooter appends a new footer variant with the given placement type and
// returns it. Indexing rules match AddHeader.
func (s *Section) AddFooter(placement PlacementType) (*Footer, error) {
	index, err := s.nextVariantIndex(placement, len(s.footers))
	if err != nil {
		return nil, err
	}
	f := newFooter(s.id, index, placement, s.registry)
	s.footers = append(s.footers, f)
	return f, nil
}

// nextVariantIndex validates the placement type and derives the 1-based
// index for the next variant of a collection currently holding count
// entries. Shared by AddHeader and AddFooter.
func (s *Section) nextVariantIndex(placement PlacementType, count int) (int, error) {
	if !placement.valid() {
		return 0, NewValidationError("invalid header/footer placement type %d", int(placement))
	}
	return count + 1, nil
}

// Headers returns the section's header variants keyed by index 1..N. The
// map is a fresh copy on every call; mutating it does not affect the
// section.
func (s *Section) Headers() map[int]*Header {
	m := make(map[int]*Header, len(s.headers))
	for _, h := range s.headers {
		m[h.Index] = h
	}
	return m
}

// Footers returns the section's footer variants keyed by index 1..N, as a
// fresh copy on every call.
func (s *Section) Footers() map[int]*Footer {
	m := make(map[int]*Footer, len(s.footers))
	for _, f := range s.footers {
		m[f.Index] = f
	}
	return m
}

// HeaderCount returns the number of header variants.
func (s *Section) HeaderCount() int { return len(s.headers) }

// FooterCount returns the number of footer variants.
func (s *Section) FooterCount() int { return len(s.footers) }

// HasDifferentFirstPage reports whether the section renders a distinct
// first page. The presence of a PlacementFirst header is the sole signal;
// nothing is stored redundantly. Sections hold at most three headers, so
// the scan is effectively constant time.
func (s *Section) HasDifferentFirstPage() bool {
	for _, h := range s.headers {
		if h.Placement == PlacementFirst {
			return true
		}
	}
	return false
}
