package model

// PlacementType distinguishes the up-to-three alternate renderings of a
// header or footer within one section.
type PlacementType int

const (
	// PlacementAuto renders the same content on every page.
	PlacementAuto PlacementType = iota
	// PlacementFirst renders on the first page of the section only.
	PlacementFirst
	// PlacementEven renders on even pages only.
	PlacementEven
)

func (p PlacementType) String() string {
	switch p {
	case PlacementAuto:
		return "auto"
	case PlacementFirst:
		return "first"
	case PlacementEven:
		return "even"
	default:
		return "unknown"
	}
}

func (p PlacementType) valid() bool {
	switch p {
	case PlacementAuto, PlacementFirst, PlacementEven:
		return true
	}
	return false
}

// Header is one header variant of a section. It holds its own element
// sequence via the embedded Container; elements added to it are stamped
// with the header's part address, not the section body's.
type Header struct {
	Container

	// SectionID is a copy of the owning section's ID, not a live reference.
	SectionID int
	// Index is the 1-based position within the section's header collection.
	Index int
	// Placement never changes after creation.
	Placement PlacementType
}

func newHeader(sectionID, index int, placement PlacementType, registry Registry) *Header {
	return &Header{
		Container: newContainer(PartRef{Kind: PartHeader, ID: index}, registry),
		SectionID: sectionID,
		Index:     index,
		Placement: placement,
	}
}

// Footer is one footer variant of a section, numbered independently of the
// section's headers.
type Footer struct {
	Container

	SectionID int
	Index     int
	Placement PlacementType
}

func newFooter(sectionID, index int, placement PlacementType, registry Registry) *Footer {
	return &Footer{
		Container: newContainer(PartRef{Kind: PartFooter, ID: index}, registry),
		SectionID: sectionID,
		Index:     index,
		Placement: placement,
	}
}
