package model

// Registry is the document-level collaborator a section reports titles to.
// It assigns each registered title a process-unique, monotonically
// increasing bookmark ID. A nil Registry is valid everywhere one is
// accepted; titles then keep a zero bookmark ID.
type Registry interface {
	RegisterTitle(t *Title) int
}

// Container is the capability shared by sections, headers, and footers: an
// ordered sequence of body elements plus the part address stamped onto each
// element at append time. Insertion order is serialization order.
type Container struct {
	part     PartRef
	registry Registry
	elements []Element
}

func newContainer(part PartRef, registry Registry) Container {
	return Container{
		part:     part,
		registry: registry,
		elements: make([]Element, 0),
	}
}

// Part returns the document part address this container stamps onto its
// elements.
func (c *Container) Part() PartRef { return c.part }

// Elements returns the body elements in insertion order. The returned slice
// is the container's own backing store; callers must not modify it.
func (c *Container) Elements() []Element { return c.elements }

// ElementCount returns the number of body elements.
func (c *Container) ElementCount() int { return len(c.elements) }

// append stamps the element with this container's part address and adds it
// to the sequence.
func (c *Container) append(e Element) {
	e.setPart(c.part)
	c.elements = append(c.elements, e)
}

// AddParagraph appends a paragraph with the given text and returns it.
func (c *Container) AddParagraph(text string) *Paragraph {
	p := &Paragraph{Text: text}
	c.append(p)
	return p
}

// AddPageBreak appends an explicit page break and returns it.
func (c *Container) AddPageBreak() *PageBreak {
	pb := &PageBreak{}
	c.append(pb)
	return pb
}

// AddTable appends an empty table referencing the given named table style
// (empty for default) and returns it for row-by-row construction.
func (c *Container) AddTable(styleRef string) *Table {
	t := &Table{StyleRef: styleRef}
	c.append(t)
	return t
}
