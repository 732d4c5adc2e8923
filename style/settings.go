// Package style provides section-level formatting configuration.
package style

import "fmt"

// Orientation represents page orientation.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// BreakType represents how a section begins relative to the previous one.
type BreakType string

const (
	BreakTypeNextPage   BreakType = "nextPage"
	BreakTypeNextColumn BreakType = "nextColumn"
	BreakTypeContinuous BreakType = "continuous"
	BreakTypeEvenPage   BreakType = "evenPage"
	BreakTypeOddPage    BreakType = "oddPage"
)

// VerticalAlign represents vertical alignment of section content on the page.
type VerticalAlign string

const (
	VerticalAlignTop    VerticalAlign = "top"
	VerticalAlignCenter VerticalAlign = "center"
	VerticalAlignBoth   VerticalAlign = "both"
	VerticalAlignBottom VerticalAlign = "bottom"
)

// Lengths are in twips (twentieths of a point), the native unit of
// word-processing page geometry.
const (
	defaultPageWidth    = 11906 // A4
	defaultPageHeight   = 16838 // A4
	defaultMargin       = 1440  // one inch
	defaultGutter       = 0
	defaultHeaderHeight = 720
	defaultFooterHeight = 720
	defaultColsSpace    = 720
)

// Settings holds the formatting options of one document section. Fields are
// exported for the writer to read; sparse overrides arrive through Apply.
type Settings struct {
	Orientation   Orientation
	PageWidth     float64 // twips
	PageHeight    float64 // twips
	MarginTop     float64
	MarginRight   float64
	MarginBottom  float64
	MarginLeft    float64
	Gutter        float64
	HeaderHeight  float64
	FooterHeight  float64
	ColCount      int
	ColSpacing    float64
	BreakType     BreakType
	VerticalAlign VerticalAlign

	// PageNumberingStart restarts page numbering at the given value when
	// positive; zero continues numbering from the previous section.
	PageNumberingStart int
}

// NewSettings returns settings at their defaults: A4 portrait, one-inch
// margins, a single column, numbering continued from the previous section.
func NewSettings() *Settings {
	return &Settings{
		Orientation:   OrientationPortrait,
		PageWidth:     defaultPageWidth,
		PageHeight:    defaultPageHeight,
		MarginTop:     defaultMargin,
		MarginRight:   defaultMargin,
		MarginBottom:  defaultMargin,
		MarginLeft:    defaultMargin,
		Gutter:        defaultGutter,
		HeaderHeight:  defaultHeaderHeight,
		FooterHeight:  defaultFooterHeight,
		ColCount:      1,
		ColSpacing:    defaultColsSpace,
		BreakType:     BreakTypeNextPage,
		VerticalAlign: VerticalAlignTop,
	}
}

// SetOrientation sets the page orientation, swapping page width and height
// when the current dimensions disagree with the requested orientation.
func (s *Settings) SetOrientation(o Orientation) {
	s.Orientation = o
	switch {
	case o == OrientationLandscape && s.PageWidth < s.PageHeight:
		s.PageWidth, s.PageHeight = s.PageHeight, s.PageWidth
	case o == OrientationPortrait && s.PageWidth > s.PageHeight:
		s.PageWidth, s.PageHeight = s.PageHeight, s.PageWidth
	}
}

// Apply merges the given overrides into the settings. A nil value is an
// explicit "leave the current value" marker; omitted keys are equivalent.
// An unrecognized key or a mistyped value yields a *ConfigurationError and
// no override is applied, not even ones iterated before the bad entry.
//
// Recognized keys: orientation, pageWidth, pageHeight, marginTop,
// marginRight, marginBottom, marginLeft, gutter, headerHeight,
// footerHeight, colCount, colSpacing, breakType, verticalAlign,
// pageNumberingStart.
func (s *Settings) Apply(overrides map[string]interface{}) error {
	scratch := *s
	for key, value := range overrides {
		if value == nil {
			continue
		}
		if err := scratch.set(key, value); err != nil {
			return err
		}
	}
	*s = scratch
	return nil
}

func (s *Settings) set(key string, value interface{}) error {
	switch key {
	case "orientation":
		o, ok := value.(Orientation)
		if !ok {
			str, sok := value.(string)
			if !sok {
				return mistyped(key, "orientation string")
			}
			o = Orientation(str)
		}
		if o != OrientationPortrait && o != OrientationLandscape {
			return &ConfigurationError{Key: key, Reason: fmt.Sprintf("unknown orientation %q", string(o))}
		}
		s.SetOrientation(o)
	case "pageWidth":
		return setLength(key, value, &s.PageWidth)
	case "pageHeight":
		return setLength(key, value, &s.PageHeight)
	case "marginTop":
		return setLength(key, value, &s.MarginTop)
	case "marginRight":
		return setLength(key, value, &s.MarginRight)
	case "marginBottom":
		return setLength(key, value, &s.MarginBottom)
	case "marginLeft":
		return setLength(key, value, &s.MarginLeft)
	case "gutter":
		return setLength(key, value, &s.Gutter)
	case "headerHeight":
		return setLength(key, value, &s.HeaderHeight)
	case "footerHeight":
		return setLength(key, value, &s.FooterHeight)
	case "colSpacing":
		return setLength(key, value, &s.ColSpacing)
	case "colCount":
		n, ok := asInt(value)
		if !ok {
			return mistyped(key, "integer")
		}
		if n < 1 {
			return &ConfigurationError{Key: key, Reason: fmt.Sprintf("column count %d is less than 1", n)}
		}
		s.ColCount = n
	case "pageNumberingStart":
		n, ok := asInt(value)
		if !ok {
			return mistyped(key, "integer")
		}
		s.PageNumberingStart = n
	case "breakType":
		bt, ok := asString(value)
		if !ok {
			return mistyped(key, "break type string")
		}
		switch BreakType(bt) {
		case BreakTypeNextPage, BreakTypeNextColumn, BreakTypeContinuous, BreakTypeEvenPage, BreakTypeOddPage:
			s.BreakType = BreakType(bt)
		default:
			return &ConfigurationError{Key: key, Reason: fmt.Sprintf("unknown break type %q", bt)}
		}
	case "verticalAlign":
		va, ok := asString(value)
		if !ok {
			return mistyped(key, "vertical alignment string")
		}
		switch VerticalAlign(va) {
		case VerticalAlignTop, VerticalAlignCenter, VerticalAlignBoth, VerticalAlignBottom:
			s.VerticalAlign = VerticalAlign(va)
		default:
			return &ConfigurationError{Key: key, Reason: fmt.Sprintf("unknown vertical alignment %q", va)}
		}
	default:
		return &ConfigurationError{Key: key, Reason: "unrecognized setting"}
	}
	return nil
}

func setLength(key string, value interface{}, dst *float64) error {
	n, ok := asFloat(value)
	if !ok {
		return mistyped(key, "number")
	}
	if n < 0 {
		return &ConfigurationError{Key: key, Reason: fmt.Sprintf("negative length %v", n)}
	}
	*dst = n
	return nil
}

func mistyped(key, want string) error {
	return &ConfigurationError{Key: key, Reason: fmt.Sprintf("value is not a %s", want)}
}

// asFloat accepts the numeric types an override map is likely to carry.
func asFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asInt(value interface{}) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func asString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case BreakType:
		return string(v), true
	case VerticalAlign:
		return string(v), true
	}
	return "", false
}
