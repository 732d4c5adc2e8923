package style

import (
	"errors"
	"testing"
)

// ============================================================================
// Defaults Tests
// ============================================================================

func TestNewSettingsDefaults(t *testing.T) {
	s := NewSettings()

	if s.Orientation != OrientationPortrait {
		t.Errorf("Orientation = %v, want portrait", s.Orientation)
	}
	if s.PageWidth != 11906 || s.PageHeight != 16838 {
		t.Errorf("page size = %vx%v, want A4 11906x16838", s.PageWidth, s.PageHeight)
	}
	if s.MarginTop != 1440 || s.MarginLeft != 1440 {
		t.Errorf("margins = %v/%v, want 1440", s.MarginTop, s.MarginLeft)
	}
	if s.ColCount != 1 {
		t.Errorf("ColCount = %d, want 1", s.ColCount)
	}
	if s.PageNumberingStart != 0 {
		t.Errorf("PageNumberingStart = %d, want 0 (continue numbering)", s.PageNumberingStart)
	}
}

// ============================================================================
// Sparse Merge Tests
// ============================================================================

func TestApplyNilValuesSkip(t *testing.T) {
	s := NewSettings()

	if err := s.Apply(map[string]interface{}{"marginTop": 720, "marginBottom": nil}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := s.Apply(map[string]interface{}{"marginTop": nil, "marginBottom": 360}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if s.MarginTop != 720 {
		t.Errorf("MarginTop = %v, want 720 (nil never overwrites)", s.MarginTop)
	}
	if s.MarginBottom != 360 {
		t.Errorf("MarginBottom = %v, want 360", s.MarginBottom)
	}
}

func TestApplyEmptyAndNilMap(t *testing.T) {
	s := NewSettings()
	before := *s

	if err := s.Apply(nil); err != nil {
		t.Fatalf("Apply(nil) error = %v", err)
	}
	if err := s.Apply(map[string]interface{}{}); err != nil {
		t.Fatalf("Apply(empty) error = %v", err)
	}

	if *s != before {
		t.Error("Apply with no overrides changed the settings")
	}
}

func TestApplyAllKeys(t *testing.T) {
	s := NewSettings()
	err := s.Apply(map[string]interface{}{
		"pageWidth":          12240,
		"pageHeight":         15840,
		"marginTop":          720,
		"marginRight":        720,
		"marginBottom":       720,
		"marginLeft":         720,
		"gutter":             120,
		"headerHeight":       360,
		"footerHeight":       360,
		"colCount":           2,
		"colSpacing":         480,
		"breakType":          "continuous",
		"verticalAlign":      "center",
		"pageNumberingStart": 1,
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if s.PageWidth != 12240 || s.PageHeight != 15840 {
		t.Errorf("page size = %vx%v, want 12240x15840", s.PageWidth, s.PageHeight)
	}
	if s.ColCount != 2 || s.ColSpacing != 480 {
		t.Errorf("columns = %d spaced %v, want 2 spaced 480", s.ColCount, s.ColSpacing)
	}
	if s.BreakType != BreakTypeContinuous {
		t.Errorf("BreakType = %v, want continuous", s.BreakType)
	}
	if s.VerticalAlign != VerticalAlignCenter {
		t.Errorf("VerticalAlign = %v, want center", s.VerticalAlign)
	}
	if s.PageNumberingStart != 1 {
		t.Errorf("PageNumberingStart = %d, want 1", s.PageNumberingStart)
	}
}

// ============================================================================
// Rejection Tests
// ============================================================================

func TestApplyRejections(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]interface{}
	}{
		{"unknown key", map[string]interface{}{"papercut": 1}},
		{"mistyped length", map[string]interface{}{"marginTop": "wide"}},
		{"negative length", map[string]interface{}{"gutter": -5}},
		{"unknown orientation", map[string]interface{}{"orientation": "diagonal"}},
		{"mistyped orientation", map[string]interface{}{"orientation": 7}},
		{"zero columns", map[string]interface{}{"colCount": 0}},
		{"fractional columns", map[string]interface{}{"colCount": 1.5}},
		{"unknown break type", map[string]interface{}{"breakType": "sometimes"}},
		{"unknown vertical align", map[string]interface{}{"verticalAlign": "sideways"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettings()
			before := *s

			err := s.Apply(tt.overrides)
			if err == nil {
				t.Fatal("Apply() error = nil, want ConfigurationError")
			}
			var ce *ConfigurationError
			if !errors.As(err, &ce) {
				t.Errorf("Apply() error = %T, want *ConfigurationError", err)
			}
			if *s != before {
				t.Error("settings changed despite rejected overrides")
			}
		})
	}
}

func TestApplyIsAtomic(t *testing.T) {
	s := NewSettings()

	err := s.Apply(map[string]interface{}{
		"marginTop": 720,
		"papercut":  1,
	})
	if err == nil {
		t.Fatal("Apply() error = nil, want ConfigurationError")
	}
	if s.MarginTop != 1440 {
		t.Errorf("MarginTop = %v after rejected Apply, want untouched 1440", s.MarginTop)
	}
}

// ============================================================================
// Orientation Tests
// ============================================================================

func TestSetOrientationSwapsDimensions(t *testing.T) {
	s := NewSettings()

	s.SetOrientation(OrientationLandscape)
	if s.PageWidth != 16838 || s.PageHeight != 11906 {
		t.Errorf("landscape size = %vx%v, want 16838x11906", s.PageWidth, s.PageHeight)
	}

	// Already landscape: no further swap
	s.SetOrientation(OrientationLandscape)
	if s.PageWidth != 16838 || s.PageHeight != 11906 {
		t.Errorf("repeated landscape size = %vx%v, want unchanged", s.PageWidth, s.PageHeight)
	}

	s.SetOrientation(OrientationPortrait)
	if s.PageWidth != 11906 || s.PageHeight != 16838 {
		t.Errorf("portrait size = %vx%v, want 11906x16838", s.PageWidth, s.PageHeight)
	}
}

func TestApplyOrientationString(t *testing.T) {
	s := NewSettings()
	if err := s.Apply(map[string]interface{}{"orientation": "landscape"}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if s.Orientation != OrientationLandscape || s.PageWidth < s.PageHeight {
		t.Errorf("orientation = %v with size %vx%v, want landscape with width >= height",
			s.Orientation, s.PageWidth, s.PageHeight)
	}
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := &ConfigurationError{Key: "gutter", Reason: "negative length -5"}
	want := `configuration error for "gutter": negative length -5`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
