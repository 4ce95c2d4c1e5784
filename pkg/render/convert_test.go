package render

import (
	"strings"
	"testing"
)

func TestConvertMissingTool(t *testing.T) {
	old := rsvgConvert
	rsvgConvert = "ustar-no-such-converter"
	t.Cleanup(func() { rsvgConvert = old })

	if _, err := ToPDF([]byte("<svg/>")); err == nil || !strings.Contains(err.Error(), "install librsvg") {
		t.Errorf("ToPDF() error = %v, want missing tool", err)
	}
	if _, err := ToPNG([]byte("<svg/>"), 2); err == nil {
		t.Error("ToPNG() succeeded without converter")
	}
}
