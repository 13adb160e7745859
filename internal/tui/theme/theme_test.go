package theme

import (
	"strings"
	"testing"
)

func TestRenderStatus(t *testing.T) {
	th := Default()
	ok := th.RenderStatus(false, "saved")
	warn := th.RenderStatus(true, "failed")
	if !strings.Contains(ok, "saved") {
		t.Fatalf("expected message in rendered status, got %q", ok)
	}
	if !strings.Contains(warn, "failed") {
		t.Fatalf("expected message in rendered warning, got %q", warn)
	}
}
