package interop

import (
	"testing"

	"github.com/gogpu/nativegfx/com"
)

func TestGlProfile(t *testing.T) {
	tests := []struct {
		p     GlProfile
		str   string
		valid bool
	}{
		{GlProfileFull, "gl", true},
		{GlProfileEmbedded, "gles", true},
		{GlProfile(7), "unknown", false},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.str {
			t.Errorf("GlProfile(%d).String() = %q, want %q", uint8(tt.p), got, tt.str)
		}
		if got := tt.p.Valid(); got != tt.valid {
			t.Errorf("GlProfile(%d).Valid() = %v, want %v", uint8(tt.p), got, tt.valid)
		}
	}
}

func TestProcAddressFunc(t *testing.T) {
	var r ProcAddressResolver = ProcAddressFunc(func(name string) uintptr {
		if name == "glClear" {
			return 0x42
		}
		return 0
	})
	if got := r.GetProcAddress("glClear"); got != 0x42 {
		t.Errorf("GetProcAddress(glClear) = %#x, want 0x42", got)
	}
	if got := r.GetProcAddress("glFlush"); got != 0 {
		t.Errorf("GetProcAddress(glFlush) = %#x, want 0", got)
	}
}

func TestInterfaceIDsDistinct(t *testing.T) {
	ids := []com.IID{IIDFactory, IIDGpu, IIDRenderTarget, IIDGlPlatformSurfaceRenderTarget, com.IIDUnknown}
	seen := make(map[com.IID]bool)
	for _, id := range ids {
		if id.IsZero() {
			t.Errorf("zero interface ID")
		}
		if seen[id] {
			t.Errorf("duplicate interface ID %s", id)
		}
		seen[id] = true
	}
}
