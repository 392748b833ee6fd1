package zoomer

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"after-pinch", "after-pinch"},
		{"zoom 3.0", "zoom_3.0"},
		{"a/b\\c:d", "a_b_c_d"},
		{"  trimmed  ", "trimmed"},
		{"héllo", "h_llo"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-transparent
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)

	want := [][4]uint8{
		{255, 0, 0, 255},
		{127, 63, 0, 128},
		{0, 0, 0, 0},
	}
	for i, w := range want {
		c := img.NRGBAAt(i, 0)
		if got := [4]uint8{c.R, c.G, c.B, c.A}; got != w {
			t.Errorf("pixel %d = %v, want %v", i, got, w)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	_, in, _, _ := newTestInput(t)
	in.Screenshot("one")
	in.Screenshot("two")

	got := in.takeScreenshots()
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("takeScreenshots = %v, want [one two]", got)
	}
	if again := in.takeScreenshots(); len(again) != 0 {
		t.Errorf("second take = %v, want empty", again)
	}
}

func TestTestRunnerScreenshotAction(t *testing.T) {
	_, in, _, _ := newTestInput(t)
	runScript(t, in, `{"steps": [{"action": "screenshot", "label": "start"}]}`, 10)
	if got := in.takeScreenshots(); len(got) != 1 || got[0] != "start" {
		t.Errorf("queued = %v, want [start]", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("stat %s: %v, size %v", path, err, fi)
	}

	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
