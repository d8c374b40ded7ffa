package imagestore

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"stylist/internal/storage"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func openURL(p *storage.Previews, url string) bool {
	_, _, ok := p.Open(strings.TrimPrefix(url, storage.PreviewPrefix))
	return ok
}

func TestSetSourceReplacesPreview(t *testing.T) {
	previews := storage.NewPreviews()
	store := New(previews)

	first, err := store.SetSource(File{Name: "shirt.png", Data: pngBytes(t, 4, 3), MIMEType: "image/png"})
	if err != nil {
		t.Fatalf("SetSource: %v", err)
	}
	if first.Width != 4 || first.Height != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", first.Width, first.Height)
	}
	if previews.Live() != 1 || !openURL(previews, first.PreviewURL) {
		t.Fatalf("first preview not live")
	}

	second, err := store.SetSource(File{Name: "skirt.png", Data: pngBytes(t, 2, 2)})
	if err != nil {
		t.Fatalf("SetSource: %v", err)
	}
	if second.PreviewURL == first.PreviewURL {
		t.Fatalf("preview URL was reused")
	}
	if openURL(previews, first.PreviewURL) {
		t.Fatalf("previous preview still live after replacement")
	}
	if !openURL(previews, second.PreviewURL) {
		t.Fatalf("new preview not live")
	}
	if previews.Live() != 1 {
		t.Fatalf("Live() = %d, want 1", previews.Live())
	}
	if second.MIMEType != "image/png" {
		t.Fatalf("sniffed MIME = %q, want image/png", second.MIMEType)
	}

	cur, ok := store.Current()
	if !ok || cur.Name != "skirt.png" {
		t.Fatalf("Current() = %+v, %v", cur, ok)
	}
}

func TestSetSourceEmptyLeavesStoreUnchanged(t *testing.T) {
	previews := storage.NewPreviews()
	store := New(previews)
	src, err := store.SetSource(File{Name: "a.png", Data: pngBytes(t, 1, 1)})
	if err != nil {
		t.Fatalf("SetSource: %v", err)
	}
	if _, err := store.SetSource(File{Name: "empty.png"}); err == nil {
		t.Fatalf("expected error for empty file")
	}
	cur, _ := store.Current()
	if cur.PreviewURL != src.PreviewURL || previews.Live() != 1 {
		t.Fatalf("store changed after rejected file")
	}
}

func TestSetSourceConcurrentKeepsSinglePreview(t *testing.T) {
	previews := storage.NewPreviews()
	store := New(previews)
	data := pngBytes(t, 1, 1)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.SetSource(File{Name: "x.png", Data: data}); err != nil {
				t.Errorf("SetSource: %v", err)
			}
		}()
	}
	wg.Wait()

	if previews.Live() != 1 {
		t.Fatalf("Live() = %d, want 1", previews.Live())
	}
	store.Close()
	if previews.Live() != 0 {
		t.Fatalf("Live() after Close = %d, want 0", previews.Live())
	}
}

func TestSetSourceNeverExposesTwoPreviews(t *testing.T) {
	previews := storage.NewPreviews()
	store := New(previews)
	data := pngBytes(t, 1, 1)

	var (
		stop    atomic.Bool
		maxLive atomic.Int64
		wg      sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for !stop.Load() {
			if n := int64(previews.Live()); n > maxLive.Load() {
				maxLive.Store(n)
			}
		}
	}()
	for i := 0; i < 5000; i++ {
		if _, err := store.SetSource(File{Name: "x.png", Data: data}); err != nil {
			t.Fatalf("SetSource: %v", err)
		}
	}
	stop.Store(true)
	wg.Wait()

	if got := maxLive.Load(); got > 1 {
		t.Fatalf("observed %d live previews at once, want at most 1", got)
	}
}

func TestAcceptedAndDetect(t *testing.T) {
	tests := []struct {
		mime string
		want bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"image/jpg", true},
		{"IMAGE/WEBP", true},
		{"image/gif", false},
		{"text/plain; charset=utf-8", false},
	}
	for _, tc := range tests {
		if got := Accepted(tc.mime); got != tc.want {
			t.Fatalf("Accepted(%q) = %v, want %v", tc.mime, got, tc.want)
		}
	}
	if got := Detect(pngBytes(t, 1, 1), "application/octet-stream"); got != "image/png" {
		t.Fatalf("Detect sniffed %q, want image/png", got)
	}
	if got := Detect([]byte("x"), "image/webp"); got != "image/webp" {
		t.Fatalf("Detect should keep declared image type, got %q", got)
	}
}
