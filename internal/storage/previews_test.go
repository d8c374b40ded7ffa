package storage

import (
	"strings"
	"testing"
)

func TestPreviewsCreateOpenRevoke(t *testing.T) {
	p := NewPreviews()
	url, err := p.Create([]byte("png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !strings.HasPrefix(url, PreviewPrefix) {
		t.Fatalf("url %q lacks prefix %q", url, PreviewPrefix)
	}
	token := strings.TrimPrefix(url, PreviewPrefix)
	data, mime, ok := p.Open(token)
	if !ok || string(data) != "png-bytes" || mime != "image/png" {
		t.Fatalf("Open = %q, %q, %v", data, mime, ok)
	}
	if p.Live() != 1 {
		t.Fatalf("Live() = %d, want 1", p.Live())
	}

	p.Revoke(url)
	if _, _, ok := p.Open(token); ok {
		t.Fatalf("preview still served after Revoke")
	}
	if p.Live() != 0 {
		t.Fatalf("Live() = %d, want 0", p.Live())
	}
}

func TestPreviewsRejectsEmpty(t *testing.T) {
	if _, err := NewPreviews().Create(nil, "image/png"); err == nil {
		t.Fatalf("expected error for empty data")
	}
}

func TestPreviewsRevokeUnknownIsNoop(t *testing.T) {
	p := NewPreviews()
	if _, err := p.Create([]byte("x"), "image/png"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, url := range []string{"", "/previews/", "/previews/missing", "https://example.com/a.png", "/previews/a/b"} {
		p.Revoke(url)
	}
	if p.Live() != 1 {
		t.Fatalf("Live() = %d, want 1", p.Live())
	}
}

func TestPreviewsReplaceSwapsEntries(t *testing.T) {
	p := NewPreviews()
	first, err := p.Replace("", []byte("a"), "image/png")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	second, err := p.Replace(first, []byte("b"), "image/png")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if _, _, ok := p.Open(strings.TrimPrefix(first, PreviewPrefix)); ok {
		t.Fatalf("old preview still served after Replace")
	}
	if data, _, ok := p.Open(strings.TrimPrefix(second, PreviewPrefix)); !ok || string(data) != "b" {
		t.Fatalf("new preview = %q, %v", data, ok)
	}
	if p.Live() != 1 {
		t.Fatalf("Live() = %d, want 1", p.Live())
	}
	if _, err := p.Replace(second, nil, "image/png"); err == nil {
		t.Fatalf("expected error for empty data")
	}
	if p.Live() != 1 {
		t.Fatalf("failed Replace changed the registry")
	}
}
