package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"
)

func TestArchiveAssets(t *testing.T) {
	assets := []Asset{
		{Filename: "virtual-stylist-casual.png", Data: []byte("a")},
		{Filename: "virtual-stylist-night-out.png", Data: []byte("bc")},
	}
	data, err := ArchiveAssets(assets, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	if err != nil {
		t.Fatalf("ArchiveAssets: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != len(assets) {
		t.Fatalf("entries = %d, want %d", len(zr.File), len(assets))
	}
	for i, f := range zr.File {
		if f.Name != assets[i].Filename {
			t.Fatalf("entry %d = %q, want %q", i, f.Name, assets[i].Filename)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry: %v", err)
		}
		got, _ := io.ReadAll(rc)
		rc.Close()
		if !bytes.Equal(got, assets[i].Data) {
			t.Fatalf("entry %q = %q, want %q", f.Name, got, assets[i].Data)
		}
	}
}
