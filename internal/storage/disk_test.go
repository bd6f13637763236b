package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/nimblelabs/inquiry-api/internal/utils"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"brief.txt", "brief.txt"},
		{"my file!@#.pdf", "my_file___.pdf"},
		{"report-v2_final.PDF", "report-v2_final.PDF"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"résumé.doc", "r__sum__.doc"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// fileHeader builds a real multipart.FileHeader by round-tripping a request.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("attachments", name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["attachments"][0]
}

func TestDiskStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := NewDiskStore(dir)

	fh := fileHeader(t, "my file!@#.pdf", []byte("hello"))

	att, err := store.Save(context.Background(), fh)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if att.OriginalName != "my file!@#.pdf" {
		t.Errorf("OriginalName = %q", att.OriginalName)
	}
	if ok, _ := regexp.MatchString(`^\d+-my_file___\.pdf$`, att.FileName); !ok {
		t.Errorf("FileName = %q, want ^\\d+-my_file___\\.pdf$", att.FileName)
	}
	if att.Size != 5 {
		t.Errorf("Size = %d, want 5", att.Size)
	}

	// The upload dir is created on demand and the file lands in it.
	data, err := os.ReadFile(att.Path)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("stored content = %q", data)
	}
}

func TestDiskStoreSaveRejectsOversize(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	fh := fileHeader(t, "big.bin", []byte("x"))
	fh.Size = MaxFileSize + 1

	_, err := store.Save(context.Background(), fh)
	if err == nil {
		t.Fatal("expected error for oversize file")
	}
	if !utils.IsCode(err, utils.CodeInternal) {
		t.Errorf("oversize error should surface as generic server error, got %v", err)
	}
}
