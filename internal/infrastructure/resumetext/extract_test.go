package resumetext

import (
	"errors"
	"testing"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		filename    string
		want        string
		wantErr     bool
	}{
		{"declared pdf", "application/pdf", "cv", MIMEPDF, false},
		{"declared text with charset", "text/plain; charset=utf-8", "cv", MIMEPlain, false},
		{"generic type falls back to extension", "application/octet-stream", "Resume.DOCX", MIMEDocx, false},
		{"missing type", "", "cv.txt", MIMEPlain, false},
		{"legacy doc", "application/msword", "cv.doc", "", true},
		{"nothing to go on", "", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectType(tt.contentType, tt.filename)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedType) {
					t.Fatalf("expected ErrUnsupportedType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtractPlainText(t *testing.T) {
	got, err := Extract(MIMEPlain, []byte("  Go developer with SQL experience\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Go developer with SQL experience" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestExtractRejectsEmptyAndInvalid(t *testing.T) {
	if _, err := Extract(MIMEPlain, []byte("   \n\t")); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if _, err := Extract(MIMEPlain, []byte{0xff, 0xfe, 0xfd}); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if _, err := Extract("image/png", []byte("x")); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	if _, err := Extract(MIMEPDF, []byte("not a pdf")); err == nil {
		t.Fatalf("expected error for corrupt pdf")
	}
}

func TestStripTags(t *testing.T) {
	in := `<w:body><w:p><w:r><w:t>Go &amp; SQL</w:t></w:r></w:p><w:p><w:r><w:t>Agile</w:t></w:r></w:p></w:body>`
	got := stripTags(in)
	if got != "Go & SQL\nAgile\n" {
		t.Fatalf("unexpected text %q", got)
	}
}
