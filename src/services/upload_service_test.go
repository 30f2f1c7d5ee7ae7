package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pngHeader is enough magic bytes for content sniffing to report image/png
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// buildFileHeader assembles a real multipart.FileHeader by round-tripping
// through an HTTP request, the same way gin hands it to the handler.
func buildFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("failed to parse multipart form: %v", err)
	}

	return req.MultipartForm.File["image"][0]
}

func TestUploadSave_StoresImage(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, 5*1024*1024)

	fh := buildFileHeader(t, "photo.png", "image/png", append(pngHeader, make([]byte, 100)...))

	path, err := svc.Save(fh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(path, PublicPathPrefix+"/") {
		t.Errorf("expected public path under %s, got %s", PublicPathPrefix, path)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("expected original extension preserved, got %s", path)
	}

	stored := filepath.Join(dir, strings.TrimPrefix(path, PublicPathPrefix+"/"))
	if _, err := os.Stat(stored); err != nil {
		t.Errorf("expected stored file to exist: %v", err)
	}
}

func TestUploadSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	svc := NewUploadService(dir, 5*1024*1024)

	fh := buildFileHeader(t, "photo.png", "image/png", pngHeader)

	if _, err := svc.Save(fh); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected upload directory to be created: %v", err)
	}
}

func TestUploadSave_RejectsOversizedFile(t *testing.T) {
	svc := NewUploadService(t.TempDir(), 5*1024*1024)

	big := append(pngHeader, make([]byte, 6*1024*1024)...)
	fh := buildFileHeader(t, "big.png", "image/png", big)

	_, err := svc.Save(fh)
	if err != ErrFileTooLarge {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadSave_RejectsNonImageDeclaredType(t *testing.T) {
	svc := NewUploadService(t.TempDir(), 5*1024*1024)

	fh := buildFileHeader(t, "notes.txt", "text/plain", []byte("plain text"))

	_, err := svc.Save(fh)
	if err != ErrNotAnImage {
		t.Errorf("expected ErrNotAnImage, got %v", err)
	}
}

func TestUploadSave_RejectsMislabeledContent(t *testing.T) {
	svc := NewUploadService(t.TempDir(), 5*1024*1024)

	// Declared as an image but the bytes are plain text
	fh := buildFileHeader(t, "fake.png", "image/png", []byte("definitely not a png"))

	_, err := svc.Save(fh)
	if err != ErrNotAnImage {
		t.Errorf("expected ErrNotAnImage, got %v", err)
	}
}

func TestUploadRemove(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, 5*1024*1024)

	fh := buildFileHeader(t, "photo.png", "image/png", pngHeader)
	path, err := svc.Save(fh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Remove(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := filepath.Join(dir, strings.TrimPrefix(path, PublicPathPrefix+"/"))
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Errorf("expected file to be removed")
	}

	// Removing again is not an error
	if err := svc.Remove(path); err != nil {
		t.Errorf("expected missing file to be a no-op, got %v", err)
	}
}

func TestUploadRemove_RejectsPathTraversal(t *testing.T) {
	svc := NewUploadService(t.TempDir(), 5*1024*1024)

	if err := svc.Remove(PublicPathPrefix + "/../etc/passwd"); err == nil {
		t.Error("expected error for path escaping the upload directory")
	}
}
