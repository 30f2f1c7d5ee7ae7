package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicPathPrefix is the URL prefix uploaded images are served under
const PublicPathPrefix = "/uploads"

// sniffLen is how many bytes http.DetectContentType needs
const sniffLen = 512

// UploadService stores complaint images on the local filesystem.
// Type and size gating only; no resizing or sanitizing is performed.
type UploadService struct {
	dir      string
	maxBytes int64
}

// NewUploadService creates a new upload service
func NewUploadService(dir string, maxBytes int64) *UploadService {
	return &UploadService{dir: dir, maxBytes: maxBytes}
}

// Dir returns the upload directory
func (us *UploadService) Dir() string {
	return us.dir
}

// Save validates and stores one uploaded image, returning its public path.
// Returns ErrFileTooLarge or ErrNotAnImage when the file is rejected.
func (us *UploadService) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > us.maxBytes {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Both the declared type and the sniffed content must look like an image
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return "", ErrNotAnImage
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return "", ErrNotAnImage
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	if err := os.MkdirAll(us.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dst, err := os.Create(filepath.Join(us.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return PublicPathPrefix + "/" + filename, nil
}

// Remove deletes a previously stored image by its public path.
// A missing file is not an error.
func (us *UploadService) Remove(imagePath string) error {
	filename := strings.TrimPrefix(imagePath, PublicPathPrefix+"/")
	// Reject anything that would escape the upload directory
	if filename == "" || filename != filepath.Base(filename) {
		return fmt.Errorf("invalid image path: %s", imagePath)
	}

	err := os.Remove(filepath.Join(us.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

var _ ImageRemover = (*UploadService)(nil)
