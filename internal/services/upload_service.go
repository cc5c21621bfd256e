package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
)

// MaxUploadSize is the hard upload limit, checked before any disk write.
const MaxUploadSize = 10 << 20 // 10 MiB

const (
	MimePDF  = "application/pdf"
	MimeDoc  = "application/msword"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var allowedMimeTypes = map[string]bool{
	MimePDF:  true,
	MimeDoc:  true,
	MimeDocx: true,
}

var (
	ErrFileTooLarge        = errors.New("file exceeds the upload size limit")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// UploadService streams accepted uploads to durable local storage and
// extracts text from PDFs for content analysis.
type UploadService struct {
	uploadDir string
}

func NewUploadService(uploadDir string) (*UploadService, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %v", err)
	}
	return &UploadService{uploadDir: uploadDir}, nil
}

// ValidateUpload rejects oversize files and anything that is not
// PDF/DOC/DOCX. Runs before any byte is written to storage.
func (s *UploadService) ValidateUpload(header *multipart.FileHeader) error {
	if header.Size > MaxUploadSize {
		return ErrFileTooLarge
	}
	mimeType := header.Header.Get("Content-Type")
	if !allowedMimeTypes[mimeType] {
		return ErrUnsupportedFileType
	}
	return nil
}

// SaveFile streams the upload to disk under a collision-free name and
// returns the stored path. A failed write removes the partial file so no
// metadata row can ever point at a broken upload.
func (s *UploadService) SaveFile(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(header.Filename)
	path := filepath.Join(s.uploadDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %v", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %v", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to flush file: %v", err)
	}
	return path, nil
}

// ExtractPDFText pulls plain text out of a stored PDF, page by page.
func (s *UploadService) ExtractPDFText(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %v", err)
	}
	defer f.Close()

	var content strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}

		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		content.WriteString(text)
		content.WriteString("\n\n")
	}

	if content.Len() == 0 {
		return "", fmt.Errorf("no text content extracted from PDF")
	}

	return content.String(), nil
}
