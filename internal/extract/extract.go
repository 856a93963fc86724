// Package extract converts uploaded resume documents (PDF, DOCX, HTML or
// plain text) into the plain text the parsing pipeline consumes.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

var (
	// ErrEmptyInput reports an upload with no content at all.
	ErrEmptyInput = errors.New("uploaded file is empty")
	// ErrNoTextExtracted reports a document that decoded without any usable text.
	ErrNoTextExtracted = errors.New("no text content found in document")
	// ErrUnsupportedFormat reports a document format the extractor cannot read.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Error represents a failure while decoding a specific document format.
type Error struct {
	Format  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error (%s): %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error (%s): %s", e.Format, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

const (
	formatPDF  = "pdf"
	formatDocx = "docx"
	formatHTML = "html"
	formatText = "text"
)

// FromUpload extracts plain text from an uploaded resume document.
// The declared MIME type wins when it names a supported format; the file
// extension and the sniffed content type decide the route when the declared
// type is missing or a generic octet-stream.
func FromUpload(filename, declaredMIME string, data []byte) (string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return "", ErrEmptyInput
	}

	format, ok := resolveFormat(filename, declaredMIME, data)
	if !ok {
		label := normalizeMIME(declaredMIME)
		if label == "" {
			label = strings.ToLower(filepath.Ext(filename))
		}
		if label == "" {
			label = "unknown"
		}
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, label)
	}

	var (
		text string
		err  error
	)
	switch format {
	case formatPDF:
		text, err = fromPDF(data)
	case formatDocx:
		text, err = fromDocx(data)
	case formatHTML:
		text, err = fromHTML(data)
	default:
		text = strings.TrimPrefix(string(data), "\uFEFF")
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoTextExtracted
	}
	return text, nil
}

func resolveFormat(filename, declaredMIME string, data []byte) (string, bool) {
	declared := normalizeMIME(declaredMIME)
	if declared != "" && declared != "application/octet-stream" {
		return formatFromMIME(declared)
	}
	if format, ok := formatFromExtension(filename); ok {
		return format, true
	}
	return formatFromMIME(normalizeMIME(http.DetectContentType(data)))
}

// normalizeMIME lowercases a media type and drops parameters such as charset.
func normalizeMIME(mediaType string) string {
	mediaType, _, _ = strings.Cut(mediaType, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func formatFromMIME(mediaType string) (string, bool) {
	switch mediaType {
	case "application/pdf":
		return formatPDF, true
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return formatDocx, true
	case "text/html", "application/xhtml+xml":
		return formatHTML, true
	case "text/plain", "text/markdown":
		return formatText, true
	default:
		return "", false
	}
}

func formatFromExtension(filename string) (string, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return formatPDF, true
	case ".docx":
		return formatDocx, true
	case ".html", ".htm":
		return formatHTML, true
	case ".txt", ".md", ".text":
		return formatText, true
	default:
		return "", false
	}
}
