package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUpload_PlainTextPassThrough(t *testing.T) {
	input := "John Smith\n\nSummary line\n"

	text, err := FromUpload("resume.txt", "text/plain; charset=utf-8", []byte(input))

	require.NoError(t, err)
	assert.Equal(t, input, text, "plain text should keep its blank lines")
}

func TestFromUpload_TextRoutedByExtension(t *testing.T) {
	text, err := FromUpload("resume.txt", "", []byte("Jane Doe"))

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", text)
}

func TestFromUpload_StripsByteOrderMark(t *testing.T) {
	text, err := FromUpload("resume.txt", "text/plain", []byte("\uFEFFJane Doe"))

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", text)
}

func TestFromUpload_HTMLDropsNoiseElements(t *testing.T) {
	input := `<!DOCTYPE html>
<html>
<head><title>Resume</title></head>
<body>
<nav>Home | About</nav>
<main>
<h1>John Smith</h1>
<p>Backend Engineer</p>
</main>
<footer>contact page</footer>
</body>
</html>`

	text, err := FromUpload("resume.html", "text/html", []byte(input))

	require.NoError(t, err)
	assert.Equal(t, "John Smith\nBackend Engineer", text)
	assert.NotContains(t, text, "Home | About")
	assert.NotContains(t, text, "contact page")
}

func TestFromUpload_HTMLFallsBackToBody(t *testing.T) {
	input := `<html><body>
<p>Jane Doe</p>
<p>Platform Engineer</p>
</body></html>`

	text, err := FromUpload("resume.html", "text/html", []byte(input))

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nPlatform Engineer", text)
}

func TestFromUpload_SniffsHTMLWithoutMetadata(t *testing.T) {
	input := `<!DOCTYPE html><html><body><p>Sniffed resume text</p></body></html>`

	text, err := FromUpload("", "", []byte(input))

	require.NoError(t, err)
	assert.Equal(t, "Sniffed resume text", text)
}

func TestFromUpload_EmptyInput(t *testing.T) {
	_, err := FromUpload("resume.txt", "text/plain", nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = FromUpload("resume.txt", "text/plain", []byte("   \n\t  "))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestFromUpload_UnsupportedDeclaredType(t *testing.T) {
	_, err := FromUpload("resume.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "image/png")
}

func TestFromUpload_UnsupportedUnknownBinary(t *testing.T) {
	_, err := FromUpload("", "", []byte{0x00, 0x01, 0x02, 0x03, 0xff})

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFromUpload_NoTextExtracted(t *testing.T) {
	input := `<html><body><script>var hidden = 1;</script></body></html>`

	_, err := FromUpload("resume.html", "text/html", []byte(input))

	assert.ErrorIs(t, err, ErrNoTextExtracted)
}

func TestFromUpload_CorruptPDF(t *testing.T) {
	_, err := FromUpload("resume.pdf", "application/pdf", []byte("this is not a pdf"))

	require.Error(t, err)
	var extractErr *Error
	require.True(t, errors.As(err, &extractErr))
	assert.Equal(t, formatPDF, extractErr.Format)
}

func TestFromUpload_CorruptDocx(t *testing.T) {
	_, err := FromUpload("resume.docx", "", []byte("this is not a zip archive"))

	require.Error(t, err)
	var extractErr *Error
	require.True(t, errors.As(err, &extractErr))
	assert.Equal(t, formatDocx, extractErr.Format)
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		declaredMIME string
		data         []byte
		want         string
		wantOK       bool
	}{
		{
			name:         "declared type wins over extension",
			filename:     "resume.txt",
			declaredMIME: "application/pdf",
			data:         []byte("x"),
			want:         formatPDF,
			wantOK:       true,
		},
		{
			name:         "octet-stream defers to extension",
			filename:     "resume.docx",
			declaredMIME: "application/octet-stream",
			data:         []byte("x"),
			want:         formatDocx,
			wantOK:       true,
		},
		{
			name:         "markdown extension is text",
			filename:     "resume.md",
			declaredMIME: "",
			data:         []byte("x"),
			want:         formatText,
			wantOK:       true,
		},
		{
			name:         "declared type parameters are ignored",
			filename:     "",
			declaredMIME: "TEXT/HTML; charset=utf-8",
			data:         []byte("x"),
			want:         formatHTML,
			wantOK:       true,
		},
		{
			name:         "unknown declared type does not fall through",
			filename:     "resume.txt",
			declaredMIME: "image/png",
			data:         []byte("x"),
			wantOK:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, ok := resolveFormat(tt.filename, tt.declaredMIME, tt.data)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, format)
			}
		})
	}
}

func TestCollapseLines(t *testing.T) {
	input := "  John Smith  \n\n\t\n  Backend Engineer\n"

	assert.Equal(t, "John Smith\nBackend Engineer", collapseLines(input))
}
