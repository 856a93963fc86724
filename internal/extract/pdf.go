package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// fromPDF concatenates the plain text of every readable page. Pages that
// fail to decode are skipped so one damaged page does not sink the upload.
func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Format: formatPDF, Message: "failed to open document", Cause: err}
	}

	var builder strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n\n")
	}
	return builder.String(), nil
}
