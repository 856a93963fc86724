package extract

import (
	"bytes"
	"html"
	"regexp"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxLineBreakPattern = regexp.MustCompile(`<w:br[^>]*>`)
	docxParagraphClose   = regexp.MustCompile(`</w:p>`)
	docxTagPattern       = regexp.MustCompile(`<[^>]+>`)
)

// fromDocx pulls the document body out of a .docx archive. GetContent returns
// the raw document.xml, so paragraph and line-break markup is rewritten into
// newlines before the remaining tags are stripped. Empty paragraphs become
// blank lines, which keeps the section chunking of the source intact.
func fromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Format: formatDocx, Message: "failed to open document", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = docxLineBreakPattern.ReplaceAllString(content, "\n")
	content = docxParagraphClose.ReplaceAllString(content, "\n")
	content = docxTagPattern.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}
