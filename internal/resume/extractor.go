package resume

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// ExtractionError means the document could not be read as its claimed format.
// A readable document with no extractable text is not an error; Extract
// returns "" and leaves the decision to the caller.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the whole document into memory and converts it to plain text
// based on the file extension. The document is never written to disk.
func (e *Extractor) Extract(filename string, reader io.Reader) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", &ExtractionError{Filename: filename, Err: err}
	}

	fileType := strings.ToLower(filepath.Ext(filename))
	switch fileType {
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			return "", &ExtractionError{Filename: filename, Err: err}
		}
		return text, nil
	case ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.Convert(bytes.NewReader(data), docconv.MimeTypeByExtension(filename), true)
		if err != nil {
			return "", &ExtractionError{Filename: filename, Err: err}
		}
		return res.Body, nil
	case ".txt":
		return string(data), nil
	default:
		return "", &ExtractionError{
			Filename: filename,
			Err:      fmt.Errorf("unsupported file type: %s", fileType),
		}
	}
}

// extractPDFText walks the document page by page. Every page that yields text
// contributes its text followed by a newline; pages with no text are skipped
// entirely, so page order is the only ordering in the output.
func extractPDFText(data []byte) (string, error) {
	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		if text == "" {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}
