package resume_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/resume"
)

func TestExtract_PlainText(t *testing.T) {
	e := resume.NewExtractor()

	text, err := e.Extract("resume.txt", strings.NewReader("plain resume text"))
	require.NoError(t, err)
	require.Equal(t, "plain resume text", text)
}

func TestExtract_EmptyDocumentIsNotAnError(t *testing.T) {
	e := resume.NewExtractor()

	text, err := e.Extract("empty.txt", strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, "", text)
}

func TestExtract_Idempotent(t *testing.T) {
	e := resume.NewExtractor()
	const body = "the same resume\nwith two lines"

	first, err := e.Extract("resume.txt", strings.NewReader(body))
	require.NoError(t, err)
	second, err := e.Extract("resume.txt", strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestExtract_CorruptPDF(t *testing.T) {
	e := resume.NewExtractor()

	_, err := e.Extract("resume.pdf", strings.NewReader("this is not a pdf"))
	require.Error(t, err)

	var extErr *resume.ExtractionError
	require.True(t, errors.As(err, &extErr))
	require.Equal(t, "resume.pdf", extErr.Filename)
}

func TestExtract_UnsupportedFileType(t *testing.T) {
	e := resume.NewExtractor()

	_, err := e.Extract("resume.png", strings.NewReader("binary"))
	var extErr *resume.ExtractionError
	require.True(t, errors.As(err, &extErr))
	require.Contains(t, err.Error(), "unsupported file type")
}
