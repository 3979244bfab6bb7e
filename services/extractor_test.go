package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlainText(t *testing.T) {
	text, err := ExtractText("notes.txt", []byte("hello world"))

	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestExtractTextMarkdown(t *testing.T) {
	text, err := ExtractText("README.md", []byte("# heading"))

	require.NoError(t, err)
	assert.Equal(t, "# heading", text)
}

func TestExtractTextInvalidUTF8(t *testing.T) {
	_, err := ExtractText("bad.txt", []byte{0xff, 0xfe, 0xfd})

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "bad.txt", extractionErr.FileName)
}

func TestExtractTextPlaceholders(t *testing.T) {
	pdf, err := ExtractText("report.pdf", []byte("%PDF-1.7 ..."))
	require.NoError(t, err)
	assert.Equal(t, pdfPlaceholder, pdf)

	docx, err := ExtractText("report.DOCX", []byte("PK..."))
	require.NoError(t, err)
	assert.Equal(t, docxPlaceholder, docx)
}

func TestExtractTextUnknownExtensionBestEffort(t *testing.T) {
	text, err := ExtractText("data.bin", append([]byte("ok"), 0xff))

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}
