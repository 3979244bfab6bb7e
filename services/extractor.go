package services

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Stand-in strings for formats whose extraction is not implemented.
const (
	pdfPlaceholder  = "PDF text extraction is not implemented yet"
	docxPlaceholder = "DOCX text extraction is not implemented yet"
)

// ExtractText returns the text content of an uploaded file based on its
// extension. Only plain text is supported; pdf and docx yield literal
// placeholder strings, and unknown extensions are decoded best-effort.
func ExtractText(fileName string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt", ".md":
		if !utf8.Valid(data) {
			return "", &ExtractionError{FileName: fileName, Err: errors.New("invalid utf-8")}
		}
		return string(data), nil
	case ".pdf":
		return pdfPlaceholder, nil
	case ".docx":
		return docxPlaceholder, nil
	default:
		return strings.ToValidUTF8(string(data), ""), nil
	}
}
