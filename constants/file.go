package constants

import "strings"

// DocumentFormat is the declared format of an ingested document.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "PDF"
	FormatHTML DocumentFormat = "HTML"
)

// DocumentFormats holds the allowed formats for the format field on documents.
var DocumentFormats = []string{string(FormatPDF), string(FormatHTML)}

// AllowedExtensions holds the default allowed file extensions for ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"html": {},
	"htm":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized file extension onto a DocumentFormat.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) DocumentFormat {
	switch NormalizeExt(ext) {
	case "pdf":
		return FormatPDF
	case "html", "htm":
		return FormatHTML
	}
	return ""
}
