package segment

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

// sectionHeading matches the structural markers legal documents use:
// "ARTICLE IV ...", "Section 10.2 ...", "12. Indemnification".
var sectionHeading = regexp.MustCompile(`(?i)^(ARTICLE\s+[IVXLC0-9]+\b.*|Section\s+[0-9A-Za-z.\-]+\b.*|\d{1,2}\.\s+.+)$`)

// minSectionBody keeps tiny fragments (stray headings, page furniture) from
// becoming their own sections.
const minSectionBody = 250

// fallbackChunkSize bounds sections when a document has no recognizable
// structure at all.
const fallbackChunkSize = 4000

// extractHTMLSections strips non-content tags, flattens the document to text
// and splits it into sections at structural headings.
func extractHTMLSections(raw []byte) ([]part, error) {
	root, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return splitSections(b.String()), nil
}

// splitSections breaks flattened text into section parts. A heading only
// starts a new section once the current body has real content; otherwise
// headings stack into the section they introduce.
func splitSections(text string) []part {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	var parts []part
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		body := NormalizeText(strings.Join(current, "\n"))
		if body != "" {
			parts = append(parts, part{
				locationType: entity.LocationSection,
				location:     len(parts) + 1,
				text:         body,
			})
		}
		current = nil
	}

	for _, line := range lines {
		if sectionHeading.MatchString(line) && len(strings.Join(current, " ")) > minSectionBody {
			flush()
		}
		current = append(current, line)
	}
	flush()

	if len(parts) > 0 {
		return parts
	}

	// No structure found: fall back to fixed-size chunks.
	joined := NormalizeText(strings.Join(lines, "\n"))
	if joined == "" {
		return nil
	}
	for i := 0; i < len(joined); i += fallbackChunkSize {
		end := i + fallbackChunkSize
		if end > len(joined) {
			end = len(joined)
		}
		parts = append(parts, part{
			locationType: entity.LocationSection,
			location:     len(parts) + 1,
			text:         joined[i:end],
		})
	}
	return parts
}
