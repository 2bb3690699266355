package segment

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

func htmlDoc() entity.Document {
	return entity.Document{
		ID:         "doc-1",
		Identifier: "agreement.html",
		Format:     constants.FormatHTML,
	}
}

func TestSegmentHTML_SingleSection(t *testing.T) {
	raw := []byte(`<html><body>
		<script>alert("noise")</script>
		<p>This Agreement is effective as of January 1, 2023 and expires December 31, 2025.</p>
	</body></html>`)

	sd, err := New(nil).Segment(htmlDoc(), raw)
	require.NoError(t, err)
	require.Len(t, sd.Segments, 1)

	seg := sd.Segments[0]
	assert.Equal(t, entity.LocationSection, seg.LocationType)
	assert.Equal(t, 1, seg.Location)
	assert.Contains(t, seg.Text, "January 1, 2023")
	assert.NotContains(t, seg.Text, "alert")
}

func TestSegmentHTML_SplitsAtHeadings(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body><p>Preamble. ")
	sb.WriteString(strings.Repeat("This agreement concerns the parties named below. ", 10))
	sb.WriteString("</p><p>ARTICLE II Payment Terms</p><p>")
	sb.WriteString(strings.Repeat("Payment is due within 30 days of invoice. ", 10))
	sb.WriteString("</p></body></html>")

	sd, err := New(nil).Segment(htmlDoc(), []byte(sb.String()))
	require.NoError(t, err)
	require.Len(t, sd.Segments, 2)

	assert.Equal(t, 1, sd.Segments[0].Location)
	assert.Equal(t, 2, sd.Segments[1].Location)
	assert.Contains(t, sd.Segments[1].Text, "ARTICLE II")
}

func TestSegmentOffsets_IndexCanonicalText(t *testing.T) {
	raw := []byte(`<html><body>
		<p>` + strings.Repeat("First section body with enough text to stand on its own. ", 8) + `</p>
		<p>Section 2. Dispute Resolution</p>
		<p>` + strings.Repeat("All disputes go to arbitration in New York. ", 8) + `</p>
	</body></html>`)

	sd, err := New(nil).Segment(htmlDoc(), raw)
	require.NoError(t, err)
	require.True(t, len(sd.Segments) >= 2)

	prevEnd := -1
	for _, seg := range sd.Segments {
		require.LessOrEqual(t, seg.StartOffset, seg.EndOffset)
		require.Greater(t, seg.StartOffset, prevEnd)
		prevEnd = seg.EndOffset

		// A segment's slice of the canonical text is exactly its own text.
		assert.Equal(t, seg.Text, sd.CanonicalText[seg.StartOffset:seg.EndOffset])
	}
}

func TestSegmentPDF_Malformed(t *testing.T) {
	doc := entity.Document{ID: "doc-2", Identifier: "broken.pdf", Format: constants.FormatPDF}

	_, err := New(nil).Segment(doc, []byte("this is not a pdf"))
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "doc-2", pe.DocumentID)
}

func TestSegmentUnsupportedFormat(t *testing.T) {
	doc := entity.Document{ID: "doc-3", Identifier: "notes.docx", Format: "DOCX"}

	_, err := New(nil).Segment(doc, []byte("whatever"))
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestNormalizeText(t *testing.T) {
	in := "Line one   with\tspaces\r\n\r\n\r\n\r\nLine two  "
	assert.Equal(t, "Line one with spaces\n\nLine two", NormalizeText(in))
}

func TestCompactWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CompactWhitespace("  a\n b\t\tc "))
}
