package segment

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

// extractPDFPages extracts text page by page so every page boundary is
// preserved. Empty pages keep their slot; their segment has zero width.
func extractPDFPages(raw []byte) ([]part, error) {
	r, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	total := r.NumPage()
	if total == 0 {
		return nil, errors.New("pdf has no pages")
	}

	parts := make([]part, 0, total)
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			parts = append(parts, part{locationType: entity.LocationPage, location: i})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", i, err)
		}
		parts = append(parts, part{
			locationType: entity.LocationPage,
			location:     i,
			text:         NormalizeText(text),
		})
	}
	return parts, nil
}
