package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
)

// Column layout shared by both renderers. One exported row per cell, flat,
// so the files open cleanly in spreadsheet tools without any unpivoting.
var headers = []string{
	"field_key",
	"field_label",
	"field_type",
	"document_id",
	"document_identifier",
	"value",
	"value_raw",
	"value_normalized",
	"confidence",
	"confidence_reasons",
	"review_state",
	"citation_location_type",
	"citation_location",
	"citation_snippet",
}

// Service renders a job's review table into downloadable formats.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportXLSX returns an XLSX workbook (as bytes) for the given table.
func (s *Service) ExportXLSX(table *entity.TablePayload) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Review"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	rows := 0
	for _, record := range flatten(table) {
		for col, v := range record {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
		rows++
	}

	// Widen the columns a reader actually looks at.
	_ = f.SetColWidth(sheet, "A", "B", 22) // field key/label
	_ = f.SetColWidth(sheet, "E", "E", 28) // document identifier
	_ = f.SetColWidth(sheet, "F", "H", 32) // values
	_ = f.SetColWidth(sheet, "N", "N", 60) // snippet

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"job_id", table.Job.ID.String(),
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportCSV returns the same flat layout as UTF-8 CSV bytes.
func (s *Service) ExportCSV(table *entity.TablePayload) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}
	records := flatten(table)
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv write: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"job_id", table.Job.ID.String(),
		"rows", len(records),
	)
	return buf.Bytes(), nil
}

// flatten walks the table in canonical order: row by row (field declaration
// order), cell by cell (document ingestion order).
func flatten(table *entity.TablePayload) [][]string {
	var out [][]string
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			if cell == nil {
				continue
			}
			record := []string{
				cell.FieldKey,
				cell.FieldLabel,
				cell.FieldType,
				cell.DocumentID,
				cell.DocumentIdentifier,
				deref(cell.Value),
				deref(cell.ValueRaw),
				deref(cell.ValueNormalized),
				strconv.FormatFloat(cell.Confidence, 'f', -1, 64),
				strings.Join(cell.ConfidenceReasons, "|"),
				string(cell.ReviewState),
			}
			if c := cell.Citation; c != nil {
				record = append(record,
					c.LocationType,
					strconv.Itoa(c.Location),
					truncate(c.Snippet, 300),
				)
			} else {
				record = append(record, "", "", "")
			}
			out = append(out, record)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		cut := n
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		return s[:cut]
	}
	// Back off to a rune boundary so the cut never splits a multibyte rune.
	cut := n - 1
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
