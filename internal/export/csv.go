// Package export renders extraction result records as downloadable tables,
// CSV for spreadsheet import and XLSX for direct review.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"idvex/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Section",
	"Name",
	"Value",
	"Category",
	"Comparison",
	"Data Source",
	"Path",
}

// Writer wraps csv.Writer for exporting result records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecord converts a result record to CSV rows and writes them: summary
// verdict first, then the document field table, then both remark lists.
func (w *Writer) WriteRecord(rec *domain.ResultRecord) error {
	for _, row := range recordRows(rec) {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func recordRows(rec *domain.ResultRecord) [][]string {
	var rows [][]string
	add := func(section, name, value, category, compare, source, path string) {
		rows = append(rows, []string{section, name, value, category, compare, source, path})
	}

	if rec.Summary.PrimaryResult != "" {
		add("Summary", "Primary Result", rec.Summary.PrimaryResult, "", "", "", rec.Paths.PrimaryResult)
	}
	if rec.Summary.CompletionStatus != "" {
		add("Summary", "Completion Status", rec.Summary.CompletionStatus, "", "", "", rec.Paths.CompletionStatus)
	}
	if rec.Summary.FailureReason != "" {
		add("Summary", "Failure Reason", rec.Summary.FailureReason, "", "", "", rec.Paths.FailureReason)
	}

	for _, key := range sortedFieldKeys(rec.Metadata.DocumentData2Fields) {
		add("Document Field",
			key,
			formatValue(rec.Metadata.DocumentData2Fields[key]),
			"",
			rec.Metadata.DocumentData2Compare[key],
			captureSourceLabel(rec.Metadata.DocumentData2DataSource[key]),
			rec.Metadata.DocumentData2Paths[key],
		)
	}

	for _, remark := range rec.Remarks.Processing {
		add("Processing Remark", strconv.Itoa(remark.Code), remark.Message, remark.Category, "", "", remark.Path)
	}
	for _, remark := range rec.Remarks.RiskManagement {
		add("Risk Remark", strconv.Itoa(remark.Code), remark.Message, remark.Category, "", "", remark.Path)
	}

	return rows
}

func sortedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// captureSourceLabel names a field's capture source. Numeric markers resolve
// to their capture method; anything else is shown as-is.
func captureSourceLabel(v any) string {
	if v == nil {
		return ""
	}
	if f, ok := v.(float64); ok && f == float64(int(f)) {
		return domain.CaptureSource(int(f)).String()
	}
	return formatValue(v)
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}
