package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"idvex/internal/domain"
)

// WriteXLSX renders a result record as an XLSX workbook with a Fields sheet
// and a Remarks sheet.
func WriteXLSX(rec *domain.ResultRecord) ([]byte, error) {
	f := excelize.NewFile()

	if err := writeFieldsSheet(f, rec); err != nil {
		return nil, err
	}
	if err := writeRemarksSheet(f, rec); err != nil {
		return nil, err
	}

	// Drop the default sheet and activate Fields.
	_ = f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex("Fields"); err == nil {
		f.SetActiveSheet(index)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFieldsSheet(f *excelize.File, rec *domain.ResultRecord) error {
	const sheet = "Fields"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Field", "Value", "Comparison", "Data Source", "Path"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	row := 2
	for _, summary := range []struct {
		name, value, path string
	}{
		{"Primary Result", rec.Summary.PrimaryResult, rec.Paths.PrimaryResult},
		{"Completion Status", rec.Summary.CompletionStatus, rec.Paths.CompletionStatus},
		{"Failure Reason", rec.Summary.FailureReason, rec.Paths.FailureReason},
	} {
		if summary.value == "" {
			continue
		}
		write(1, row, summary.name)
		write(2, row, summary.value)
		write(5, row, summary.path)
		row++
	}

	for _, key := range sortedFieldKeys(rec.Metadata.DocumentData2Fields) {
		write(1, row, key)
		write(2, row, formatValue(rec.Metadata.DocumentData2Fields[key]))
		write(3, row, rec.Metadata.DocumentData2Compare[key])
		write(4, row, captureSourceLabel(rec.Metadata.DocumentData2DataSource[key]))
		write(5, row, rec.Metadata.DocumentData2Paths[key])
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 32)
	_ = f.SetColWidth(sheet, "C", "D", 18)
	_ = f.SetColWidth(sheet, "E", "E", 72)
	return nil
}

func writeRemarksSheet(f *excelize.File, rec *domain.ResultRecord) error {
	const sheet = "Remarks"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"List", "Code", "Message", "Category", "Path"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	row := 2
	for _, remark := range rec.Remarks.Processing {
		write(1, row, "Processing")
		write(2, row, strconv.Itoa(remark.Code))
		write(3, row, remark.Message)
		write(4, row, remark.Category)
		write(5, row, remark.Path)
		row++
	}
	for _, remark := range rec.Remarks.RiskManagement {
		write(1, row, "Risk Management")
		write(2, row, strconv.Itoa(remark.Code))
		write(3, row, remark.Message)
		write(4, row, remark.Category)
		write(5, row, remark.Path)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 16)
	_ = f.SetColWidth(sheet, "C", "C", 64)
	_ = f.SetColWidth(sheet, "D", "D", 24)
	_ = f.SetColWidth(sheet, "E", "E", 72)
	return nil
}
