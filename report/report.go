// Package report exports the results of a test run to an Excel workbook.
package report

import (
	"fmt"
	"time"

	"github.com/neffpaving/site-checks/framework"

	"github.com/xuri/excelize/v2"
)

const (
	sheetNameFormat = "API Tests %s"
	timeFormat      = "2006-01-02_15-04-05"
	defaultSheet    = "Sheet1"

	patternType  = "pattern"
	patternValue = 1
	errorBgColor = "FF5900"

	narrowColumnWidth = 10
	wideColumnWidth   = 40
)

var headers = []string{"#", "Name", "Expected", "Actual", "Result", "Error", "Response"}

var columnWidths = []float64{
	narrowColumnWidth, wideColumnWidth / 2, narrowColumnWidth, narrowColumnWidth,
	narrowColumnWidth, wideColumnWidth, wideColumnWidth,
}

// SheetName returns the worksheet name used for a run that started at the given time.
func SheetName(startTime time.Time) string {
	return fmt.Sprintf(sheetNameFormat, startTime.Format(timeFormat))
}

// WriteWorkbook writes results to a new workbook at path, replacing any existing file. Each
// executed test gets one row; failed rows are highlighted. A summary block follows the rows.
func WriteWorkbook(path string, results framework.Results, startTime time.Time, duration time.Duration) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(startTime)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return fmt.Errorf("can't name worksheet: %w", err)
	}

	errorStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    patternType,
			Pattern: patternValue,
			Color:   []string{errorBgColor},
		},
	})
	if err != nil {
		return fmt.Errorf("can't create cell style: %w", err)
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	if err := writeRow(f, sheet, 1, toCells(headers)); err != nil {
		return err
	}

	for i, result := range results.Tests {
		row := i + 2
		if err := writeRow(f, sheet, row, resultCells(i+1, result)); err != nil {
			return err
		}
		if !result.Success() {
			first, _ := excelize.CoordinatesToCellName(1, row)
			last, _ := excelize.CoordinatesToCellName(len(headers), row)
			if err := f.SetCellStyle(sheet, first, last, errorStyle); err != nil {
				return err
			}
		}
	}

	summaryRow := len(results.Tests) + 3
	summary := []string{
		"Summary",
		fmt.Sprintf("Duration: %.3fms", float64(duration.Microseconds())/1000),
		fmt.Sprintf("Tests run: %d", results.Run()),
		fmt.Sprintf("Tests passed: %d", results.Passed()),
		fmt.Sprintf("Tests failed: %d", len(results.Failures)),
		fmt.Sprintf("Tests skipped: %d", len(results.Skipped)),
	}
	for i, line := range summary {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+i), line); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("can't save report to %s: %w", path, err)
	}
	return nil
}

func resultCells(number int, result framework.TestResult) []interface{} {
	actual := ""
	if result.ActualStatus.IsDefined() {
		actual = fmt.Sprint(result.ActualStatus.IntValue())
	}
	outcome := "PASSED"
	if !result.Success() {
		outcome = "FAILED"
	}
	response := ""
	if !result.Response.IsNull() {
		response = result.Response.JSONString()
	}
	return []interface{}{
		number,
		result.TestID.String(),
		result.ExpectedStatus,
		actual,
		outcome,
		result.FailureSummary(),
		response,
	}
}

func toCells(values []string) []interface{} {
	ret := make([]interface{}, len(values))
	for i, v := range values {
		ret[i] = v
	}
	return ret
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
