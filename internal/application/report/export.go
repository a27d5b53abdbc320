package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"Material", "Initial", "Stock In", "Used", "Final"}

// WriteCSV renders the report table as CSV, one row per material.
func WriteCSV(w io.Writer, summaries []MaterialSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, s := range summaries {
		row := []string{
			s.MaterialName,
			strconv.Itoa(s.InitialStock),
			strconv.Itoa(s.TotalStockIn),
			strconv.Itoa(s.TotalUsed),
			strconv.Itoa(s.FinalStock),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX renders the report table as an XLSX workbook with one sheet.
func WriteXLSX(w io.Writer, summaries []MaterialSummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Weekly Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, s := range summaries {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{s.MaterialName, s.InitialStock, s.TotalStockIn, s.TotalUsed, s.FinalStock}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
