package renderer

import (
	"context"
	"fmt"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	MediaTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	sheetName     = "Estimate"
)

// XLSXRenderer renders the estimate as a spreadsheet with live formulas for
// line amounts and totals.
type XLSXRenderer struct{}

var _ interfaces.IDocumentRenderer = XLSXRenderer{}

func (XLSXRenderer) Render(_ context.Context, e entities.Estimate) (string, error) {
	data, err := Workbook(e)
	if err != nil {
		return "", err
	}
	return DataURI(MediaTypeXLSX, data), nil
}

// Workbook returns the raw .xlsx bytes.
func Workbook(e entities.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	rows := [][]any{
		{"Estimate", e.ID},
		{"Date", e.CreatedAt.Format("2006-01-02")},
		{"Contractor", e.Contractor.Name, e.Contractor.Company, e.Contractor.Phone, e.Contractor.Email},
		{"Client", e.Client.Name, e.Client.Company, e.Client.Phone, e.Client.Email},
		{},
		{"Item", "Quantity", "Unit price", "Amount"},
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if err := f.SetSheetRow(sheetName, cell(1, i+1), &row); err != nil {
			return nil, err
		}
	}

	first := len(rows) + 1
	for i, it := range e.Items {
		r := first + i
		if err := f.SetSheetRow(sheetName, cell(1, r), &[]any{it.Name, it.Quantity, it.UnitPrice}); err != nil {
			return nil, err
		}
		if err := f.SetCellFormula(sheetName, cell(4, r), fmt.Sprintf("B%d*C%d", r, r)); err != nil {
			return nil, err
		}
	}
	last := first + len(e.Items) - 1

	sub := last + 2
	subtotalFormula := "0"
	if len(e.Items) > 0 {
		subtotalFormula = fmt.Sprintf("SUM(D%d:D%d)", first, last)
	}
	cells := []struct {
		label   string
		value   any
		formula string
	}{
		{label: "Subtotal", formula: subtotalFormula},
		{label: "Tax rate %", value: e.TaxRatePercent},
		{label: "Tax", formula: fmt.Sprintf("D%d*D%d/100", sub, sub+1)},
		{label: "Total", formula: fmt.Sprintf("D%d+D%d", sub, sub+2)},
	}
	for i, c := range cells {
		r := sub + i
		if err := f.SetCellValue(sheetName, cell(3, r), c.label); err != nil {
			return nil, err
		}
		if c.formula != "" {
			if err := f.SetCellFormula(sheetName, cell(4, r), c.formula); err != nil {
				return nil, err
			}
			continue
		}
		if err := f.SetCellValue(sheetName, cell(4, r), c.value); err != nil {
			return nil, err
		}
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, cell(3, first), cell(4, sub+3), money); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, cell(1, first-1), cell(4, first-1), bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "A", "A", 36); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
