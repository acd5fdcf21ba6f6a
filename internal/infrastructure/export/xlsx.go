// Package export writes list views as xlsx spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/pkg/format"
)

const (
	defaultSheet = "Sheet1"
	ContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	customerHeader = []any{"No", "Customer Number", "Name", "Phone", "Address", "Service", "Status", "Created"}
	serviceHeader  = []any{"No", "Name", "Min Usage (m³)", "Max Usage (m³)", "Price", "Status"}
)

// Customers writes one row per customer, in list order.
func Customers(w io.Writer, customers []domain.Customer) error {
	rows := make([][]any, 0, len(customers))
	for i, c := range customers {
		rows = append(rows, []any{
			i + 1,
			c.CustomerNumber,
			c.Name,
			format.Phone(c.Phone),
			c.Address,
			c.Service.Name,
			status(c.IsActive()),
			format.Date(c.CreatedAt),
		})
	}
	return write(w, "Customers", customerHeader, rows)
}

// Services writes one row per service package, in list order.
func Services(w io.Writer, services []domain.Service) error {
	rows := make([][]any, 0, len(services))
	for i, s := range services {
		rows = append(rows, []any{
			i + 1,
			s.Name,
			s.MinUsage,
			s.MaxUsage,
			s.Price,
			status(s.IsActive()),
		})
	}
	return write(w, "Services", serviceHeader, rows)
}

func status(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

func write(w io.Writer, sheet string, header []any, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetColWidth(sheet, "B", lastCol, 18); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
