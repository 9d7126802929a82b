package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/kavinak445/technovate-backend/internal/registration"
)

const (
	FormatCSV   = "csv"
	FormatExcel = "xlsx"
	FormatPDF   = "pdf"
)

var exportHeaders = []string{
	"Timestamp", "Registration ID", "Events", "Name", "Email", "Phone",
	"College", "Year", "Lunch", "Pass", "Amount", "Primary",
	"Transaction ID", "Stored At", "Reason",
}

// Exporter renders parked fallback rows for the organizing team, who
// paste them into the sheet by hand when the web app is down for long.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Export returns the file bytes, a timestamped filename and the content
// type for the requested format.
func (e *Exporter) Export(format string, rows []registration.FallbackRow) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.exportCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("pending_registrations_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		data, err := e.exportExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("pending_registrations_%s.xlsx", timestamp),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("pending_registrations_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

func rowRecord(fr registration.FallbackRow) []string {
	amount := ""
	if fr.IsPrimary {
		amount = strconv.Itoa(fr.Amount)
	}
	return []string{
		fr.Timestamp,
		fr.RegistrationID,
		fr.EventNames,
		fr.MemberName,
		fr.MemberEmail,
		fr.MemberPhone,
		fr.College,
		fr.Year,
		fr.LunchPreference,
		fr.PassType,
		amount,
		strconv.FormatBool(fr.IsPrimary),
		fr.TransactionID,
		fr.StoredAt,
		fr.Reason,
	}
}

func (e *Exporter) exportCSV(rows []registration.FallbackRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, fr := range rows {
		if err := writer.Write(rowRecord(fr)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Exporter) exportExcel(rows []registration.FallbackRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Pending Registrations"
	f.SetSheetName("Sheet1", sheet)

	for col, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, fr := range rows {
		for col, v := range rowRecord(fr) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Exporter) exportPDF(rows []registration.FallbackRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Technovate 2026 - Pending Registrations")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 8)
	widths := []float64{22, 24, 40, 28, 38, 20, 30, 12, 14, 24, 14, 26}
	headers := []string{
		"Timestamp", "Reg ID", "Events", "Name", "Email", "Phone",
		"College", "Year", "Lunch", "Pass", "Amount", "Transaction ID",
	}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 7)
	for _, fr := range rows {
		amount := ""
		if fr.IsPrimary {
			amount = strconv.Itoa(fr.Amount)
		}
		cells := []string{
			fr.Timestamp, fr.RegistrationID, fr.EventNames, fr.MemberName,
			fr.MemberEmail, fr.MemberPhone, fr.College, fr.Year,
			fr.LunchPreference, fr.PassType, amount, fr.TransactionID,
		}
		for i, v := range cells {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
