package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/kavinak445/technovate-backend/config"
	"github.com/kavinak445/technovate-backend/internal/registration"
)

// BuildReceipt renders a registration receipt PDF straight from the
// submitted payload. Nothing is stored server side; the receipt is a
// rendering of what the client already holds.
func BuildReceipt(req registration.SubmitRequest) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, config.FestName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, config.FestVenue, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, "Registration Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	field := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(50, 8, label, "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, value, "1", 1, "L", false, 0, "")
	}

	field("Registration ID", req.RegistrationID)
	field("Events", req.EventNames)
	field("Pass Type", req.PassType)
	field("Amount Paid", fmt.Sprintf("Rs. %d", req.Amount))
	if req.TransactionID != "" {
		field("Transaction ID", req.TransactionID)
	}
	field("Event Date", config.FestDate)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Participants", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	widths := []float64{10, 50, 60, 30, 40}
	for i, h := range []string{"#", "Name", "Email", "Phone", "College"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for i, p := range req.Participants {
		cells := []string{fmt.Sprintf("%d", i+1), p.Name, p.Email, p.Phone, p.College}
		for j, v := range cells {
			pdf.CellFormat(widths[j], 7, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, "Carry this receipt and a valid college ID to the registration desk.", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Queries: "+config.FestContact, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
