// Package export converts a finished invoice snapshot into a downloadable
// artifact. The exporter is fire-and-forget from the aggregate's point of
// view: it reads a snapshot, produces bytes, and never feeds state back.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/edcviet/invoicegen/internal/datefmt"
	"github.com/edcviet/invoicegen/internal/invoice/domain"
	"github.com/edcviet/invoicegen/internal/money"
)

type Exporter interface {
	Export(inv domain.Invoice) (domain.ExportResult, error)
}

// PDFExporter lays the invoice out on an A4 page.
type PDFExporter struct{}

func NewPDFExporter() Exporter {
	return &PDFExporter{}
}

func (e *PDFExporter) Export(inv domain.Invoice) (domain.ExportResult, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Invoice "+inv.Number, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(0, 14, "Invoice", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "NO. "+tr(inv.Number), "", 1, "R", false, 0, "")
	if display := datefmt.ToDisplay(inv.IssueDate); display != "" {
		pdf.CellFormat(0, 5, display, "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	writeContactLine(pdf, tr, inv.Business.Name)
	writeContactLine(pdf, tr, joinNonEmpty(inv.Business.Website, inv.Business.Phone))
	writeContactLine(pdf, tr, inv.Business.Address)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "BILLED TO", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, tr(inv.Client.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	writeContactLine(pdf, tr, prefixed("Phone: ", inv.Client.Phone))
	writeContactLine(pdf, tr, prefixed("Address: ", inv.Client.Address))
	writeContactLine(pdf, tr, prefixed("Facebook: ", inv.Client.Facebook))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 7, "DESCRIPTION OF ITEM", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, "PRICE", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(140, 6, tr(item.Description), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, pdfAmount(money.ParseAmount(item.Price), inv.Currency), "", 1, "R", false, 0, "")
	}
	if discount := money.ParseAmount(inv.Discount); discount.IsPositive() {
		pdf.CellFormat(140, 6, "DISCOUNT", "T", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, pdfAmount(discount, inv.Currency), "T", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(140, 8, "TOTAL AMOUNT DUE", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, pdfAmount(inv.Total, inv.Currency), "T", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "PAYMENT DETAILS", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if inv.Payment.Method == domain.MethodCashOnDelivery {
		pdf.CellFormat(0, 5, "Cash on delivery", "", 1, "L", false, 0, "")
	} else {
		writeContactLine(pdf, tr, inv.Payment.BankName)
		writeContactLine(pdf, tr, inv.Payment.AccountName)
		writeContactLine(pdf, tr, prefixed("Account Number: ", inv.Payment.AccountNumber))
		writeContactLine(pdf, tr, prefixed("Routing Number: ", inv.Payment.RoutingNumber))
	}

	if inv.Delivery.CarrierName != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 6, "DELIVERY", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		writeContactLine(pdf, tr, inv.Delivery.CarrierName)
		writeContactLine(pdf, tr, prefixed("Tracking Number: ", inv.Delivery.TrackingNumber))
		if cod := money.ParseAmount(inv.Delivery.CODAmount); cod.IsPositive() {
			pdf.CellFormat(0, 5, "COD Amount: "+pdfAmount(cod, inv.Currency), "", 1, "L", false, 0, "")
		}
	}

	if display := datefmt.ToDisplay(inv.DueDate); display != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 5, "*DUE BY "+display, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return domain.ExportResult{}, fmt.Errorf("render pdf: %w", err)
	}

	stem := inv.Number
	if stem == "" {
		stem = "invoice"
	}
	return domain.ExportResult{
		Filename:    stem + ".pdf",
		ContentType: "application/pdf",
		Bytes:       buf.Bytes(),
	}, nil
}

// pdfAmount renders an amount with the currency code spelled out. The core
// PDF fonts only cover cp1252, so currency symbols like the dong sign
// cannot be embedded without shipping a font file.
func pdfAmount(amount decimal.Decimal, currency string) string {
	return money.Format(amount, currency, money.StyleDecimal) + " " + currency
}

func writeContactLine(pdf *gofpdf.Fpdf, tr func(string) string, line string) {
	if line == "" {
		return
	}
	pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
}

func prefixed(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " - " + b
	}
}
