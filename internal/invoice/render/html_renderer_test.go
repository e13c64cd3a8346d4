package render

import (
	"strings"
	"testing"
	"time"

	"github.com/edcviet/invoicegen/internal/invoice/domain"
)

func renderTestInvoice(t *testing.T, inv domain.Invoice) string {
	t.Helper()
	html, err := NewRenderer().RenderHTML(Input{Invoice: inv})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

func sampleInvoice() domain.Invoice {
	inv := domain.NewInvoice(time.Date(2025, time.April, 18, 0, 0, 0, 0, time.UTC))
	inv.Number = "INV-Q2-123"
	inv.Business = domain.Business{
		Website: "https://edcviet.com",
		Phone:   "+84 342 320 189",
		Address: "Le Thi Rieng St, District 12, HCMC",
	}
	inv.Client = domain.Client{
		Name:    "Client name",
		Phone:   "+84 909 909 909",
		Address: "123 Main St, HCMC",
	}
	inv.Items = []domain.LineItem{
		{Description: "1 item 1", Price: "10000"},
		{Description: "2 item 2", Price: "20000"},
		{Description: "3 item 3", Price: "30000"},
	}
	inv.Payment.BankName = "Vietcombank"
	inv.Payment.AccountName = "Lang Dinh Thanh Dung"
	inv.Payment.AccountNumber = "0911000009327"
	return domain.Recompute(inv)
}

func TestRenderHTMLBasicLayout(t *testing.T) {
	html := renderTestInvoice(t, sampleInvoice())

	for _, want := range []string{
		"NO. INV-Q2-123",
		"April 18, 2025",
		"BILLED TO",
		"Client name",
		"1 item 1",
		"10,000",
		"TOTAL AMOUNT DUE",
		"₫60,000",
		"Vietcombank",
		"Account Number: 0911000009327",
		"Thank you!",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected rendered invoice to contain %q", want)
		}
	}
}

func TestRenderHTMLDueDateOnlyWhenSet(t *testing.T) {
	inv := sampleInvoice()
	html := renderTestInvoice(t, inv)
	if strings.Contains(html, "*DUE BY") {
		t.Fatalf("expected no due-by note without a due date")
	}

	inv.DueDate = "2025-05-01"
	html = renderTestInvoice(t, inv)
	if !strings.Contains(html, "*DUE BY May 1, 2025") {
		t.Fatalf("expected due-by note, got:\n%s", html)
	}
}

func TestRenderHTMLZeroDiscountHidden(t *testing.T) {
	inv := sampleInvoice()
	html := renderTestInvoice(t, inv)
	if strings.Contains(html, "DISCOUNT") {
		t.Fatalf("expected zero discount to stay hidden")
	}

	inv.Discount = "15000"
	inv = domain.Recompute(inv)
	html = renderTestInvoice(t, inv)
	if !strings.Contains(html, "DISCOUNT") || !strings.Contains(html, "₫45,000") {
		t.Fatalf("expected discount row and adjusted total")
	}
}

func TestRenderHTMLCashOnDelivery(t *testing.T) {
	inv := sampleInvoice()
	inv.Payment.Method = domain.MethodCashOnDelivery
	html := renderTestInvoice(t, inv)
	if !strings.Contains(html, "Cash on delivery") {
		t.Fatalf("expected cod note")
	}
	if strings.Contains(html, "Vietcombank") {
		t.Fatalf("expected bank fields hidden for cod")
	}
}

func TestRenderHTMLDeliveryBlock(t *testing.T) {
	inv := sampleInvoice()
	html := renderTestInvoice(t, inv)
	if strings.Contains(html, "DELIVERY") {
		t.Fatalf("expected no delivery block without a carrier")
	}

	inv.Delivery = domain.DeliveryInfo{
		CarrierName:    "Giao Hang Tiet Kiem",
		TrackingNumber: "GHTK123",
		CODAmount:      "0",
	}
	html = renderTestInvoice(t, inv)
	if !strings.Contains(html, "Giao Hang Tiet Kiem") || !strings.Contains(html, "Tracking Number: GHTK123") {
		t.Fatalf("expected carrier and tracking rendered")
	}
	if strings.Contains(html, "COD Amount") {
		t.Fatalf("expected zero cod amount hidden")
	}

	inv.Delivery.CODAmount = "50000"
	html = renderTestInvoice(t, inv)
	if !strings.Contains(html, "COD Amount: 50,000") {
		t.Fatalf("expected cod amount rendered when positive")
	}
}

func TestRenderHTMLLogoSanitized(t *testing.T) {
	inv := sampleInvoice()
	inv.Business.LogoURL = "javascript:alert(1)"
	html := renderTestInvoice(t, inv)
	if strings.Contains(html, "javascript:") {
		t.Fatalf("expected non-http logo URL dropped")
	}

	inv.Business.LogoURL = "https://edcviet.com/logo.png"
	html = renderTestInvoice(t, inv)
	if !strings.Contains(html, "https://edcviet.com/logo.png") {
		t.Fatalf("expected https logo URL rendered")
	}
}
