package domain

import (
	"github.com/edcviet/invoicegen/internal/datefmt"
	"github.com/edcviet/invoicegen/internal/money"
)

// DraftView is the read-only shape handed to collaborators: raw values for
// the form side and display values formatted against the currency code in
// effect at render time.
type DraftView struct {
	ID        string      `json:"id"`
	Invoice   Invoice     `json:"invoice"`
	Display   DisplayView `json:"display"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

type DisplayView struct {
	IssueDate  string   `json:"issue_date"`
	DueDate    string   `json:"due_date"`
	ItemPrices []string `json:"item_prices"`
	Discount   string   `json:"discount"`
	Total      string   `json:"total"`
	CODAmount  string   `json:"cod_amount,omitempty"`
}

// NewDraftView formats a draft for the preview side. Amounts are formatted
// relative to the invoice's current currency, never the one in effect when
// they were typed.
func NewDraftView(d Draft) DraftView {
	inv := d.Invoice
	prices := make([]string, len(inv.Items))
	for i, item := range inv.Items {
		prices[i] = money.Format(money.ParseAmount(item.Price), inv.Currency, money.StyleDecimal)
	}

	display := DisplayView{
		IssueDate:  datefmt.ToDisplay(inv.IssueDate),
		DueDate:    datefmt.ToDisplay(inv.DueDate),
		ItemPrices: prices,
		Discount:   money.Format(money.ParseAmount(inv.Discount), inv.Currency, money.StyleCurrency),
		Total:      money.Format(inv.Total, inv.Currency, money.StyleCurrency),
	}
	if cod := money.ParseAmount(inv.Delivery.CODAmount); cod.IsPositive() {
		display.CODAmount = money.Format(cod, inv.Currency, money.StyleCurrency)
	}

	return DraftView{
		ID:        d.ID.String(),
		Invoice:   inv,
		Display:   display,
		CreatedAt: d.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: d.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
