package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// PaymentMethod selects which payment block the invoice shows.
type PaymentMethod string

const (
	MethodBankTransfer   PaymentMethod = "bank_transfer"
	MethodCashOnDelivery PaymentMethod = "cod"
)

// Business identifies the issuing party.
type Business struct {
	Name    string `json:"name"`
	Website string `json:"website"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	LogoURL string `json:"logo_url"`
}

// Client identifies the billed party.
type Client struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Facebook string `json:"facebook"`
}

// LineItem is one description/price row. Price keeps the raw user text;
// the numeric value used for totals is the best-effort parse at recompute
// time, so a row may hold "1,000" or "$50" while the user is mid-edit.
type LineItem struct {
	Description string `json:"description"`
	Price       string `json:"price"`
}

// PaymentInfo carries the bank transfer details. Fields belonging to the
// inactive method are retained but not rendered.
type PaymentInfo struct {
	Method        PaymentMethod `json:"method"`
	BankName      string        `json:"bank_name"`
	AccountName   string        `json:"account_name"`
	AccountNumber string        `json:"account_number"`
	RoutingNumber string        `json:"routing_number"`
}

// DeliveryInfo is the optional shipping block. CODAmount is rendered only
// when it parses to a value greater than zero.
type DeliveryInfo struct {
	CarrierName    string `json:"carrier_name"`
	CarrierLogo    string `json:"carrier_logo"`
	TrackingNumber string `json:"tracking_number"`
	CODAmount      string `json:"cod_amount"`
}

// Invoice is the aggregate root. It exclusively owns its nested records;
// every mutation replaces the aggregate wholesale and the derived Total is
// refreshed by Recompute before the new value is published.
type Invoice struct {
	Number    string          `json:"number"`
	IssueDate string          `json:"issue_date"`
	DueDate   string          `json:"due_date"`
	Business  Business        `json:"business"`
	Client    Client          `json:"client"`
	Currency  string          `json:"currency"`
	Items     []LineItem      `json:"items"`
	Discount  string          `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	Payment   PaymentInfo     `json:"payment"`
	Delivery  DeliveryInfo    `json:"delivery"`
}

// Draft wraps an invoice held in the in-memory drafting session store.
type Draft struct {
	ID        snowflake.ID `json:"id"`
	Invoice   Invoice      `json:"invoice"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// DefaultCurrency matches the original form default.
const DefaultCurrency = "VND"

// NewInvoice seeds an empty draft invoice: one blank line item, bank
// transfer payment, zero discount, issue date set to today.
func NewInvoice(today time.Time) Invoice {
	inv := Invoice{
		IssueDate: today.Format("2006-01-02"),
		Currency:  DefaultCurrency,
		Items:     []LineItem{{Description: "", Price: "0"}},
		Discount:  "0",
		Payment:   PaymentInfo{Method: MethodBankTransfer},
	}
	return Recompute(inv)
}

// cloneItems detaches the line item slice so aggregate copies never share
// backing arrays.
func cloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
