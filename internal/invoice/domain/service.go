package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
)

type CreateDraftRequest struct {
	Currency string `json:"currency"`
}

type FieldEditRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type SetDatesRequest struct {
	IssueDate string `json:"issue_date"`
	DueDate   string `json:"due_date"`
}

// ExportResult is the downloadable artifact handed back by the exporter.
// The filename stem is the invoice number.
type ExportResult struct {
	Filename    string
	ContentType string
	Bytes       []byte
}

// Service owns the in-memory drafting sessions. Every mutation replaces
// the draft's aggregate wholesale and recomputes the derived total before
// the new state becomes visible.
type Service interface {
	CreateDraft(ctx context.Context, req CreateDraftRequest) (Draft, error)
	GetDraft(ctx context.Context, id string) (Draft, error)

	UpdateBusiness(ctx context.Context, id string, field BusinessField, value string) (Draft, error)
	UpdateClient(ctx context.Context, id string, field ClientField, value string) (Draft, error)
	UpdatePayment(ctx context.Context, id string, field PaymentField, value string) (Draft, error)
	UpdateDelivery(ctx context.Context, id string, field DeliveryField, value string) (Draft, error)

	SetNumber(ctx context.Context, id string, number string) (Draft, error)
	SetCurrency(ctx context.Context, id string, code string) (Draft, error)
	SetDates(ctx context.Context, id string, req SetDatesRequest) (Draft, error)
	SetDiscount(ctx context.Context, id string, raw string) (Draft, error)

	AddItem(ctx context.Context, id string) (Draft, error)
	RemoveItem(ctx context.Context, id string, index int) (Draft, error)
	UpdateItem(ctx context.Context, id string, index int, field ItemField, value string) (Draft, error)

	RenderHTML(ctx context.Context, id string) (string, error)
	ExportPDF(ctx context.Context, id string) (ExportResult, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrDraftNotFound   = errors.New("draft_not_found")
	ErrInvalidDraftID  = errors.New("invalid_draft_id")
	ErrInvalidCurrency = errors.New("invalid_currency")
	ErrInvalidDate     = errors.New("invalid_date")
	ErrInvalidField    = errors.New("invalid_field")
	ErrItemIndex       = errors.New("item_index_out_of_range")
	ErrLastItem        = errors.New("last_item_not_removable")
	ErrExportFailed    = errors.New("export_failed")
)
