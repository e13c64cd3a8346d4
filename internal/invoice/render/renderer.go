package render

import "github.com/edcviet/invoicegen/internal/invoice/domain"

// Input is the deterministic input used for invoice rendering: a finished
// snapshot of the aggregate. The renderer reads it, never mutates it.
type Input struct {
	Invoice domain.Invoice
}

type Renderer interface {
	RenderHTML(input Input) (string, error)
}
