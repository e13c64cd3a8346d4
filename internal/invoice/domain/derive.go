package domain

import (
	"github.com/shopspring/decimal"

	"github.com/edcviet/invoicegen/internal/money"
)

// Recompute derives the invoice total from its line items and discount:
// total = max(0, sum(parse(item.Price)) - parse(Discount)). It is pure and
// idempotent; callers run it after every mutation to items, discount, or
// currency before publishing the new aggregate. Currency changes never
// rescale amounts, the numbers are currency-agnostic until formatted.
func Recompute(inv Invoice) Invoice {
	sum := decimal.Zero
	for _, item := range inv.Items {
		sum = sum.Add(money.ParseAmount(item.Price))
	}
	total := sum.Sub(money.ParseAmount(inv.Discount))
	if total.IsNegative() {
		total = decimal.Zero
	}
	inv.Total = total
	return inv
}

// AppendItem adds an empty row at the end of the item collection.
func AppendItem(inv Invoice) Invoice {
	items := cloneItems(inv.Items)
	inv.Items = append(items, LineItem{Description: "", Price: "0"})
	return Recompute(inv)
}

// RemoveItemAt removes the row at index. The last remaining row cannot be
// removed; the collection is never empty.
func RemoveItemAt(inv Invoice, index int) (Invoice, error) {
	if index < 0 || index >= len(inv.Items) {
		return inv, ErrItemIndex
	}
	if len(inv.Items) == 1 {
		return inv, ErrLastItem
	}
	items := cloneItems(inv.Items)
	inv.Items = append(items[:index], items[index+1:]...)
	return Recompute(inv), nil
}

// UpdateItemAt replaces one field of the row at index, leaving order and
// the other rows untouched.
func UpdateItemAt(inv Invoice, index int, field ItemField, value string) (Invoice, error) {
	if index < 0 || index >= len(inv.Items) {
		return inv, ErrItemIndex
	}
	items := cloneItems(inv.Items)
	switch field {
	case ItemFieldDescription:
		items[index].Description = value
	case ItemFieldPrice:
		items[index].Price = value
	default:
		return inv, ErrInvalidField
	}
	inv.Items = items
	return Recompute(inv), nil
}
