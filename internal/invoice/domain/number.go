package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateNumber produces an invoice code of the form INV-Q<quarter>-<nnn>,
// where the quarter comes from the current month and the suffix is a
// uniformly random integer in [100, 999]. Uniqueness is not checked; codes
// live for a single drafting session.
func GenerateNumber(now time.Time, rng *rand.Rand) string {
	quarter := (int(now.Month()) + 2) / 3
	return fmt.Sprintf("INV-Q%d-%d", quarter, 100+rng.Intn(900))
}

// EnsureNumber assigns a generated code only when the invoice has none.
// An invoice that already carries a number is never renumbered, so the
// code cannot change out from under the user between renders.
func EnsureNumber(inv Invoice, now time.Time, rng *rand.Rand) Invoice {
	if inv.Number != "" {
		return inv
	}
	inv.Number = GenerateNumber(now, rng)
	return inv
}
