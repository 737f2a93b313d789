// Package address defines the contract for postal-address lookup by
// Brazilian CEP code. Lookup is best-effort enrichment: implementations
// fold every failure into absence so a broken provider can never fail
// the operation that asked for the address.
package address

import "context"

// Record holds the address fields returned by a postal-code lookup
type Record struct {
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
}

// Provider looks up an address by raw postal code.
// A nil record with a nil error means the code did not resolve; Lookup
// never returns an error for provider-side failures.
type Provider interface {
	Lookup(ctx context.Context, rawPostalCode string) (*Record, error)
}
