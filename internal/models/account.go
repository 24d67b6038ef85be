package models

import "github.com/shopspring/decimal"

// Account is the durable balance record, exactly one per owner. The
// stored balance is nullable: an account that has never been touched
// carries NULL and is read as zero, which is distinct from the account
// row being missing entirely.
type Account struct {
	Key            string
	CurrentBalance decimal.NullDecimal
}
