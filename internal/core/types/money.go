// Package types provides domain value types shared across packages.
package types

import "github.com/shopspring/decimal"

// Money represents a monetary amount with exact decimal arithmetic.
// Stored as NUMERIC(15,2) in Postgres.
type Money = decimal.Decimal

// ZeroMoney is the zero amount
var ZeroMoney = decimal.Zero

// NewMoney creates a Money from a float.
// Use only at API boundaries; internal arithmetic stays in decimal.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString parses a Money from its string form
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney parses a Money from string, panics on error.
// Use only in tests and seed data.
func MustMoney(s string) Money {
	return decimal.RequireFromString(s)
}

// Round2 rounds an amount to two decimal places (cents)
func Round2(m Money) Money {
	return m.Round(2)
}
