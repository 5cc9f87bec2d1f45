// Package analytics aggregates project financials across currencies.
package analytics

import (
	"fmt"
	"sort"
	"strings"

	"industry-flow/internal/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Rates converts amounts between currencies through a base currency.
type Rates struct {
	base  string
	rates map[string]decimal.Decimal
}

// NewRates validates codes and rates. Each rate is the value of one unit of the
// currency expressed in base units; the base itself is always 1.
func NewRates(base string, rates map[string]decimal.Decimal) (*Rates, error) {
	baseCode, err := NormalizeCode(base)
	if err != nil {
		return nil, err
	}

	res := &Rates{base: baseCode, rates: make(map[string]decimal.Decimal, len(rates)+1)}
	for code, rate := range rates {
		c, err := NormalizeCode(code)
		if err != nil {
			return nil, err
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("%w: rate for %s must be positive", entities.ErrInvalidArgument, c)
		}
		res.rates[c] = rate
	}
	res.rates[baseCode] = decimal.NewFromInt(1)
	return res, nil
}

// NormalizeCode upper-cases code and checks it is an ISO 4217 currency.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", entities.ErrUnsupportedCurrency, code)
	}
	return unit.String(), nil
}

// Base returns the base currency code.
func (r *Rates) Base() string {
	return r.base
}

// Has reports whether code can be converted.
func (r *Rates) Has(code string) bool {
	_, ok := r.rates[strings.ToUpper(code)]
	return ok
}

// Rate returns the base-unit value of one unit of code.
func (r *Rates) Rate(code string) (decimal.Decimal, error) {
	rate, ok := r.rates[strings.ToUpper(code)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", entities.ErrUnsupportedCurrency, code)
	}
	return rate, nil
}

// Convert expresses amount given in from as an amount in to.
func (r *Rates) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fromRate, err := r.Rate(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := r.Rate(to)
	if err != nil {
		return decimal.Zero, err
	}
	if strings.EqualFold(from, to) {
		return amount, nil
	}
	return amount.Mul(fromRate).Div(toRate), nil
}

// Supported lists the convertible currency codes in order.
func (r *Rates) Supported() []string {
	codes := make([]string, 0, len(r.rates))
	for c := range r.rates {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
