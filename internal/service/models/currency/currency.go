package currency

import (
	"database/sql/driver"
	"errors"
)

type Currency string

const (
	CurrencyMXN Currency = "MXN"
	CurrencyUSD Currency = "USD"
)

var ErrInvalidCurrency = errors.New("invalid currency")

func (c Currency) String() string {
	return string(c)
}

func (c Currency) Value() (driver.Value, error) {
	return c.String(), nil
}

func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyMXN, CurrencyUSD:
		return Currency(s), nil
	default:
		return "", ErrInvalidCurrency
	}
}
