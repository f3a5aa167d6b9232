package domain

import "strings"

type Money struct {
	Amount   float64 `gorm:"column:amount" json:"amount"`
	Currency string  `gorm:"column:currency" json:"currency"`
}

func (m Money) Validate() error {
	if m.Amount < 0 {
		return &ValidationError{Msg: "money amount cannot be negative"}
	}
	if strings.TrimSpace(m.Currency) == "" {
		return &ValidationError{Msg: "currency cannot be empty"}
	}
	return nil
}
