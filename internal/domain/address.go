package domain

import "strings"

type Address struct {
	Street  string `gorm:"column:street" json:"street"`
	City    string `gorm:"column:city" json:"city"`
	State   string `gorm:"column:state" json:"state"`
	ZipCode string `gorm:"column:zip_code" json:"zip_code"`
	Country string `gorm:"column:country" json:"country"`
}

func (a Address) Validate() error {
	if strings.TrimSpace(a.Street) == "" ||
		strings.TrimSpace(a.City) == "" ||
		strings.TrimSpace(a.State) == "" ||
		strings.TrimSpace(a.ZipCode) == "" ||
		strings.TrimSpace(a.Country) == "" {
		return &ValidationError{Msg: "all address fields must be provided"}
	}
	if len(a.ZipCode) < 3 {
		return &ValidationError{Msg: "zip code must be at least 3 characters"}
	}
	return nil
}
