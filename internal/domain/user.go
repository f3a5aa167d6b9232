package domain

import "strings"

type User struct {
	Audit
	Name  string `gorm:"not null;column:name" json:"name"`
	Email string `gorm:"uniqueIndex;not null;column:email" json:"email"`

	Properties []*Property `gorm:"foreignKey:OwnerID" json:"properties,omitempty"`
	Leases     []*Lease    `gorm:"foreignKey:TenantID" json:"leases,omitempty"`
}

func (User) TableName() string { return "user" }

func NewUser(name, email string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Msg: "user name is required"}
	}
	if strings.TrimSpace(email) == "" {
		return nil, &ValidationError{Msg: "user email is required"}
	}
	return &User{
		Audit: Audit{ID: newID()},
		Name:  name,
		Email: email,
	}, nil
}
