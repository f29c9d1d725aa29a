package domain

import "time"

// Admin is a back-office operator who manages rates, members and trade approvals.
type Admin struct {
	AdminID      string `json:"adminID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"isActive"`
	AuditFields

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
