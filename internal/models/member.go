package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Member is the row shape of the members table.
type Member struct {
	MemberID     string          `db:"member_id"`
	Name         string          `db:"name"`
	Email        string          `db:"email"`
	Phone        sql.NullString  `db:"phone"`
	PasswordHash string          `db:"password_hash"`
	Status       string          `db:"status"`
	GoldHoldings decimal.Decimal `db:"gold_holdings"`
	AuditFields

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
