package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// User owns orders. The API never exposes users; the table exists for the
// order foreign key and seed data.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID           int64     `bun:",pk,autoincrement"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	FirstName    *string   `bun:"first_name"`
	LastName     *string   `bun:"last_name"`
	CompanyName  *string   `bun:"company_name"`
	Phone        *string   `bun:"phone"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`
}
