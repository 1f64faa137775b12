package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Role values accepted for a user.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User represents a registered user. The unified schema carries both the
// email identity and the phone/role profile fields.
type User struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string          `json:"email" gorm:"uniqueIndex;size:255;not null"`
	// Phone uniqueness is enforced at registration time; the column is
	// optional so it cannot carry a unique index over empty values.
	PhoneNumber  string          `json:"phone_number" gorm:"index;size:32"`
	PasswordHash string          `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string          `json:"role" gorm:"size:50;default:'buyer';index"`
	FirstName    string          `json:"first_name" gorm:"size:255;not null"`
	LastName     string          `json:"last_name" gorm:"size:255"`
	Address      string          `json:"address" gorm:"size:512"`
	Budget       decimal.Decimal `json:"budget" gorm:"type:decimal(20,2);default:0"`
	Income       decimal.Decimal `json:"income" gorm:"type:decimal(20,2);default:0"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BeforeCreate sets the UUID before inserting the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleBuyer || r == RoleSeller || r == RoleAdmin
}
