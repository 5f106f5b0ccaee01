package model

import (
	"time"

	"github.com/google/uuid"
)

// VerificationTokenModel mirrors the 'email_verification_tokens' table.
// Rows are hard-deleted on consumption; expired rows are ignored by reads
// and swept opportunistically.
type VerificationTokenModel struct {
	Token     string    `gorm:"type:varchar(64);primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VerificationTokenModel) TableName() string {
	return "email_verification_tokens"
}
