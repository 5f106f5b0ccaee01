package model

import (
	"time"

	"github.com/google/uuid"
)

// JournalModel mirrors the 'journals' table. The composite unique index on
// (user_id, date) is what the atomic upsert conflicts against: the store,
// not application code, guarantees one entry per owner per day.
type JournalModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uidx_journal_user_date"`
	Date               string    `gorm:"type:varchar(10);not null;uniqueIndex:uidx_journal_user_date"`
	Title              string    `gorm:"type:varchar(255);not null"`
	ContentKind        string    `gorm:"type:varchar(10);not null"`
	ContentPayload     string    `gorm:"type:text;not null"`
	Thumbnail          string    `gorm:"type:text;not null"`
	SnapPhotos         []string  `gorm:"serializer:json"`
	ProductivityRating int       `gorm:"not null;default:5;check:productivity_rating BETWEEN 1 AND 10"`
	MoodEmoji          string    `gorm:"type:varchar(16)"`
	MoodLabel          string    `gorm:"type:varchar(50)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (JournalModel) TableName() string {
	return "journals"
}
