package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book is a catalog entry owned by the user who created it.
type Book struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title           string    `json:"title" gorm:"uniqueIndex;size:255;not null"`
	Author          string    `json:"author" gorm:"size:255;not null;index"`
	Genre           string    `json:"genre" gorm:"size:255;not null;index"`
	PublicationDate string    `json:"publication_date" gorm:"size:64;not null"`
	CreatedBy       uuid.UUID `json:"created_by" gorm:"type:char(36);not null;index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID before inserting the record.
func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
