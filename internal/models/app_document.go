package models

import "time"

// AppDocument is the storage row behind a persisted document: one fixed key,
// the serialized JSON value, and the time of the last full rewrite.
type AppDocument struct {
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (AppDocument) TableName() string {
	return "app_documents"
}
