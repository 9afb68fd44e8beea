package db

import (
	"errors"

	"github.com/selflog-dev/selflog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentRepository struct {
	database *gorm.DB
}

func NewDocumentRepository(database *gorm.DB) *DocumentRepository {
	return &DocumentRepository{database: database}
}

func (repo *DocumentRepository) Load(key string) (string, bool, error) {
	var document models.AppDocument
	if err := repo.database.First(&document, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return document.Value, true, nil
}

// Save rewrites the whole document under its key. There are no partial
// updates anywhere in the application.
func (repo *DocumentRepository) Save(key string, value string) error {
	document := models.AppDocument{Key: key, Value: value}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&document).Error
}

func (repo *DocumentRepository) Delete(key string) error {
	return repo.database.Delete(&models.AppDocument{}, "key = ?", key).Error
}
