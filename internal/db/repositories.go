package db

import "gorm.io/gorm"

type Repositories struct {
	Documents *DocumentRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Documents: NewDocumentRepository(database),
	}
}
