package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/selflog-dev/selflog/internal/models"
)

type DocumentStore interface {
	Load(key string) (string, bool, error)
	Save(key string, value string) error
}

// StoreService owns the session's single AppData root. The document is read
// and repaired once at startup; every mutation goes through Mutate, which
// applies a pure transform and rewrites the whole document. A mutex keeps
// exactly one logical writer at a time.
type StoreService struct {
	documents DocumentStore

	mu     sync.Mutex
	data   models.AppData
	loaded bool
}

func NewStoreService(documents DocumentStore) *StoreService {
	return &StoreService{documents: documents}
}

// Snapshot returns the current root. Callers must treat the contained maps
// as read-only; mutations always build fresh maps.
func (service *StoreService) Snapshot() models.AppData {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.ensureLoadedLocked()
	return service.data
}

// Mutate applies a pure transform to the root. When the transform fails the
// root is left exactly as it was. Persistence is best-effort: a failed write
// is logged and the in-memory root still advances.
func (service *StoreService) Mutate(apply func(models.AppData) (models.AppData, error)) (models.AppData, error) {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.ensureLoadedLocked()

	next, err := apply(service.data)
	if err != nil {
		return service.data, err
	}

	service.data = next
	service.persistLocked()
	return service.data, nil
}

// Replace swaps the whole root, used by import and data wipe.
func (service *StoreService) Replace(data models.AppData) models.AppData {
	service.mu.Lock()
	defer service.mu.Unlock()
	service.data = data
	service.loaded = true
	service.persistLocked()
	return service.data
}

func (service *StoreService) ensureLoadedLocked() {
	if service.loaded {
		return
	}

	raw := ""
	if service.documents != nil {
		value, found, err := service.documents.Load(models.StorageKey)
		if err != nil {
			log.Printf("load persisted data failed, starting from defaults: %v", err)
		} else if found {
			raw = value
		}
	}

	service.data = RepairAppData([]byte(raw))
	service.loaded = true
}

func (service *StoreService) persistLocked() {
	if service.documents == nil {
		return
	}
	serialized, err := json.Marshal(service.data)
	if err != nil {
		log.Printf("serialize persisted data failed: %v", err)
		return
	}
	if err := service.documents.Save(models.StorageKey, string(serialized)); err != nil {
		log.Printf("persist data failed: %v", err)
	}
}
