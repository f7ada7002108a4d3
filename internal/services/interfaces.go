// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"retrohub/internal/models"
	"retrohub/internal/repository"
	"retrohub/internal/storage"
)

// Auditor defines the interface for recording security-relevant events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "retro.create", "retro.attachment.upload")
	// actor: who did it (client address, there are no user accounts)
	// resource: what was affected (e.g., "Retro:7")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// RetroRepository is the persistence seam for retros.
type RetroRepository interface {
	CreateRetro(ctx context.Context, date models.Date, items []models.RetroItem) (*models.Retro, error)
	GetRetro(ctx context.Context, id int64) (*models.Retro, error)
	RetroExists(ctx context.Context, id int64) (bool, error)
	ListRetros(ctx context.Context, filter repository.RetroFilter) ([]models.Retro, error)
	UpdateRetro(ctx context.Context, retro *models.Retro) error
	DeleteRetro(ctx context.Context, id int64) error
}

// ItemRepository is the persistence seam for demo items.
type ItemRepository interface {
	CreateItem(ctx context.Context, name string) (*models.Item, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
}

// FileSaver is implemented by *storage.Saver.
type FileSaver interface {
	SecureSave(data []byte) (*storage.SavedFile, error)
	MaxFileSize() int64
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// RetroService defines the interface for the retro service.
type RetroService interface {
	CreateRetro(ctx context.Context, payload models.RetroPayload) (*models.Retro, error)
	GetRetro(ctx context.Context, id int64) (*models.Retro, error)
	ListRetros(ctx context.Context, from, to *models.Date) ([]models.Retro, error)
	UpdateRetro(ctx context.Context, id int64, payload models.RetroPayload) (*models.Retro, error)
	DeleteRetro(ctx context.Context, id int64) error
}

// ItemService defines the interface for the demo item service.
type ItemService interface {
	CreateItem(ctx context.Context, name string) (*models.Item, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
}

// AttachmentService defines the interface for attachment uploads.
type AttachmentService interface {
	SaveAttachment(ctx context.Context, retroID int64, data []byte, declaredType, declaredName string) (*storage.SavedFile, error)
	MaxFileSize() int64
}
