// filepath: internal/api/handlers/main.go
package handlers

import (
	"retrohub/internal/config"
	"retrohub/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	// --- Depend on interfaces, not concrete structs ---
	Info        services.InfoService
	Retros      services.RetroService
	Items       services.ItemService
	Attachments services.AttachmentService
	Auditor     services.Auditor

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	retros services.RetroService,
	items services.ItemService,
	attachments services.AttachmentService,
	auditor services.Auditor,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Info:        info,
		Retros:      retros,
		Items:       items,
		Attachments: attachments,
		Auditor:     auditor,
		Cfg:         cfg,
	}
}
