// filepath: internal/services/attachment_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"retrohub/internal/logging"
	"retrohub/internal/storage"

	"github.com/sirupsen/logrus"
)

var _ AttachmentService = (*attachmentService)(nil)

type attachmentService struct {
	Retros  RetroRepository
	Storage *StorageService
	Auditor Auditor
}

// NewAttachmentService creates a new AttachmentService.
func NewAttachmentService(retros RetroRepository, store *StorageService, auditor Auditor) *attachmentService {
	return &attachmentService{Retros: retros, Storage: store, Auditor: auditor}
}

func (s *attachmentService) MaxFileSize() int64 {
	return s.Storage.MaxFileSize()
}

// SaveAttachment stores data for an existing retro. declaredType and
// declaredName are recorded for auditing only and never influence storage.
func (s *attachmentService) SaveAttachment(ctx context.Context, retroID int64, data []byte, declaredType, declaredName string) (*storage.SavedFile, error) {
	exists, err := s.Retros.RetroExists(ctx, retroID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up retro %d: %w", retroID, err)
	}
	if !exists {
		return nil, retroNotFound(retroID)
	}

	actor := ActorFrom(ctx)
	resource := retroResource(retroID)

	saved, err := s.Storage.Save(data)
	if err != nil {
		var se *storage.SaveError
		if errors.As(err, &se) && se.IsSecurityViolation() {
			logging.Log.WithFields(logrus.Fields{
				"retro_id":      retroID,
				"actor":         actor,
				"kind":          se.Kind.String(),
				"declared_name": declaredName,
			}).Warn("Blocked attachment upload")
			s.Auditor.Log(ctx, "retro.attachment.blocked", actor, resource, map[string]interface{}{
				"kind":          se.Kind.String(),
				"declared_type": declaredType,
				"declared_name": declaredName,
			})
		}
		return nil, err
	}

	s.Auditor.Log(ctx, "retro.attachment.upload", actor, resource, map[string]interface{}{
		"filename":      saved.Filename,
		"mime_type":     saved.MimeType,
		"size":          saved.Size,
		"declared_type": declaredType,
	})
	return saved, nil
}
