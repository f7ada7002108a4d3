// filepath: internal/services/storage_service.go
package services

import (
	"errors"

	"retrohub/internal/logging"
	"retrohub/internal/metrics"
	"retrohub/internal/storage"
)

// StorageService wraps a FileSaver with logging and upload metrics.
type StorageService struct {
	Saver   FileSaver
	Metrics *metrics.Metrics
}

// NewStorageService creates a new StorageService.
func NewStorageService(saver FileSaver, m *metrics.Metrics) *StorageService {
	return &StorageService{Saver: saver, Metrics: m}
}

// MaxFileSize reports the saver's size limit.
func (s *StorageService) MaxFileSize() int64 {
	return s.Saver.MaxFileSize()
}

// Save runs the secure save pipeline and records the outcome.
func (s *StorageService) Save(data []byte) (*storage.SavedFile, error) {
	saved, err := s.Saver.SecureSave(data)
	if err == nil {
		s.Metrics.ObserveUpload(metrics.OutcomeSaved, saved.Size)
		logging.Log.Debugf("Stored %s (%s, %d bytes)", saved.Filename, saved.MimeType, saved.Size)
		return saved, nil
	}

	outcome := uploadOutcome(err)
	s.Metrics.ObserveUpload(outcome, 0)
	switch outcome {
	case metrics.OutcomeFailed:
		logging.Log.Errorf("Failed to store upload: %v", err)
	case metrics.OutcomeRejected:
		logging.Log.Infof("Upload rejected: %v", err)
	}
	return nil, err
}

func uploadOutcome(err error) string {
	var se *storage.SaveError
	if !errors.As(err, &se) {
		return metrics.OutcomeFailed
	}
	switch {
	case se.IsSecurityViolation():
		return metrics.OutcomeBlocked
	case se.Kind == storage.KindFileTooLarge, se.Kind == storage.KindUnsupportedFileType:
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeFailed
	}
}
