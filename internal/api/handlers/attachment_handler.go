// filepath: internal/api/handlers/attachment_handler.go
package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"retrohub/internal/logging"
	"retrohub/internal/models"
	"retrohub/internal/services"
	"retrohub/internal/storage"
)

// multipartOverhead is the allowance for boundaries and part headers on top
// of the file size limit.
const multipartOverhead = 64 << 10

var errNoFilePart = errors.New("file: field required")

// @Summary Upload a retro attachment
// @Description Stores a PNG or JPEG image for a retro. The type is detected from the file content; the declared filename and content type are ignored for storage. The file is saved under a random name.
// @Tags retros
// @Accept  mpfd
// @Produce  json
// @Param   id    path      int   true  "Retro ID"
// @Param   file  formData  file  true  "Image file"
// @Success 200 {object} models.AttachmentResponse
// @Failure 400 {object} Problem "Upload rejected"
// @Failure 404 {object} Problem "Retro not found"
// @Failure 422 {object} Problem "File is too large or of an invalid type"
// @Failure 500 {object} Problem "Internal server error"
// @Router /retros/{id}/attachments [post]
func (h *Handlers) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondValidation(w, r, err.Error())
		return
	}

	maxSize := h.Attachments.MaxFileSize()
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

	data, fileName, declaredType, err := readFilePart(r, maxSize)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			RespondWithProblem(w, r, http.StatusUnprocessableEntity, TitleUpload, "File is too large")
		case errors.Is(err, errNoFilePart):
			respondValidation(w, r, err.Error())
		default:
			logging.Log.Warnf("UploadAttachment: failed to read multipart body: %v", err)
			RespondWithProblem(w, r, http.StatusBadRequest, TitleBadRequest, "Failed to parse multipart form.")
		}
		return
	}

	if declaredType == "" {
		declaredType = "application/octet-stream"
	}

	saved, err := h.Attachments.SaveAttachment(r.Context(), id, data, declaredType, fileName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			respondNotFound(w, r, services.DetailOf(err, "Retro not found"))
		case errors.Is(err, storage.ErrFileTooLarge):
			RespondWithProblem(w, r, http.StatusUnprocessableEntity, TitleUpload, "File is too large")
		case errors.Is(err, storage.ErrUnsupportedFileType):
			RespondWithProblem(w, r, http.StatusUnprocessableEntity, TitleUpload, "Invalid file type")
		case errors.Is(err, storage.ErrPathTraversal), errors.Is(err, storage.ErrSymlinkEscape):
			RespondWithProblem(w, r, http.StatusBadRequest, TitleUpload, "Upload rejected")
		default:
			logging.Log.Errorf("UploadAttachment: failed to store attachment for retro %d: %v", id, err)
			respondInternal(w, r)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, models.AttachmentResponse{
		Filename:    saved.Filename,
		ContentType: declaredType,
	})
}

// readFilePart streams the multipart body and returns the first "file" part.
// At most maxSize+1 bytes are read so the save pipeline can report the
// oversize itself.
func readFilePart(r *http.Request, maxSize int64) ([]byte, string, string, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, "", "", err
	}
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			return nil, "", "", errNoFilePart
		}
		if err != nil {
			return nil, "", "", err
		}
		if part.FormName() != "file" {
			part.Close()
			continue
		}
		data, err := readLimited(part, maxSize)
		part.Close()
		if err != nil {
			return nil, "", "", err
		}
		return data, part.FileName(), part.Header.Get("Content-Type"), nil
	}
}

func readLimited(part *multipart.Part, maxSize int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(part, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file part: %w", err)
	}
	return data, nil
}
