// internals/helpers/audio/audio_file_service.go
package audio

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* =======================================================================
   Audio upload service (local disk)
   - generated filenames, extension + MIME allowlist, size cap
======================================================================= */

const (
	MaxAudioSize  = int64(50 * 1024 * 1024) // 50MB
	MaxAudioFiles = 5
	UploadDir     = "uploads/audio"
)

var allowedExtensions = map[string]struct{}{
	".mp3": {}, ".wav": {}, ".ogg": {}, ".m4a": {}, ".aac": {},
}

var allowedMimeTypes = map[string]struct{}{
	"audio/mpeg":          {},
	"audio/wav":           {},
	"audio/ogg":           {},
	"audio/mp4":           {}, // m4a
	"audio/x-m4a":         {},
	"audio/aac":           {},
	"audio/x-hx-aac-adts": {},
}

// StoredAudio is what gets persisted on the lesson record.
type StoredAudio struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	UploadedAt   string `json:"uploaded_at"`
}

// ValidateAudioFile checks extension, MIME type and size before saving.
func ValidateAudioFile(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Only valid audio files are allowed")
	}
	mimetype := strings.ToLower(strings.TrimSpace(strings.Split(fh.Header.Get("Content-Type"), ";")[0]))
	if _, ok := allowedMimeTypes[mimetype]; !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Only valid audio files are allowed")
	}
	if fh.Size > MaxAudioSize {
		return fiber.NewError(fiber.StatusBadRequest, "File size too large. Maximum size is 50MB.")
	}
	return nil
}

// GenerateFilename builds a collision-safe name keeping the original extension.
func GenerateFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
}

// SaveAudioFile validates and writes one uploaded file under UploadDir.
func SaveAudioFile(c *fiber.Ctx, fh *multipart.FileHeader) (*StoredAudio, error) {
	if err := ValidateAudioFile(fh); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	filename := GenerateFilename(fh.Filename)
	dst := filepath.Join(UploadDir, filename)
	if err := c.SaveFile(fh, dst); err != nil {
		return nil, fmt.Errorf("save audio file: %w", err)
	}

	return &StoredAudio{
		Filename:     filename,
		OriginalName: fh.Filename,
		Path:         dst,
		Size:         fh.Size,
		UploadedAt:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// RemoveAudioFile deletes the stored blob; a missing file is not an error.
func RemoveAudioFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
