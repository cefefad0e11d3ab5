package controller

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	lessonDTO "englishku_backend/internals/features/curriculum/lessons/dto"
	lessonModel "englishku_backend/internals/features/curriculum/lessons/model"
	helper "englishku_backend/internals/helpers"
	audioHelper "englishku_backend/internals/helpers/audio"
)

/* =========================================================
   Lesson audio attachments
   - files live on local disk under uploads/audio
   - the lesson row keeps the metadata as a JSONB array
========================================================= */

// POST /api/lessons/:id/audio (admin, multipart field "audio")
func (ctrl *LessonController) UploadAudio(c *fiber.Ctx) error {
	lesson, err := ctrl.findLesson(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid multipart form")
	}
	files := form.File["audio"]
	if len(files) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No audio file uploaded")
	}

	existing := []lessonModel.LessonAudioFile(lesson.LessonAudioFiles)
	if len(existing)+len(files) > audioHelper.MaxAudioFiles {
		return helper.Error(c, fiber.StatusBadRequest, "A lesson can hold at most 5 audio files")
	}

	saved := make([]lessonModel.LessonAudioFile, 0, len(files))
	for _, fh := range files {
		stored, err := audioHelper.SaveAudioFile(c, fh)
		if err != nil {
			// roll back files already written in this request
			for _, s := range saved {
				_ = audioHelper.RemoveAudioFile(s.Path)
			}
			return helper.FromFiberError(c, err)
		}
		saved = append(saved, lessonModel.LessonAudioFile{
			Filename:     stored.Filename,
			OriginalName: stored.OriginalName,
			Path:         stored.Path,
			Size:         stored.Size,
			UploadedAt:   stored.UploadedAt,
		})
	}

	updated := append(existing, saved...)
	if err := ctrl.DB.Model(lesson).
		Update("lesson_audio_files", datatypes.JSONSlice[lessonModel.LessonAudioFile](updated)).Error; err != nil {
		for _, s := range saved {
			_ = audioHelper.RemoveAudioFile(s.Path)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to attach audio files")
	}
	lesson.LessonAudioFiles = datatypes.JSONSlice[lessonModel.LessonAudioFile](updated)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Audio uploaded", lessonDTO.FromLessonModel(*lesson))
}

// GET /api/lessons/:id/audio/:filename
func (ctrl *LessonController) ServeAudio(c *fiber.Ctx) error {
	lesson, err := ctrl.findLesson(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	filename := filepath.Base(strings.TrimSpace(c.Params("filename")))
	for _, af := range lesson.LessonAudioFiles {
		if af.Filename == filename {
			return c.SendFile(af.Path)
		}
	}
	return helper.Error(c, fiber.StatusNotFound, "Audio file not found")
}

// DELETE /api/lessons/:id/audio/:filename (admin)
func (ctrl *LessonController) DeleteAudio(c *fiber.Ctx) error {
	lesson, err := ctrl.findLesson(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	filename := filepath.Base(strings.TrimSpace(c.Params("filename")))
	existing := []lessonModel.LessonAudioFile(lesson.LessonAudioFiles)

	var removed *lessonModel.LessonAudioFile
	remaining := make([]lessonModel.LessonAudioFile, 0, len(existing))
	for i, af := range existing {
		if af.Filename == filename && removed == nil {
			removed = &existing[i]
			continue
		}
		remaining = append(remaining, af)
	}
	if removed == nil {
		return helper.Error(c, fiber.StatusNotFound, "Audio file not found")
	}

	if err := ctrl.DB.Model(lesson).
		Update("lesson_audio_files", datatypes.JSONSlice[lessonModel.LessonAudioFile](remaining)).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to detach audio file")
	}
	if err := audioHelper.RemoveAudioFile(removed.Path); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to remove audio file from storage")
	}
	lesson.LessonAudioFiles = datatypes.JSONSlice[lessonModel.LessonAudioFile](remaining)

	return helper.Success(c, "Audio deleted", lessonDTO.FromLessonModel(*lesson))
}
