package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mehedihb/kagojghor-backend/internal/errors"
	"github.com/mehedihb/kagojghor-backend/internal/storage"
	"github.com/mehedihb/kagojghor-backend/pkg/logger"
)

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(storage *storage.S3Storage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

type GeneratePresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder"` // photos (default) or source-pdfs
}

// Applicant photos are images; source documents are PDF scans.
var allowedContentTypes = map[string][]string{
	storage.FolderPhotos:     {"image/jpeg", "image/jpg", "image/png", "image/webp"},
	storage.FolderSourcePDFs: {"application/pdf"},
}

// GeneratePresignedURL generates a presigned URL for uploading files to S3
// POST /api/v1/upload/presigned-url
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	var req GeneratePresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid presigned URL request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ইনপুট তথ্য সঠিক নয়")
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = storage.FolderPhotos
	}

	allowed, ok := allowedContentTypes[folder]
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ফোল্ডার photos বা source-pdfs হতে হবে")
		return
	}
	if err := ctrl.storage.ValidateContentType(req.ContentType, allowed); err != nil {
		logger.Warn("Invalid content type", map[string]interface{}{
			"content_type": req.ContentType,
			"folder":       folder,
		})
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "এই ফোল্ডারে এই ধরনের ফাইল রাখা যায় না")
		return
	}

	response, err := ctrl.storage.GeneratePresignedURL(req.Filename, req.ContentType, folder)
	if err != nil {
		logger.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename":     req.Filename,
			"content_type": req.ContentType,
			"folder":       folder,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "আপলোড লিংক তৈরি করা যায়নি")
		return
	}

	logger.Info("Presigned URL generated successfully", map[string]interface{}{
		"filename":     req.Filename,
		"content_type": req.ContentType,
		"folder":       folder,
		"key":          response.Key,
	})

	c.JSON(http.StatusOK, gin.H{
		"upload_url": response.UploadURL,
		"file_url":   response.FileURL,
		"key":        response.Key,
	})
}
