package controller

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mehedihb/kagojghor-backend/internal/app/service"
	apperrors "github.com/mehedihb/kagojghor-backend/internal/errors"
	"github.com/mehedihb/kagojghor-backend/internal/middleware"
	"github.com/mehedihb/kagojghor-backend/internal/storage"
)

// maxSourcePDFSize bounds the uploaded source document (10 MB).
const maxSourcePDFSize = 10 << 20

// SourceStorage fetches stored source documents for server-side reads.
type SourceStorage interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

type ExtractionController struct {
	extractionService service.ExtractionService
	sourceStorage     SourceStorage
}

func NewExtractionController(extractionService service.ExtractionService, sourceStorage SourceStorage) *ExtractionController {
	return &ExtractionController{
		extractionService: extractionService,
		sourceStorage:     sourceStorage,
	}
}

type ExtractStoredRequest struct {
	Key string `json:"key" binding:"required"`
}

// respondExtractionError maps the pipeline's sentinel errors onto the
// HTTP taxonomy shared by both extraction entry points.
func respondExtractionError(c *gin.Context, err error, source string) {
	log := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, service.ErrInvalidSource):
		apperrors.RespondWithError(c, http.StatusUnprocessableEntity, apperrors.ExtractInvalidSource, "পিডিএফটি পড়া যায়নি")
	case errors.Is(err, service.ErrThrottled):
		apperrors.RespondWithError(c, http.StatusTooManyRequests, apperrors.ExtractThrottled, "অনেকগুলো অনুরোধ হয়ে গেছে, এক মিনিট পর আবার চেষ্টা করুন")
	case errors.Is(err, service.ErrExtractionFailed):
		apperrors.RespondWithError(c, http.StatusUnprocessableEntity, apperrors.ExtractFailed, "ডকুমেন্ট থেকে তথ্য বের করা যায়নি, হাতে পূরণ করুন")
	default:
		log.Error("Extraction failed", err, map[string]interface{}{
			"source": source,
		})
		apperrors.InternalError(c, "")
	}
}

// Extract pulls applicant fields out of an uploaded source PDF
// POST /api/v1/extractions (multipart, field "file")
func (ctrl *ExtractionController) Extract(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "file ফিল্ডে পিডিএফ দিতে হবে")
		return
	}
	if err := storage.ValidateFileSize(fileHeader.Size, maxSourcePDFSize); err != nil {
		apperrors.BadRequest(c, apperrors.UploadFileTooLarge, "ফাইলটি ১০ মেগাবাইটের বেশি")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	result, err := ctrl.extractionService.ExtractFromPDF(data)
	if err != nil {
		respondExtractionError(c, err, fileHeader.Filename)
		return
	}

	log.Info("Extraction completed", map[string]interface{}{
		"filename":      fileHeader.Filename,
		"stage":         result.Stage,
		"used_fallback": result.UsedFallback,
	})

	c.JSON(http.StatusOK, gin.H{
		"fields":        result.Fields,
		"stage":         result.Stage,
		"used_fallback": result.UsedFallback,
	})
}

// ExtractStored runs the pipeline over a source PDF already sitting in
// object storage, referenced by its upload key (a document's source_pdf_key)
// POST /api/v1/extractions/stored
func (ctrl *ExtractionController) ExtractStored(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ExtractStoredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "key ফিল্ডে সোর্স পিডিএফের কী দিতে হবে")
		return
	}

	data, err := ctrl.sourceStorage.Download(c.Request.Context(), req.Key)
	if err != nil {
		log.Warn("Stored source PDF not retrievable", map[string]interface{}{
			"key":   req.Key,
			"error": err.Error(),
		})
		apperrors.NotFound(c, apperrors.ExtractSourceNotFound, "সংরক্ষিত সোর্স পিডিএফ পাওয়া যায়নি")
		return
	}

	result, err := ctrl.extractionService.ExtractFromPDF(data)
	if err != nil {
		respondExtractionError(c, err, req.Key)
		return
	}

	log.Info("Extraction completed from stored source", map[string]interface{}{
		"key":           req.Key,
		"stage":         result.Stage,
		"used_fallback": result.UsedFallback,
	})

	c.JSON(http.StatusOK, gin.H{
		"fields":        result.Fields,
		"stage":         result.Stage,
		"used_fallback": result.UsedFallback,
	})
}
