package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mehedihb/kagojghor-backend/internal/app/service"
	apperrors "github.com/mehedihb/kagojghor-backend/internal/errors"
	"github.com/mehedihb/kagojghor-backend/internal/middleware"
)

type InstitutionController struct {
	institutionService service.InstitutionService
}

func NewInstitutionController(institutionService service.InstitutionService) *InstitutionController {
	return &InstitutionController{institutionService: institutionService}
}

// List returns all institutions, optionally filtered by a search term
// GET /api/v1/institutions
func (ctrl *InstitutionController) List(c *gin.Context) {
	institutions, err := ctrl.institutionService.List(c.Query("search"))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"institutions": institutions,
		"total":        len(institutions),
	})
}

// Get returns one institution
// GET /api/v1/institutions/:id
func (ctrl *InstitutionController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	institution, err := ctrl.institutionService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrInstitutionNotFound) {
			apperrors.NotFound(c, apperrors.InstitutionNotFound, "প্রতিষ্ঠানটি পাওয়া যায়নি")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"institution": institution})
}

// Create adds a new institution
// POST /api/v1/institutions
func (ctrl *InstitutionController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.InstitutionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ইনপুট তথ্য সঠিক নয়")
		return
	}

	institution, err := ctrl.institutionService.Create(req)
	if err != nil {
		log.Error("Failed to create institution", err, map[string]interface{}{
			"name_bn": req.NameBn,
			"eiin":    req.EIIN,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create institution")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "প্রতিষ্ঠান যোগ হয়েছে",
		"institution": institution,
	})
}

// Update edits an institution
// PUT /api/v1/institutions/:id
func (ctrl *InstitutionController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.InstitutionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ইনপুট তথ্য সঠিক নয়")
		return
	}

	institution, err := ctrl.institutionService.Update(id, req)
	if err != nil {
		if errors.Is(err, service.ErrInstitutionNotFound) {
			apperrors.NotFound(c, apperrors.InstitutionNotFound, "প্রতিষ্ঠানটি পাওয়া যায়নি")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update institution")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "প্রতিষ্ঠান সংশোধন হয়েছে",
		"institution": institution,
	})
}

// Delete removes an institution
// DELETE /api/v1/institutions/:id
func (ctrl *InstitutionController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.institutionService.Delete(id); err != nil {
		if errors.Is(err, service.ErrInstitutionNotFound) {
			apperrors.NotFound(c, apperrors.InstitutionNotFound, "প্রতিষ্ঠানটি পাওয়া যায়নি")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete institution")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "প্রতিষ্ঠান মুছে ফেলা হয়েছে",
	})
}
