package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/internal/app/service"
	apperrors "github.com/mehedihb/kagojghor-backend/internal/errors"
	"github.com/mehedihb/kagojghor-backend/internal/middleware"
)

type DocumentController struct {
	documentService    service.DocumentService
	billService        service.BillService
	certificateService service.CertificateService
}

func NewDocumentController(
	documentService service.DocumentService,
	billService service.BillService,
	certificateService service.CertificateService,
) *DocumentController {
	return &DocumentController{
		documentService:    documentService,
		billService:        billService,
		certificateService: certificateService,
	}
}

type BulkIDsRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

type PrintStatusRequest struct {
	Kind   model.DocumentKind  `json:"kind" binding:"required"`
	IDs    []uint              `json:"ids" binding:"required,min=1"`
	Action service.PrintAction `json:"action" binding:"required"`
}

// parseIDsQuery reads a comma-separated ids query parameter.
func parseIDsQuery(c *gin.Context) ([]uint, bool) {
	raw := c.Query("ids")
	if raw == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "ids প্যারামিটার দিতে হবে")
		return nil, false
	}

	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidID, "আইডি তালিকা সঠিক নয়")
			return nil, false
		}
		ids = append(ids, uint(id))
	}
	return ids, true
}

func buildDocumentFilter(c *gin.Context) repository.DocumentFilter {
	var filter repository.DocumentFilter

	if v := c.Query("client_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			clientID := uint(id)
			filter.ClientID = &clientID
		}
	}
	if v := c.Query("has_certificate"); v != "" {
		b := v == "true" || v == "1"
		filter.HasCertificate = &b
	}
	if v := c.Query("has_bill"); v != "" {
		b := v == "true" || v == "1"
		filter.HasBill = &b
	}
	filter.CertPrintStatus = model.PrintStatus(c.Query("cert_print_status"))
	filter.BillPrintStatus = model.PrintStatus(c.Query("bill_print_status"))
	filter.Search = c.Query("search")

	filter.Limit = 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filter.Limit = n
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			filter.Offset = (n - 1) * filter.Limit
		}
	}

	return filter
}

// List returns the document register
// GET /api/v1/documents
func (ctrl *DocumentController) List(c *gin.Context) {
	filter := buildDocumentFilter(c)

	docs, total, err := ctrl.documentService.List(filter)
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents": docs,
		"total":     total,
		"limit":     filter.Limit,
		"offset":    filter.Offset,
	})
}

// Get returns one document with its attachments
// GET /api/v1/documents/:id
func (ctrl *DocumentController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	doc, err := ctrl.documentService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			apperrors.NotFound(c, apperrors.DocumentNotFound, "ফাইলটি পাওয়া যায়নি")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"document": doc})
}

// Create opens a new file, optionally generating its certificate and bill
// POST /api/v1/documents
func (ctrl *DocumentController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.CreateDocumentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ইনপুট তথ্য সঠিক নয়")
		return
	}

	doc, err := ctrl.documentService.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBirthYearRequired):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "অন্তত জন্মসাল দিতে হবে")
		case errors.Is(err, service.ErrBirthDateRequired):
			apperrors.BadRequest(c, apperrors.DocumentNoBirthDate, "সার্টিফিকেটের জন্য পূর্ণ জন্মতারিখ দিতে হবে")
		case errors.Is(err, service.ErrAgeBelowMinimum):
			apperrors.BadRequest(c, apperrors.ValidationInvalidAge, "এই বয়সের জন্য সার্টিফিকেট তৈরি করা যায় না")
		case errors.Is(err, service.ErrInvalidTemplate):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "বিলের ছাঁচ সঠিক নয়")
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Only the institution lookup can miss here
			apperrors.NotFound(c, apperrors.InstitutionNotFound, "প্রতিষ্ঠানটি পাওয়া যায়নি")
		default:
			log.Error("Failed to create document", err, nil)
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create document")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "ফাইল তৈরি হয়েছে",
		"document": doc,
	})
}

// Update edits a document's applicant fields
// PUT /api/v1/documents/:id
func (ctrl *DocumentController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateDocumentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ইনপুট তথ্য সঠিক নয়")
		return
	}

	doc, err := ctrl.documentService.Update(id, req)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			apperrors.NotFound(c, apperrors.DocumentNotFound, "ফাইলটি পাওয়া যায়নি")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update document")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "ফাইল সংশোধন হয়েছে",
		"document": doc,
	})
}

// Delete removes a document and its attachments
// DELETE /api/v1/documents/:id
func (ctrl *DocumentController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.documentService.Delete(id); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			apperrors.NotFound(c, apperrors.DocumentNotFound, "ফাইলটি পাওয়া যায়নি")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete document")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "ফাইল মুছে ফেলা হয়েছে",
	})
}

// BulkDelete removes a selection of documents
// POST /api/v1/documents/bulk-delete
func (ctrl *DocumentController) BulkDelete(c *gin.Context) {
	var req BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ইনপুট তথ্য সঠিক নয়")
		return
	}

	deleted, err := ctrl.documentService.BulkDelete(req.IDs)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete document")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "নির্বাচিত ফাইল মুছে ফেলা হয়েছে",
		"deleted_count": deleted,
	})
}

// Print returns the render payload for a batch and forces it to printed
// GET /api/v1/documents/print?kind=certificate&ids=1,2,3
func (ctrl *DocumentController) Print(c *gin.Context) {
	kind := model.DocumentKind(c.Query("kind"))
	ids, ok := parseIDsQuery(c)
	if !ok {
		return
	}

	result, err := ctrl.documentService.FetchForPrint(kind, ids)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidKind):
			apperrors.BadRequest(c, apperrors.PrintInvalidKind, "ডকুমেন্ট ধরন certificate বা bill হতে হবে")
		case errors.Is(err, service.ErrNothingEligible):
			// A distinguishable outcome, not a failure: the selection had
			// nothing to print
			c.JSON(http.StatusOK, gin.H{
				"code":           apperrors.PrintNothingEligible,
				"message":        "নির্বাচিত কোনো ফাইলে এই ডকুমেন্ট নেই",
				"documents":      []model.Document{},
				"affected_count": 0,
			})
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "print documents")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents":      result.Documents,
		"affected_count": result.AffectedCount,
		"skipped_count":  result.SkippedCount,
	})
}

// PrintStatus bulk-sets or toggles print statuses
// PUT /api/v1/documents/print-status
func (ctrl *DocumentController) PrintStatus(c *gin.Context) {
	var req PrintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "ইনপুট তথ্য সঠিক নয়")
		return
	}

	result, err := ctrl.documentService.SetPrintStatuses(req.Kind, req.IDs, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidKind):
			apperrors.BadRequest(c, apperrors.PrintInvalidKind, "ডকুমেন্ট ধরন certificate বা bill হতে হবে")
		case errors.Is(err, service.ErrInvalidAction):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "অ্যাকশন toggle, printed বা not_printed হতে হবে")
		case errors.Is(err, service.ErrNothingEligible):
			c.JSON(http.StatusOK, gin.H{
				"code":           apperrors.PrintNothingEligible,
				"message":        "নির্বাচিত কোনো ফাইলে এই ডকুমেন্ট নেই",
				"affected_count": 0,
			})
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update print status")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "প্রিন্ট অবস্থা হালনাগাদ হয়েছে",
		"affected_count": result.AffectedCount,
		"skipped_count":  result.SkippedCount,
	})
}

// RegenerateRecharges resynthesizes a bill's recharge ledger
// POST /api/v1/documents/:id/bill/recharges/regenerate
func (ctrl *DocumentController) RegenerateRecharges(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	bill, err := ctrl.billService.RegenerateRecharges(id)
	if err != nil {
		if errors.Is(err, service.ErrDocumentHasNoBill) {
			apperrors.NotFound(c, apperrors.DocumentNoBill, "এই ফাইলে বিদ্যুৎ বিল নেই")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update bill")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "রিচার্জ হিস্ট্রি নতুন করে তৈরি হয়েছে",
		"bill":    bill,
	})
}

// RecomputeCertificates reapplies the current rule set to every certificate
// POST /api/v1/maintenance/recompute-certificates
func (ctrl *DocumentController) RecomputeCertificates(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	updated, err := ctrl.certificateService.RecomputeAll(time.Now())
	if err != nil {
		log.Error("Certificate recompute failed", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "সব সার্টিফিকেট নতুন নিয়মে হালনাগাদ হয়েছে",
		"updated_count": updated,
	})
}
