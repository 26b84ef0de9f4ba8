package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/pkg/logger"
	"github.com/mehedihb/kagojghor-backend/pkg/util"
)

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrNothingEligible   = errors.New("no document in the selection has the targeted attachment")
	ErrInvalidKind       = errors.New("unknown document kind")
	ErrInvalidAction     = errors.New("unknown print status action")
	ErrBirthDateRequired = errors.New("a full date of birth is required for a certificate")
	ErrBirthYearRequired = errors.New("at least a birth year is required")
)

// PrintAction is what a bulk status call does to the targeted attachments.
type PrintAction string

const (
	ActionToggle     PrintAction = "toggle"
	ActionPrinted    PrintAction = "printed"
	ActionNotPrinted PrintAction = "not_printed"
)

func (a PrintAction) Valid() bool {
	return a == ActionToggle || a == ActionPrinted || a == ActionNotPrinted
}

// CertificateRequest asks for a generated certificate on a new document.
type CertificateRequest struct {
	InstitutionID uint `json:"institution_id" binding:"required"`
}

// BillRequest asks for a synthesized electricity bill on a new document.
type BillRequest struct {
	HolderName   string             `json:"holder_name"`
	AccountNo    string             `json:"account_no"`
	MeterNo      string             `json:"meter_no"`
	CustomerNo   string             `json:"customer_no"`
	Address      string             `json:"address"`
	TemplateKind model.BillTemplate `json:"template_kind"`
}

// CreateDocumentInput carries a new file's applicant fields plus the
// optional attachment requests.
type CreateDocumentInput struct {
	ClientID     *uint      `json:"client_id"`
	NameBn       string     `json:"name_bn"`
	NameEn       string     `json:"name_en"`
	FatherName   string     `json:"father_name"`
	MotherName   string     `json:"mother_name"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	BirthYear    int        `json:"birth_year"`
	PhotoKey     string     `json:"photo_key"`
	SourcePDFKey string     `json:"source_pdf_key"`

	Certificate *CertificateRequest `json:"certificate"`
	Bill        *BillRequest        `json:"bill"`
}

// UpdateDocumentInput carries the editable applicant fields of a file.
type UpdateDocumentInput struct {
	ClientID    *uint      `json:"client_id"`
	NameBn      *string    `json:"name_bn"`
	NameEn      *string    `json:"name_en"`
	FatherName  *string    `json:"father_name"`
	MotherName  *string    `json:"mother_name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	BirthYear   *int       `json:"birth_year"`
	PhotoKey    *string    `json:"photo_key"`
}

// PrintBatchResult reports a bulk print-status operation: which documents
// were eligible and how many attachment rows were actually changed.
type PrintBatchResult struct {
	Documents     []model.Document `json:"documents,omitempty"`
	AffectedCount int64            `json:"affected_count"`
	SkippedCount  int              `json:"skipped_count"`
}

type DocumentService interface {
	Create(input CreateDocumentInput) (*model.Document, error)
	GetByID(id uint) (*model.Document, error)
	List(filter repository.DocumentFilter) ([]model.Document, int64, error)
	Update(id uint, input UpdateDocumentInput) (*model.Document, error)
	Delete(id uint) error
	BulkDelete(ids []uint) (int64, error)

	FetchForPrint(kind model.DocumentKind, ids []uint) (*PrintBatchResult, error)
	SetPrintStatuses(kind model.DocumentKind, ids []uint, action PrintAction) (*PrintBatchResult, error)
}

type documentService struct {
	documentRepo    repository.DocumentRepository
	institutionRepo repository.InstitutionRepository
}

func NewDocumentService(documentRepo repository.DocumentRepository, institutionRepo repository.InstitutionRepository) DocumentService {
	return &documentService{
		documentRepo:    documentRepo,
		institutionRepo: institutionRepo,
	}
}

// newFileNo builds a register number from the Dhaka date plus a random
// suffix. The column's unique index catches the rare collision; the caller
// sees it as a duplicate-key error.
func newFileNo(now time.Time) string {
	return fmt.Sprintf("KG-%s-%04d", now.In(util.Dhaka()).Format("20060102"), util.RandomInt(1000, 9999))
}

func (s *documentService) Create(input CreateDocumentInput) (*model.Document, error) {
	if input.DateOfBirth == nil && input.BirthYear == 0 {
		return nil, ErrBirthYearRequired
	}

	now := time.Now()

	doc := model.Document{
		FileNo:       newFileNo(now),
		ClientID:     input.ClientID,
		NameBn:       input.NameBn,
		NameEn:       input.NameEn,
		FatherName:   input.FatherName,
		MotherName:   input.MotherName,
		DateOfBirth:  input.DateOfBirth,
		BirthYear:    input.BirthYear,
		PhotoKey:     input.PhotoKey,
		SourcePDFKey: input.SourcePDFKey,
	}
	if doc.BirthYear == 0 && doc.DateOfBirth != nil {
		doc.BirthYear = doc.DateOfBirth.In(util.Dhaka()).Year()
	}

	if input.Certificate != nil {
		// A certificate needs the exact age, so the year alone is not enough.
		if input.DateOfBirth == nil {
			return nil, ErrBirthDateRequired
		}
		if _, err := s.institutionRepo.FindByID(input.Certificate.InstitutionID); err != nil {
			return nil, err
		}

		age := util.AgeAt(*input.DateOfBirth, now)
		fields, err := GenerateCertificateFields(age, now)
		if err != nil {
			return nil, err
		}

		doc.HasCertificate = true
		doc.Certificate = &model.Certificate{
			InstitutionID:   input.Certificate.InstitutionID,
			ClassName:       fields.ClassName,
			Roll:            fields.Roll,
			SessionYear:     fields.SessionYear,
			CertificateDate: fields.CertificateDate,
			PrintStatus:     model.PrintStatusNotPrinted,
		}
	}

	if input.Bill != nil {
		templateKind := input.Bill.TemplateKind
		if templateKind == "" {
			templateKind = model.TemplateA
		}
		recharges, err := SynthesizeRechargeHistory(templateKind)
		if err != nil {
			return nil, err
		}

		holderName := input.Bill.HolderName
		if holderName == "" {
			holderName = input.NameBn
		}

		doc.HasElectricityBill = true
		doc.ElectricityBill = &model.ElectricityBill{
			HolderName:   holderName,
			AccountNo:    input.Bill.AccountNo,
			MeterNo:      input.Bill.MeterNo,
			CustomerNo:   input.Bill.CustomerNo,
			Address:      input.Bill.Address,
			TemplateKind: templateKind,
			PrintStatus:  model.PrintStatusNotPrinted,
			Recharges:    recharges,
		}
	}

	if err := s.documentRepo.Create(&doc); err != nil {
		return nil, err
	}

	logger.Info("Document created", map[string]interface{}{
		"document_id":     doc.ID,
		"file_no":         doc.FileNo,
		"has_certificate": doc.HasCertificate,
		"has_bill":        doc.HasElectricityBill,
	})

	return s.documentRepo.FindByID(doc.ID)
}

func (s *documentService) GetByID(id uint) (*model.Document, error) {
	doc, err := s.documentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) List(filter repository.DocumentFilter) ([]model.Document, int64, error) {
	return s.documentRepo.List(filter)
}

func (s *documentService) Update(id uint, input UpdateDocumentInput) (*model.Document, error) {
	doc, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.ClientID != nil {
		doc.ClientID = input.ClientID
	}
	if input.NameBn != nil {
		doc.NameBn = *input.NameBn
	}
	if input.NameEn != nil {
		doc.NameEn = *input.NameEn
	}
	if input.FatherName != nil {
		doc.FatherName = *input.FatherName
	}
	if input.MotherName != nil {
		doc.MotherName = *input.MotherName
	}
	if input.DateOfBirth != nil {
		doc.DateOfBirth = input.DateOfBirth
		doc.BirthYear = input.DateOfBirth.In(util.Dhaka()).Year()
	}
	if input.BirthYear != nil {
		doc.BirthYear = *input.BirthYear
	}
	if input.PhotoKey != nil {
		doc.PhotoKey = *input.PhotoKey
	}

	if err := s.documentRepo.Update(doc); err != nil {
		return nil, err
	}
	return s.documentRepo.FindByID(id)
}

func (s *documentService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.documentRepo.Delete(id); err != nil {
		return err
	}
	logger.Info("Document deleted", map[string]interface{}{"document_id": id})
	return nil
}

func (s *documentService) BulkDelete(ids []uint) (int64, error) {
	deleted, err := s.documentRepo.BulkDelete(ids)
	if err != nil {
		return 0, err
	}
	logger.Info("Documents bulk deleted", map[string]interface{}{
		"requested": len(ids),
		"deleted":   deleted,
	})
	return deleted, nil
}

// eligibleFor splits the selection into documents that carry the targeted
// attachment and those that do not. Bulk operations work on the eligible
// set only and report the skipped remainder.
func (s *documentService) eligibleFor(kind model.DocumentKind, ids []uint) (docs []model.Document, eligibleIDs []uint, skipped int, err error) {
	all, err := s.documentRepo.FindByIDs(ids)
	if err != nil {
		return nil, nil, 0, err
	}

	for _, doc := range all {
		if doc.Has(kind) {
			docs = append(docs, doc)
			eligibleIDs = append(eligibleIDs, doc.ID)
		} else {
			skipped++
		}
	}
	return docs, eligibleIDs, skipped, nil
}

// FetchForPrint loads the selected documents for rendering and forces their
// targeted attachment to printed. The transition is unconditional; reopening
// an already printed document keeps it printed.
func (s *documentService) FetchForPrint(kind model.DocumentKind, ids []uint) (*PrintBatchResult, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	docs, eligibleIDs, skipped, err := s.eligibleFor(kind, ids)
	if err != nil {
		return nil, err
	}
	if len(eligibleIDs) == 0 {
		return nil, ErrNothingEligible
	}

	affected, err := s.documentRepo.SetPrintStatus(kind, eligibleIDs, model.PrintStatusPrinted)
	if err != nil {
		return nil, err
	}

	logger.Info("Documents fetched for print", map[string]interface{}{
		"kind":     kind,
		"selected": len(ids),
		"printed":  affected,
		"skipped":  skipped,
	})

	// Reload so the returned payload carries the new status.
	docs, err = s.documentRepo.FindByIDs(eligibleIDs)
	if err != nil {
		return nil, err
	}
	return &PrintBatchResult{Documents: docs, AffectedCount: affected, SkippedCount: skipped}, nil
}

// SetPrintStatuses applies a manual status action to the eligible subset of
// the selection.
func (s *documentService) SetPrintStatuses(kind model.DocumentKind, ids []uint, action PrintAction) (*PrintBatchResult, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	if !action.Valid() {
		return nil, ErrInvalidAction
	}

	_, eligibleIDs, skipped, err := s.eligibleFor(kind, ids)
	if err != nil {
		return nil, err
	}
	if len(eligibleIDs) == 0 {
		return nil, ErrNothingEligible
	}

	var affected int64
	switch action {
	case ActionToggle:
		affected, err = s.documentRepo.TogglePrintStatus(kind, eligibleIDs)
	case ActionPrinted:
		affected, err = s.documentRepo.SetPrintStatus(kind, eligibleIDs, model.PrintStatusPrinted)
	case ActionNotPrinted:
		affected, err = s.documentRepo.SetPrintStatus(kind, eligibleIDs, model.PrintStatusNotPrinted)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Print statuses updated", map[string]interface{}{
		"kind":     kind,
		"action":   action,
		"selected": len(ids),
		"affected": affected,
		"skipped":  skipped,
	})

	return &PrintBatchResult{AffectedCount: affected, SkippedCount: skipped}, nil
}
