package repository

import (
	"time"

	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/pkg/logger"
	"gorm.io/gorm"
)

// DocumentFilter narrows the document register listing.
type DocumentFilter struct {
	ClientID        *uint
	HasCertificate  *bool
	HasBill         *bool
	CertPrintStatus model.PrintStatus
	BillPrintStatus model.PrintStatus
	Search          string
	Limit           int
	Offset          int
}

type DocumentRepository interface {
	Create(doc *model.Document) error
	FindByID(id uint) (*model.Document, error)
	FindByIDs(ids []uint) ([]model.Document, error)
	List(filter DocumentFilter) ([]model.Document, int64, error)
	Update(doc *model.Document) error
	Delete(id uint) error
	BulkDelete(ids []uint) (int64, error)

	SetPrintStatus(kind model.DocumentKind, documentIDs []uint, status model.PrintStatus) (int64, error)
	TogglePrintStatus(kind model.DocumentKind, documentIDs []uint) (int64, error)

	UpdateCertificate(cert *model.Certificate) error
	AllCertificates() ([]model.Certificate, error)
	FindBillByDocumentID(documentID uint) (*model.ElectricityBill, error)
	ReplaceRecharges(billID uint, entries []model.RechargeEntry) error

	GetStats(monthStart time.Time) (map[string]interface{}, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) preloadDocument() *gorm.DB {
	return r.db.
		Preload("Client").
		Preload("Certificate").
		Preload("Certificate.Institution").
		Preload("ElectricityBill").
		Preload("ElectricityBill.Recharges", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		})
}

func (r *documentRepository) Create(doc *model.Document) error {
	if err := r.db.Create(doc).Error; err != nil {
		logger.Error("Failed to create document in database", err, map[string]interface{}{
			"file_no": doc.FileNo,
		})
		return err
	}
	return nil
}

func (r *documentRepository) FindByID(id uint) (*model.Document, error) {
	var doc model.Document
	if err := r.preloadDocument().First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) FindByIDs(ids []uint) ([]model.Document, error) {
	if len(ids) == 0 {
		return []model.Document{}, nil
	}

	var docs []model.Document
	if err := r.preloadDocument().Where("id IN ?", ids).Find(&docs).Error; err != nil {
		logger.Error("Failed to find documents by IDs in database", err, map[string]interface{}{
			"count": len(ids),
		})
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) List(filter DocumentFilter) ([]model.Document, int64, error) {
	query := r.db.Model(&model.Document{})

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.HasCertificate != nil {
		query = query.Where("has_certificate = ?", *filter.HasCertificate)
	}
	if filter.HasBill != nil {
		query = query.Where("has_electricity_bill = ?", *filter.HasBill)
	}
	if filter.CertPrintStatus != "" {
		query = query.Where(
			"id IN (?)",
			r.db.Model(&model.Certificate{}).Select("document_id").
				Where("print_status = ?", filter.CertPrintStatus),
		)
	}
	if filter.BillPrintStatus != "" {
		query = query.Where(
			"id IN (?)",
			r.db.Model(&model.ElectricityBill{}).Select("document_id").
				Where("print_status = ?", filter.BillPrintStatus),
		)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"name_bn LIKE ? OR name_en LIKE ? OR father_name LIKE ? OR file_no LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var docs []model.Document
	if err := query.
		Preload("Client").
		Preload("Certificate").
		Preload("Certificate.Institution").
		Preload("ElectricityBill").
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		logger.Error("Failed to list documents from database", err, nil)
		return nil, 0, err
	}

	return docs, total, nil
}

func (r *documentRepository) Update(doc *model.Document) error {
	if err := r.db.Save(doc).Error; err != nil {
		logger.Error("Failed to update document in database", err, map[string]interface{}{
			"document_id": doc.ID,
		})
		return err
	}
	return nil
}

func (r *documentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Document{}, id).Error
}

func (r *documentRepository) BulkDelete(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.Where("id IN ?", ids).Delete(&model.Document{})
	if result.Error != nil {
		logger.Error("Failed to bulk delete documents in database", result.Error, map[string]interface{}{
			"count": len(ids),
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// SetPrintStatus forces the print status of the targeted attachment rows.
// Documents in the selection that lack the attachment are skipped by the
// WHERE clause; the returned count reflects only rows actually touched.
func (r *documentRepository) SetPrintStatus(kind model.DocumentKind, documentIDs []uint, status model.PrintStatus) (int64, error) {
	if len(documentIDs) == 0 {
		return 0, nil
	}

	result := r.attachmentModel(kind).
		Where("document_id IN ?", documentIDs).
		Update("print_status", status)
	if result.Error != nil {
		logger.Error("Failed to set print status in database", result.Error, map[string]interface{}{
			"kind":   kind,
			"status": status,
			"count":  len(documentIDs),
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// TogglePrintStatus flips the print status of every targeted attachment row.
func (r *documentRepository) TogglePrintStatus(kind model.DocumentKind, documentIDs []uint) (int64, error) {
	if len(documentIDs) == 0 {
		return 0, nil
	}

	result := r.attachmentModel(kind).
		Where("document_id IN ?", documentIDs).
		Update("print_status", gorm.Expr(
			"CASE WHEN print_status = ? THEN ? ELSE ? END",
			model.PrintStatusPrinted, model.PrintStatusNotPrinted, model.PrintStatusPrinted,
		))
	if result.Error != nil {
		logger.Error("Failed to toggle print status in database", result.Error, map[string]interface{}{
			"kind":  kind,
			"count": len(documentIDs),
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *documentRepository) attachmentModel(kind model.DocumentKind) *gorm.DB {
	if kind == model.KindBill {
		return r.db.Model(&model.ElectricityBill{})
	}
	return r.db.Model(&model.Certificate{})
}

func (r *documentRepository) UpdateCertificate(cert *model.Certificate) error {
	if err := r.db.Save(cert).Error; err != nil {
		logger.Error("Failed to update certificate in database", err, map[string]interface{}{
			"certificate_id": cert.ID,
		})
		return err
	}
	return nil
}

func (r *documentRepository) AllCertificates() ([]model.Certificate, error) {
	var certs []model.Certificate
	if err := r.db.Preload("Document").Find(&certs).Error; err != nil {
		logger.Error("Failed to load certificates from database", err, nil)
		return nil, err
	}
	return certs, nil
}

func (r *documentRepository) FindBillByDocumentID(documentID uint) (*model.ElectricityBill, error) {
	var bill model.ElectricityBill
	if err := r.db.
		Preload("Recharges", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Where("document_id = ?", documentID).
		First(&bill).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

// ReplaceRecharges swaps a bill's entire ledger in one transaction.
func (r *documentRepository) ReplaceRecharges(billID uint, entries []model.RechargeEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", billID).Delete(&model.RechargeEntry{}).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].BillID = billID
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *documentRepository) GetStats(monthStart time.Time) (map[string]interface{}, error) {
	var (
		totalDocuments     int64
		documentsThisMonth int64
		totalCertificates  int64
		printedCerts       int64
		totalBills         int64
		printedBills       int64
	)

	if err := r.db.Model(&model.Document{}).Count(&totalDocuments).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Document{}).
		Where("created_at >= ?", monthStart).
		Count(&documentsThisMonth).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Certificate{}).Count(&totalCertificates).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Certificate{}).
		Where("print_status = ?", model.PrintStatusPrinted).
		Count(&printedCerts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.ElectricityBill{}).Count(&totalBills).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.ElectricityBill{}).
		Where("print_status = ?", model.PrintStatusPrinted).
		Count(&printedBills).Error; err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"total_documents":          totalDocuments,
		"documents_this_month":     documentsThisMonth,
		"total_certificates":       totalCertificates,
		"printed_certificates":     printedCerts,
		"not_printed_certificates": totalCertificates - printedCerts,
		"total_bills":              totalBills,
		"printed_bills":            printedBills,
		"not_printed_bills":        totalBills - printedBills,
	}, nil
}
