package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/pkg/logger"
	"github.com/mehedihb/kagojghor-backend/pkg/util"
)

type ReportService interface {
	DocumentsXLSX(filter repository.DocumentFilter) (*bytes.Buffer, error)
}

type reportService struct {
	documentRepo repository.DocumentRepository
}

func NewReportService(documentRepo repository.DocumentRepository) ReportService {
	return &reportService{documentRepo: documentRepo}
}

var reportHeaders = []string{
	"ফাইল নং", "নাম (বাংলা)", "নাম (ইংরেজি)", "পিতার নাম", "জন্ম তারিখ",
	"ক্লায়েন্ট", "সার্টিফিকেট", "সার্টিফিকেট প্রিন্ট", "বিদ্যুৎ বিল", "বিল প্রিন্ট", "তৈরির তারিখ",
}

// DocumentsXLSX renders the document register as a spreadsheet, one row per
// file, honoring the same filter as the list endpoint.
func (s *reportService) DocumentsXLSX(filter repository.DocumentFilter) (*bytes.Buffer, error) {
	// Export ignores pagination; the register is at most a few thousand rows.
	filter.Limit = 0
	filter.Offset = 0

	docs, _, err := s.documentRepo.List(filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, "ফাইল তালিকা"); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	sheet = "ফাইল তালিকা"

	for col, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, doc := range docs {
		values := documentRow(doc)
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to write report workbook", err, nil)
		return nil, err
	}

	logger.Info("Document report generated", map[string]interface{}{
		"rows": len(docs),
	})
	return buf, nil
}

func documentRow(doc model.Document) []interface{} {
	yesNo := func(b bool) string {
		if b {
			return "হ্যাঁ"
		}
		return "না"
	}
	printStatus := func(has bool, status model.PrintStatus) string {
		if !has {
			return "-"
		}
		if status == model.PrintStatusPrinted {
			return "প্রিন্ট হয়েছে"
		}
		return "প্রিন্ট হয়নি"
	}

	birth := ""
	if doc.DateOfBirth != nil {
		birth = util.FormatBanglaDate(doc.DateOfBirth.In(util.Dhaka()))
	} else if doc.BirthYear != 0 {
		birth = util.ToBanglaDigits(fmt.Sprintf("%d", doc.BirthYear))
	}

	clientName := ""
	if doc.Client != nil {
		clientName = doc.Client.Name
	}

	certStatus := model.PrintStatusNotPrinted
	if doc.Certificate != nil {
		certStatus = doc.Certificate.PrintStatus
	}
	billStatus := model.PrintStatusNotPrinted
	if doc.ElectricityBill != nil {
		billStatus = doc.ElectricityBill.PrintStatus
	}

	return []interface{}{
		doc.FileNo,
		doc.NameBn,
		doc.NameEn,
		doc.FatherName,
		birth,
		clientName,
		yesNo(doc.HasCertificate),
		printStatus(doc.HasCertificate, certStatus),
		yesNo(doc.HasElectricityBill),
		printStatus(doc.HasElectricityBill, billStatus),
		util.FormatBanglaDate(doc.CreatedAt.In(util.Dhaka())),
	}
}
