package service

import (
	"errors"
	"math"
	"time"

	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/pkg/logger"
	"github.com/mehedihb/kagojghor-backend/pkg/util"
)

var (
	ErrInvalidTemplate   = errors.New("unknown bill template")
	ErrDocumentHasNoBill = errors.New("document has no electricity bill")
)

const (
	rechargeCountMin = 5
	rechargeCountMax = 20

	rechargeAmountMin  = 200
	rechargeAmountMax  = 2000
	rechargeAmountStep = 50

	// energyAmount falls in this band of totalAmount; the remainder is
	// soaked up by the fixed charges and rounding.
	energyShareMinPct = 65
	energyShareMaxPct = 95
)

// rechargeChannels are the top-up channels printed on template B bills.
var rechargeChannels = []string{"bKash", "Nagad", "Rocket", "Upay", "Vending"}

// round2 rounds to two decimal places, the way amounts appear on the bill.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// drawCharge picks a demand charge / meter rent value. Template A leans on 0
// and 168 with 84 as a secondary value; template B draws uniformly from the
// same set. These distributions mirror the charges observed on real prepaid
// bills and have no deeper meaning.
func drawCharge(templateKind model.BillTemplate) float64 {
	switch templateKind {
	case model.TemplateA:
		switch r := util.RandomInt(1, 100); {
		case r <= 40:
			return 0
		case r <= 60:
			return 84
		default:
			return 168
		}
	default:
		return []float64{0, 84, 168}[util.RandomInt(0, 2)]
	}
}

// SynthesizeRechargeHistory builds a plausible looking prepaid recharge
// ledger, newest first, walking backward from today in Asia/Dhaka. The data
// is entirely synthetic; the only hard guarantees are strictly decreasing
// dates and internally consistent arithmetic per entry.
func SynthesizeRechargeHistory(templateKind model.BillTemplate) ([]model.RechargeEntry, error) {
	if !templateKind.Valid() {
		return nil, ErrInvalidTemplate
	}

	count := util.RandomInt(rechargeCountMin, rechargeCountMax)
	now := time.Now().In(util.Dhaka())
	cursor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, util.Dhaka())

	entries := make([]model.RechargeEntry, 0, count)
	for i := 0; i < count; i++ {
		total := float64(util.RandomMultiple(rechargeAmountStep, rechargeAmountMin, rechargeAmountMax))
		energy := round2(total * float64(util.RandomInt(energyShareMinPct, energyShareMaxPct)) / 100)
		vat := round2(energy * 0.05)
		rebate := round2(-(energy + vat) * 0.005)

		entry := model.RechargeEntry{
			Date:         cursor,
			TotalAmount:  total,
			EnergyAmount: energy,
			VAT:          vat,
			Rebate:       rebate,
			DemandCharge: drawCharge(templateKind),
			MeterRent:    drawCharge(templateKind),
		}
		if templateKind == model.TemplateA {
			entry.ServiceCharge = 10
		} else {
			entry.ArrearAmount = 0
			entry.OtherCharge = 0
			entry.RechargeBy = rechargeChannels[util.RandomInt(0, len(rechargeChannels)-1)]
		}
		entries = append(entries, entry)

		// Mostly monthly-ish gaps, with the occasional quick follow-up
		// recharge a week or two after the previous one.
		var gap int
		if util.RandomInt(1, 100) <= 10 {
			gap = util.RandomInt(7, 14)
		} else {
			gap = util.RandomInt(15, 45)
		}
		cursor = cursor.AddDate(0, 0, -gap)
	}

	return entries, nil
}

type BillService interface {
	GetByDocumentID(documentID uint) (*model.ElectricityBill, error)
	RegenerateRecharges(documentID uint) (*model.ElectricityBill, error)
}

type billService struct {
	documentRepo repository.DocumentRepository
}

func NewBillService(documentRepo repository.DocumentRepository) BillService {
	return &billService{documentRepo: documentRepo}
}

func (s *billService) GetByDocumentID(documentID uint) (*model.ElectricityBill, error) {
	bill, err := s.documentRepo.FindBillByDocumentID(documentID)
	if err != nil {
		return nil, ErrDocumentHasNoBill
	}
	return bill, nil
}

// RegenerateRecharges throws away the bill's current ledger and synthesizes
// a fresh one with the bill's own template.
func (s *billService) RegenerateRecharges(documentID uint) (*model.ElectricityBill, error) {
	bill, err := s.documentRepo.FindBillByDocumentID(documentID)
	if err != nil {
		return nil, ErrDocumentHasNoBill
	}

	entries, err := SynthesizeRechargeHistory(bill.TemplateKind)
	if err != nil {
		return nil, err
	}
	if err := s.documentRepo.ReplaceRecharges(bill.ID, entries); err != nil {
		return nil, err
	}

	logger.Info("Regenerated recharge history", map[string]interface{}{
		"document_id": documentID,
		"bill_id":     bill.ID,
		"entries":     len(entries),
		"template":    bill.TemplateKind,
	})

	return s.documentRepo.FindBillByDocumentID(documentID)
}
