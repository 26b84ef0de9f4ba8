package service

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/internal/db"
)

func TestSynthesizeRechargeHistory_Arithmetic(t *testing.T) {
	for i := 0; i < 100; i++ {
		entries, err := SynthesizeRechargeHistory(model.TemplateA)
		require.NoError(t, err)

		require.GreaterOrEqual(t, len(entries), 5)
		require.LessOrEqual(t, len(entries), 20)

		for j, e := range entries {
			assert.GreaterOrEqual(t, e.TotalAmount, 200.0)
			assert.LessOrEqual(t, e.TotalAmount, 2000.0)
			assert.Zero(t, math.Mod(e.TotalAmount, 50), "total %v is not a multiple of 50", e.TotalAmount)

			assert.InDelta(t, math.Round(e.EnergyAmount*0.05*100)/100, e.VAT, 0.001)
			assert.InDelta(t, math.Round(-(e.EnergyAmount+e.VAT)*0.005*100)/100, e.Rebate, 0.001)
			assert.LessOrEqual(t, e.Rebate, 0.0)

			share := e.EnergyAmount / e.TotalAmount
			assert.GreaterOrEqual(t, share, 0.64, "entry %d energy share too small", j)
			assert.LessOrEqual(t, share, 0.96, "entry %d energy share too large", j)
		}
	}
}

func TestSynthesizeRechargeHistory_StrictlyDecreasingDates(t *testing.T) {
	for i := 0; i < 100; i++ {
		entries, err := SynthesizeRechargeHistory(model.TemplateB)
		require.NoError(t, err)

		for j := 1; j < len(entries); j++ {
			assert.True(t, entries[j].Date.Before(entries[j-1].Date),
				"entry %d (%s) is not older than entry %d (%s)",
				j, entries[j].Date, j-1, entries[j-1].Date)

			gap := entries[j-1].Date.Sub(entries[j].Date)
			assert.GreaterOrEqual(t, gap, 7*24*time.Hour)
			assert.LessOrEqual(t, gap, 45*24*time.Hour)
		}
	}
}

func TestSynthesizeRechargeHistory_TemplateFields(t *testing.T) {
	entriesA, err := SynthesizeRechargeHistory(model.TemplateA)
	require.NoError(t, err)
	for _, e := range entriesA {
		assert.Equal(t, 10.0, e.ServiceCharge)
		assert.Empty(t, e.RechargeBy)
	}

	entriesB, err := SynthesizeRechargeHistory(model.TemplateB)
	require.NoError(t, err)
	for _, e := range entriesB {
		assert.Zero(t, e.ServiceCharge)
		assert.NotEmpty(t, e.RechargeBy)
	}
}

func TestSynthesizeRechargeHistory_ChargeValues(t *testing.T) {
	allowed := map[float64]bool{0: true, 84: true, 168: true}

	for _, kind := range []model.BillTemplate{model.TemplateA, model.TemplateB} {
		for i := 0; i < 20; i++ {
			entries, err := SynthesizeRechargeHistory(kind)
			require.NoError(t, err)
			for _, e := range entries {
				assert.True(t, allowed[e.DemandCharge], "unexpected demand charge %v", e.DemandCharge)
				assert.True(t, allowed[e.MeterRent], "unexpected meter rent %v", e.MeterRent)
			}
		}
	}
}

func TestSynthesizeRechargeHistory_InvalidTemplate(t *testing.T) {
	_, err := SynthesizeRechargeHistory(model.BillTemplate("C"))
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestBillService_RegenerateRecharges(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	documentRepo := repository.NewDocumentRepository(testDB)
	svc := NewBillService(documentRepo)

	doc := model.Document{FileNo: "KG-2024-0003", NameBn: "জাহিদ হাসান", HasElectricityBill: true}
	require.NoError(t, testDB.Create(&doc).Error)

	bill := model.ElectricityBill{
		DocumentID:   doc.ID,
		HolderName:   "জাহিদ হাসান",
		AccountNo:    "123456789",
		MeterNo:      "987654",
		TemplateKind: model.TemplateB,
		Recharges: []model.RechargeEntry{
			{Date: time.Now().AddDate(0, -1, 0), TotalAmount: 500, EnergyAmount: 400, VAT: 20, Rebate: -2.1},
		},
	}
	require.NoError(t, testDB.Create(&bill).Error)

	regenerated, err := svc.RegenerateRecharges(doc.ID)
	require.NoError(t, err)
	require.NotNil(t, regenerated)

	assert.GreaterOrEqual(t, len(regenerated.Recharges), 5)
	assert.LessOrEqual(t, len(regenerated.Recharges), 20)

	var count int64
	require.NoError(t, testDB.Model(&model.RechargeEntry{}).Where("bill_id = ?", bill.ID).Count(&count).Error)
	assert.Equal(t, int64(len(regenerated.Recharges)), count)
}

func TestBillService_RegenerateRecharges_NoBill(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	svc := NewBillService(repository.NewDocumentRepository(testDB))

	_, err = svc.RegenerateRecharges(9999)
	assert.ErrorIs(t, err, ErrDocumentHasNoBill)
}
