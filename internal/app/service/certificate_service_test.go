package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/internal/db"
	"github.com/mehedihb/kagojghor-backend/pkg/util"
)

func TestResolveClass(t *testing.T) {
	tests := []struct {
		name       string
		age        int
		wantClass  string
		wantOffset int
	}{
		{"band lower bound", 6, "Class 1", 0},
		{"inside shared band", 8, "Class 1", 2},
		{"band upper bound", 9, "Class 1", 3},
		{"single year band", 10, "Class 2", 0},
		{"middle of table", 13, "Class 5", 0},
		{"last regular band", 16, "Class 8", 0},
		{"open band lower bound", 17, "Class 9", 0},
		{"clamped to last class", 19, "Class 9", 2},
		{"far above table", 45, "Class 9", 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveClass(tt.age)
			require.NoError(t, err)
			assert.Equal(t, tt.wantClass, got.ClassName)
			assert.Equal(t, tt.wantOffset, got.SessionYearOffset)
		})
	}
}

func TestResolveClass_BelowMinimumAge(t *testing.T) {
	for _, age := range []int{5, 0, -3} {
		_, err := ResolveClass(age)
		assert.ErrorIs(t, err, ErrAgeBelowMinimum, "age %d", age)
	}
}

func TestGenerateCertificateFields(t *testing.T) {
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, util.Dhaka())

	fields, err := GenerateCertificateFields(8, ref)
	require.NoError(t, err)

	assert.Equal(t, "Class 1", fields.ClassName)
	assert.Equal(t, 2, fields.SessionYearOffset)
	assert.Equal(t, 2022, fields.SessionYear)
	assert.Equal(t, "2024-05-31", fields.CertificateDate.Format("2006-01-02"))
	assert.GreaterOrEqual(t, fields.Roll, 11)
	assert.LessOrEqual(t, fields.Roll, 99)
}

func TestGenerateCertificateFields_OlderApplicant(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, util.Dhaka())

	fields, err := GenerateCertificateFields(19, ref)
	require.NoError(t, err)

	assert.Equal(t, "Class 9", fields.ClassName)
	assert.Equal(t, 2022, fields.SessionYear)
}

func TestGenerateCertificateFields_YearBoundary(t *testing.T) {
	// 15 days back from early January crosses into the previous year.
	ref := time.Date(2024, 1, 5, 0, 0, 0, 0, util.Dhaka())

	fields, err := GenerateCertificateFields(10, ref)
	require.NoError(t, err)

	assert.Equal(t, "2023-12-21", fields.CertificateDate.Format("2006-01-02"))
	// Session year still counts back from the reference year, not the
	// certificate date's year.
	assert.Equal(t, 2024, fields.SessionYear)
}

func TestGenerateCertificateFields_DhakaDateNotUTCDate(t *testing.T) {
	// 20:00 UTC on June 14 is already June 15 in Dhaka.
	ref := time.Date(2024, 6, 14, 20, 0, 0, 0, time.UTC)

	fields, err := GenerateCertificateFields(8, ref)
	require.NoError(t, err)

	assert.Equal(t, "2024-05-31", fields.CertificateDate.In(util.Dhaka()).Format("2006-01-02"))
}

func TestGenerateCertificateFields_RollRange(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, util.Dhaka())
	seen := make(map[int]bool)

	for i := 0; i < 10000; i++ {
		fields, err := GenerateCertificateFields(12, ref)
		require.NoError(t, err)
		require.GreaterOrEqual(t, fields.Roll, 11)
		require.LessOrEqual(t, fields.Roll, 99)
		seen[fields.Roll] = true
	}

	// Both endpoints should show up over this many trials.
	assert.True(t, seen[11], "roll 11 never generated")
	assert.True(t, seen[99], "roll 99 never generated")
}

func setupCertificateServiceTest(t *testing.T) (CertificateService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	documentRepo := repository.NewDocumentRepository(testDB)
	return NewCertificateService(documentRepo), testDB
}

func TestCertificateService_RecomputeAll(t *testing.T) {
	svc, testDB := setupCertificateServiceTest(t)

	institution := model.Institution{NameBn: "করিমগঞ্জ সরকারি প্রাথমিক বিদ্যালয়", NameEn: "Karimganj Govt Primary School", EIIN: "112233"}
	require.NoError(t, testDB.Create(&institution).Error)

	dob := time.Date(2016, 3, 10, 0, 0, 0, 0, util.Dhaka())
	doc := model.Document{
		FileNo:         "KG-2024-0001",
		NameBn:         "রাহিম উদ্দিন",
		DateOfBirth:    &dob,
		HasCertificate: true,
	}
	require.NoError(t, testDB.Create(&doc).Error)

	cert := model.Certificate{
		DocumentID:      doc.ID,
		InstitutionID:   institution.ID,
		ClassName:       "Class 9", // stale, from an older rule set
		Roll:            7,         // below the current range
		SessionYear:     2015,
		CertificateDate: time.Date(2020, 1, 1, 0, 0, 0, 0, util.Dhaka()),
	}
	require.NoError(t, testDB.Create(&cert).Error)

	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, util.Dhaka())
	updated, err := svc.RecomputeAll(ref)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	var reloaded model.Certificate
	require.NoError(t, testDB.First(&reloaded, cert.ID).Error)
	assert.Equal(t, "Class 1", reloaded.ClassName) // age 8 at the reference date
	assert.Equal(t, 2022, reloaded.SessionYear)
	assert.GreaterOrEqual(t, reloaded.Roll, 11)
	assert.LessOrEqual(t, reloaded.Roll, 99)
	assert.Equal(t, "2024-05-31", reloaded.CertificateDate.Format("2006-01-02"))
}

func TestCertificateService_RecomputeAll_SkipsMissingBirthDate(t *testing.T) {
	svc, testDB := setupCertificateServiceTest(t)

	institution := model.Institution{NameBn: "টেস্ট স্কুল", NameEn: "Test School", EIIN: "445566"}
	require.NoError(t, testDB.Create(&institution).Error)

	doc := model.Document{
		FileNo:         "KG-2024-0002",
		NameBn:         "সালমা খাতুন",
		BirthYear:      2010, // year only, no full date
		HasCertificate: true,
	}
	require.NoError(t, testDB.Create(&doc).Error)

	cert := model.Certificate{
		DocumentID:      doc.ID,
		InstitutionID:   institution.ID,
		ClassName:       "Class 3",
		Roll:            42,
		SessionYear:     2021,
		CertificateDate: time.Date(2024, 1, 1, 0, 0, 0, 0, util.Dhaka()),
	}
	require.NoError(t, testDB.Create(&cert).Error)

	updated, err := svc.RecomputeAll(time.Date(2024, 6, 15, 0, 0, 0, 0, util.Dhaka()))
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)

	var reloaded model.Certificate
	require.NoError(t, testDB.First(&reloaded, cert.ID).Error)
	assert.Equal(t, "Class 3", reloaded.ClassName)
	assert.Equal(t, 42, reloaded.Roll)
}
