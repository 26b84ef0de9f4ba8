package service

import (
	"errors"
	"time"

	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/pkg/logger"
	"github.com/mehedihb/kagojghor-backend/pkg/util"
)

var (
	// ErrAgeBelowMinimum: the class table starts at age 6. The handling of
	// younger applicants is undefined in the business rules, so the resolver
	// refuses instead of extrapolating a class downward.
	ErrAgeBelowMinimum = errors.New("age is below the certificate class table")
)

const (
	// certificateDateOffsetDays: certificates are always dated exactly this
	// many days before the generation date. Business convention; do not
	// change without changing every previously issued document.
	certificateDateOffsetDays = 15

	rollMin = 11
	rollMax = 99

	minClassAge = 6
	maxClassAge = 17 // Class 9 band lower bound; everything older clamps here
)

// classBands maps the lower bound of each age band to its class name.
// Ages 6-9 share the Class 1 band; from 10 each year is its own class
// until Class 9 absorbs everyone 17 and older.
var classBands = []struct {
	baseAge   int
	className string
}{
	{6, "Class 1"},
	{10, "Class 2"},
	{11, "Class 3"},
	{12, "Class 4"},
	{13, "Class 5"},
	{14, "Class 6"},
	{15, "Class 7"},
	{16, "Class 8"},
	{17, "Class 9"},
}

// ClassResolution is the output of the age/class rule table.
type ClassResolution struct {
	ClassName string `json:"class_name"`
	// SessionYearOffset is how many years ago the applicant was last in the
	// resolved class: age minus the lower bound of the matched band.
	SessionYearOffset int `json:"session_year_offset"`
}

// ResolveClass applies the age/class rule table. Total over ages >= 6;
// ages 17 and above clamp to Class 9.
func ResolveClass(age int) (ClassResolution, error) {
	if age < minClassAge {
		return ClassResolution{}, ErrAgeBelowMinimum
	}

	resolved := classBands[0]
	for _, band := range classBands {
		if age >= band.baseAge {
			resolved = band
		}
	}

	return ClassResolution{
		ClassName:         resolved.className,
		SessionYearOffset: age - resolved.baseAge,
	}, nil
}

// CertificateFields are the generated academic attributes of a certificate.
type CertificateFields struct {
	ClassName         string    `json:"class_name"`
	SessionYearOffset int       `json:"session_year_offset"`
	SessionYear       int       `json:"session_year"`
	Roll              int       `json:"roll"`
	CertificateDate   time.Time `json:"certificate_date"`
}

// GenerateCertificateFields derives the certificate attributes for an
// applicant of the given age. referenceDate is interpreted in Asia/Dhaka;
// the certificate date is always exactly 15 days earlier, and the session
// year counts back from the reference year by the resolver's offset.
// Pure aside from the random roll.
func GenerateCertificateFields(age int, referenceDate time.Time) (CertificateFields, error) {
	resolution, err := ResolveClass(age)
	if err != nil {
		return CertificateFields{}, err
	}

	ref := referenceDate.In(util.Dhaka())
	certDate := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, util.Dhaka()).
		AddDate(0, 0, -certificateDateOffsetDays)

	return CertificateFields{
		ClassName:         resolution.ClassName,
		SessionYearOffset: resolution.SessionYearOffset,
		SessionYear:       ref.Year() - resolution.SessionYearOffset,
		Roll:              util.RandomInt(rollMin, rollMax),
		CertificateDate:   certDate,
	}, nil
}

type CertificateService interface {
	FieldsForAge(age int, referenceDate time.Time) (CertificateFields, error)
	RecomputeAll(referenceDate time.Time) (int64, error)
}

type certificateService struct {
	documentRepo repository.DocumentRepository
}

func NewCertificateService(documentRepo repository.DocumentRepository) CertificateService {
	return &certificateService{documentRepo: documentRepo}
}

func (s *certificateService) FieldsForAge(age int, referenceDate time.Time) (CertificateFields, error) {
	return GenerateCertificateFields(age, referenceDate)
}

// RecomputeAll reapplies the current rule set to every stored certificate,
// overwriting class, session year, roll and certificate date. Certificates
// whose document no longer carries a full date of birth are skipped.
func (s *certificateService) RecomputeAll(referenceDate time.Time) (int64, error) {
	logger.Info("Recomputing all certificate fields", map[string]interface{}{
		"reference_date": referenceDate.In(util.Dhaka()).Format("2006-01-02"),
	})

	certs, err := s.documentRepo.AllCertificates()
	if err != nil {
		return 0, err
	}

	var updated int64
	for i := range certs {
		cert := &certs[i]
		if cert.Document == nil || cert.Document.DateOfBirth == nil {
			logger.Warn("Skipping certificate without a full date of birth", map[string]interface{}{
				"certificate_id": cert.ID,
				"document_id":    cert.DocumentID,
			})
			continue
		}

		age := util.AgeAt(*cert.Document.DateOfBirth, referenceDate)
		fields, err := GenerateCertificateFields(age, referenceDate)
		if err != nil {
			logger.Warn("Skipping certificate outside the class table", map[string]interface{}{
				"certificate_id": cert.ID,
				"age":            age,
			})
			continue
		}

		cert.ClassName = fields.ClassName
		cert.SessionYear = fields.SessionYear
		cert.Roll = fields.Roll
		cert.CertificateDate = fields.CertificateDate
		if err := s.documentRepo.UpdateCertificate(cert); err != nil {
			return updated, err
		}
		updated++
	}

	logger.Info("Certificate recompute completed", map[string]interface{}{
		"total":   len(certs),
		"updated": updated,
	})
	return updated, nil
}
