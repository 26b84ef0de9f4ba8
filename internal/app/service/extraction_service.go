package service

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mehedihb/kagojghor-backend/internal/ratelimit"
	"github.com/mehedihb/kagojghor-backend/pkg/logger"
	"github.com/mehedihb/kagojghor-backend/pkg/util"
)

var (
	ErrInvalidSource    = errors.New("source document is empty or unreadable")
	ErrThrottled        = errors.New("extraction fallback rate limit exceeded")
	ErrExtractionFailed = errors.New("could not extract applicant fields")
)

// ExtractedFields are the applicant attributes pulled from a source
// document. Name fields are routed by script: Bengali text lands in NameBn,
// everything else in NameEn.
type ExtractedFields struct {
	NameBn      string     `json:"name_bn,omitempty"`
	NameEn      string     `json:"name_en,omitempty"`
	FatherName  string     `json:"father_name,omitempty"`
	MotherName  string     `json:"mother_name,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	BirthYear   int        `json:"birth_year,omitempty"`
}

// hasName reports whether either name field is set.
func (f ExtractedFields) hasName() bool {
	return f.NameBn != "" || f.NameEn != ""
}

// hasBirth reports whether a full date or at least a year was found.
func (f ExtractedFields) hasBirth() bool {
	return f.DateOfBirth != nil || f.BirthYear != 0
}

// merge fills f's empty fields from other. Values already present win;
// the deterministic stage is trusted over the generative one.
func (f ExtractedFields) merge(other ExtractedFields) ExtractedFields {
	if f.NameBn == "" {
		f.NameBn = other.NameBn
	}
	if f.NameEn == "" {
		f.NameEn = other.NameEn
	}
	if f.FatherName == "" {
		f.FatherName = other.FatherName
	}
	if f.MotherName == "" {
		f.MotherName = other.MotherName
	}
	if f.DateOfBirth == nil {
		f.DateOfBirth = other.DateOfBirth
	}
	if f.BirthYear == 0 {
		f.BirthYear = other.BirthYear
	}
	return f
}

// StageOutcome classifies the deterministic stage's result against the
// required field set (a name and a birth date or year).
type StageOutcome string

const (
	StageComplete StageOutcome = "complete" // required fields all present
	StagePartial  StageOutcome = "partial"  // some labels matched, required set incomplete
	StageEmpty    StageOutcome = "empty"    // no label matched at all
)

// classify maps extracted fields to the stage outcome.
func classify(f ExtractedFields) StageOutcome {
	if f.hasName() && f.hasBirth() {
		return StageComplete
	}
	if f == (ExtractedFields{}) {
		return StageEmpty
	}
	return StagePartial
}

// ExtractionResult is the final pipeline output plus how it was produced.
type ExtractionResult struct {
	Fields       ExtractedFields `json:"fields"`
	Stage        StageOutcome    `json:"stage"`
	UsedFallback bool            `json:"used_fallback"`
}

// StructuredExtractor is the generative fallback: given raw document text
// it returns whatever applicant fields it can identify.
type StructuredExtractor interface {
	ExtractFields(text string) (ExtractedFields, error)
}

// Label patterns for the deterministic stage. Source documents put one
// "label : value" pair per line, in Bengali or English depending on the
// issuing office. Values run to end of line.
var (
	reFatherName = regexp.MustCompile(`(?im)^\s*(?:পিতার\s*নাম|পিতা|father(?:'?s)?\s*name|father)\s*[:：\-]\s*(.+?)\s*$`)
	reMotherName = regexp.MustCompile(`(?im)^\s*(?:মাতার\s*নাম|মাতা|mother(?:'?s)?\s*name|mother)\s*[:：\-]\s*(.+?)\s*$`)
	reName       = regexp.MustCompile(`(?im)^\s*(?:নাম|name)\s*[:：\-]\s*(.+?)\s*$`)
	reBirthDate  = regexp.MustCompile(`(?im)^\s*(?:জন্ম\s*তারিখ|date\s*of\s*birth|birth\s*date|dob)\s*[:：\-]\s*(.+?)\s*$`)
)

// birthDateLayouts are tried in order against the normalized value.
var birthDateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
	"02.01.2006",
	"2 January 2006",
	"January 2, 2006",
}

var reYearOnly = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// parseBirthDate understands the date formats seen on birth registration
// and NID printouts, Bengali digits included. A bare 4-digit year yields
// only BirthYear.
func parseBirthDate(raw string) (*time.Time, int) {
	normalized := strings.TrimSpace(util.ToLatinDigits(raw))

	for _, layout := range birthDateLayouts {
		if t, err := time.ParseInLocation(layout, normalized, util.Dhaka()); err == nil {
			return &t, t.Year()
		}
	}

	if m := reYearOnly.FindString(normalized); m != "" {
		year, _ := strconv.Atoi(m)
		return nil, year
	}
	return nil, 0
}

// ExtractDeterministic is stage one: pure pattern matching over the source
// text. Zero matching labels is an empty result, not an error.
func ExtractDeterministic(text string) ExtractedFields {
	var fields ExtractedFields

	if m := reName.FindStringSubmatch(text); m != nil {
		value := strings.TrimSpace(m[1])
		if util.ContainsBangla(value) {
			fields.NameBn = value
		} else {
			fields.NameEn = value
		}
	}
	if m := reFatherName.FindStringSubmatch(text); m != nil {
		fields.FatherName = strings.TrimSpace(m[1])
	}
	if m := reMotherName.FindStringSubmatch(text); m != nil {
		fields.MotherName = strings.TrimSpace(m[1])
	}
	if m := reBirthDate.FindStringSubmatch(text); m != nil {
		fields.DateOfBirth, fields.BirthYear = parseBirthDate(m[1])
	}

	return fields
}

type ExtractionService interface {
	ExtractFromPDF(data []byte) (*ExtractionResult, error)
	ExtractFromText(text string) (*ExtractionResult, error)
}

type extractionService struct {
	pdfReader PDFTextReader
	fallback  StructuredExtractor
	limiter   *ratelimit.SlidingWindow
}

func NewExtractionService(pdfReader PDFTextReader, fallback StructuredExtractor, limiter *ratelimit.SlidingWindow) ExtractionService {
	return &extractionService{
		pdfReader: pdfReader,
		fallback:  fallback,
		limiter:   limiter,
	}
}

func (s *extractionService) ExtractFromPDF(data []byte) (*ExtractionResult, error) {
	if len(data) == 0 {
		return nil, ErrInvalidSource
	}

	text, err := s.pdfReader.FirstPageText(data)
	if err != nil {
		logger.Warn("Failed to read source PDF", map[string]interface{}{
			"error": err.Error(),
			"size":  len(data),
		})
		return nil, ErrInvalidSource
	}
	return s.ExtractFromText(text)
}

// ExtractFromText runs the two-stage pipeline: the deterministic parser
// first, then the generative fallback only when the required field set
// (name plus birth date or year) is incomplete. The fallback path is
// guarded by the sliding-window rate limiter; a throttled call never
// reaches the generative extractor.
func (s *extractionService) ExtractFromText(text string) (*ExtractionResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidSource
	}

	fields := ExtractDeterministic(text)
	stage := classify(fields)

	result := &ExtractionResult{Fields: fields, Stage: stage}
	if stage == StageComplete || s.fallback == nil {
		return result, nil
	}

	if err := s.limiter.Allow(); err != nil {
		logger.Warn("Extraction fallback throttled", map[string]interface{}{
			"stage": stage,
		})
		return nil, ErrThrottled
	}

	generated, err := s.fallback.ExtractFields(text)
	if err != nil {
		logger.Error("Generative extraction failed", err, map[string]interface{}{
			"stage": stage,
		})
		return nil, ErrExtractionFailed
	}

	result.Fields = fields.merge(generated)
	result.UsedFallback = true

	// The fallback can come back empty-handed too. If the merged fields
	// still miss the required set, both stages have failed and the caller
	// gets a hard error, not a hollow success.
	if classify(result.Fields) != StageComplete {
		logger.Warn("Fallback produced no usable fields", map[string]interface{}{
			"stage_one": stage,
			"has_name":  result.Fields.hasName(),
			"has_birth": result.Fields.hasBirth(),
		})
		return nil, ErrExtractionFailed
	}

	logger.Info("Extraction completed with generative fallback", map[string]interface{}{
		"stage_one": stage,
		"has_name":  result.Fields.hasName(),
		"has_birth": result.Fields.hasBirth(),
	})
	return result, nil
}
