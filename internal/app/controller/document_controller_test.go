package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mehedihb/kagojghor-backend/internal/app/model"
	"github.com/mehedihb/kagojghor-backend/internal/app/repository"
	"github.com/mehedihb/kagojghor-backend/internal/app/service"
	"github.com/mehedihb/kagojghor-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDocumentControllerTest(t *testing.T) (*DocumentController, *gin.Engine, *gorm.DB, *model.Institution) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	documentRepo := repository.NewDocumentRepository(testDB)
	institutionRepo := repository.NewInstitutionRepository(testDB)
	documentService := service.NewDocumentService(documentRepo, institutionRepo)
	billService := service.NewBillService(documentRepo)
	certificateService := service.NewCertificateService(documentRepo)
	controller := NewDocumentController(documentService, billService, certificateService)

	institution := &model.Institution{
		NameBn: "শাপলা উচ্চ বিদ্যালয়",
		NameEn: "Shapla High School",
		EIIN:   "112233",
	}
	testDB.Create(institution)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/documents/print", controller.Print)
	router.PUT("/documents/print-status", controller.PrintStatus)
	router.POST("/documents", controller.Create)
	router.POST("/documents/:id/bill/recharges/regenerate", controller.RegenerateRecharges)

	return controller, router, testDB, institution
}

// createDocumentFixture opens a file through the service so attachments
// get generated the same way the handlers see them.
func createDocumentFixture(t *testing.T, testDB *gorm.DB, institutionID uint, withCert, withBill bool) *model.Document {
	t.Helper()

	documentRepo := repository.NewDocumentRepository(testDB)
	institutionRepo := repository.NewInstitutionRepository(testDB)
	documentService := service.NewDocumentService(documentRepo, institutionRepo)

	dob := time.Date(2012, 4, 10, 0, 0, 0, 0, time.UTC)
	input := service.CreateDocumentInput{
		NameBn:      "রাহিম উদ্দিন",
		FatherName:  "করিম উদ্দিন",
		DateOfBirth: &dob,
	}
	if withCert {
		input.Certificate = &service.CertificateRequest{InstitutionID: institutionID}
	}
	if withBill {
		input.Bill = &service.BillRequest{HolderName: "করিম উদ্দিন"}
	}

	doc, err := documentService.Create(input)
	require.NoError(t, err)
	return doc
}

func TestDocumentController_Create_Success(t *testing.T) {
	_, router, _, institution := setupDocumentControllerTest(t)

	body := map[string]interface{}{
		"name_bn":       "সুমাইয়া আক্তার",
		"father_name":   "আব্দুল মালেক",
		"date_of_birth": "2013-07-01T00:00:00Z",
		"certificate":   map[string]interface{}{"institution_id": institution.ID},
		"bill":          map[string]interface{}{"holder_name": "আব্দুল মালেক"},
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/documents", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	doc := response["document"].(map[string]interface{})
	assert.NotEmpty(t, doc["file_no"])
	assert.NotNil(t, doc["certificate"])
	assert.NotNil(t, doc["electricity_bill"])
}

func TestDocumentController_Create_MissingBirthYear(t *testing.T) {
	_, router, _, _ := setupDocumentControllerTest(t)

	body := map[string]interface{}{
		"name_bn": "সুমাইয়া আক্তার",
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/documents", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_REQUIRED")
}

func TestDocumentController_Create_UnknownInstitution(t *testing.T) {
	_, router, _, _ := setupDocumentControllerTest(t)

	body := map[string]interface{}{
		"name_bn":       "সুমাইয়া আক্তার",
		"date_of_birth": "2013-07-01T00:00:00Z",
		"certificate":   map[string]interface{}{"institution_id": 9999},
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/documents", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "INSTITUTION_NOT_FOUND")
}

func TestDocumentController_Print_MixedSelection(t *testing.T) {
	_, router, testDB, institution := setupDocumentControllerTest(t)

	withCert := createDocumentFixture(t, testDB, institution.ID, true, false)
	withoutCert := createDocumentFixture(t, testDB, institution.ID, false, true)

	url := "/documents/print?kind=certificate&ids=" +
		uintToString(withCert.ID) + "," + uintToString(withoutCert.ID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(1), response["affected_count"])
	assert.Equal(t, float64(1), response["skipped_count"])
	docs := response["documents"].([]interface{})
	assert.Len(t, docs, 1)

	// The batch is forced to printed on the way out
	var cert model.Certificate
	require.NoError(t, testDB.Where("document_id = ?", withCert.ID).First(&cert).Error)
	assert.Equal(t, model.PrintStatusPrinted, cert.PrintStatus)
}

func TestDocumentController_Print_NothingEligible(t *testing.T) {
	_, router, testDB, institution := setupDocumentControllerTest(t)

	billOnly := createDocumentFixture(t, testDB, institution.ID, false, true)

	url := "/documents/print?kind=certificate&ids=" + uintToString(billOnly.ID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Not an error, the caller just has nothing to render
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "PRINT_NOTHING_ELIGIBLE", response["code"])
	assert.Equal(t, float64(0), response["affected_count"])
}

func TestDocumentController_Print_InvalidKind(t *testing.T) {
	_, router, _, _ := setupDocumentControllerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/documents/print?kind=passport&ids=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PRINT_INVALID_KIND")
}

func TestDocumentController_Print_MissingIDs(t *testing.T) {
	_, router, _, _ := setupDocumentControllerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/documents/print?kind=certificate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_REQUIRED")
}

func TestDocumentController_PrintStatus_Toggle(t *testing.T) {
	_, router, testDB, institution := setupDocumentControllerTest(t)

	doc := createDocumentFixture(t, testDB, institution.ID, false, true)

	body := map[string]interface{}{
		"kind":   "bill",
		"ids":    []uint{doc.ID},
		"action": "toggle",
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPut, "/documents/print-status", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, float64(1), response["affected_count"])

	var bill model.ElectricityBill
	require.NoError(t, testDB.Where("document_id = ?", doc.ID).First(&bill).Error)
	assert.Equal(t, model.PrintStatusPrinted, bill.PrintStatus)
}

func TestDocumentController_PrintStatus_InvalidAction(t *testing.T) {
	_, router, _, _ := setupDocumentControllerTest(t)

	body := map[string]interface{}{
		"kind":   "bill",
		"ids":    []uint{1},
		"action": "burn",
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPut, "/documents/print-status", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ইনপুট তথ্য সঠিক নয়")
}

func TestDocumentController_RegenerateRecharges_NoBill(t *testing.T) {
	_, router, testDB, institution := setupDocumentControllerTest(t)

	certOnly := createDocumentFixture(t, testDB, institution.ID, true, false)

	url := "/documents/" + uintToString(certOnly.ID) + "/bill/recharges/regenerate"
	req := httptest.NewRequest(http.MethodPost, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "DOCUMENT_NO_BILL")
}

func TestDocumentController_RegenerateRecharges_Success(t *testing.T) {
	_, router, testDB, institution := setupDocumentControllerTest(t)

	doc := createDocumentFixture(t, testDB, institution.ID, false, true)

	url := "/documents/" + uintToString(doc.ID) + "/bill/recharges/regenerate"
	req := httptest.NewRequest(http.MethodPost, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	bill := response["bill"].(map[string]interface{})
	recharges := bill["recharges"].([]interface{})
	assert.GreaterOrEqual(t, len(recharges), 5)
	assert.LessOrEqual(t, len(recharges), 20)
}

func uintToString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
