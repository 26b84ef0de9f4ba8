package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mehedihb/kagojghor-backend/internal/app/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipeline struct {
	result  *service.ExtractionResult
	err     error
	gotData []byte
}

func (f *fakePipeline) ExtractFromPDF(data []byte) (*service.ExtractionResult, error) {
	f.gotData = data
	return f.result, f.err
}

func (f *fakePipeline) ExtractFromText(text string) (*service.ExtractionResult, error) {
	return f.result, f.err
}

type fakeSourceStorage struct {
	data   map[string][]byte
	gotKey string
}

func (f *fakeSourceStorage) Download(ctx context.Context, key string) ([]byte, error) {
	f.gotKey = key
	data, ok := f.data[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return data, nil
}

func setupExtractionControllerTest(pipeline *fakePipeline, store *fakeSourceStorage) *gin.Engine {
	controller := NewExtractionController(pipeline, store)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/extractions/stored", controller.ExtractStored)
	return router
}

func postStored(t *testing.T, router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/extractions/stored", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExtractionController_ExtractStored_Success(t *testing.T) {
	pipeline := &fakePipeline{
		result: &service.ExtractionResult{
			Fields: service.ExtractedFields{NameEn: "Rahim Uddin", BirthYear: 2010},
			Stage:  service.StageComplete,
		},
	}
	store := &fakeSourceStorage{data: map[string][]byte{
		"source-pdfs/abc.pdf": []byte("%PDF-1.4 stored"),
	}}
	router := setupExtractionControllerTest(pipeline, store)

	w := postStored(t, router, map[string]interface{}{"key": "source-pdfs/abc.pdf"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "source-pdfs/abc.pdf", store.gotKey)
	// The stored object's bytes feed the same pipeline as a direct upload
	assert.Equal(t, []byte("%PDF-1.4 stored"), pipeline.gotData)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	fields := response["fields"].(map[string]interface{})
	assert.Equal(t, "Rahim Uddin", fields["name_en"])
	assert.Equal(t, "complete", response["stage"])
}

func TestExtractionController_ExtractStored_MissingKey(t *testing.T) {
	router := setupExtractionControllerTest(&fakePipeline{}, &fakeSourceStorage{})

	w := postStored(t, router, map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_REQUIRED")
}

func TestExtractionController_ExtractStored_UnknownKey(t *testing.T) {
	store := &fakeSourceStorage{data: map[string][]byte{}}
	router := setupExtractionControllerTest(&fakePipeline{}, store)

	w := postStored(t, router, map[string]interface{}{"key": "source-pdfs/missing.pdf"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "EXTRACT_SOURCE_NOT_FOUND")
}

func TestExtractionController_ExtractStored_PipelineErrors(t *testing.T) {
	store := &fakeSourceStorage{data: map[string][]byte{
		"source-pdfs/abc.pdf": []byte("%PDF-1.4 stored"),
	}}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"throttled", service.ErrThrottled, http.StatusTooManyRequests, "EXTRACT_THROTTLED"},
		{"extraction failed", service.ErrExtractionFailed, http.StatusUnprocessableEntity, "EXTRACT_FAILED"},
		{"invalid source", service.ErrInvalidSource, http.StatusUnprocessableEntity, "EXTRACT_INVALID_SOURCE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupExtractionControllerTest(&fakePipeline{err: tt.err}, store)

			w := postStored(t, router, map[string]interface{}{"key": "source-pdfs/abc.pdf"})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
		})
	}
}
