package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shinystarlight00/papi2/internal/app/models"
	"github.com/shinystarlight00/papi2/internal/app/models/dto"
	"github.com/shinystarlight00/papi2/internal/pkg/apperrors"
)

// stubExpertService returns canned results and records the last call.
type stubExpertService struct {
	listResult []*models.Expert
	readResult *models.Expert
	err        error

	lastChapterID int64
	lastRecno     int64
	lastFields    *dto.ExpertFields
}

func (s *stubExpertService) ListExperts(ctx context.Context, chapterID int64) ([]*models.Expert, error) {
	s.lastChapterID = chapterID
	return s.listResult, s.err
}

func (s *stubExpertService) ReadExpert(ctx context.Context, chapterID, recno int64) (*models.Expert, error) {
	s.lastChapterID, s.lastRecno = chapterID, recno
	return s.readResult, s.err
}

func (s *stubExpertService) CreateExpert(ctx context.Context, chapterID int64, fields *dto.ExpertFields) error {
	s.lastChapterID, s.lastFields = chapterID, fields
	return s.err
}

func (s *stubExpertService) UpdateExpert(ctx context.Context, chapterID, recno int64, fields *dto.ExpertFields) error {
	s.lastChapterID, s.lastRecno, s.lastFields = chapterID, recno, fields
	return s.err
}

func (s *stubExpertService) DeleteExpert(ctx context.Context, chapterID, recno int64) error {
	s.lastChapterID, s.lastRecno = chapterID, recno
	return s.err
}

func newExpertRouter(svc *stubExpertService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ec := NewExpertController(svc)

	experts := router.Group("/v1/experts")
	experts.GET("/list", ec.ListExperts)
	experts.POST("/read", ec.ReadExpert)
	experts.POST("/create", ec.CreateExpert)
	experts.POST("/update", ec.UpdateExpert)
	experts.POST("/delete", ec.DeleteExpert)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected HTTP 200, got %d", w.Code)
	}
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.StatusResponse {
	t.Helper()
	var resp dto.StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestListExpertsReturnsBareArray(t *testing.T) {
	svc := &stubExpertService{
		listResult: []*models.Expert{
			{ID: 1, ChapterID: 7, Name: "Dr. Smith"},
			{ID: 2, ChapterID: 7, Name: "HelpBot"},
		},
	}
	router := newExpertRouter(svc)

	w := doRequest(t, router, http.MethodGet, "/v1/experts/list?chapterID=7")

	// Success is a bare JSON array, not a status envelope.
	if !strings.HasPrefix(strings.TrimSpace(w.Body.String()), "[") {
		t.Fatalf("expected a JSON array, got %q", w.Body.String())
	}
	var experts []models.Expert
	if err := json.Unmarshal(w.Body.Bytes(), &experts); err != nil {
		t.Fatalf("failed to decode array: %v", err)
	}
	if len(experts) != 2 {
		t.Errorf("expected 2 experts, got %d", len(experts))
	}
	if svc.lastChapterID != 7 {
		t.Errorf("expected chapterID 7, got %d", svc.lastChapterID)
	}
}

func TestListExpertsEmptyChapterReportsNotFound(t *testing.T) {
	svc := &stubExpertService{listResult: []*models.Expert{}}
	router := newExpertRouter(svc)

	w := doRequest(t, router, http.MethodGet, "/v1/experts/list?chapterID=3")

	resp := decodeEnvelope(t, w)
	if resp.Status != dto.StatusNotFound {
		t.Errorf("expected status not_found, got %q", resp.Status)
	}
}

func TestListExpertsMissingChapterID(t *testing.T) {
	router := newExpertRouter(&stubExpertService{})

	w := doRequest(t, router, http.MethodGet, "/v1/experts/list")

	resp := decodeEnvelope(t, w)
	if resp.Status != dto.StatusValidationError {
		t.Errorf("expected status validation_error, got %q", resp.Status)
	}
}

func TestReadExpertReturnsBareObject(t *testing.T) {
	svc := &stubExpertService{
		readResult: &models.Expert{ID: 3, ChapterID: 7, Name: "Athena"},
	}
	router := newExpertRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/v1/experts/read?chapterID=7&recno=3")

	var expert models.Expert
	if err := json.Unmarshal(w.Body.Bytes(), &expert); err != nil {
		t.Fatalf("failed to decode expert: %v", err)
	}
	if expert.Name != "Athena" {
		t.Errorf("unexpected expert: %+v", expert)
	}
	if svc.lastRecno != 3 {
		t.Errorf("expected recno 3, got %d", svc.lastRecno)
	}
}

func TestReadExpertNotFoundStaysHTTP200(t *testing.T) {
	svc := &stubExpertService{err: apperrors.ErrNotFound}
	router := newExpertRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/v1/experts/read?chapterID=7&recno=404")

	resp := decodeEnvelope(t, w)
	if resp.Status != dto.StatusNotFound {
		t.Errorf("expected status not_found, got %q", resp.Status)
	}
}

func TestCreateExpertDoesNotEchoID(t *testing.T) {
	svc := &stubExpertService{}
	router := newExpertRouter(svc)

	w := doRequest(t, router, http.MethodPost,
		"/v1/experts/create?chapterID=7&name="+url.QueryEscape("Dr. Smith")+"&price=25.5&type=real")

	resp := decodeEnvelope(t, w)
	if resp.Status != dto.StatusOK {
		t.Fatalf("expected status ok, got %q", resp.Status)
	}
	if resp.ChapterID != nil || resp.Data != nil {
		t.Errorf("create must not echo ids or data: %q", w.Body.String())
	}

	if svc.lastFields == nil || svc.lastFields.Name == nil || *svc.lastFields.Name != "Dr. Smith" {
		t.Fatalf("name did not reach the service: %+v", svc.lastFields)
	}
	if svc.lastFields.Price == nil || *svc.lastFields.Price != 25.5 {
		t.Errorf("price did not reach the service: %+v", svc.lastFields.Price)
	}
	if svc.lastFields.Description != nil {
		t.Errorf("absent description must stay nil, got %q", *svc.lastFields.Description)
	}
}

func TestCreateExpertFormBodyParams(t *testing.T) {
	svc := &stubExpertService{}
	router := newExpertRouter(svc)

	form := url.Values{}
	form.Set("chapterID", "7")
	form.Set("name", "HelpBot")
	form.Set("type", "bot")

	req := httptest.NewRequest(http.MethodPost, "/v1/experts/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected HTTP 200, got %d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Status != dto.StatusOK {
		t.Fatalf("expected status ok, got %q: %s", resp.Status, w.Body.String())
	}
	if svc.lastChapterID != 7 {
		t.Errorf("form chapterID did not reach the service: %d", svc.lastChapterID)
	}
}

func TestCreateExpertBadNumericParam(t *testing.T) {
	svc := &stubExpertService{}
	router := newExpertRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/v1/experts/create?chapterID=7&name=x&price=abc")

	resp := decodeEnvelope(t, w)
	if resp.Status != dto.StatusValidationError {
		t.Errorf("expected status validation_error, got %q", resp.Status)
	}
	if svc.lastFields != nil {
		t.Error("service must not be reached with an unparseable parameter")
	}
}

func TestUpdateExpertEmptyPayload(t *testing.T) {
	svc := &stubExpertService{err: apperrors.ErrNoFieldsToUpdate}
	router := newExpertRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/v1/experts/update?chapterID=7&recno=1")

	resp := decodeEnvelope(t, w)
	if resp.Status != dto.StatusValidationError {
		t.Errorf("expected status validation_error, got %q", resp.Status)
	}
	if resp.Message != "no fields to update" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestUpdateExpertSuccess(t *testing.T) {
	svc := &stubExpertService{}
	router := newExpertRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/v1/experts/update?chapterID=7&recno=2&ranking=4.5")

	resp := decodeEnvelope(t, w)
	if resp.Status != dto.StatusOK {
		t.Fatalf("expected status ok, got %q", resp.Status)
	}
	if svc.lastFields.Ranking == nil || *svc.lastFields.Ranking != 4.5 {
		t.Errorf("ranking did not reach the service: %+v", svc.lastFields.Ranking)
	}
}

func TestDeleteExpertInternalErrorHidesDetails(t *testing.T) {
	svc := &stubExpertService{err: fmt.Errorf("pq: connection refused")}
	router := newExpertRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/v1/experts/delete?chapterID=7&recno=1")

	resp := decodeEnvelope(t, w)
	if resp.Status != dto.StatusInternalError {
		t.Errorf("expected status internal_error, got %q", resp.Status)
	}
	if strings.Contains(resp.Message, "connection refused") {
		t.Errorf("driver error leaked into the response: %q", resp.Message)
	}
}

func TestDeleteExpertSuccess(t *testing.T) {
	svc := &stubExpertService{}
	router := newExpertRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/v1/experts/delete?chapterID=7&recno=2")

	resp := decodeEnvelope(t, w)
	if resp.Status != dto.StatusOK {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
	if svc.lastChapterID != 7 || svc.lastRecno != 2 {
		t.Errorf("expected key (7,2), got (%d,%d)", svc.lastChapterID, svc.lastRecno)
	}
}
