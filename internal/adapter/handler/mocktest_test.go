package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	mocktestDTO "github.com/talentlens/talentlens/internal/adapter/dto/mocktest"
	"github.com/talentlens/talentlens/internal/adapter/repository"
	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/infrastructure/cache"
	"github.com/talentlens/talentlens/internal/infrastructure/http/middleware"
	"github.com/talentlens/talentlens/internal/usecase/mocktest"
	pkgvalidator "github.com/talentlens/talentlens/pkg/validator"
)

type attemptEnvelope struct {
	Data mocktestDTO.AttemptResponse `json:"data"`
}

func newMockTestFixture(t *testing.T) (*echo.Echo, *MockTest, mocktest.Service) {
	t.Helper()
	store := cache.NewMemoryStore()
	t.Cleanup(store.Close)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	svc := mocktest.NewService(repository.NewMemoryAttemptRepository(), store, 15, zap.NewNop())
	return e, NewMockTest(svc, zap.NewNop()), svc
}

func submitRequest(e *echo.Echo, userID uuid.UUID, attemptID uuid.UUID, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/v1/mock-tests/attempts/"+attemptID.String()+"/submit", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(attemptID.String())
	c.Set(middleware.UserIDContextKey, userID)
	return c, rec
}

func TestMockTestSubmit_ViolationsInBody(t *testing.T) {
	e, h, svc := newMockTestFixture(t)
	userID := uuid.New()

	attempt, _, err := svc.StartAttempt(context.Background(), userID)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	payload := mocktestDTO.SubmitAttemptRequest{
		Answers: []mocktestDTO.AnswerRequest{
			{QuestionID: attempt.Questions[0].ID.String(), SelectedIndex: attempt.Questions[0].CorrectIndex},
		},
		Violations: &mocktestDTO.ViolationsRequest{Attention: 2, TabSwitch: 1},
	}
	body, _ := json.Marshal(payload)

	c, rec := submitRequest(e, userID, attempt.ID, body)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var env attemptEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Data.Violations.Attention != 2 || env.Data.Violations.TabSwitch != 1 {
		t.Fatalf("violations = %+v, want attention 2 tab_switch 1", env.Data.Violations)
	}
	if env.Data.SubmittedAt == nil {
		t.Fatal("submitted attempt must carry a submission time")
	}

	// The counters must also be persisted, not just echoed back.
	stored, err := svc.GetAttempt(context.Background(), attempt.ID)
	if err != nil {
		t.Fatalf("GetAttempt: %v", err)
	}
	if stored.Violations != (entities.AttemptViolations{Attention: 2, TabSwitch: 1}) {
		t.Fatalf("stored violations = %+v", stored.Violations)
	}
}

func TestMockTestSubmit_ViolationsMergeWithRecorded(t *testing.T) {
	e, h, svc := newMockTestFixture(t)
	userID := uuid.New()

	attempt, _, err := svc.StartAttempt(context.Background(), userID)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if err := svc.RecordViolations(context.Background(), attempt.ID, 1, 0); err != nil {
		t.Fatalf("RecordViolations: %v", err)
	}

	body, _ := json.Marshal(mocktestDTO.SubmitAttemptRequest{
		Violations: &mocktestDTO.ViolationsRequest{Attention: 1, TabSwitch: 3},
	})
	c, rec := submitRequest(e, userID, attempt.ID, body)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	stored, err := svc.GetAttempt(context.Background(), attempt.ID)
	if err != nil {
		t.Fatalf("GetAttempt: %v", err)
	}
	if stored.Violations != (entities.AttemptViolations{Attention: 2, TabSwitch: 3}) {
		t.Fatalf("violations must add to earlier counters, got %+v", stored.Violations)
	}
}

func TestMockTestSubmit_ViolationsOptional(t *testing.T) {
	e, h, svc := newMockTestFixture(t)
	userID := uuid.New()

	attempt, _, err := svc.StartAttempt(context.Background(), userID)
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	body, _ := json.Marshal(mocktestDTO.SubmitAttemptRequest{})
	c, rec := submitRequest(e, userID, attempt.ID, body)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	stored, err := svc.GetAttempt(context.Background(), attempt.ID)
	if err != nil {
		t.Fatalf("GetAttempt: %v", err)
	}
	if stored.Violations != (entities.AttemptViolations{}) {
		t.Fatalf("violations should stay zero without a payload, got %+v", stored.Violations)
	}
}

func TestMockTestSubmit_OtherUsersAttemptForbidden(t *testing.T) {
	e, h, svc := newMockTestFixture(t)

	attempt, _, err := svc.StartAttempt(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	body, _ := json.Marshal(mocktestDTO.SubmitAttemptRequest{})
	c, rec := submitRequest(e, uuid.New(), attempt.ID, body)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403: %s", rec.Code, rec.Body.String())
	}
}
