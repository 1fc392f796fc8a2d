package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"buildsite/internal/adapter/http/handlers/mocks"
	"buildsite/internal/domain/entities"
	"buildsite/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMilestoneHandler_CreateMilestone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		h := NewMilestoneHandler(uc)

		r := gin.New()
		r.POST("/v1/milestones", h.CreateMilestone)

		req := httptest.NewRequest(http.MethodPost, "/v1/milestones", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		h := NewMilestoneHandler(uc)

		r := gin.New()
		r.POST("/v1/milestones", h.CreateMilestone)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Milestone{})).
			Return(entities.Milestone{ID: "ms-1", ProjectID: "prj-1", Title: "Foundation", ProgressStatus: entities.MilestoneStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/milestones", bytes.NewBufferString(`{"project_id":"prj-1","title":"Foundation"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["progress_status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMilestoneHandler_TransitionMilestone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc *mocks.MockIMilestoneUseCase) *gin.Engine {
		h := NewMilestoneHandler(uc)
		r := gin.New()
		r.PATCH("/v1/milestones/:milestone_id/status", h.TransitionMilestone)
		return r
	}

	t.Run("invalid transition maps to 409 with details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Transition(gomock.Any(), "ms-1", entities.MilestoneStatusInProgress, "").
			Return(entities.Milestone{}, &usecase.InvalidTransitionError{
				EntityKind: "milestone", EntityID: "ms-1", Current: "pending", Requested: "in_progress",
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/milestones/ms-1/status", bytes.NewBufferString(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "INVALID_TRANSITION" {
			t.Fatalf("unexpected code: %s", w.Body.String())
		}
		if body.Details["current"] != "pending" || body.Details["requested"] != "in_progress" {
			t.Fatalf("unexpected details: %s", w.Body.String())
		}
	})

	t.Run("missing evidence maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Transition(gomock.Any(), "ms-1", entities.MilestoneStatusCompleted, "").
			Return(entities.Milestone{}, usecase.ErrMissingEvidence)

		req := httptest.NewRequest(http.MethodPatch, "/v1/milestones/ms-1/status", bytes.NewBufferString(`{"status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unsettled payment maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Transition(gomock.Any(), "ms-1", entities.MilestoneStatusPaymentConfirmed, "").
			Return(entities.Milestone{}, usecase.ErrInitialPaymentNotSettled)

		req := httptest.NewRequest(http.MethodPatch, "/v1/milestones/ms-1/status", bytes.NewBufferString(`{"status":"payment_confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("completion with photo succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestoneUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Transition(gomock.Any(), "ms-1", entities.MilestoneStatusCompleted, "photos/ms-1-final.jpg").
			Return(entities.Milestone{ID: "ms-1", ProgressStatus: entities.MilestoneStatusCompleted, CompletionPhoto: "photos/ms-1-final.jpg"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/milestones/ms-1/status",
			bytes.NewBufferString(`{"status":"completed","completion_photo":"photos/ms-1-final.jpg"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapMilestoneError(t *testing.T) {
	if got := mapMilestoneError(usecase.ErrInvalidTargetStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapMilestoneError(usecase.ErrMilestoneNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapMilestoneError(usecase.ErrMissingEvidence); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapMilestoneError(usecase.ErrInitialPaymentNotSettled); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapMilestoneError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
