package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
	"github.com/protektiq/lifeflow/internal/service/pipeline"
)

type fakeRunner struct {
	run *pipeline.Run
	err error

	gotUserID   uuid.UUID
	gotPlanDate domain.Date
}

func (f *fakeRunner) Run(_ context.Context, userID uuid.UUID, planDate domain.Date) (*pipeline.Run, error) {
	f.gotUserID = userID
	f.gotPlanDate = planDate
	return f.run, f.err
}

func syncRouter(runner PipelineRunner) *gin.Engine {
	r := gin.New()
	r.POST("/api/v1/sync", NewSyncHandler(runner).HandleSync)
	return r
}

func TestHandleSync(t *testing.T) {
	userID := uuid.New()

	runner := &fakeRunner{
		run: &pipeline.Run{
			ID:              uuid.New(),
			UserID:          userID,
			Status:          pipeline.StatusPlanned,
			CalendarCreated: 3,
			PlannedTasks:    3,
		},
	}
	router := syncRouter(runner)

	w := performJSON(t, router, http.MethodPost, "/api/v1/sync", map[string]string{
		"user_id":   userID.String(),
		"plan_date": "2026-03-10",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["status"] != string(pipeline.StatusPlanned) {
		t.Errorf("status = %v, want %q", body["status"], pipeline.StatusPlanned)
	}
	if body["planned_tasks"] != float64(3) {
		t.Errorf("planned_tasks = %v, want 3", body["planned_tasks"])
	}
	if runner.gotUserID != userID {
		t.Errorf("runner called with user %s, want %s", runner.gotUserID, userID)
	}
	if runner.gotPlanDate.String() != "2026-03-10" {
		t.Errorf("runner called with date %s, want 2026-03-10", runner.gotPlanDate)
	}
}

func TestHandleSyncValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing user_id", map[string]string{"plan_date": "2026-03-10"}},
		{"malformed user_id", map[string]string{"user_id": "not-a-uuid", "plan_date": "2026-03-10"}},
		{"malformed plan_date", map[string]string{"user_id": uuid.NewString(), "plan_date": "10/03/2026"}},
	}

	router := syncRouter(&fakeRunner{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(t, router, http.MethodPost, "/api/v1/sync", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleSyncPipelineError(t *testing.T) {
	runner := &fakeRunner{
		run: &pipeline.Run{Status: pipeline.StatusError, Messages: []string{"ingestion failed"}},
		err: errors.New("ingestion failed"),
	}
	router := syncRouter(runner)

	w := performJSON(t, router, http.MethodPost, "/api/v1/sync", map[string]string{
		"user_id":   uuid.NewString(),
		"plan_date": "2026-03-10",
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	body := decodeBody(t, w)
	if body["error"] != "pipeline_error" {
		t.Errorf("error = %v, want pipeline_error", body["error"])
	}
	if _, ok := body["run"]; !ok {
		t.Error("expected partial run summary in error response")
	}
}
