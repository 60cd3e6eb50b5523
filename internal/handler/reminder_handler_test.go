package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/protektiq/lifeflow/internal/domain"
	"github.com/protektiq/lifeflow/internal/service/normalize"
)

func reminderRouter(t *testing.T) (*domain.MockTaskRepository, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	taskRepo := domain.NewMockTaskRepository(ctrl)

	h := NewReminderHandler(taskRepo, normalize.NewNormalizer())
	r := gin.New()
	r.GET("/api/v1/reminders/:date", h.HandleGetReminders)
	return taskRepo, r
}

func TestHandleGetReminders(t *testing.T) {
	taskRepo, router := reminderRouter(t)
	userID := uuid.New()

	reminderData, _ := json.Marshal(domain.ProviderData{
		EventType: "reminder",
		Start:     domain.ProviderTime{DateTime: "2026-03-10T08:00:00"},
	})
	timedData, _ := json.Marshal(domain.ProviderData{
		Start: domain.ProviderTime{DateTime: "2026-03-10T09:00:00"},
	})

	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	tasks := []domain.RawTask{
		{
			ID:        uuid.New(),
			UserID:    userID,
			Source:    domain.SourceCalendar,
			Title:     "take medication",
			StartTime: start,
			EndTime:   start.Add(time.Minute),
			RawData:   reminderData,
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Source:    domain.SourceCalendar,
			Title:     "write report",
			StartTime: start.Add(time.Hour),
			EndTime:   start.Add(2 * time.Hour),
			RawData:   timedData,
		},
	}
	taskRepo.EXPECT().
		ListInWindow(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return(tasks, nil)

	w := performJSON(t, router, http.MethodGet, "/api/v1/reminders/2026-03-10?user_id="+userID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	body := decodeBody(t, w)
	reminders, ok := body["reminders"].([]any)
	if !ok || len(reminders) != 1 {
		t.Fatalf("reminders = %v, want exactly the explicit reminder", body["reminders"])
	}

	first := reminders[0].(map[string]any)
	if first["title"] != "take medication" {
		t.Errorf("title = %v, want the reminder task", first["title"])
	}
}

func TestHandleGetRemindersBadUser(t *testing.T) {
	_, router := reminderRouter(t)

	w := performJSON(t, router, http.MethodGet, "/api/v1/reminders/2026-03-10?user_id=someone", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
