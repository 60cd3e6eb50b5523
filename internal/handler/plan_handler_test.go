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
	"github.com/protektiq/lifeflow/internal/infra/planner"
	"github.com/protektiq/lifeflow/internal/service/learning"
	"github.com/protektiq/lifeflow/internal/service/normalize"
	"github.com/protektiq/lifeflow/internal/service/score"
	"github.com/protektiq/lifeflow/internal/service/synthesis"
)

type planFixture struct {
	taskRepo     *domain.MockTaskRepository
	planRepo     *domain.MockPlanRepository
	energyRepo   *domain.MockEnergyRepository
	feedbackRepo *domain.MockFeedbackRepository
	planner      *planner.MockService
	router       *gin.Engine
}

func newPlanFixture(t *testing.T) *planFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	taskRepo := domain.NewMockTaskRepository(ctrl)
	planRepo := domain.NewMockPlanRepository(ctrl)
	energyRepo := domain.NewMockEnergyRepository(ctrl)
	feedbackRepo := domain.NewMockFeedbackRepository(ctrl)
	plannerService := planner.NewMockService(ctrl)

	analyzer := learning.NewAnalyzer(feedbackRepo)
	adjuster := learning.NewAdjuster(feedbackRepo, analyzer)
	synth := synthesis.NewSynthesizer(
		planRepo,
		energyRepo,
		score.NewEngine(),
		analyzer,
		adjuster,
		plannerService,
		nil,
		"daily-planner",
		"daily-planner-lite",
		nil,
	)

	h := NewPlanHandler(taskRepo, planRepo, normalize.NewNormalizer(), synth)

	r := gin.New()
	r.POST("/api/v1/plans/generate", h.HandleGeneratePlan)
	r.GET("/api/v1/plans/:date", h.HandleGetPlan)

	return &planFixture{
		taskRepo:     taskRepo,
		planRepo:     planRepo,
		energyRepo:   energyRepo,
		feedbackRepo: feedbackRepo,
		planner:      plannerService,
		router:       r,
	}
}

func TestHandleGetPlan(t *testing.T) {
	f := newPlanFixture(t)
	userID := uuid.New()
	planDate := domain.NewDate(2026, time.March, 10)

	plan := domain.NewDailyPlan(userID, planDate, 4)
	plan.AddTask(domain.DailyPlanTask{
		TaskID:         uuid.New(),
		Title:          "standup",
		PredictedStart: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		PredictedEnd:   time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC),
		PriorityScore:  0.5,
	})
	f.planRepo.EXPECT().GetActive(gomock.Any(), userID, planDate).Return(plan, nil)

	w := performJSON(t, f.router, http.MethodGet, "/api/v1/plans/2026-03-10?user_id="+userID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["plan_date"] != "2026-03-10" {
		t.Errorf("plan_date = %v, want 2026-03-10", body["plan_date"])
	}
	if body["energy_level"] != float64(4) {
		t.Errorf("energy_level = %v, want 4", body["energy_level"])
	}
	tasks, ok := body["tasks"].([]any)
	if !ok || len(tasks) != 1 {
		t.Fatalf("tasks = %v, want one entry", body["tasks"])
	}
}

func TestHandleGetPlanNotFound(t *testing.T) {
	f := newPlanFixture(t)
	userID := uuid.New()

	f.planRepo.EXPECT().
		GetActive(gomock.Any(), userID, domain.NewDate(2026, time.March, 10)).
		Return(nil, domain.ErrPlanNotFound)

	w := performJSON(t, f.router, http.MethodGet, "/api/v1/plans/2026-03-10?user_id="+userID.String(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHandleGetPlanBadDate(t *testing.T) {
	f := newPlanFixture(t)

	w := performJSON(t, f.router, http.MethodGet, "/api/v1/plans/march-10?user_id="+uuid.NewString(), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleGeneratePlanFromStoredTasks(t *testing.T) {
	f := newPlanFixture(t)
	userID := uuid.New()
	planDate := domain.NewDate(2026, time.March, 10)

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	rawData, _ := json.Marshal(domain.ProviderData{
		Start: domain.ProviderTime{DateTime: "2026-03-10T09:00:00"},
	})
	task := domain.RawTask{
		ID:        uuid.New(),
		UserID:    userID,
		Source:    domain.SourceCalendar,
		Title:     "write report",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Priority:  domain.PriorityMedium,
		RawData:   rawData,
	}

	f.taskRepo.EXPECT().
		ListInWindow(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return([]domain.RawTask{task}, nil)
	f.energyRepo.EXPECT().Get(gomock.Any(), userID, planDate).Return(3, nil)
	f.feedbackRepo.EXPECT().ListSnoozes(gomock.Any(), userID).Return(nil, nil).AnyTimes()
	f.feedbackRepo.EXPECT().CountTaskSnoozes(gomock.Any(), userID, gomock.Any()).Return(0, nil).AnyTimes()

	f.planner.EXPECT().
		Propose(gomock.Any(), "daily-planner", gomock.Any()).
		Return(&planner.Proposal{Tasks: []planner.ProposedTask{{
			TaskID:         task.ID.String(),
			Title:          task.Title,
			PredictedStart: start,
			PredictedEnd:   start.Add(time.Hour),
		}}}, nil)

	f.planRepo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil)

	w := performJSON(t, f.router, http.MethodPost, "/api/v1/plans/generate", map[string]string{
		"user_id":   userID.String(),
		"plan_date": "2026-03-10",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	body := decodeBody(t, w)
	tasks, ok := body["tasks"].([]any)
	if !ok || len(tasks) != 1 {
		t.Fatalf("tasks = %v, want one entry", body["tasks"])
	}
}
