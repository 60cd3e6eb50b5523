package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protektiq/lifeflow/internal/domain"
)

type taskModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index:idx_tasks_user_start"`
	Source      string
	SourceRef   string `gorm:"index"`
	Title       string
	Description string
	StartTime   time.Time `gorm:"index:idx_tasks_user_start"`
	EndTime     time.Time
	Attendees   string
	Location    string
	Priority    string
	IsCritical  bool
	IsUrgent    bool
	IsSpam      bool
	SpamReason  string
	SpamScore   float64
	RawData     []byte
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

func (taskModel) TableName() string { return "raw_tasks" }

type planModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index:idx_plans_user_date"`
	PlanDate    string    `gorm:"index:idx_plans_user_date"`
	Tasks       []byte
	EnergyLevel int
	Status      string `gorm:"index"`
	GeneratedAt time.Time
}

func (planModel) TableName() string { return "daily_plans" }

type feedbackModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID `gorm:"type:uuid;index"`
	TaskID                uuid.UUID `gorm:"type:uuid;index"`
	PlanID                *uuid.UUID
	Action                string
	SnoozeDurationMinutes *int
	FeedbackAt            time.Time
}

func (feedbackModel) TableName() string { return "task_feedback" }

type notificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	TaskID      uuid.UUID `gorm:"type:uuid;index"`
	PlanID      *uuid.UUID
	Type        string
	Message     string
	ScheduledAt time.Time
	SentAt      *time.Time
	Status      string
	CreatedAt   time.Time
}

func (notificationModel) TableName() string { return "notifications" }

type energyModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date   string    `gorm:"primaryKey"`
	Level  int
}

func (energyModel) TableName() string { return "energy_levels" }

// Migrate creates or updates the schema for all repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&taskModel{},
		&planModel{},
		&feedbackModel{},
		&notificationModel{},
		&energyModel{},
	)
}

func taskToModel(task *domain.RawTask) (*taskModel, error) {
	attendees, err := json.Marshal(task.Attendees)
	if err != nil {
		return nil, ErrInvalidTaskData
	}

	id := task.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := task.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return &taskModel{
		ID:          id,
		UserID:      task.UserID,
		Source:      task.Source.String(),
		SourceRef:   task.SourceRef,
		Title:       task.Title,
		Description: task.Description,
		StartTime:   task.StartTime.UTC(),
		EndTime:     task.EndTime.UTC(),
		Attendees:   string(attendees),
		Location:    task.Location,
		Priority:    string(task.Priority),
		IsCritical:  task.IsCritical,
		IsUrgent:    task.IsUrgent,
		IsSpam:      task.IsSpam,
		SpamReason:  task.SpamReason,
		SpamScore:   task.SpamScore,
		RawData:     task.RawData,
		Completed:   task.Completed,
		CompletedAt: task.CompletedAt,
		CreatedAt:   createdAt,
	}, nil
}

func taskToDomain(model *taskModel) (*domain.RawTask, error) {
	var attendees []string
	if model.Attendees != "" {
		if err := json.Unmarshal([]byte(model.Attendees), &attendees); err != nil {
			return nil, ErrInvalidTaskData
		}
	}

	return &domain.RawTask{
		ID:          model.ID,
		UserID:      model.UserID,
		Source:      domain.Source(model.Source),
		SourceRef:   model.SourceRef,
		Title:       model.Title,
		Description: model.Description,
		StartTime:   model.StartTime.UTC(),
		EndTime:     model.EndTime.UTC(),
		Attendees:   attendees,
		Location:    model.Location,
		Priority:    domain.Priority(model.Priority),
		IsCritical:  model.IsCritical,
		IsUrgent:    model.IsUrgent,
		IsSpam:      model.IsSpam,
		SpamReason:  model.SpamReason,
		SpamScore:   model.SpamScore,
		RawData:     model.RawData,
		Completed:   model.Completed,
		CompletedAt: model.CompletedAt,
		CreatedAt:   model.CreatedAt,
	}, nil
}

func planToModel(plan *domain.DailyPlan) (*planModel, error) {
	tasks, err := json.Marshal(plan.Tasks)
	if err != nil {
		return nil, ErrInvalidPlanData
	}

	return &planModel{
		ID:          plan.ID,
		UserID:      plan.UserID,
		PlanDate:    plan.PlanDate.String(),
		Tasks:       tasks,
		EnergyLevel: plan.EnergyLevel,
		Status:      string(plan.Status),
		GeneratedAt: plan.GeneratedAt,
	}, nil
}

func planToDomain(model *planModel) (*domain.DailyPlan, error) {
	planDate, err := domain.ParseDate(model.PlanDate)
	if err != nil {
		return nil, ErrInvalidPlanData
	}

	var tasks []domain.DailyPlanTask
	if len(model.Tasks) > 0 {
		if err := json.Unmarshal(model.Tasks, &tasks); err != nil {
			return nil, ErrInvalidPlanData
		}
	}

	return &domain.DailyPlan{
		ID:          model.ID,
		UserID:      model.UserID,
		PlanDate:    planDate,
		Tasks:       tasks,
		EnergyLevel: model.EnergyLevel,
		Status:      domain.PlanStatus(model.Status),
		GeneratedAt: model.GeneratedAt,
	}, nil
}
