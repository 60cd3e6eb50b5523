package ingestion

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
)

// taskRecord is the wire shape of one ingested item.
type taskRecord struct {
	SourceRef   string          `json:"source_ref"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartTime   time.Time       `json:"start_time"`
	EndTime     time.Time       `json:"end_time"`
	Attendees   []string        `json:"attendees"`
	Location    string          `json:"location"`
	Priority    string          `json:"priority"`
	IsCritical  bool            `json:"is_critical"`
	IsUrgent    bool            `json:"is_urgent"`
	IsSpam      bool            `json:"is_spam"`
	SpamReason  string          `json:"spam_reason"`
	SpamScore   float64         `json:"spam_score"`
	RawData     json.RawMessage `json:"raw_data"`
}

type tasksResponse struct {
	Tasks []taskRecord `json:"tasks"`
	Count int          `json:"count"`
}

func (r *taskRecord) toDomain(userID uuid.UUID, source domain.Source) domain.RawTask {
	return domain.RawTask{
		UserID:      userID,
		Source:      source,
		SourceRef:   r.SourceRef,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime.UTC(),
		EndTime:     r.EndTime.UTC(),
		Attendees:   r.Attendees,
		Location:    r.Location,
		Priority:    domain.Priority(r.Priority),
		IsCritical:  r.IsCritical,
		IsUrgent:    r.IsUrgent,
		IsSpam:      r.IsSpam,
		SpamReason:  r.SpamReason,
		SpamScore:   r.SpamScore,
		RawData:     r.RawData,
	}
}
