package pipeline

// Status is the pipeline run state. A run only moves along the edges in
// the transition table; any stage failure moves it to StatusError, which
// is terminal.
type Status string

const (
	StatusStarted        Status = "started"
	StatusAuthenticated  Status = "authenticated"
	StatusIngested       Status = "ingested"
	StatusEmailIngested  Status = "email_ingested"
	StatusEmailExtracted Status = "email_extracted"
	StatusExtracted      Status = "extracted"
	StatusCompleted      Status = "completed"
	StatusPartialSuccess Status = "partial_success"
	StatusEncoded        Status = "encoded"
	StatusPlanned        Status = "planned"
	StatusError          Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// Terminal reports whether the run can advance no further.
func (s Status) Terminal() bool {
	return s == StatusPlanned || s == StatusError
}

var transitions = map[Status][]Status{
	StatusStarted:        {StatusAuthenticated},
	StatusAuthenticated:  {StatusIngested},
	StatusIngested:       {StatusEmailIngested, StatusExtracted},
	StatusEmailIngested:  {StatusEmailExtracted},
	StatusEmailExtracted: {StatusExtracted},
	StatusExtracted:      {StatusCompleted, StatusPartialSuccess},
	StatusCompleted:      {StatusEncoded},
	StatusPartialSuccess: {StatusEncoded},
	StatusEncoded:        {StatusPlanned},
}

// CanTransition reports whether moving from s to next is a legal edge.
// Every non-terminal state may transition to StatusError.
func (s Status) CanTransition(next Status) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusError {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
