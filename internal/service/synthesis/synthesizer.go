package synthesis

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
	"github.com/protektiq/lifeflow/internal/infra/gentext"
	"github.com/protektiq/lifeflow/internal/infra/planner"
	"github.com/protektiq/lifeflow/internal/observability/metrics"
	"github.com/protektiq/lifeflow/internal/observability/tracing"
	"github.com/protektiq/lifeflow/internal/service/learning"
	"github.com/protektiq/lifeflow/internal/service/normalize"
	"github.com/protektiq/lifeflow/internal/service/score"
)

const (
	defaultEnergyLevel = 3
	excerptLimit       = 200
)

// genericActionPlan is the deterministic fallback when no steps were
// proposed and text generation is unavailable.
var genericActionPlan = []string{
	"Review the task details",
	"Gather what you need",
	"Complete the task",
}

// candidate is one eligible task annotated with its working score and
// adjusted window for this planning pass.
type candidate struct {
	task       normalize.Task
	fitScore   float64
	adjustment domain.Adjustment
	start      time.Time
	end        time.Time
}

// Synthesizer turns the day's eligible tasks into a stored daily plan. It
// scores and adjusts candidates, consults the generative planning service,
// and reconciles the proposal so every eligible task is planned.
type Synthesizer struct {
	planRepo        domain.PlanRepository
	energyRepo      domain.EnergyRepository
	scorer          *score.Engine
	analyzer        *learning.Analyzer
	adjuster        *learning.Adjuster
	planner         planner.Service
	generator       gentext.Generator
	primaryProfile  string
	fallbackProfile string
	metrics         *metrics.PipelineMetrics
}

// NewSynthesizer wires the synthesizer. generator and pipelineMetrics may
// be nil; the synthesizer degrades to deterministic fallbacks without
// them.
func NewSynthesizer(
	planRepo domain.PlanRepository,
	energyRepo domain.EnergyRepository,
	scorer *score.Engine,
	analyzer *learning.Analyzer,
	adjuster *learning.Adjuster,
	plannerService planner.Service,
	generator gentext.Generator,
	primaryProfile, fallbackProfile string,
	pipelineMetrics *metrics.PipelineMetrics,
) *Synthesizer {
	return &Synthesizer{
		planRepo:        planRepo,
		energyRepo:      energyRepo,
		scorer:          scorer,
		analyzer:        analyzer,
		adjuster:        adjuster,
		planner:         plannerService,
		generator:       generator,
		primaryProfile:  primaryProfile,
		fallbackProfile: fallbackProfile,
		metrics:         pipelineMetrics,
	}
}

// Synthesize builds and atomically stores the plan for (userID, planDate)
// from the normalized eligible tasks. Every eligible task appears in the
// stored plan exactly once.
func (s *Synthesizer) Synthesize(ctx context.Context, userID uuid.UUID, planDate domain.Date, eligible []normalize.Task) (*domain.DailyPlan, error) {
	energy := s.energyLevel(ctx, userID, planDate)
	profile := s.analyzer.Analyze(ctx, userID)

	candidates := s.prepareCandidates(ctx, userID, planDate, eligible, energy, profile)

	plan := domain.NewDailyPlan(userID, planDate, energy)

	if len(candidates) == 0 {
		if err := s.planRepo.Replace(ctx, plan); err != nil {
			return nil, fmt.Errorf("failed to store empty plan: %w", err)
		}
		slog.InfoContext(ctx, "stored empty plan, no eligible tasks",
			slog.String("user_id", userID.String()),
			slog.String("plan_date", planDate.String()),
		)
		return plan, nil
	}

	proposed, err := s.propose(ctx, userID, planDate, candidates, energy, profile)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*candidate, len(candidates))
	for i := range candidates {
		byID[candidates[i].task.ID] = &candidates[i]
	}

	planned := make(map[uuid.UUID]bool, len(candidates))
	for _, p := range proposed {
		taskID, err := uuid.Parse(p.TaskID)
		if err != nil {
			slog.WarnContext(ctx, "dropping proposed entry with unparseable task id",
				slog.String("task_id", p.TaskID),
			)
			continue
		}
		cand, ok := byID[taskID]
		if !ok || planned[taskID] {
			slog.WarnContext(ctx, "dropping proposed entry not matching an eligible task",
				slog.String("task_id", p.TaskID),
			)
			continue
		}
		plan.AddTask(s.entryFromProposal(ctx, planDate, cand, p))
		planned[taskID] = true
	}

	fallbackCount := 0
	for i := range candidates {
		cand := &candidates[i]
		if planned[cand.task.ID] {
			continue
		}
		plan.AddTask(s.fallbackEntry(ctx, cand))
		planned[cand.task.ID] = true
		fallbackCount++
	}

	if err := s.planRepo.Replace(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to store plan: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordTasksPlanned(ctx, len(plan.Tasks))
		s.metrics.RecordFallbackEntries(ctx, fallbackCount)
	}

	slog.InfoContext(ctx, "synthesized daily plan",
		slog.String("user_id", userID.String()),
		slog.String("plan_date", planDate.String()),
		slog.Int("planned", len(plan.Tasks)),
		slog.Int("reconciled", fallbackCount),
	)

	return plan, nil
}

func (s *Synthesizer) energyLevel(ctx context.Context, userID uuid.UUID, planDate domain.Date) int {
	level, err := s.energyRepo.Get(ctx, userID, planDate)
	if err != nil {
		slog.WarnContext(ctx, "failed to read energy level, using default",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return defaultEnergyLevel
	}
	if level == 0 {
		return defaultEnergyLevel
	}
	return level
}

// prepareCandidates scores and adjusts every eligible task, then orders
// them critical first, urgent second, fit score descending, preserving
// ingestion order among ties.
func (s *Synthesizer) prepareCandidates(ctx context.Context, userID uuid.UUID, planDate domain.Date, eligible []normalize.Task, energy int, profile domain.SnoozeProfile) []candidate {
	candidates := make([]candidate, 0, len(eligible))
	for _, task := range eligible {
		adj := s.adjuster.Adjust(ctx, userID, &task.RawTask, profile)

		fit := s.scorer.Score(&task.RawTask, energy, nil) * adj.Multiplier
		if fit > 1.0 {
			fit = 1.0
		}

		start, end := task.StartTime, task.EndTime
		if adj.ShiftedStart != nil {
			start = *adj.ShiftedStart
		}
		if adj.ShiftedEnd != nil {
			end = *adj.ShiftedEnd
		}
		if task.AllDay {
			start, end = planDate.StartUTC(), planDate.EndUTC()
		}

		candidates = append(candidates, candidate{
			task:       task,
			fitScore:   fit,
			adjustment: adj,
			start:      start,
			end:        end,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := &candidates[i], &candidates[j]
		if a.task.IsCritical != b.task.IsCritical {
			return a.task.IsCritical
		}
		if a.task.IsUrgent != b.task.IsUrgent {
			return a.task.IsUrgent
		}
		return a.fitScore > b.fitScore
	})

	return candidates
}

// propose calls the planning service with the primary profile and retries
// once against the fallback profile when the call or the result parse
// fails.
func (s *Synthesizer) propose(ctx context.Context, userID uuid.UUID, planDate domain.Date, candidates []candidate, energy int, profile domain.SnoozeProfile) ([]planner.ProposedTask, error) {
	req := s.buildRequest(userID, planDate, candidates, energy, profile)

	proposed, primaryErr := s.proposeWith(ctx, s.primaryProfile, req)
	if primaryErr == nil {
		return proposed, nil
	}

	slog.WarnContext(ctx, "primary planner profile failed, retrying with fallback",
		slog.String("profile", s.primaryProfile),
		slog.String("error", primaryErr.Error()),
	)

	proposed, fallbackErr := s.proposeWith(ctx, s.fallbackProfile, req)
	if fallbackErr != nil {
		return nil, fmt.Errorf("planner failed on both profiles: %w", fallbackErr)
	}
	return proposed, nil
}

func (s *Synthesizer) proposeWith(ctx context.Context, profile string, req *planner.Request) ([]planner.ProposedTask, error) {
	spanCtx, span := tracing.StartPlannerCallSpan(ctx, profile, len(req.Tasks))
	defer span.End()

	startedAt := time.Now()
	proposal, err := s.planner.Propose(spanCtx, profile, req)
	if s.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		s.metrics.RecordPlannerCall(ctx, profile, outcome, time.Since(startedAt))
	}
	if err != nil {
		tracing.RecordStageResult(span, "error", err)
		return nil, err
	}

	if proposal.Structured() {
		tracing.RecordStageResult(span, "structured", nil)
		return proposal.Tasks, nil
	}

	proposed, err := extractProposedTasks(proposal.Text)
	if err != nil {
		tracing.RecordStageResult(span, "extraction_failed", err)
		return nil, fmt.Errorf("failed to extract plan from text response: %w", err)
	}
	tracing.RecordStageResult(span, "extracted", nil)
	return proposed, nil
}

func (s *Synthesizer) buildRequest(userID uuid.UUID, planDate domain.Date, candidates []candidate, energy int, profile domain.SnoozeProfile) *planner.Request {
	inputs := make([]planner.TaskInput, 0, len(candidates))
	for i := range candidates {
		cand := &candidates[i]
		inputs = append(inputs, planner.TaskInput{
			TaskID:          cand.task.ID.String(),
			Title:           cand.task.Title,
			Description:     excerpt(cand.task.Description),
			StartTime:       cand.start,
			EndTime:         cand.end,
			PriorityScore:   cand.fitScore,
			IsCritical:      cand.task.IsCritical,
			IsUrgent:        cand.task.IsUrgent,
			AllDay:          cand.task.AllDay,
			AdjustmentNotes: cand.adjustment.Reasons,
		})
	}

	return &planner.Request{
		UserID:        userID.String(),
		PlanDate:      planDate.String(),
		EnergyLevel:   energy,
		SnoozeSummary: snoozeSummary(profile),
		Tasks:         inputs,
	}
}

// entryFromProposal converts one proposed entry, normalizing its window:
// all-day tasks span the whole plan date, and a proposal landing on the
// wrong calendar date is shifted back preserving wall-clock and duration.
func (s *Synthesizer) entryFromProposal(ctx context.Context, planDate domain.Date, cand *candidate, p planner.ProposedTask) domain.DailyPlanTask {
	start, end := p.PredictedStart.UTC(), p.PredictedEnd.UTC()

	if cand.task.AllDay {
		start, end = planDate.StartUTC(), planDate.EndUTC()
	} else {
		if !end.After(start) {
			end = start.Add(cand.end.Sub(cand.start))
		}
		if !domain.DateOf(start).Equal(planDate) {
			duration := end.Sub(start)
			start = planDate.At(start)
			end = start.Add(duration)
			slog.DebugContext(ctx, "shifted proposed entry onto plan date",
				slog.String("task_id", cand.task.ID.String()),
				slog.Time("predicted_start", start),
			)
		}
	}

	title := p.Title
	if title == "" {
		title = cand.task.Title
	}

	return domain.DailyPlanTask{
		TaskID:         cand.task.ID,
		Title:          title,
		PredictedStart: start,
		PredictedEnd:   end,
		PriorityScore:  cand.fitScore,
		IsCritical:     cand.task.IsCritical,
		IsUrgent:       cand.task.IsUrgent,
		ActionPlan:     s.actionPlan(ctx, &cand.task.RawTask, p.ActionPlan),
		Description:    p.Description,
	}
}

// fallbackEntry plans an eligible task the proposal missed, using the
// adjusted window and the priority-map score alone.
func (s *Synthesizer) fallbackEntry(ctx context.Context, cand *candidate) domain.DailyPlanTask {
	return domain.DailyPlanTask{
		TaskID:         cand.task.ID,
		Title:          cand.task.Title,
		PredictedStart: cand.start,
		PredictedEnd:   cand.end,
		PriorityScore:  cand.task.Priority.Score(),
		IsCritical:     cand.task.IsCritical,
		IsUrgent:       cand.task.IsUrgent,
		ActionPlan:     s.actionPlan(ctx, &cand.task.RawTask, nil),
		Description:    excerpt(cand.task.Description),
	}
}

// actionPlan keeps proposed steps, otherwise tries text generation, and
// finally falls back to the generic steps.
func (s *Synthesizer) actionPlan(ctx context.Context, task *domain.RawTask, proposed []string) []string {
	if len(proposed) > 0 {
		return proposed
	}

	if s.generator != nil {
		prompt := fmt.Sprintf("List three short action steps for the task %q, one per line.", task.Title)
		text, err := s.generator.Generate(ctx, prompt)
		if err == nil {
			if steps := splitSteps(text); len(steps) > 0 {
				return steps
			}
		} else {
			slog.WarnContext(ctx, "action step generation failed, using generic steps",
				slog.String("task_id", task.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	steps := make([]string, len(genericActionPlan))
	copy(steps, genericActionPlan)
	return steps
}

func splitSteps(text string) []string {
	lines := strings.Split(text, "\n")
	steps := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*0123456789. "))
		if line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}

func snoozeSummary(profile domain.SnoozeProfile) string {
	if profile.Total == 0 {
		return ""
	}

	busiest, count := -1, 0
	for hour, n := range profile.ByHour {
		if n > count || (n == count && hour < busiest) {
			busiest, count = hour, n
		}
	}

	summary := fmt.Sprintf("user snoozed %d tasks recently, most often those starting around %02d:00", profile.Total, busiest)
	if profile.AverageDurationMinutes > 0 {
		summary += fmt.Sprintf(", snoozing for %.0f minutes on average", profile.AverageDurationMinutes)
	}
	return summary
}

func excerpt(s string) string {
	if len(s) <= excerptLimit {
		return s
	}
	return s[:excerptLimit]
}
