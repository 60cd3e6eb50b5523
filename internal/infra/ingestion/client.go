package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
	"github.com/protektiq/lifeflow/internal/observability/logging"
	"github.com/protektiq/lifeflow/internal/observability/tracing"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) CalendarTasks(ctx context.Context, userID uuid.UUID, date domain.Date) ([]domain.RawTask, error) {
	return c.fetch(ctx, userID, date, "calendar", domain.SourceCalendar)
}

func (c *Client) EmailTasks(ctx context.Context, userID uuid.UUID, date domain.Date) ([]domain.RawTask, error) {
	return c.fetch(ctx, userID, date, "emails", domain.SourceEmail)
}

func (c *Client) fetch(ctx context.Context, userID uuid.UUID, date domain.Date, kind string, source domain.Source) ([]domain.RawTask, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = fmt.Sprintf("/api/v1/users/%s/%s", userID, kind)
	q := u.Query()
	q.Set("date", date.String())
	u.RawQuery = q.Encode()

	slog.DebugContext(ctx, "fetching tasks from ingestion service",
		slog.String("url", u.String()),
		slog.String("source", source.String()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to ingestion service",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "unexpected status code from ingestion service",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var decoded tasksResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	tasks := make([]domain.RawTask, 0, len(decoded.Tasks))
	for _, record := range decoded.Tasks {
		tasks = append(tasks, record.toDomain(userID, source))
	}

	slog.DebugContext(ctx, "fetched tasks from ingestion service",
		slog.String("source", source.String()),
		slog.Int("count", len(tasks)),
	)

	return tasks, nil
}
