package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ErrRelayFailed means the webhook rejected or never received the report
var ErrRelayFailed = errors.New("bug report relay failed")

// Report is one player-filed bug report
type Report struct {
	Message  string `json:"message"`
	RoomCode string `json:"room_code,omitempty"`
	Username string `json:"username,omitempty"`
}

// Service relays player bug reports to a chat webhook. With no webhook
// configured the service is disabled and reports are only logged.
type Service struct {
	webhookURL string
	client     *http.Client
	logger     *slog.Logger
}

// New creates a new report Service
func New(webhookURL string, client *http.Client, logger *slog.Logger) *Service {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Service{
		webhookURL: webhookURL,
		client:     client,
		logger:     logger,
	}
}

// Enabled reports whether a webhook is configured
func (s *Service) Enabled() bool {
	return s.webhookURL != ""
}

// webhookPayload is the Discord-compatible message body
type webhookPayload struct {
	Content string `json:"content"`
}

// Relay forwards the report to the webhook
func (s *Service) Relay(ctx context.Context, report Report) error {
	s.logger.Info("bug report received",
		slog.String("room_code", report.RoomCode),
		slog.String("username", report.Username),
	)

	if !s.Enabled() {
		return nil
	}

	content := "Bug report"
	if report.Username != "" {
		content += " from " + report.Username
	}
	if report.RoomCode != "" {
		content += " (room " + report.RoomCode + ")"
	}
	content += ":\n" + report.Message

	body, err := json.Marshal(webhookPayload{Content: content})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRelayFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: webhook returned %d", ErrRelayFailed, resp.StatusCode)
	}
	return nil
}
