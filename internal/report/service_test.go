package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partydeck/partydeck-go/internal/testutil"
)

func TestRelaySendsWebhookPayload(t *testing.T) {
	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	svc := New(server.URL, server.Client(), testutil.NopLogger())
	err := svc.Relay(context.Background(), Report{
		Message:  "the judge button vanished",
		RoomCode: "ABCDE",
		Username: "alice",
	})
	require.NoError(t, err)

	assert.True(t, strings.Contains(received.Content, "alice"))
	assert.True(t, strings.Contains(received.Content, "ABCDE"))
	assert.True(t, strings.Contains(received.Content, "the judge button vanished"))
}

func TestRelayReportsWebhookFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := New(server.URL, server.Client(), testutil.NopLogger())
	err := svc.Relay(context.Background(), Report{Message: "broken"})
	require.ErrorIs(t, err, ErrRelayFailed)
}

func TestRelayDisabledWithoutWebhook(t *testing.T) {
	svc := New("", nil, testutil.NopLogger())
	assert.False(t, svc.Enabled())
	require.NoError(t, svc.Relay(context.Background(), Report{Message: "anything"}))
}
