package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partydeck/partydeck-go/internal/api"
	"github.com/partydeck/partydeck-go/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "partydeck-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/partydeck")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	projectRoot := findProjectRoot(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	// Load card pools
	err = app.DeckService.LoadFromDir(context.Background(), filepath.Join(projectRoot, "data"))
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		SessionService: app.SessionService,
		RoomController: app.RoomController,
		HubManager:     app.HubManager,
		ReportService:  app.ReportService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type cardResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Blanks  int    `json:"blanks"`
}

type roomViewResponse struct {
	Room struct {
		Code    string `json:"code"`
		OwnerID string `json:"owner_id"`
		Players []struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Score    int    `json:"score"`
		} `json:"players"`
		Settings struct {
			PointsToWin int `json:"points_to_win"`
			MaxPlayers  int `json:"max_players"`
			HandSize    int `json:"hand_size"`
		} `json:"settings"`
		GameState     string        `json:"game_state"`
		Phase         string        `json:"phase"`
		CurrentPrompt *cardResponse `json:"current_prompt"`
		JudgeID       string        `json:"judge_id"`
		Submissions   int           `json:"submissions"`
	} `json:"room"`
	PlayerID string         `json:"player_id"`
	Hand     []cardResponse `json:"hand"`
	Token    string         `json:"token"`
}

type settingsResponse struct {
	PointsToWin int `json:"points_to_win"`
	MaxPlayers  int `json:"max_players"`
	HandSize    int `json:"hand_size"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_RoomCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create a room
	output, err := cli.run("room", "create", "--name", "Alice")
	require.NoError(t, err, "output: %s", output)

	var created roomViewResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Len(t, created.Room.Code, 5)
	assert.Equal(t, "lobby", created.Room.GameState)
	assert.NotEmpty(t, created.Token)
	code := created.Room.Code
	token := created.Token

	// Get room (token was saved to the token file by create)
	output, err = cli.run("room", "get", code)
	require.NoError(t, err, "output: %s", output)

	var fetched roomViewResponse
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Equal(t, code, fetched.Room.Code)
	assert.Equal(t, created.PlayerID, fetched.PlayerID)

	// Update settings
	output, err = cli.runWithToken(token, "room", "settings", code, "--hand-size", "7")
	require.NoError(t, err, "output: %s", output)

	var settings settingsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &settings))
	assert.Equal(t, 7, settings.HandSize)

	// Chat
	output, err = cli.runWithToken(token, "room", "chat", code, "hello everyone")
	require.NoError(t, err, "output: %s", output)

	// Leave
	output, err = cli.runWithToken(token, "room", "leave", code)
	require.NoError(t, err, "output: %s", output)

	var msgResp messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msgResp))
	assert.Contains(t, msgResp.Message, "Left room")
}

func TestCLI_FullRoundFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)
	cliBob := &cliRunner{
		binaryPath: cli.binaryPath,
		serverURL:  cli.serverURL,
		tokenFile:  filepath.Join(t.TempDir(), "token-bob"),
	}
	cliCarol := &cliRunner{
		binaryPath: cli.binaryPath,
		serverURL:  cli.serverURL,
		tokenFile:  filepath.Join(t.TempDir(), "token-carol"),
	}

	// Alice creates a room, Bob and Carol join
	output, err := cli.run("room", "create", "--name", "Alice")
	require.NoError(t, err, "output: %s", output)
	var alice roomViewResponse
	require.NoError(t, json.Unmarshal([]byte(output), &alice))
	code := alice.Room.Code
	t.Logf("Created room: %s", code)

	output, err = cliBob.run("room", "join", code, "--name", "Bob")
	require.NoError(t, err, "output: %s", output)
	var bob roomViewResponse
	require.NoError(t, json.Unmarshal([]byte(output), &bob))

	output, err = cliCarol.run("room", "join", code, "--name", "Carol")
	require.NoError(t, err, "output: %s", output)
	var carol roomViewResponse
	require.NoError(t, json.Unmarshal([]byte(output), &carol))
	assert.Len(t, carol.Room.Players, 3)

	// Alice starts the game
	output, err = cli.runWithToken(alice.Token, "game", "start", code)
	require.NoError(t, err, "output: %s", output)
	var started roomViewResponse
	require.NoError(t, json.Unmarshal([]byte(output), &started))
	assert.Equal(t, "in-game", started.Room.GameState)
	assert.Equal(t, "submitting", started.Room.Phase)
	require.NotNil(t, started.Room.CurrentPrompt)

	// The creator judges the first round
	require.Equal(t, alice.PlayerID, started.Room.JudgeID)

	blanks := started.Room.CurrentPrompt.Blanks
	if blanks == 0 {
		blanks = 1
	}

	// Bob and Carol each submit from their hands
	for _, p := range []roomViewResponse{bob, carol} {
		output, err = cli.runWithToken(p.Token, "room", "get", code)
		require.NoError(t, err, "output: %s", output)
		var view roomViewResponse
		require.NoError(t, json.Unmarshal([]byte(output), &view))
		require.GreaterOrEqual(t, len(view.Hand), blanks)

		args := []string{"game", "submit", code}
		for i := 0; i < blanks; i++ {
			args = append(args, view.Hand[i].ID)
		}
		output, err = cli.runWithToken(p.Token, args...)
		require.NoError(t, err, "output: %s", output)
	}

	// Room moved to revealing; the judge reveals both submissions
	for i := 0; i < 2; i++ {
		output, err = cli.runWithToken(alice.Token, "game", "reveal", code)
		require.NoError(t, err, "reveal %d: %s", i, output)
	}

	// Judge awards the round to Bob
	output, err = cli.runWithToken(alice.Token, "game", "winner", code, bob.PlayerID)
	require.NoError(t, err, "output: %s", output)

	// Bob has a point
	output, err = cli.runWithToken(alice.Token, "room", "get", code)
	require.NoError(t, err, "output: %s", output)
	var final roomViewResponse
	require.NoError(t, json.Unmarshal([]byte(output), &final))
	for _, p := range final.Room.Players {
		if p.ID == bob.PlayerID {
			assert.Equal(t, 1, p.Score)
		}
	}
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Get room without auth
	output, err := cli.run("room", "get", "ABCDE")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "unauthorized")

	// Join non-existent room
	output, err = cli.run("room", "join", "ZZZZZ", "--name", "Alice")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}
