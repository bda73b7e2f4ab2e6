package initialize_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"ieltsim/backend/initialize"

	"github.com/stretchr/testify/require"
)

func buildTestApp(t *testing.T) *initialize.App {
	t.Helper()
	dir := t.TempDir()
	cfg := fmt.Sprintf(`server:
  host: 127.0.0.1
  port: 0
  db:
    driver: sqlite
    path: %q
  jwt:
    secret: test-secret
  admin:
    username: admin
    password: admin123
`, filepath.Join(dir, "test.db"))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	app, err := initialize.Build(cfgPath)
	require.NoError(t, err)
	return app
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

var answerKey = []int{2, 2, 2, 2, 0, 1, 2, 1, 1, 1, 0, 1, 1, 0, 0, 0, 1, 0, 2, 0, 0, 2, 0, 0, 0, 1, 2, 1, 0, 1}

func login(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[struct {
		Token string `json:"token"`
	}](t, rec)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	app := buildTestApp(t)
	rec := doJSON(t, app.Router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterLoginFlow(t *testing.T) {
	app := buildTestApp(t)

	rec := doJSON(t, app.Router, http.MethodPost, "/api/auth/register", "", map[string]string{"username": "alice", "password": "pw"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	reg := decode[struct {
		UserID uint `json:"userId"`
	}](t, rec)
	require.NotZero(t, reg.UserID)

	// Duplicate registration fails.
	rec = doJSON(t, app.Router, http.MethodPost, "/api/auth/register", "", map[string]string{"username": "alice", "password": "pw"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing fields fail.
	rec = doJSON(t, app.Router, http.MethodPost, "/api/auth/register", "", map[string]string{"username": "noone"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Wrong password fails.
	rec = doJSON(t, app.Router, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "alice", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	login(t, app.Router, "alice", "pw")
}

func TestQuestionsRequireAuthAndHideAnswers(t *testing.T) {
	app := buildTestApp(t)

	rec := doJSON(t, app.Router, http.MethodGet, "/api/test/questions", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	doJSON(t, app.Router, http.MethodPost, "/api/auth/register", "", map[string]string{"username": "bob", "password": "pw"})
	token := login(t, app.Router, "bob", "pw")

	rec = doJSON(t, app.Router, http.MethodGet, "/api/test/questions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	qs := decode[[]map[string]any](t, rec)
	require.Len(t, qs, 30)
	for _, q := range qs {
		require.NotContains(t, q, "correctAnswer")
	}

	rec = doJSON(t, app.Router, http.MethodGet, "/api/test/answers", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sols := decode[[]struct {
		ID            int `json:"id"`
		CorrectAnswer int `json:"correctAnswer"`
	}](t, rec)
	require.Len(t, sols, 30)
	for i, s := range sols {
		require.Equal(t, answerKey[i], s.CorrectAnswer)
	}
}

func TestSubmitAndHistory(t *testing.T) {
	app := buildTestApp(t)

	doJSON(t, app.Router, http.MethodPost, "/api/auth/register", "", map[string]string{"username": "carol", "password": "pw"})
	token := login(t, app.Router, "carol", "pw")

	rec := doJSON(t, app.Router, http.MethodPost, "/api/test/submit", token, map[string]any{"answers": answerKey})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sub := decode[struct {
		ResultID  uint    `json:"resultId"`
		Score     int     `json:"score"`
		BandScore float64 `json:"bandScore"`
		Total     int     `json:"total"`
	}](t, rec)
	require.Equal(t, 30, sub.Score)
	require.Equal(t, 9.0, sub.BandScore)
	require.Equal(t, 30, sub.Total)
	require.NotZero(t, sub.ResultID)

	// Malformed submission.
	rec = doJSON(t, app.Router, http.MethodPost, "/api/test/submit", token, map[string]any{"answers": nil})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Wrong-length answer arrays are rejected before grading.
	rec = doJSON(t, app.Router, http.MethodPost, "/api/test/submit", token, map[string]any{"answers": []int{2, 2, 2, 2, 0}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doJSON(t, app.Router, http.MethodPost, "/api/test/submit", token, map[string]any{"answers": append(append([]int{}, answerKey...), 1)})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Nothing from the rejected submissions reached storage.
	rec = doJSON(t, app.Router, http.MethodGet, "/api/test/history", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]any](t, rec), 1)

	rec = doJSON(t, app.Router, http.MethodGet, "/api/test/history", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	history := decode[[]struct {
		Score int `json:"score"`
	}](t, rec)
	require.Len(t, history, 1)
	require.Equal(t, 30, history[0].Score)

	rec = doJSON(t, app.Router, http.MethodGet, "/api/test/leaderboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	board := decode[[]struct {
		Username     string `json:"username"`
		HighestScore int    `json:"highestScore"`
	}](t, rec)
	require.Len(t, board, 1)
	require.Equal(t, "carol", board[0].Username)
	require.Equal(t, 30, board[0].HighestScore)
}

func TestAdminEndpoints(t *testing.T) {
	app := buildTestApp(t)

	doJSON(t, app.Router, http.MethodPost, "/api/auth/register", "", map[string]string{"username": "dave", "password": "pw"})
	userToken := login(t, app.Router, "dave", "pw")
	adminToken := login(t, app.Router, "admin", "admin123")

	// No token, wrong role.
	rec := doJSON(t, app.Router, http.MethodGet, "/api/admin/stats", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = doJSON(t, app.Router, http.MethodGet, "/api/admin/stats", userToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, app.Router, http.MethodGet, "/api/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[struct {
		TotalUsers int64 `json:"totalUsers"`
		TotalTests int64 `json:"totalTests"`
	}](t, rec)
	require.EqualValues(t, 1, stats.TotalUsers)
	require.EqualValues(t, 0, stats.TotalTests)

	rec = doJSON(t, app.Router, http.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	users := decode[[]struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	}](t, rec)
	require.Len(t, users, 1)
	require.Equal(t, "dave", users[0].Username)

	// Submit once so deletion has results to cascade over.
	rec = doJSON(t, app.Router, http.MethodPost, "/api/test/submit", userToken, map[string]any{"answers": answerKey})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, app.Router, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", users[0].ID), adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Gone from the user list, results gone with it.
	rec = doJSON(t, app.Router, http.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decode[[]any](t, rec))

	rec = doJSON(t, app.Router, http.MethodGet, "/api/admin/stats", adminToken, nil)
	stats = decode[struct {
		TotalUsers int64 `json:"totalUsers"`
		TotalTests int64 `json:"totalTests"`
	}](t, rec)
	require.EqualValues(t, 0, stats.TotalUsers)
	require.EqualValues(t, 0, stats.TotalTests)

	// The deleted user's token still parses, but their history is empty.
	rec = doJSON(t, app.Router, http.MethodGet, "/api/test/history", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decode[[]any](t, rec))

	rec = doJSON(t, app.Router, http.MethodDelete, "/api/admin/users/99999", adminToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
