package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/prediction-pool/middleware"
	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/scoring"
	"github.com/Dosada05/prediction-pool/services"
	"github.com/Dosada05/prediction-pool/storage"
)

type fakeAuthService struct {
	registered services.RegisterInput
	user       *models.User
	err        error
}

func (f *fakeAuthService) Register(_ context.Context, input services.RegisterInput) (*models.User, error) {
	f.registered = input
	return f.user, f.err
}

func (f *fakeAuthService) Login(_ context.Context, _ models.Credentials) (*models.User, error) {
	return f.user, f.err
}

type fakeLeaderboardService struct {
	entries   []models.LeaderboardEntry
	prizes    *scoring.Prizes
	breakdown *scoring.MatchBreakdown
	history   []models.HistoryEntry
	matchID   string
	username  string
	err       error
}

func (f *fakeLeaderboardService) Get(context.Context) ([]models.LeaderboardEntry, error) {
	return f.entries, f.err
}

func (f *fakeLeaderboardService) Prizes(context.Context) (*scoring.Prizes, error) {
	return f.prizes, f.err
}

func (f *fakeLeaderboardService) Breakdown(_ context.Context, matchID string) (*scoring.MatchBreakdown, error) {
	f.matchID = matchID
	return f.breakdown, f.err
}

func (f *fakeLeaderboardService) History(_ context.Context, username string) ([]models.HistoryEntry, error) {
	f.username = username
	return f.history, f.err
}

func (f *fakeLeaderboardService) Recompute(context.Context, string) error { return f.err }

type fakeExportService struct {
	result *storage.UploadResult
	err    error
}

func (f *fakeExportService) ExportLeaderboard(context.Context) (*storage.UploadResult, error) {
	return f.result, f.err
}

type fakeMatchService struct {
	matches []models.Match
	score   models.Score
	cleared string
	err     error
}

func (f *fakeMatchService) List(context.Context) ([]models.Match, error) { return f.matches, f.err }

func (f *fakeMatchService) Create(_ context.Context, input services.CreateMatchInput) (*models.Match, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Match{ID: input.ID, TeamA: input.TeamA, TeamB: input.TeamB, Group: input.Group, Date: input.Date}, nil
}

func (f *fakeMatchService) SetResult(_ context.Context, matchID string, score models.Score) (*models.Match, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.score = score
	return &models.Match{ID: matchID, OfficialScoreA: &score.A, OfficialScoreB: &score.B}, nil
}

func (f *fakeMatchService) ClearResult(_ context.Context, matchID string) (*models.Match, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.cleared = matchID
	return &models.Match{ID: matchID}, nil
}

type fakePredictionService struct {
	username string
	matchID  string
	score    models.PartialScore
	mine     map[string]models.PartialScore
	err      error
}

func (f *fakePredictionService) Submit(_ context.Context, username, matchID string, score models.PartialScore) error {
	f.username, f.matchID, f.score = username, matchID, score
	return f.err
}

func (f *fakePredictionService) ListMine(_ context.Context, username string) (map[string]models.PartialScore, error) {
	f.username = username
	return f.mine, f.err
}

type fakeExtraBetService struct {
	username string
	saved    models.ExtraBets
	bets     models.ExtraBets
	err      error
}

func (f *fakeExtraBetService) Get(_ context.Context, username string) (*models.ExtraBets, error) {
	f.username = username
	if f.err != nil {
		return nil, f.err
	}
	return &f.bets, nil
}

func (f *fakeExtraBetService) Save(_ context.Context, username string, bets models.ExtraBets) (*models.ExtraBets, error) {
	f.username, f.saved = username, bets
	if f.err != nil {
		return nil, f.err
	}
	return &bets, nil
}

type fakeNotificationService struct {
	input services.NotifyInput
	err   error
}

func (f *fakeNotificationService) Notify(_ context.Context, input services.NotifyInput) (*models.Notification, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return &models.Notification{ID: "n1", Title: input.Title, Message: input.Message, Type: input.Type}, nil
}

type fakeStandingsService struct {
	username string
	err      error
}

func (f *fakeStandingsService) ForUser(_ context.Context, username string) (*services.StandingsView, error) {
	f.username = username
	if f.err != nil {
		return nil, f.err
	}
	return &services.StandingsView{Username: username}, nil
}

type fakeUserService struct {
	username string
	paid     bool
	err      error
}

func (f *fakeUserService) List(context.Context) ([]models.User, error) {
	return []models.User{{Username: "ana"}}, f.err
}

func (f *fakeUserService) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{Username: username}, nil
}

func (f *fakeUserService) SetPaid(_ context.Context, username string, paid bool) (*models.User, error) {
	f.username, f.paid = username, paid
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{Username: username, Paid: paid}, nil
}

type fakeConfigService struct {
	rules    []models.ScoringRule
	settings models.PoolSettings
	err      error
}

func (f *fakeConfigService) Get(context.Context) (*models.PoolConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PoolConfig{Rules: f.rules, Settings: f.settings}, nil
}

func (f *fakeConfigService) UpdateRules(_ context.Context, rules []models.ScoringRule) (*models.PoolConfig, error) {
	f.rules = rules
	return f.Get(context.Background())
}

func (f *fakeConfigService) UpdateSettings(_ context.Context, settings models.PoolSettings) (*models.PoolConfig, error) {
	f.settings = settings
	return f.Get(context.Background())
}

// serve sends the request through a router with a single route so chi URL
// params resolve. A non-empty username is attached as the authenticated user.
func serve(t *testing.T, method, pattern, target, body, username string, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if username != "" {
		req = req.WithContext(middleware.WithClaims(req.Context(), username, models.RoleUser))
	}

	router := chi.NewRouter()
	router.MethodFunc(method, pattern, h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
