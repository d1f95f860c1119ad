package services

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/repositories"
	"github.com/Dosada05/prediction-pool/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int { return &v }

type fakeUserRepo struct {
	mu    sync.Mutex
	users []models.User
	err   error
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return repositories.ErrUserUsernameConflict
		}
		if u.Email == user.Email {
			return repositories.ErrUserEmailConflict
		}
	}
	user.ID = len(f.users) + 1
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) List(context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.users), nil
}

func (f *fakeUserRepo) SetPaid(_ context.Context, username string, paid bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].Username == username {
			f.users[i].Paid = paid
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	matches []models.Match
}

func (f *fakeMatchRepo) Create(_ context.Context, match *models.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.matches {
		if m.ID == match.ID {
			return repositories.ErrMatchIDConflict
		}
	}
	f.matches = append(f.matches, *match)
	return nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id string) (*models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.matches {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (f *fakeMatchRepo) List(context.Context) ([]models.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.matches), nil
}

func (f *fakeMatchRepo) SetResult(_ context.Context, _ repositories.SQLExecutor, id string, a, b *int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.matches {
		if f.matches[i].ID == id {
			f.matches[i].OfficialScoreA = a
			f.matches[i].OfficialScoreB = b
			return nil
		}
	}
	return repositories.ErrMatchNotFound
}

type fakePredictionRepo struct {
	mu     sync.Mutex
	preds  models.Predictions
	closed map[string]bool
	before time.Time
}

func (f *fakePredictionRepo) Upsert(_ context.Context, username, matchID string, score models.PartialScore, before time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.before = before
	if f.closed[matchID] {
		return repositories.ErrPredictionClosed
	}
	if f.preds == nil {
		f.preds = make(models.Predictions)
	}
	if f.preds[username] == nil {
		f.preds[username] = make(map[string]models.PartialScore)
	}
	f.preds[username][matchID] = score
	return nil
}

func (f *fakePredictionRepo) ListByUser(_ context.Context, username string) (map[string]models.PartialScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]models.PartialScore)
	for k, v := range f.preds[username] {
		out[k] = v
	}
	return out, nil
}

func (f *fakePredictionRepo) ListAll(context.Context) (models.Predictions, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.preds, nil
}

type fakeConfigRepo struct {
	mu       sync.Mutex
	rules    []models.ScoringRule
	settings *models.PoolSettings
	replaced int
}

func (f *fakeConfigRepo) ListRules(context.Context, repositories.SQLExecutor) ([]models.ScoringRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.rules), nil
}

func (f *fakeConfigRepo) ReplaceRules(_ context.Context, _ repositories.SQLExecutor, rules []models.ScoringRule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules = slices.Clone(rules)
	f.replaced++
	return nil
}

func (f *fakeConfigRepo) GetSettings(context.Context) (*models.PoolSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settings == nil {
		return nil, repositories.ErrPoolSettingsNotFound
	}
	s := *f.settings
	return &s, nil
}

func (f *fakeConfigRepo) SaveSettings(_ context.Context, s *models.PoolSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *s
	f.settings = &saved
	return nil
}

type fakeExtraBetRepo struct {
	mu     sync.Mutex
	values map[string]map[string]string
}

func (f *fakeExtraBetRepo) ListByUser(_ context.Context, username string) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string)
	for k, v := range f.values[username] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeExtraBetRepo) Save(_ context.Context, _ repositories.SQLExecutor, username string, values map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values == nil {
		f.values = make(map[string]map[string]string)
	}
	if f.values[username] == nil {
		f.values[username] = make(map[string]string)
	}
	for slug, value := range values {
		if value == "" {
			delete(f.values[username], slug)
			continue
		}
		f.values[username][slug] = value
	}
	return nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	rows    []models.HistoryEntry
	rounds  int
	delay   time.Duration
	active  int
	overlap int
}

func (f *fakeHistoryRepo) AppendRound(_ context.Context, _ repositories.SQLExecutor, entries []models.HistoryEntry) (int, error) {
	f.mu.Lock()
	f.active++
	if f.active > 1 {
		f.overlap++
	}
	f.mu.Unlock()

	time.Sleep(f.delay)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.active--
	f.rounds++
	for _, e := range entries {
		e.Round = f.rounds
		f.rows = append(f.rows, e)
	}
	return f.rounds, nil
}

func (f *fakeHistoryRepo) Recent(_ context.Context, _ repositories.SQLExecutor, depth int) ([]models.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	taken := make(map[string]int)
	var out []models.HistoryEntry
	for i := len(f.rows) - 1; i >= 0; i-- {
		row := f.rows[i]
		if taken[row.ParticipantID] < depth {
			taken[row.ParticipantID]++
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) ListByUser(_ context.Context, username string) ([]models.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.HistoryEntry, 0)
	for _, row := range f.rows {
		if row.ParticipantID == username {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) round(n int) []models.HistoryEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.HistoryEntry
	for _, row := range f.rows {
		if row.Round == n {
			out = append(out, row)
		}
	}
	return out
}

type fakeTx struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeTx) WithinTx(_ context.Context, fn func(exec repositories.SQLExecutor) error) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return fn(nil)
}

type sentMessage struct {
	Type    string
	Payload interface{}
}

type fakeBroadcaster struct {
	mu       sync.Mutex
	messages []sentMessage
}

func (f *fakeBroadcaster) Broadcast(messageType string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, sentMessage{Type: messageType, Payload: payload})
}

func (f *fakeBroadcaster) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.messages))
	for _, m := range f.messages {
		out = append(out, m.Type)
	}
	return out
}

type fakeRecomputer struct {
	reasons []string
	err     error
}

func (f *fakeRecomputer) Recompute(_ context.Context, reason string) error {
	f.reasons = append(f.reasons, reason)
	return f.err
}

type fakeUploader struct {
	key         string
	contentType string
	body        []byte
}

func (f *fakeUploader) Upload(_ context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	f.key, f.contentType, f.body = key, contentType, body
	return &storage.UploadResult{Key: key, Location: "https://cdn.example.com/" + key}, nil
}

func (f *fakeUploader) Delete(context.Context, string) error { return nil }

func (f *fakeUploader) GetPublicURL(key string) string { return "https://cdn.example.com/" + key }

var fixtureKickoff = time.Date(2026, 6, 13, 22, 0, 0, 0, time.UTC)

// poolFixture is a small pool: two paying participants, one unpaid, one admin.
type poolFixture struct {
	users       *fakeUserRepo
	matches     *fakeMatchRepo
	predictions *fakePredictionRepo
	config      *fakeConfigRepo
	history     *fakeHistoryRepo
	tx          *fakeTx
	broadcaster *fakeBroadcaster
}

func newPoolFixture() *poolFixture {
	return &poolFixture{
		users: &fakeUserRepo{users: []models.User{
			{ID: 1, Username: "ana", Name: "Ana", Role: models.RoleUser, Paid: true},
			{ID: 2, Username: "bruno", Name: "Bruno", Role: models.RoleUser, Paid: true},
			{ID: 3, Username: "caio", Name: "Caio", Role: models.RoleUser, Paid: false},
			{ID: 4, Username: "root", Name: "Admin", Role: models.RoleAdmin, Paid: true},
		}},
		matches: &fakeMatchRepo{matches: []models.Match{
			{ID: "m1", TeamA: "Brasil", TeamB: "Marrocos", Group: "Grupo C", Date: fixtureKickoff, IsMarquee: true, OfficialScoreA: intPtr(2), OfficialScoreB: intPtr(1)},
			{ID: "m2", TeamA: "Haiti", TeamB: "Escócia", Group: "Grupo C", Date: fixtureKickoff.Add(3 * time.Hour)},
		}},
		predictions: &fakePredictionRepo{preds: models.Predictions{
			"ana":   {"m1": models.NewPartialScore(1, 0), "m2": models.NewPartialScore(0, 0)},
			"bruno": {"m1": models.NewPartialScore(2, 1)},
			"caio":  {"m1": models.NewPartialScore(2, 1)},
			"root":  {"m1": models.NewPartialScore(2, 1)},
		}},
		config: &fakeConfigRepo{
			rules: []models.ScoringRule{
				{ID: "1", Category: models.CategoryExactScore, Points: 6},
				{ID: "2", Category: models.CategoryWinnerPlusSubscore, Points: 3},
				{ID: "3", Category: models.CategoryWinnerOnly, Points: 2},
				{ID: "4", Category: models.CategoryCorrectDraw, Points: 2},
			},
			settings: &models.PoolSettings{
				TicketPriceCents: 5000,
				Prizes:           models.PrizeDistribution{First: 65, Second: 25, Third: 10},
				Multiplier:       models.MultiplierPolicy{SpecialTeams: []string{"Brasil"}, SpecialPhases: []string{"FINAL"}},
			},
		},
		history:     &fakeHistoryRepo{},
		tx:          &fakeTx{},
		broadcaster: &fakeBroadcaster{},
	}
}

func (f *poolFixture) configStore() *ConfigStore {
	return NewConfigStore(f.config, f.tx, "Brasil", discardLogger())
}

func (f *poolFixture) leaderboardService() LeaderboardService {
	return NewLeaderboardService(f.users, f.matches, f.predictions, f.history, f.configStore(), f.tx, f.broadcaster, discardLogger())
}
