package viewmodel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meeplelog/meeplelog/internal/api"
	"github.com/meeplelog/meeplelog/internal/common"
	"github.com/meeplelog/meeplelog/internal/logging"
	"github.com/meeplelog/meeplelog/internal/models"
	"github.com/meeplelog/meeplelog/internal/querycache"
)

// fakeBackend serves canned collection data and counts hits per
// method+path so tests can assert which requests a composition fired.
type fakeBackend struct {
	mu        sync.Mutex
	hits      map[string]int
	locations []models.Location
	srv       *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{
		hits: map[string]int{},
		locations: []models.Location{
			{ID: "l1", Name: "Home", PlayCount: 12},
		},
	}
	fb.srv = httptest.NewServer(http.HandlerFunc(fb.handle))
	t.Cleanup(fb.srv.Close)
	return fb
}

func (fb *fakeBackend) count(route string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.hits[route]
}

func (fb *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + r.URL.Path
	fb.mu.Lock()
	fb.hits[route]++
	fb.mu.Unlock()

	writeJSON := func(v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	switch route {
	case "GET /v1/statistics/dashboard":
		writeJSON(models.DashboardStatistics{GameCount: 3, SessionCount: 7})
	case "GET /v1/settings":
		s := models.DefaultSettings()
		s.Currency = "$"
		writeJSON(s)
	case "GET /v1/environment":
		writeJSON(models.Environment{Version: "1.2.3"})
	case "GET /v1/games":
		writeJSON([]models.Game{{ID: "g1", Title: "Cascadia", State: models.GameStateOwned}})
	case "GET /v1/games/g1":
		writeJSON(models.Game{ID: "g1", Title: "Cascadia", State: models.GameStateOwned})
	case "GET /v1/games/g1/statistics":
		writeJSON(models.GameStatistics{GameID: "g1", PlayCount: 4})
	case "GET /v1/games/g1/sessions":
		writeJSON([]models.Session{})
	case "GET /v1/games/g1/loans":
		writeJSON([]models.Loan{})
	case "GET /v1/players":
		writeJSON([]models.Player{{ID: "p1", Name: "Ann"}})
	case "GET /v1/players/p1":
		writeJSON(models.Player{ID: "p1", Name: "Ann"})
	case "GET /v1/statistics/compare":
		writeJSON(models.CompareResult{
			PlayerID:   r.URL.Query().Get("player"),
			OpponentID: r.URL.Query().Get("opponent"),
		})
	case "GET /v1/sessions":
		writeJSON([]models.Session{{
			ID:     "s1",
			GameID: "g1",
			PlayerSessions: []models.PlayerSession{
				{Kind: models.PlayerSessionNoScoring, PlayerID: "ghost"},
			},
		}})
	case "GET /v1/locations":
		fb.mu.Lock()
		locs := append([]models.Location(nil), fb.locations...)
		fb.mu.Unlock()
		writeJSON(locs)
	case "POST /v1/locations":
		var in models.LocationInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		fb.mu.Lock()
		loc := models.Location{ID: fmt.Sprintf("l%d", len(fb.locations)+1), Name: in.Name}
		fb.locations = append(fb.locations, loc)
		fb.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		writeJSON(loc)
	default:
		http.NotFound(w, r)
	}
}

func newTestComposer(t *testing.T, fb *fakeBackend) *Composer {
	t.Helper()
	client := api.New(fb.srv.URL, 2*time.Second)
	cache := querycache.New(querycache.NewMemoryStore(), time.Minute)
	return NewComposer(client, cache, logging.NewDefault("error"))
}

func TestDashboardFetchesInParallelAndCaches(t *testing.T) {
	fb := newFakeBackend(t)
	c := newTestComposer(t, fb)
	ctx := context.Background()

	page := c.Dashboard(ctx)
	require.False(t, page.IsError())
	require.Equal(t, 3, page.Statistics.Data.GameCount)
	require.Equal(t, "$", page.Settings.Data.Currency)
	require.Equal(t, "1.2.3", page.Environment.Data.Version)

	// Second composition is served entirely from cache.
	_ = c.Dashboard(ctx)
	require.Equal(t, 1, fb.count("GET /v1/statistics/dashboard"))
	require.Equal(t, 1, fb.count("GET /v1/settings"))
	require.Equal(t, 1, fb.count("GET /v1/environment"))
}

func TestGamePageMissingGameSkipsDependentQueries(t *testing.T) {
	fb := newFakeBackend(t)
	c := newTestComposer(t, fb)

	page := c.GamePage(context.Background(), "nope")
	require.False(t, page.Found)
	require.False(t, page.IsError())
	require.Equal(t, 1, fb.count("GET /v1/games/nope"))
	require.Equal(t, 0, fb.count("GET /v1/games/nope/statistics"))
	require.Equal(t, 0, fb.count("GET /v1/games/nope/sessions"))
	require.Equal(t, 0, fb.count("GET /v1/players"))
}

func TestGamePageComposesDependents(t *testing.T) {
	fb := newFakeBackend(t)
	c := newTestComposer(t, fb)

	page := c.GamePage(context.Background(), "g1")
	require.True(t, page.Found)
	require.False(t, page.IsError())
	require.Equal(t, "Cascadia", page.Game.Data.Title)
	require.Equal(t, 4, page.Statistics.Data.PlayCount)

	p, ok := page.PlayerByID("p1")
	require.True(t, ok)
	require.Equal(t, "Ann", p.Name)
}

func TestCreateLocationInvalidatesList(t *testing.T) {
	fb := newFakeBackend(t)
	c := newTestComposer(t, fb)
	ctx := context.Background()

	page := c.LocationList(ctx)
	require.Len(t, page.Locations.Data, 1)
	require.Equal(t, 1, fb.count("GET /v1/locations"))

	// Cached until a mutation invalidates.
	_ = c.LocationList(ctx)
	require.Equal(t, 1, fb.count("GET /v1/locations"))

	_, err := c.CreateLocation(ctx, models.LocationInput{Name: "Club"})
	require.NoError(t, err)

	page = c.LocationList(ctx)
	require.Equal(t, 2, fb.count("GET /v1/locations"))
	require.Len(t, page.Locations.Data, 2)
}

func TestSessionListResolvesMissingPlayerSafely(t *testing.T) {
	fb := newFakeBackend(t)
	c := newTestComposer(t, fb)

	page := c.SessionList(context.Background())
	require.False(t, page.IsError())
	require.Len(t, page.Sessions.Data, 1)

	// The session references a player that no longer exists.
	_, ok := page.PlayerByID("ghost")
	require.False(t, ok)

	g, ok := page.GameByID("g1")
	require.True(t, ok)
	require.Equal(t, "Cascadia", g.Title)
}

func TestCompareMissingOpponentSkipsComparison(t *testing.T) {
	fb := newFakeBackend(t)
	c := newTestComposer(t, fb)

	page := c.Compare(context.Background(), "p1", "nope")
	require.False(t, page.Found)
	require.False(t, page.IsError())
	require.Equal(t, 1, fb.count("GET /v1/players/nope"))
	require.Equal(t, 0, fb.count("GET /v1/statistics/compare"))
}

func TestCompareComposesRows(t *testing.T) {
	fb := newFakeBackend(t)
	c := newTestComposer(t, fb)

	page := c.Compare(context.Background(), "p1", "p1")
	require.True(t, page.Found)
	require.False(t, page.IsError())
	require.Equal(t, "p1", page.Result.Data.PlayerID)
	require.Equal(t, 1, fb.count("GET /v1/statistics/compare"))
}

func TestMutationRejectsInvalidInputBeforeNetwork(t *testing.T) {
	fb := newFakeBackend(t)
	c := newTestComposer(t, fb)

	_, err := c.CreateGame(context.Background(), models.GameInput{State: "bogus"})
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrInvalid)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Contains(t, ve.Fields, "title")
	require.Contains(t, ve.Fields, "state")
	require.Equal(t, 0, fb.count("POST /v1/games"))
}

func TestSettingsPageRequiresRealSettings(t *testing.T) {
	fb := newFakeBackend(t)
	c := newTestComposer(t, fb)

	page := c.SettingsPage(context.Background())
	require.False(t, page.IsError())
	require.Equal(t, "$", page.Settings.Data.Currency)
	require.Equal(t, "1.2.3", page.Environment.Data.Version)
}
