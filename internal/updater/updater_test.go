package updater

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/courtside/scoreboard/cache"
	"github.com/courtside/scoreboard/game"
	"github.com/courtside/scoreboard/team"
)

func tempStore(t *testing.T) *cache.Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "updater-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	store, err := cache.NewStore(filepath.Join(tmpDir, "games.json"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

// fixedNow pins the updater's clock to March 2004, making the full range
// 2003-2004: two seasons of 30 cells each.
func fixedNow() time.Time {
	return time.Date(2004, time.March, 1, 0, 0, 0, 0, time.UTC)
}

func stubGame(abbr string, season int) game.Game {
	return game.New(
		time.Date(season, time.January, 2, 0, 0, 0, 0, time.UTC),
		abbr, "BOS", true, true, game.Score{Winner: 100, Loser: 90},
	)
}

// stubFetch returns one synthetic game per cell and records call order.
func stubFetch(calls *[][2]interface{}) FetchFunc {
	return func(abbr string, season int) ([]game.Game, error) {
		if calls != nil {
			*calls = append(*calls, [2]interface{}{abbr, season})
		}
		return []game.Game{stubGame(abbr, season)}, nil
	}
}

func TestCurrentSeason(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{"january is the ending season", time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC), 2021},
		{"july still names the ending season", time.Date(2021, time.July, 15, 0, 0, 0, 0, time.UTC), 2021},
		{"august starts next season", time.Date(2021, time.August, 2, 0, 0, 0, 0, time.UTC), 2022},
		{"december belongs to next season", time.Date(2021, time.December, 25, 0, 0, 0, 0, time.UTC), 2022},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentSeason(tt.t); got != tt.want {
				t.Errorf("CurrentSeason(%v) = %d, expected %d", tt.t, got, tt.want)
			}
		})
	}
}

func TestRunRebuildCoversFullRange(t *testing.T) {
	store := tempStore(t)

	var calls [][2]interface{}
	u := New(store, stubFetch(&calls))
	u.now = fixedNow

	if err := u.Run(true); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	teams := team.Abbreviations()
	if len(calls) != 2*len(teams) {
		t.Fatalf("expected %d fetches, got %d", 2*len(teams), len(calls))
	}

	// Season outer loop: all of 2003 before any of 2004, teams in table
	// order within each season.
	for i, call := range calls {
		wantSeason := 2003 + i/len(teams)
		wantTeam := teams[i%len(teams)]
		if call[0] != wantTeam || call[1] != wantSeason {
			t.Fatalf("call %d = (%v, %v), expected (%s, %d)", i, call[0], call[1], wantTeam, wantSeason)
		}
	}

	c, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for _, season := range []int{2003, 2004} {
		if len(c.Seasons[season]) != len(teams) {
			t.Errorf("season %d has %d cells, expected %d", season, len(c.Seasons[season]), len(teams))
		}
	}
}

func TestRunIncrementalStartsAtNewestCachedSeason(t *testing.T) {
	store := tempStore(t)

	// Seed a cache whose newest season is 2003; the refresh should
	// re-scrape 2003 and continue through the current season, trusting
	// nothing newer exists below 2003.
	seed := cache.New()
	seed.Put(2003, "BOS", []game.Game{stubGame("BOS", 2003)})
	if err := store.Save(seed); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var calls [][2]interface{}
	u := New(store, stubFetch(&calls))
	u.now = fixedNow

	if err := u.Run(false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	seasons := make(map[int]bool)
	for _, call := range calls {
		seasons[call[1].(int)] = true
	}
	if !reflect.DeepEqual(seasons, map[int]bool{2003: true, 2004: true}) {
		t.Errorf("fetched seasons %v, expected {2003, 2004}", seasons)
	}
}

func TestRunRefreshIsIdempotent(t *testing.T) {
	store := tempStore(t)

	run := func() map[int]map[string][]game.Game {
		u := New(store, stubFetch(nil))
		u.now = fixedNow
		if err := u.Run(false); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		c, err := store.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		return c.Seasons
	}

	first := run()
	second := run()

	if !reflect.DeepEqual(first, second) {
		t.Error("two refresh runs over identical remote data produced different caches")
	}
}

func TestRunCheckpointsEveryCell(t *testing.T) {
	store := tempStore(t)

	// Succeed for the first 7 cells, then fail every remaining fetch.
	// The persisted cache must hold exactly the 7 completed cells.
	const good = 7
	n := 0
	fetch := func(abbr string, season int) ([]game.Game, error) {
		n++
		if n > good {
			return nil, errors.New("connection reset")
		}
		return []game.Game{stubGame(abbr, season)}, nil
	}

	u := New(store, fetch)
	u.now = fixedNow

	if err := u.Run(true); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	c, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cells := 0
	for _, season := range c.Seasons {
		cells += len(season)
	}
	if cells != good {
		t.Errorf("persisted cache has %d cells, expected %d", cells, good)
	}

	teams := team.Abbreviations()
	for i := 0; i < good; i++ {
		cell := c.Seasons[2003][teams[i]]
		if len(cell) != 1 {
			t.Errorf("cell 2003/%s has %d games, expected 1", teams[i], len(cell))
		}
	}
}

func TestRunFailedCellKeepsPriorContents(t *testing.T) {
	store := tempStore(t)

	prior := stubGame("ATL", 2003)
	seed := cache.New()
	seed.Put(2003, "ATL", []game.Game{prior})
	if err := store.Save(seed); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	fetch := func(abbr string, season int) ([]game.Game, error) {
		if abbr == "ATL" {
			return nil, fmt.Errorf("fetching schedule: timeout")
		}
		return []game.Game{stubGame(abbr, season)}, nil
	}

	u := New(store, fetch)
	u.now = fixedNow

	if err := u.Run(false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	c, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cell := c.Seasons[2003]["ATL"]
	if len(cell) != 1 || !cell[0].Date.Equal(prior.Date) {
		t.Errorf("failed cell was not preserved: %+v", cell)
	}
}
