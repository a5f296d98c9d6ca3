package updater

import (
	"fmt"
	"time"

	"github.com/courtside/scoreboard/cache"
	"github.com/courtside/scoreboard/game"
	"github.com/courtside/scoreboard/internal/logger"
	"github.com/courtside/scoreboard/team"
)

// FirstSeason is the earliest season ESPN's schedule pages cover.
const FirstSeason = 2003

// FetchFunc retrieves one team's games for one season.
type FetchFunc func(team string, season int) ([]game.Game, error)

// Updater refreshes the cache cell by cell: for every (season, team) pair
// in range it fetches the schedule, overwrites that cell, and saves the
// whole cache before moving on. Fetches run sequentially; the store must
// not be shared with another running updater.
type Updater struct {
	store *cache.Store
	fetch FetchFunc
	now   func() time.Time
}

// New creates an Updater writing to store and fetching with fetch.
func New(store *cache.Store, fetch FetchFunc) *Updater {
	return &Updater{
		store: store,
		fetch: fetch,
		now:   time.Now,
	}
}

// Run scrapes every (season, team) cell from the start season through the
// current season, checkpointing after each cell.
//
// With rebuild false and an existing cache, the start season is the
// newest season already cached: that season straddles "now" and gets
// refreshed, while strictly older seasons are trusted as complete. With
// rebuild true (or no cache) everything from FirstSeason is scraped into
// an empty cache.
//
// A failed fetch is isolated to its cell: the error is logged, the cell
// keeps its prior contents, and the run continues.
func (u *Updater) Run(rebuild bool) error {
	current := CurrentSeason(u.now())

	start := FirstSeason
	games := cache.New()

	if !rebuild && u.store.Exists() {
		loaded, err := u.store.Load()
		if err != nil {
			return fmt.Errorf("loading cache: %w", err)
		}
		games = loaded
		if max, ok := games.MaxSeason(); ok {
			start = max
		}
	}

	logger.Info("updating cache", logger.Fields{
		"cache":        u.store.Path(),
		"start_season": start,
		"end_season":   current,
		"rebuild":      rebuild,
	})

	// Season outer loop: each checkpoint leaves every earlier season
	// fully populated before the next season begins.
	for season := start; season <= current; season++ {
		for _, abbr := range team.Abbreviations() {
			fetchStart := time.Now()
			cell, err := u.fetch(abbr, season)
			logger.RecordTiming("fetch", time.Since(fetchStart))

			if err != nil {
				logger.Error("fetch failed, skipping cell", logger.Fields{
					"team":   abbr,
					"season": season,
				}, err)
				logger.IncrCounter("cells.failed")
				continue
			}

			games.Put(season, abbr, cell)
			if err := u.store.Save(games); err != nil {
				return fmt.Errorf("checkpointing %d/%s: %w", season, abbr, err)
			}
			logger.IncrCounter("cells.updated")

			logger.Debug("cell updated", logger.Fields{
				"team":   abbr,
				"season": season,
				"games":  len(cell),
			})
		}
	}

	return nil
}

// CurrentSeason returns the season in progress (or just finished) at t.
// Seasons are named for the calendar year they end in, so from August
// onward the current season is next year's.
func CurrentSeason(t time.Time) int {
	if t.Month() > time.July {
		return t.Year() + 1
	}
	return t.Year()
}
