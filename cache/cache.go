package cache

import (
	"sort"
	"time"

	"github.com/courtside/scoreboard/game"
)

// Cache is the two-level season -> team abbreviation -> schedule mapping
// that the updater fills one cell at a time.
type Cache struct {
	Seasons   map[int]map[string][]game.Game `json:"seasons"`
	UpdatedAt string                         `json:"updated_at,omitempty"`
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		Seasons: make(map[int]map[string][]game.Game),
	}
}

// Put overwrites one (season, team) cell.
func (c *Cache) Put(season int, team string, games []game.Game) {
	if c.Seasons == nil {
		c.Seasons = make(map[int]map[string][]game.Game)
	}
	if c.Seasons[season] == nil {
		c.Seasons[season] = make(map[string][]game.Game)
	}
	c.Seasons[season][team] = games
}

// MaxSeason returns the largest season key present, or false if the cache
// is empty.
func (c *Cache) MaxSeason() (int, bool) {
	max, ok := 0, false
	for season := range c.Seasons {
		if !ok || season > max {
			max, ok = season, true
		}
	}
	return max, ok
}

// Games flattens every cell across every season into one sequence sorted
// by date ascending. Games sharing a date order by team abbreviation,
// then opponent, so the result is deterministic regardless of map
// iteration order.
func (c *Cache) Games() []game.Game {
	var games []game.Game
	for _, season := range c.Seasons {
		for _, cell := range season {
			games = append(games, cell...)
		}
	}

	sort.Slice(games, func(i, j int) bool {
		gi, gj := games[i], games[j]
		if !gi.Date.Equal(gj.Date) {
			return gi.Date.Before(gj.Date)
		}
		if gi.Team != gj.Team {
			return gi.Team < gj.Team
		}
		return gi.Opp < gj.Opp
	})

	return games
}

// touch stamps the cache with the current time before a save.
func (c *Cache) touch() {
	c.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}
