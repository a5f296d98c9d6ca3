package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/courtside/scoreboard/game"
	"github.com/courtside/scoreboard/internal/logger"
	"github.com/courtside/scoreboard/team"
)

const (
	// ScheduleURL is the per-team per-season schedule page, keyed by
	// ESPN's own team abbreviation.
	ScheduleURL = "https://www.espn.com/nba/team/schedule/_/name/%s/year/%d"
	UserAgent   = "scoreboard-cli/1.0 (github.com/courtside/scoreboard)"
	Timeout     = 30 * time.Second
)

// Scraper fetches and parses one team's one-season schedule from ESPN.
type Scraper struct {
	client  *http.Client
	baseURL string
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: ScheduleURL,
	}
}

// FetchGames retrieves and parses the schedule page for a team (any name
// variant) and season. A page with no schedule table yields an empty
// slice, not an error; rows that fail to parse are skipped.
func (s *Scraper) FetchGames(name string, season int) ([]game.Game, error) {
	sourceAbbr, err := team.ResolveSource(name)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf(s.baseURL, sourceAbbr, season)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseGames(resp.Body, name, season)
}

// parseGames extracts games from a schedule page.
//
// Row shape consumed: a date cell ("Wed, Nov 10"), an opponent cell whose
// first list item is the home/away marker ("vs" or "@") and whose second
// anchor is the opponent name, and a result cell whose span is "W" or "L"
// and whose first anchor holds the score ("110-98", possibly with an OT
// suffix). Anything else in the row is ignored.
func (s *Scraper) parseGames(r io.Reader, name string, season int) ([]game.Game, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	teamAbbr, err := team.Resolve(name)
	if err != nil {
		return nil, err
	}

	games := make([]game.Game, 0)

	table := doc.Find("table").First()
	if table.Length() == 0 {
		// Season not played yet, or layout changed. Empty, not an error.
		return games, nil
	}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}

		g, ok := s.parseRow(row, teamAbbr, season)
		if !ok {
			// Best effort: postponed games, all-star breaks, and odd
			// markup all land here and are simply omitted.
			return
		}

		logger.Info("parsed game", logger.Fields{
			"date":    g.Date.Format("2006-01-02"),
			"matchup": formatMatchup(g),
			"score":   fmt.Sprintf("%d-%d", g.TeamScore, g.OppScore),
		})
		logger.IncrCounter("games.parsed")

		games = append(games, g)
	})

	return games, nil
}

// parseRow converts one schedule row into a Game. ok is false when any
// field is missing or malformed.
func (s *Scraper) parseRow(row *goquery.Selection, teamAbbr string, season int) (game.Game, bool) {
	cells := row.Find("td")
	if cells.Length() < 3 {
		return game.Game{}, false
	}

	date, ok := parseDate(strings.TrimSpace(cells.Eq(0).Text()), season)
	if !ok {
		return game.Game{}, false
	}

	oppCell := cells.Eq(1)
	anchors := oppCell.Find("a")
	if anchors.Length() < 2 {
		return game.Game{}, false
	}
	oppAbbr, err := team.Resolve(strings.TrimSpace(anchors.Eq(1).Text()))
	if err != nil {
		return game.Game{}, false
	}
	marker := strings.TrimSpace(oppCell.Find("li").First().Text())
	if marker == "" {
		return game.Game{}, false
	}
	home := marker == "vs"

	resultCell := cells.Eq(2)
	outcome := strings.TrimSpace(resultCell.Find("span").First().Text())
	if outcome != "W" && outcome != "L" {
		return game.Game{}, false
	}
	won := outcome == "W"

	score, ok := parseScore(strings.TrimSpace(resultCell.Find("a").First().Text()))
	if !ok {
		return game.Game{}, false
	}

	return game.New(date, teamAbbr, oppAbbr, home, won, score), true
}

// parseDate parses a "Wed, Nov 10" date cell and infers the calendar
// year from the season: NBA seasons span two calendar years, so games in
// January through June fall in the season's own year and games from July
// onward in the year before.
func parseDate(text string, season int) (time.Time, bool) {
	t, err := time.Parse("Mon, Jan 2", text)
	if err != nil {
		return time.Time{}, false
	}

	year := season
	if t.Month() >= time.July {
		year = season - 1
	}

	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

// parseScore parses a result cell score like "110-98" or "110-98 OT"
// into (winner's points, loser's points).
func parseScore(text string) (game.Score, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return game.Score{}, false
	}

	parts := strings.Split(fields[0], "-")
	if len(parts) != 2 {
		return game.Score{}, false
	}

	winner, err := strconv.Atoi(parts[0])
	if err != nil {
		return game.Score{}, false
	}
	loser, err := strconv.Atoi(parts[1])
	if err != nil {
		return game.Score{}, false
	}

	return game.Score{Winner: winner, Loser: loser}, true
}

// formatMatchup renders a game as "BOS GSW" or "BOS @GSW" for log lines.
func formatMatchup(g game.Game) string {
	at := ""
	if !g.Home {
		at = "@"
	}
	return fmt.Sprintf("%s %s%s", g.Team, at, g.Opp)
}
