package scraper

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestParseGames(t *testing.T) {
	// Fixture has a header row, two well-formed rows, and one postponed
	// row that must be skipped.
	data, err := os.ReadFile("testdata/fixtures/schedule_bos_2020.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	s := New()
	games, err := s.parseGames(strings.NewReader(string(data)), "BOS", 2020)
	if err != nil {
		t.Fatalf("parseGames failed: %v", err)
	}

	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}

	first := games[0]
	if first.Team != "BOS" || first.Opp != "GSW" {
		t.Errorf("first game matchup = %s vs %s, expected BOS vs GSW", first.Team, first.Opp)
	}
	if first.Home {
		t.Error("first game should be away (marker '@')")
	}
	if !first.Won {
		t.Error("first game should be a win")
	}
	if first.TeamScore != 110 || first.OppScore != 98 {
		t.Errorf("first game score = %d-%d, expected 110-98", first.TeamScore, first.OppScore)
	}
	wantDate := time.Date(2019, time.November, 10, 0, 0, 0, 0, time.UTC)
	if !first.Date.Equal(wantDate) {
		t.Errorf("first game date = %v, expected %v", first.Date, wantDate)
	}

	second := games[1]
	if second.Opp != "MIA" {
		t.Errorf("second game opponent = %s, expected MIA", second.Opp)
	}
	if !second.Home {
		t.Error("second game should be home (marker 'vs')")
	}
	if second.Won {
		t.Error("second game should be a loss")
	}
	if second.TeamScore != 109 || second.OppScore != 118 {
		t.Errorf("second game score = %d-%d, expected 109-118", second.TeamScore, second.OppScore)
	}
	if second.Date.Year() != 2020 || second.Date.Month() != time.January {
		t.Errorf("second game date = %v, expected January 2020", second.Date)
	}
}

func TestParseGamesNoTable(t *testing.T) {
	html := `<html><body><p>No games scheduled.</p></body></html>`

	s := New()
	games, err := s.parseGames(strings.NewReader(html), "BOS", 2020)
	if err != nil {
		t.Fatalf("parseGames failed: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("expected 0 games for a page without a schedule table, got %d", len(games))
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		season   int
		wantYear int
		wantOK   bool
	}{
		{"january belongs to the season year", "Fri, Jan 15", 2021, 2021, true},
		{"june belongs to the season year", "Wed, Jun 2", 2021, 2021, true},
		{"november belongs to the prior year", "Tue, Nov 10", 2021, 2020, true},
		{"july belongs to the prior year", "Mon, Jul 1", 2021, 2020, true},
		{"december belongs to the prior year", "Sat, Dec 25", 2021, 2020, true},
		{"garbage", "Postponed", 2021, 0, false},
		{"empty", "", 2021, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDate(tt.text, tt.season)
			if ok != tt.wantOK {
				t.Fatalf("parseDate(%q) ok = %v, expected %v", tt.text, ok, tt.wantOK)
			}
			if ok && got.Year() != tt.wantYear {
				t.Errorf("parseDate(%q, %d) year = %d, expected %d", tt.text, tt.season, got.Year(), tt.wantYear)
			}
		})
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		text       string
		wantWinner int
		wantLoser  int
		wantOK     bool
	}{
		{"110-98", 110, 98, true},
		{"118-109 OT", 118, 109, true},
		{"118-109 2OT", 118, 109, true},
		{"", 0, 0, false},
		{"W", 0, 0, false},
		{"110", 0, 0, false},
		{"110-", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := parseScore(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("parseScore(%q) ok = %v, expected %v", tt.text, ok, tt.wantOK)
			}
			if ok && (got.Winner != tt.wantWinner || got.Loser != tt.wantLoser) {
				t.Errorf("parseScore(%q) = %d-%d, expected %d-%d",
					tt.text, got.Winner, got.Loser, tt.wantWinner, tt.wantLoser)
			}
		})
	}
}
