package game

import "time"

// Score holds a final score as (winner's points, loser's points).
type Score struct {
	Winner int `json:"winner"`
	Loser  int `json:"loser"`
}

// Game is one team's view of one finished game. Team and Opp are standard
// abbreviations. All fields from HomeTeam onward are derived from the
// first six by New; a Game is a plain value and is never mutated after
// construction.
type Game struct {
	Date  time.Time `json:"date"`
	Team  string    `json:"team"`
	Opp   string    `json:"opp"`
	Home  bool      `json:"home"`
	Won   bool      `json:"won"`
	Score Score     `json:"score"`

	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	TeamScore int    `json:"team_score"`
	OppScore  int    `json:"opp_score"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Winner    string `json:"winner"`
	Loser     string `json:"loser"`
}

// New builds a Game with every derived field populated:
// home_team = team if home else opp, team_score = winning score if won
// else losing score, home_score = team_score if home else opp_score,
// winner = team if won else opp, and the mirror of each.
func New(date time.Time, team, opp string, home, won bool, score Score) Game {
	g := Game{
		Date:  date,
		Team:  team,
		Opp:   opp,
		Home:  home,
		Won:   won,
		Score: score,
	}

	if home {
		g.HomeTeam, g.AwayTeam = team, opp
	} else {
		g.HomeTeam, g.AwayTeam = opp, team
	}

	if won {
		g.TeamScore, g.OppScore = score.Winner, score.Loser
		g.Winner, g.Loser = team, opp
	} else {
		g.TeamScore, g.OppScore = score.Loser, score.Winner
		g.Winner, g.Loser = opp, team
	}

	if home {
		g.HomeScore, g.AwayScore = g.TeamScore, g.OppScore
	} else {
		g.HomeScore, g.AwayScore = g.OppScore, g.TeamScore
	}

	return g
}
