package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/courtside/scoreboard/game"
	"github.com/courtside/scoreboard/team"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteGames writes games in the specified format
func WriteGames(w io.Writer, games []game.Game, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, games)
	case FormatText:
		return writeText(w, games)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs games as a JSON array
func writeJSON(w io.Writer, games []game.Game) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(games)
}

// writeText outputs games as human-readable lines
func writeText(w io.Writer, games []game.Game) error {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games cached.")
		return nil
	}

	for _, g := range games {
		at := " "
		if !g.Home {
			at = "@"
		}
		fmt.Fprintf(w, "%s %4s %s%-4s %3d-%-3d\n",
			g.Date.Format("2006-01-02"), g.Team, at, g.Opp, g.TeamScore, g.OppScore)
	}
	fmt.Fprintf(w, "\nTotal: %d games\n", len(games))

	return nil
}

// filterByTeam narrows games to those involving the named team. An empty
// name keeps everything; any resolvable name variant is accepted.
func filterByTeam(games []game.Game, name string) ([]game.Game, error) {
	if name == "" {
		return games, nil
	}

	abbr, err := team.Resolve(name)
	if err != nil {
		return nil, err
	}

	filtered := make([]game.Game, 0, len(games))
	for _, g := range games {
		if g.Team == abbr || g.Opp == abbr {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}
