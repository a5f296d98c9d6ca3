package team

import (
	"fmt"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Alias maps one NBA team's standard abbreviation to the abbreviation and
// city name used by the ESPN schedule pages. ESPN's URL codes differ from
// the standard codes for a handful of teams (GSW/gs, NOP/no, SAS/sa, ...).
type Alias struct {
	Abbr       string // standard 3-letter code, primary key in the cache
	SourceAbbr string // ESPN URL code
	City       string // ESPN city name as shown in schedule rows
}

// aliases is the fixed table of all 30 teams. Exactly one row per team;
// values are unique within each column.
var aliases = []Alias{
	{"ATL", "atl", "Atlanta"},
	{"BKN", "bkn", "Brooklyn"},
	{"BOS", "bos", "Boston"},
	{"CHA", "cha", "Charlotte"},
	{"CHI", "chi", "Chicago"},
	{"CLE", "cle", "Cleveland"},
	{"DAL", "dal", "Dallas"},
	{"DEN", "den", "Denver"},
	{"DET", "det", "Detroit"},
	{"GSW", "gs", "Golden State"},
	{"HOU", "hou", "Houston"},
	{"IND", "ind", "Indiana"},
	{"LAC", "lac", "LA"},
	{"LAL", "lal", "Los Angeles"},
	{"MEM", "mem", "Memphis"},
	{"MIA", "mia", "Miami"},
	{"MIL", "mil", "Milwaukee"},
	{"MIN", "min", "Minnesota"},
	{"NOP", "no", "New Orleans"},
	{"NYK", "ny", "NY Knicks"},
	{"OKC", "okc", "Oklahoma City"},
	{"ORL", "orl", "Orlando"},
	{"PHI", "phi", "Philadelphia"},
	{"PHX", "phx", "Phoenix"},
	{"POR", "por", "Portland"},
	{"SAC", "sac", "Sacramento"},
	{"SAS", "sa", "San Antonio"},
	{"TOR", "tor", "Toronto"},
	{"UTA", "utah", "Utah"},
	{"WAS", "wsh", "Washington"},
}

// Abbreviations returns the standard abbreviations of all 30 teams in
// table order.
func Abbreviations() []string {
	abbrs := make([]string, len(aliases))
	for i, a := range aliases {
		abbrs[i] = a.Abbr
	}
	return abbrs
}

// Resolve maps any team name variant (standard abbreviation, ESPN
// abbreviation, city name, or a near-misspelling of any of these) to the
// team's standard abbreviation.
func Resolve(name string) (string, error) {
	a, err := resolve(name)
	if err != nil {
		return "", err
	}
	return a.Abbr, nil
}

// ResolveSource is Resolve, returning the ESPN URL abbreviation instead.
func ResolveSource(name string) (string, error) {
	a, err := resolve(name)
	if err != nil {
		return "", err
	}
	return a.SourceAbbr, nil
}

// resolve finds the single best fuzzy match for name across every column
// of the alias table and returns the matched row.
func resolve(name string) (Alias, error) {
	pool := make([]string, 0, len(aliases)*3)
	for _, a := range aliases {
		pool = append(pool, a.Abbr, a.SourceAbbr, a.City)
	}

	best, err := fuzzy.ExtractOne(name, pool)
	if err != nil {
		return Alias{}, fmt.Errorf("matching team name %q: %w", name, err)
	}

	for _, a := range aliases {
		if best.Match == a.Abbr || best.Match == a.SourceAbbr || best.Match == a.City {
			return a, nil
		}
	}

	// The pool is built from the table, so a match outside it means the
	// alias data is broken. Fail loudly rather than return a zero value.
	return Alias{}, fmt.Errorf("unresolvable team name %q (matched %q)", name, best.Match)
}
