// Package scraper provides HTTP fetching and HTML parsing for ESPN NBA
// team schedule pages.
//
// The scraper fetches one team's one-season schedule page and extracts a
// game per table row: date, opponent, home/away, win/loss, and final
// score. Rows that do not parse cleanly (postponed games, irregular
// markup) are skipped rather than failing the page.
package scraper
