// Package stats derives leaderboards from action tallies and matchup history.
//
// Every function is pure: callers load tallies already filtered by mode and, when a season is
// requested, by that season's tournament range.
package stats
