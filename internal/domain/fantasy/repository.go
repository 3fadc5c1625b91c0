package fantasy

import "context"

type LeagueRepository interface {
	CreateLeague(ctx context.Context, league League) (League, error)
	ListLeagues(ctx context.Context) ([]League, error)
	GetLeague(ctx context.Context, id int64) (League, bool, error)
}

type RosterRepository interface {
	// CreateRoster fails with a conflict when the member already has a roster in the league.
	CreateRoster(ctx context.Context, roster Roster) error
	ListRosters(ctx context.Context, leagueID int64) ([]Roster, error)
	GetRoster(ctx context.Context, playerID string) (Roster, bool, error)
}

type MatchupRepository interface {
	CreateMatchups(ctx context.Context, matchups []Matchup) ([]Matchup, error)
	ListMatchups(ctx context.Context, leagueID, tournamentID int64) ([]Matchup, error)
	UpdateMatchupResult(ctx context.Context, matchup Matchup) error
}

type GuessRepository interface {
	UpsertGuess(ctx context.Context, guess Guess) error
	ListGuesses(ctx context.Context, leagueID, tournamentID int64) ([]Guess, error)
}

// Repository is the whole fantasy store.
type Repository interface {
	LeagueRepository
	RosterRepository
	MatchupRepository
	GuessRepository
}
