package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerGameRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/next-tournament-id", handler.NextTournamentID)
	mux.HandleFunc("GET /api/latest-tournament", handler.LatestTournament)
	mux.HandleFunc("POST /api/matchup", handler.RecordMatchup)
	mux.HandleFunc("POST /api/end-game", handler.EndGame)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/total-points", handler.TotalPoints)
	mux.HandleFunc("GET /api/average-points-per-game", handler.PointsPerGame)
	mux.HandleFunc("GET /api/average-points-per-tournament", handler.PointsPerTournament)
	mux.HandleFunc("GET /api/average-points-per-stroke", handler.PointsPerStroke)
	mux.HandleFunc("GET /api/action-counts", handler.ActionCounts)
	mux.HandleFunc("GET /api/get-records", handler.Records)
	mux.HandleFunc("GET /api/matchups", handler.HeadToHead)
	mux.HandleFunc("GET /api/percentiles", handler.Percentiles)
	mux.HandleFunc("GET /api/tags", handler.Tags)
	mux.HandleFunc("GET /api/standings", handler.Standings)
	mux.HandleFunc("GET /api/games-played", handler.GamesPlayed)
	mux.HandleFunc("GET /api/overall-scores", handler.OverallScores)
	mux.HandleFunc("GET /api/all-npa", handler.AllNPA)
	mux.HandleFunc("GET /api/mvp", handler.MVP)
	mux.HandleFunc("GET /api/export/leaderboard.xlsx", handler.ExportLeaderboard)
}

func registerSeasonRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.HandleFunc("GET /api/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /api/season-for-tournament", handler.SeasonForTournament)
	mux.Handle("POST /api/addSeason", RequireAdminToken(adminToken, http.HandlerFunc(handler.CreateSeason)))
	mux.HandleFunc("GET /api/awards", handler.ListAwards)
	mux.Handle("POST /api/awards", RequireAdminToken(adminToken, http.HandlerFunc(handler.GrantAward)))
}

func registerFantasyRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/fantasy/leagues", handler.CreateFantasyLeague)
	mux.HandleFunc("GET /api/fantasy/leagues", handler.ListFantasyLeagues)
	mux.HandleFunc("POST /api/fantasy/rosters", handler.CreateRoster)
	mux.HandleFunc("GET /api/fantasy/rosters", handler.ListRosters)
	mux.HandleFunc("GET /api/fantasy/rosters/{playerID}/score", handler.RosterScore)
	mux.HandleFunc("POST /api/fantasy/schedule", handler.GenerateSchedule)
	mux.HandleFunc("GET /api/fantasy/matchups", handler.ListFantasyMatchups)
	mux.HandleFunc("POST /api/fantasy/guesses", handler.SubmitGuess)
	mux.HandleFunc("GET /api/fantasy/guesses", handler.ListGuesses)
}
