package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/usecase"
)

func (h *Handler) CreateFantasyLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.CreateFantasyLeague")
	defer span.End()

	var req createFantasyLeagueRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.fantasyService.CreateLeague(ctx, usecase.CreateFantasyLeagueInput{
		Name:              req.Name,
		Mode:              scoring.Mode(req.Mode),
		StartTournamentID: req.StartTournamentID,
		Weeks:             req.Weeks,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create fantasy league failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, fantasyLeagueToDTO(created))
}

func (h *Handler) ListFantasyLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.ListFantasyLeagues")
	defer span.End()

	items, err := h.fantasyService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list fantasy leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]fantasyLeagueDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fantasyLeagueToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.CreateRoster")
	defer span.End()

	var req createRosterRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.fantasyService.CreateRoster(ctx, usecase.CreateRosterInput{
		LeagueID:          req.LeagueID,
		MemberName:        req.MemberName,
		StartTournamentID: req.StartTournamentID,
		T8BI:              req.T8BI,
		FPBI:              req.FPBI,
		OPBI:              req.OPBI,
		OBI:               req.OBI,
		S:                 req.S,
		GSS:               req.GSS,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create roster failed", "league_id", req.LeagueID, "member", req.MemberName, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, rosterToDTO(created))
}

func (h *Handler) ListRosters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.ListRosters")
	defer span.End()

	leagueID, err := requiredInt64Query(r, "leagueId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.fantasyService.ListRosters(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list rosters failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]rosterDTO, 0, len(items))
	for _, item := range items {
		out = append(out, rosterToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) RosterScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.RosterScore")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	tournamentID, err := requiredInt64Query(r, "tournamentId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	score, err := h.fantasyService.RosterScore(ctx, playerID, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "roster score failed", "player_id", playerID, "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, rosterScoreToDTO(score))
}

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.GenerateSchedule")
	defer span.End()

	var req generateScheduleRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.fantasyService.GenerateSchedule(ctx, req.LeagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "generate schedule failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]fantasyMatchupDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fantasyMatchupToDTO(item))
	}
	writeJSON(ctx, w, http.StatusCreated, out)
}

func (h *Handler) ListFantasyMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.ListFantasyMatchups")
	defer span.End()

	leagueID, err := requiredInt64Query(r, "leagueId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	tournamentID, err := requiredInt64Query(r, "tournamentId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.fantasyService.ListMatchups(ctx, leagueID, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fantasy matchups failed", "league_id", leagueID, "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]fantasyMatchupDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fantasyMatchupToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.SubmitGuess")
	defer span.End()

	var req submitGuessRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	guess, err := h.fantasyService.SubmitGuess(ctx, usecase.SubmitGuessInput{
		PlayerID:     req.PlayerID,
		TournamentID: req.TournamentID,
		Guess:        req.Guess,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit guess failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, guessToDTO(guess))
}

func (h *Handler) ListGuesses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.ListGuesses")
	defer span.End()

	leagueID, err := requiredInt64Query(r, "leagueId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	tournamentID, err := requiredInt64Query(r, "tournamentId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.fantasyService.ListGuesses(ctx, leagueID, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list guesses failed", "league_id", leagueID, "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]guessResultDTO, 0, len(items))
	for _, item := range items {
		out = append(out, guessResultToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}
