package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/game"
	"github.com/riskibarqy/pool-league/internal/domain/gamesplayed"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/domain/standing"
	"github.com/riskibarqy/pool-league/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.gameService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if players == nil {
		players = []string{}
	}

	writeJSON(ctx, w, http.StatusOK, players)
}

func (h *Handler) NextTournamentID(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.NextTournamentID")
	defer span.End()

	mode, err := modeParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	next, err := h.gameService.NextTournamentID(ctx, mode)
	if err != nil {
		h.logger.ErrorContext(ctx, "next tournament id failed", "mode", mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, nextTournamentDTO{Mode: string(mode), NextTournamentID: next})
}

func (h *Handler) LatestTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.LatestTournament")
	defer span.End()

	mode, err := modeParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	latest, err := h.gameService.LatestTournament(ctx, mode)
	if err != nil {
		h.logger.ErrorContext(ctx, "latest tournament failed", "mode", mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := latestTournamentDTO{Mode: string(latest.Mode), TournamentID: latest.TournamentID}
	if latest.Season != nil {
		id := latest.Season.ID
		out.SeasonID = &id
		out.SeasonName = latest.Season.SeasonName
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) RecordMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.RecordMatchup")
	defer span.End()

	var req recordMatchupRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.gameService.RecordMatchup(ctx, usecase.RecordMatchupInput{
		Player1:      req.Player1,
		Player2:      req.Player2,
		Winner:       req.Winner,
		BallsWon:     req.BallsWon,
		Overtime:     req.Overtime,
		Mode:         scoring.Mode(req.Mode),
		TournamentID: req.TournamentID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record matchup failed", "mode", req.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, matchupToDTO(created))
}

func (h *Handler) EndGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.EndGame")
	defer span.End()

	var req endGameRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	in := game.EndGame{
		Mode:        scoring.Mode(req.Mode),
		Actions:     make([]action.Entry, 0, len(req.Actions)),
		Standings:   make([]standing.Entry, 0, len(req.Standings)),
		GamesPlayed: make([]gamesplayed.Entry, 0, len(req.GamesPlayed)),
	}
	for _, a := range req.Actions {
		in.Actions = append(in.Actions, action.Entry{
			PlayerName:  a.PlayerName,
			ActionType:  scoring.ActionType(strings.TrimSpace(a.ActionType)),
			ActionCount: a.ActionCount,
		})
	}
	for _, s := range req.Standings {
		in.Standings = append(in.Standings, standing.Entry{PlayerName: s.PlayerName, Standing: s.Standing})
	}
	for _, g := range req.GamesPlayed {
		in.GamesPlayed = append(in.GamesPlayed, gamesplayed.Entry{PlayerName: g.PlayerName, Games: g.Games})
	}

	res, err := h.gameService.EndGame(ctx, in)
	if err != nil {
		h.logger.WarnContext(ctx, "end game failed", "mode", req.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, endGameDTO{
		Mode:         string(res.Mode),
		TournamentID: res.TournamentID,
		Actions:      res.ActionsWritten,
		Standings:    res.StandingsWritten,
	})
}
