package httpapi

import (
	"net/http"

	"github.com/riskibarqy/pool-league/internal/usecase"
)

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.ListSeasons")
	defer span.End()

	items, err := h.seasonService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) SeasonForTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.SeasonForTournament")
	defer span.End()

	mode, err := modeParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	tournamentID, err := requiredInt64Query(r, "tournamentId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.ForTournament(ctx, mode, tournamentID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.CreateSeason")
	defer span.End()

	var req createSeasonRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.seasonService.Create(ctx, usecase.CreateSeasonInput{
		SeasonName:     req.SeasonName,
		StartSinglesID: req.StartSinglesID,
		EndSinglesID:   req.EndSinglesID,
		StartDoublesID: req.StartDoublesID,
		EndDoublesID:   req.EndDoublesID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "season_name", req.SeasonName, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, seasonToDTO(created))
}

func (h *Handler) ListAwards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.ListAwards")
	defer span.End()

	items, err := h.awardService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list awards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]awardDTO, 0, len(items))
	for _, item := range items {
		out = append(out, awardToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) GrantAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.GrantAward")
	defer span.End()

	var req grantAwardRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.awardService.Grant(ctx, usecase.GrantAwardInput{
		PlayerName: req.PlayerName,
		Award:      req.Award,
		Season:     req.Season,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "grant award failed", "player", req.PlayerName, "award", req.Award, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, awardToDTO(updated))
}
