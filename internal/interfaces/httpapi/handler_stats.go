package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

func (h *Handler) TotalPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.TotalPoints")
	defer span.End()

	q, err := statsQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.statsService.TotalPoints(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "total points failed", "mode", q.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) PointsPerGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.PointsPerGame")
	defer span.End()

	q, err := statsQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.statsService.PointsPerGame(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "points per game failed", "mode", q.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) PointsPerTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.PointsPerTournament")
	defer span.End()

	q, err := statsQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.statsService.PointsPerTournament(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "points per tournament failed", "mode", q.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) PointsPerStroke(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.PointsPerStroke")
	defer span.End()

	q, err := statsQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.statsService.PointsPerStroke(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "points per stroke failed", "mode", q.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) ActionCounts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.ActionCounts")
	defer span.End()

	q, err := statsQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	counts, err := h.statsService.ActionCounts(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "action counts failed", "mode", q.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string]map[string]int64, len(counts))
	for player, perType := range counts {
		row := make(map[string]int64, len(perType))
		for actionType, n := range perType {
			row[string(actionType)] = n
		}
		out[player] = row
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) Records(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.Records")
	defer span.End()

	q, err := statsQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.statsService.Records(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "records failed", "mode", q.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string]recordDTO, len(records))
	for player, rec := range records {
		out[player] = recordToDTO(rec)
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) HeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.HeadToHead")
	defer span.End()

	q, err := statsQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	player1 := strings.TrimSpace(r.URL.Query().Get("player1"))
	player2 := strings.TrimSpace(r.URL.Query().Get("player2"))

	out, err := h.statsService.HeadToHead(ctx, q, player1, player2)
	if err != nil {
		h.logger.WarnContext(ctx, "head to head failed", "player1", player1, "player2", player2, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, headToHeadToDTO(out))
}

func (h *Handler) Percentiles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.Percentiles")
	defer span.End()

	q, err := statsQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	actionType := scoring.ActionType(strings.TrimSpace(r.URL.Query().Get("actionType")))

	items, err := h.statsService.Percentiles(ctx, q, actionType)
	if err != nil {
		h.logger.WarnContext(ctx, "percentiles failed", "action_type", actionType, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]percentileDTO, 0, len(items))
	for _, item := range items {
		out = append(out, percentileDTO{
			PlayerName: item.PlayerName,
			Average:    item.Average,
			ZScore:     item.ZScore,
			Percentile: item.Percentile,
		})
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.Tags")
	defer span.End()

	mode, err := modeParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.statsService.Tags(ctx, mode)
	if err != nil {
		h.logger.WarnContext(ctx, "tags failed", "mode", mode, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.Standings")
	defer span.End()

	q, err := statsQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statsService.Standings(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "standings failed", "mode", q.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]standingSummaryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, standingSummaryToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) GamesPlayed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.GamesPlayed")
	defer span.End()

	q, err := statsQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	counters, err := h.statsService.GamesPlayed(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "games played failed", "mode", q.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string]gamesPlayedDTO, len(counters))
	for player, c := range counters {
		out[player] = gamesPlayedToDTO(c)
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) OverallScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.OverallScores")
	defer span.End()

	q, err := statsQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statsService.OverallScores(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "overall scores failed", "mode", q.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]overallScoreDTO, 0, len(items))
	for _, item := range items {
		out = append(out, overallScoreDTO{
			PlayerName: item.PlayerName,
			PPG:        item.PPG,
			PPT:        item.PPT,
			PPS:        item.PPS,
			Score:      item.Score,
		})
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) AllNPA(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.AllNPA")
	defer span.End()

	q, err := statsQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statsService.AllNPA(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "all-npa failed", "mode", q.Mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]allNPAScoreDTO, 0, len(items))
	for _, item := range items {
		out = append(out, allNPAScoreDTO{
			PlayerName:      item.PlayerName,
			PPG:             item.PPG,
			PPT:             item.PPT,
			PPS:             item.PPS,
			BestTournament:  item.BestTournament,
			WorstTournament: item.WorstTournament,
			Score:           item.Score,
		})
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) MVP(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.MVP")
	defer span.End()

	seasonID, err := optionalInt64Query(r, "seasonId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statsService.MVP(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "mvp failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]mvpScoreDTO, 0, len(items))
	for _, item := range items {
		out = append(out, mvpScoreDTO{
			PlayerName:     item.PlayerName,
			SelectionScore: item.SelectionScore,
			SinglesWinPct:  item.SinglesWinPct,
			DoublesWinPct:  item.DoublesWinPct,
			Score:          item.Score,
		})
	}
	writeJSON(ctx, w, http.StatusOK, out)
}
