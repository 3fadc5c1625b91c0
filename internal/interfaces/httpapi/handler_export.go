package httpapi

import (
	"net/http"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) ExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.ExportLeaderboard")
	defer span.End()

	seasonID, err := optionalInt64Query(r, "seasonId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	// Render fully before writing headers so a failed export still returns a JSON error.
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := h.exportService.WriteLeaderboard(ctx, seasonID, buf); err != nil {
		h.logger.ErrorContext(ctx, "export leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	filename := "leaderboard.xlsx"
	if seasonID != nil {
		filename = "leaderboard-season-" + strconv.FormatInt(*seasonID, 10) + ".xlsx"
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.B)
}
