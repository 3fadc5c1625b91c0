package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/platform/logging"
	"github.com/riskibarqy/pool-league/internal/usecase"
)

type Handler struct {
	gameService    *usecase.GameService
	statsService   *usecase.StatsService
	seasonService  *usecase.SeasonService
	awardService   *usecase.AwardService
	fantasyService *usecase.FantasyService
	exportService  *usecase.ExportService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	gameService *usecase.GameService,
	statsService *usecase.StatsService,
	seasonService *usecase.SeasonService,
	awardService *usecase.AwardService,
	fantasyService *usecase.FantasyService,
	exportService *usecase.ExportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		gameService:    gameService,
		statsService:   statsService,
		seasonService:  seasonService,
		awardService:   awardService,
		fantasyService: fantasyService,
		exportService:  exportService,
		logger:         logger.Named("httpapi"),
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeAndValidate reads a strict JSON body into dst and runs struct validation.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

// modeParam defaults to singles when the query omits mode.
func modeParam(r *http.Request) (scoring.Mode, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("mode"))
	if raw == "" {
		return scoring.ModeSingles, nil
	}
	mode, err := scoring.ParseMode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return mode, nil
}

func optionalInt64Query(r *http.Request, key string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return &v, nil
}

func requiredInt64Query(r *http.Request, key string) (int64, error) {
	v, err := optionalInt64Query(r, key)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, key)
	}
	return *v, nil
}

func statsQueryParams(r *http.Request) (usecase.StatsQuery, error) {
	mode, err := modeParam(r)
	if err != nil {
		return usecase.StatsQuery{}, err
	}
	seasonID, err := optionalInt64Query(r, "seasonId")
	if err != nil {
		return usecase.StatsQuery{}, err
	}
	return usecase.StatsQuery{Mode: mode, SeasonID: seasonID}, nil
}
