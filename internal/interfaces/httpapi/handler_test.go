package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/fantasy"
	"github.com/riskibarqy/pool-league/internal/domain/game"
	"github.com/riskibarqy/pool-league/internal/domain/matchup"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/domain/season"
	actionmock "github.com/riskibarqy/pool-league/internal/mocks/domain/action"
	awardmock "github.com/riskibarqy/pool-league/internal/mocks/domain/award"
	fantasymock "github.com/riskibarqy/pool-league/internal/mocks/domain/fantasy"
	gamemock "github.com/riskibarqy/pool-league/internal/mocks/domain/game"
	gamesplayedmock "github.com/riskibarqy/pool-league/internal/mocks/domain/gamesplayed"
	matchupmock "github.com/riskibarqy/pool-league/internal/mocks/domain/matchup"
	seasonmock "github.com/riskibarqy/pool-league/internal/mocks/domain/season"
	standingmock "github.com/riskibarqy/pool-league/internal/mocks/domain/standing"
	"github.com/riskibarqy/pool-league/internal/platform/logging"
	"github.com/riskibarqy/pool-league/internal/usecase"
)

const testAdminToken = "league-admin"

type staticIDs struct{}

func (staticIDs) NewID() (string, error) { return "roster-1", nil }

type routerFixture struct {
	gameRepo     *gamemock.Repository
	matchupRepo  *matchupmock.Repository
	actionRepo   *actionmock.Repository
	seasonRepo   *seasonmock.Repository
	standingRepo *standingmock.Repository
	gamesRepo    *gamesplayedmock.Repository
	awardRepo    *awardmock.Repository
	fantasyRepo  *fantasymock.Repository
	router       http.Handler
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()

	f := routerFixture{
		gameRepo:     gamemock.NewRepository(t),
		matchupRepo:  matchupmock.NewRepository(t),
		actionRepo:   actionmock.NewRepository(t),
		seasonRepo:   seasonmock.NewRepository(t),
		standingRepo: standingmock.NewRepository(t),
		gamesRepo:    gamesplayedmock.NewRepository(t),
		awardRepo:    awardmock.NewRepository(t),
		fantasyRepo:  fantasymock.NewRepository(t),
	}

	logger := logging.NewNop()
	statsService := usecase.NewStatsService(f.actionRepo, f.matchupRepo, f.seasonRepo, f.standingRepo, f.gamesRepo, logger)
	handler := NewHandler(
		usecase.NewGameService(f.gameRepo, f.matchupRepo, f.actionRepo, f.seasonRepo, nil, logger),
		statsService,
		usecase.NewSeasonService(f.seasonRepo, logger),
		usecase.NewAwardService(f.awardRepo, logger),
		usecase.NewFantasyService(f.fantasyRepo, f.actionRepo, staticIDs{}, nil, 2, logger),
		usecase.NewExportService(statsService),
		logger,
	)
	f.router = NewRouter(handler, logger, RouterOptions{
		CORSAllowedOrigins: []string{"*"},
		AdminToken:         testAdminToken,
	})
	return f
}

func (f routerFixture) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func anyCtx() any {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func TestRouter_Healthz(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeBody[map[string]string](t, rec)["status"])
}

func TestRouter_NextTournamentID_DefaultsToSingles(t *testing.T) {
	f := newRouterFixture(t)
	f.gameRepo.On("NextTournamentID", anyCtx(), scoring.ModeSingles).Return(int64(7), nil).Once()

	rec := f.do(http.MethodGet, "/api/next-tournament-id", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[nextTournamentDTO](t, rec)
	require.Equal(t, nextTournamentDTO{Mode: "singles", NextTournamentID: 7}, body)
}

func TestRouter_LatestTournament_IncludesSeason(t *testing.T) {
	f := newRouterFixture(t)
	f.gameRepo.On("NextTournamentID", anyCtx(), scoring.ModeDoubles).Return(int64(4), nil).Once()
	f.seasonRepo.
		On("List", anyCtx()).
		Return([]season.Season{{ID: 2, SeasonName: "Season 2", StartDoublesID: 0, EndDoublesID: 5}}, nil).
		Once()

	rec := f.do(http.MethodGet, "/api/latest-tournament?mode=doubles", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[latestTournamentDTO](t, rec)
	require.Equal(t, int64(3), body.TournamentID)
	require.NotNil(t, body.SeasonID)
	require.Equal(t, int64(2), *body.SeasonID)
}

func TestRouter_InvalidModeIsBadRequest(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/api/total-points?mode=triples", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalidInput", decodeBody[errorBody](t, rec).Reason)
}

func TestRouter_TotalPoints(t *testing.T) {
	f := newRouterFixture(t)
	f.actionRepo.
		On("ListTallies", anyCtx(), action.Filter{Mode: scoring.ModeSingles}).
		Return([]action.Tally{
			{PlayerName: "alice", TournamentID: 0, ActionType: scoring.EightBallIn, Count: 2},
			{PlayerName: "alice", TournamentID: 1, ActionType: scoring.Scratch, Count: 1},
		}, nil).
		Once()

	rec := f.do(http.MethodGet, "/api/total-points?mode=singles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 5.5, decodeBody[map[string]float64](t, rec)["alice"])
}

func TestRouter_EndGame(t *testing.T) {
	f := newRouterFixture(t)
	f.gameRepo.
		On("RecordEndGame", anyCtx(), mock.MatchedBy(func(g game.EndGame) bool {
			return g.Mode == scoring.ModeSingles && len(g.Actions) == 1 && g.Actions[0].ActionType == scoring.TwoBallIn
		})).
		Return(game.Result{Mode: scoring.ModeSingles, TournamentID: 11, ActionsWritten: 1, StandingsWritten: 1}, nil).
		Once()

	rec := f.do(http.MethodPost, "/api/end-game", `{
		"mode": "singles",
		"actions": [{"playerName": "alice", "actionType": "2 Ball In", "actionCount": 2}],
		"standings": [{"playerName": "alice", "standing": 1}],
		"gamesPlayed": [{"playerName": "alice", "games": 3}]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, endGameDTO{Mode: "singles", TournamentID: 11, Actions: 1, Standings: 1}, decodeBody[endGameDTO](t, rec))
}

func TestRouter_EndGame_RejectsUnknownFields(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/end-game", `{"mode":"singles","actionValue":3}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_RecordMatchup(t *testing.T) {
	f := newRouterFixture(t)
	f.matchupRepo.
		On("Create", anyCtx(), mock.MatchedBy(func(m matchup.Matchup) bool {
			return m.TournamentID == 2 && m.Player1 == "alice;bob" && m.Winner == "carol;dave"
		})).
		Return(func(_ context.Context, m matchup.Matchup) (matchup.Matchup, error) {
			m.ID = 40
			return m, nil
		}).
		Once()

	rec := f.do(http.MethodPost, "/api/matchup", `{
		"player1": "alice;bob", "player2": "carol;dave", "winner": "carol;dave",
		"ballsWon": 4, "overtime": true, "mode": "doubles", "tournamentId": 2
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody[matchupDTO](t, rec)
	require.Equal(t, int64(40), body.ID)
	require.True(t, body.Overtime)
}

func TestRouter_AddSeason_RequiresAdminToken(t *testing.T) {
	f := newRouterFixture(t)
	payload := `{"seasonName":"Season 3","startSinglesId":20,"endSinglesId":29,"startDoublesId":10,"endDoublesId":14}`

	rec := f.do(http.MethodPost, "/api/addSeason", payload)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	f.seasonRepo.
		On("Create", anyCtx(), mock.MatchedBy(func(s season.Season) bool { return s.SeasonName == "Season 3" })).
		Return(season.Season{ID: 3, SeasonName: "Season 3", StartSinglesID: 20, EndSinglesID: 29, StartDoublesID: 10, EndDoublesID: 14}, nil).
		Once()

	rec = f.do(http.MethodPost, "/api/addSeason", payload, adminTokenHeader, testAdminToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, int64(3), decodeBody[seasonDTO](t, rec).ID)
}

func TestRouter_SeasonForTournament_NotFound(t *testing.T) {
	f := newRouterFixture(t)
	f.seasonRepo.
		On("List", anyCtx()).
		Return([]season.Season{{ID: 1, SeasonName: "Season 1", StartSinglesID: 0, EndSinglesID: 9}}, nil).
		Once()

	rec := f.do(http.MethodGet, "/api/season-for-tournament?mode=singles&tournamentId=12", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SeasonForTournament_RequiresTournamentID(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/api/season-for-tournament?mode=singles", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_CreateRoster_Conflict(t *testing.T) {
	f := newRouterFixture(t)
	f.fantasyRepo.
		On("GetLeague", anyCtx(), int64(1)).
		Return(fantasy.League{ID: 1, Name: "Spring", Mode: scoring.ModeSingles, StartTournamentID: 5, Weeks: 2}, true, nil).
		Once()
	f.fantasyRepo.On("CreateRoster", anyCtx(), mock.Anything).Return(fantasy.ErrRosterExists).Once()

	rec := f.do(http.MethodPost, "/api/fantasy/rosters", `{
		"leagueId": 1, "memberName": "dana",
		"T8BI": "alice", "FPBI": "bob", "OPBI": "carol", "OBI": "dave", "S": "erin", "GSS": "alice"
	}`)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	require.Equal(t, "conflict", decodeBody[errorBody](t, rec).Reason)
}

func TestRouter_ListFantasyMatchups_RequiresLeague(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/api/fantasy/matchups?tournamentId=3", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ExportLeaderboard(t *testing.T) {
	f := newRouterFixture(t)
	for _, mode := range []scoring.Mode{scoring.ModeSingles, scoring.ModeDoubles} {
		f.actionRepo.On("ListTallies", anyCtx(), action.Filter{Mode: mode}).Return([]action.Tally{}, nil).Once()
		f.gamesRepo.On("List", anyCtx(), mode).Return(nil, nil).Once()
		f.matchupRepo.On("ListByMode", anyCtx(), mode, (*scoring.TournamentRange)(nil)).Return(nil, nil).Once()
	}

	rec := f.do(http.MethodGet, "/api/export/leaderboard.xlsx", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	require.NotZero(t, rec.Body.Len())
}
