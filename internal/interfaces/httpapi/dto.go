package httpapi

import (
	"time"

	"github.com/riskibarqy/pool-league/internal/domain/award"
	"github.com/riskibarqy/pool-league/internal/domain/fantasy"
	"github.com/riskibarqy/pool-league/internal/domain/gamesplayed"
	"github.com/riskibarqy/pool-league/internal/domain/matchup"
	"github.com/riskibarqy/pool-league/internal/domain/season"
	"github.com/riskibarqy/pool-league/internal/domain/standing"
	"github.com/riskibarqy/pool-league/internal/domain/stats"
)

type recordMatchupRequest struct {
	Player1      string `json:"player1" validate:"required"`
	Player2      string `json:"player2" validate:"required"`
	Winner       string `json:"winner" validate:"required"`
	BallsWon     int    `json:"ballsWon" validate:"min=0"`
	Overtime     bool   `json:"overtime"`
	Mode         string `json:"mode" validate:"required,oneof=singles doubles"`
	TournamentID *int64 `json:"tournamentId" validate:"omitempty,min=0"`
}

type endGameActionRequest struct {
	PlayerName  string `json:"playerName" validate:"required"`
	ActionType  string `json:"actionType" validate:"required"`
	ActionCount int64  `json:"actionCount" validate:"min=0"`
}

type endGameStandingRequest struct {
	PlayerName string `json:"playerName" validate:"required"`
	Standing   int    `json:"standing" validate:"min=0"`
}

type endGameGamesPlayedRequest struct {
	PlayerName string `json:"playerName" validate:"required"`
	Games      int64  `json:"games" validate:"min=0"`
}

type endGameRequest struct {
	Mode        string                      `json:"mode" validate:"required,oneof=singles doubles"`
	Actions     []endGameActionRequest      `json:"actions" validate:"dive"`
	Standings   []endGameStandingRequest    `json:"standings" validate:"dive"`
	GamesPlayed []endGameGamesPlayedRequest `json:"gamesPlayed" validate:"dive"`
}

type createSeasonRequest struct {
	SeasonName     string `json:"seasonName" validate:"required,max=100"`
	StartSinglesID int64  `json:"startSinglesId" validate:"min=0"`
	EndSinglesID   int64  `json:"endSinglesId" validate:"min=0"`
	StartDoublesID int64  `json:"startDoublesId" validate:"min=0"`
	EndDoublesID   int64  `json:"endDoublesId" validate:"min=0"`
}

type grantAwardRequest struct {
	PlayerName string `json:"playerName" validate:"required"`
	Award      string `json:"award" validate:"required,oneof=allStar allNpa1 allNpa2 allNpa3"`
	Season     string `json:"season" validate:"required"`
}

type createFantasyLeagueRequest struct {
	Name              string `json:"name" validate:"required,max=100"`
	Mode              string `json:"mode" validate:"required,oneof=singles doubles"`
	StartTournamentID int64  `json:"startTournamentId" validate:"min=0"`
	Weeks             int    `json:"weeks" validate:"required,min=1,max=52"`
}

type createRosterRequest struct {
	LeagueID          int64  `json:"leagueId" validate:"required,min=1"`
	MemberName        string `json:"memberName" validate:"required,max=100"`
	StartTournamentID *int64 `json:"startTournamentId" validate:"omitempty,min=0"`
	T8BI              string `json:"T8BI" validate:"required"`
	FPBI              string `json:"FPBI" validate:"required"`
	OPBI              string `json:"OPBI" validate:"required"`
	OBI               string `json:"OBI" validate:"required"`
	S                 string `json:"S" validate:"required"`
	GSS               string `json:"GSS" validate:"required"`
}

type generateScheduleRequest struct {
	LeagueID int64 `json:"leagueId" validate:"required,min=1"`
}

type submitGuessRequest struct {
	PlayerID     string  `json:"playerId" validate:"required"`
	TournamentID int64   `json:"tournamentId" validate:"min=0"`
	Guess        float64 `json:"guess"`
}

type nextTournamentDTO struct {
	Mode             string `json:"mode"`
	NextTournamentID int64  `json:"nextTournamentId"`
}

type latestTournamentDTO struct {
	Mode         string `json:"mode"`
	TournamentID int64  `json:"tournamentId"`
	SeasonID     *int64 `json:"seasonId,omitempty"`
	SeasonName   string `json:"seasonName,omitempty"`
}

type matchupDTO struct {
	ID           int64  `json:"id"`
	Player1      string `json:"player1"`
	Player2      string `json:"player2"`
	Winner       string `json:"winner"`
	BallsWon     int    `json:"ballsWon"`
	Overtime     bool   `json:"overtime"`
	Mode         string `json:"mode"`
	TournamentID int64  `json:"tournamentId"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

type endGameDTO struct {
	Mode         string `json:"mode"`
	TournamentID int64  `json:"tournamentId"`
	Actions      int    `json:"actions"`
	Standings    int    `json:"standings"`
}

type recordDTO struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	TotalMatches  int     `json:"totalMatches"`
	Record        string  `json:"record"`
	WinPercentage float64 `json:"winPercentage"`
}

type headToHeadDTO struct {
	Player1        string       `json:"player1"`
	Player2        string       `json:"player2"`
	Player1Wins    int          `json:"player1Wins"`
	Player2Wins    int          `json:"player2Wins"`
	TotalMatches   int          `json:"totalMatches"`
	LastFive       []matchupDTO `json:"lastFive"`
	Player1Overall recordDTO    `json:"player1Overall"`
	Player2Overall recordDTO    `json:"player2Overall"`
}

type percentileDTO struct {
	PlayerName string  `json:"playerName"`
	Average    float64 `json:"average"`
	ZScore     float64 `json:"zScore"`
	Percentile float64 `json:"percentile"`
}

type standingSummaryDTO struct {
	PlayerName string  `json:"playerName"`
	Standings  []int   `json:"standings"`
	Average    float64 `json:"average"`
	Best       int     `json:"best"`
}

type gamesPlayedDTO struct {
	Tournaments int64 `json:"tournaments"`
	Games       int64 `json:"games"`
}

type overallScoreDTO struct {
	PlayerName string  `json:"playerName"`
	PPG        float64 `json:"ppg"`
	PPT        float64 `json:"ppt"`
	PPS        float64 `json:"pps"`
	Score      float64 `json:"score"`
}

type allNPAScoreDTO struct {
	PlayerName      string  `json:"playerName"`
	PPG             float64 `json:"ppg"`
	PPT             float64 `json:"ppt"`
	PPS             float64 `json:"pps"`
	BestTournament  float64 `json:"bestTournament"`
	WorstTournament float64 `json:"worstTournament"`
	Score           float64 `json:"score"`
}

type mvpScoreDTO struct {
	PlayerName     string  `json:"playerName"`
	SelectionScore float64 `json:"selectionScore"`
	SinglesWinPct  float64 `json:"singlesWinPct"`
	DoublesWinPct  float64 `json:"doublesWinPct"`
	Score          float64 `json:"score"`
}

type seasonDTO struct {
	ID             int64  `json:"id"`
	SeasonName     string `json:"seasonName"`
	StartSinglesID int64  `json:"startSinglesId"`
	EndSinglesID   int64  `json:"endSinglesId"`
	StartDoublesID int64  `json:"startDoublesId"`
	EndDoublesID   int64  `json:"endDoublesId"`
}

type awardDTO struct {
	PlayerName        string `json:"playerName"`
	AllStarSelections int    `json:"allStarSelections"`
	AllNpa1Selections int    `json:"allNpa1Selections"`
	AllNpa2Selections int    `json:"allNpa2Selections"`
	AllNpa3Selections int    `json:"allNpa3Selections"`
	AllStarSeasons    string `json:"allStarSeasons"`
	AllNpaSeasons     string `json:"allNpaSeasons"`
}

type fantasyLeagueDTO struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Mode              string `json:"mode"`
	StartTournamentID int64  `json:"startTournamentId"`
	Weeks             int    `json:"weeks"`
	CreatedAt         string `json:"createdAt,omitempty"`
}

type rosterDTO struct {
	PlayerID          string `json:"playerId"`
	LeagueID          int64  `json:"leagueId"`
	MemberName        string `json:"memberName"`
	StartTournamentID int64  `json:"startTournamentId"`
	T8BI              string `json:"T8BI"`
	FPBI              string `json:"FPBI"`
	OPBI              string `json:"OPBI"`
	OBI               string `json:"OBI"`
	S                 string `json:"S"`
	GSS               string `json:"GSS"`
	CreatedAt         string `json:"createdAt,omitempty"`
}

type fantasyMatchupDTO struct {
	ID           int64   `json:"id"`
	LeagueID     int64   `json:"leagueId"`
	TournamentID int64   `json:"tournamentId"`
	Team1ID      string  `json:"team1Id"`
	Team2ID      string  `json:"team2Id"`
	Score1       float64 `json:"score1"`
	Score2       float64 `json:"score2"`
	WinnerID     string  `json:"winnerId"`
}

type slotScoreDTO struct {
	Slot       string  `json:"slot"`
	PlayerName string  `json:"playerName"`
	Made       int64   `json:"made"`
	Opp        int64   `json:"opp"`
	Value      float64 `json:"value"`
}

type rosterScoreDTO struct {
	PlayerID     string         `json:"playerId"`
	TournamentID int64          `json:"tournamentId"`
	Slots        []slotScoreDTO `json:"slots"`
	Total        float64        `json:"total"`
}

type guessDTO struct {
	PlayerID     string  `json:"playerId"`
	LeagueID     int64   `json:"leagueId"`
	TournamentID int64   `json:"tournamentId"`
	Guess        float64 `json:"guess"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

type guessResultDTO struct {
	PlayerID     string  `json:"playerId"`
	LeagueID     int64   `json:"leagueId"`
	TournamentID int64   `json:"tournamentId"`
	Guess        float64 `json:"guess"`
	MemberName   string  `json:"memberName"`
	GSSPlayer    string  `json:"gssPlayer"`
	Actual       float64 `json:"actual"`
	Diff         float64 `json:"diff"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func matchupToDTO(m matchup.Matchup) matchupDTO {
	return matchupDTO{
		ID:           m.ID,
		Player1:      m.Player1,
		Player2:      m.Player2,
		Winner:       m.Winner,
		BallsWon:     m.BallsWon,
		Overtime:     m.Overtime,
		Mode:         string(m.Mode),
		TournamentID: m.TournamentID,
		CreatedAt:    formatTime(m.CreatedAt),
	}
}

func recordToDTO(r stats.Record) recordDTO {
	return recordDTO{
		Wins:          r.Wins,
		Losses:        r.Losses,
		TotalMatches:  r.TotalMatches,
		Record:        r.Record,
		WinPercentage: r.WinPercentage,
	}
}

func headToHeadToDTO(v stats.HeadToHead) headToHeadDTO {
	lastFive := make([]matchupDTO, 0, len(v.LastFive))
	for _, m := range v.LastFive {
		lastFive = append(lastFive, matchupToDTO(m))
	}
	return headToHeadDTO{
		Player1:        v.Player1,
		Player2:        v.Player2,
		Player1Wins:    v.Player1Wins,
		Player2Wins:    v.Player2Wins,
		TotalMatches:   v.TotalMatches,
		LastFive:       lastFive,
		Player1Overall: recordToDTO(v.Player1Overall),
		Player2Overall: recordToDTO(v.Player2Overall),
	}
}

func standingSummaryToDTO(v standing.Summary) standingSummaryDTO {
	standings := v.Standings
	if standings == nil {
		standings = []int{}
	}
	return standingSummaryDTO{
		PlayerName: v.PlayerName,
		Standings:  standings,
		Average:    v.Average,
		Best:       v.Best,
	}
}

func gamesPlayedToDTO(v gamesplayed.Counter) gamesPlayedDTO {
	return gamesPlayedDTO{Tournaments: v.Tournaments, Games: v.Games}
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{
		ID:             v.ID,
		SeasonName:     v.SeasonName,
		StartSinglesID: v.StartSinglesID,
		EndSinglesID:   v.EndSinglesID,
		StartDoublesID: v.StartDoublesID,
		EndDoublesID:   v.EndDoublesID,
	}
}

func awardToDTO(v award.Award) awardDTO {
	return awardDTO{
		PlayerName:        v.PlayerName,
		AllStarSelections: v.AllStarSelections,
		AllNpa1Selections: v.AllNpa1Selections,
		AllNpa2Selections: v.AllNpa2Selections,
		AllNpa3Selections: v.AllNpa3Selections,
		AllStarSeasons:    v.AllStarSeasons,
		AllNpaSeasons:     v.AllNpaSeasons,
	}
}

func fantasyLeagueToDTO(v fantasy.League) fantasyLeagueDTO {
	return fantasyLeagueDTO{
		ID:                v.ID,
		Name:              v.Name,
		Mode:              string(v.Mode),
		StartTournamentID: v.StartTournamentID,
		Weeks:             v.Weeks,
		CreatedAt:         formatTime(v.CreatedAt),
	}
}

func rosterToDTO(v fantasy.Roster) rosterDTO {
	return rosterDTO{
		PlayerID:          v.PlayerID,
		LeagueID:          v.LeagueID,
		MemberName:        v.MemberName,
		StartTournamentID: v.StartTournamentID,
		T8BI:              v.T8BI,
		FPBI:              v.FPBI,
		OPBI:              v.OPBI,
		OBI:               v.OBI,
		S:                 v.S,
		GSS:               v.GSS,
		CreatedAt:         formatTime(v.CreatedAt),
	}
}

func fantasyMatchupToDTO(v fantasy.Matchup) fantasyMatchupDTO {
	return fantasyMatchupDTO{
		ID:           v.ID,
		LeagueID:     v.LeagueID,
		TournamentID: v.TournamentID,
		Team1ID:      v.Team1ID,
		Team2ID:      v.Team2ID,
		Score1:       v.Score1,
		Score2:       v.Score2,
		WinnerID:     v.WinnerID,
	}
}

func rosterScoreToDTO(v fantasy.RosterScore) rosterScoreDTO {
	slots := make([]slotScoreDTO, 0, len(v.Slots))
	for _, s := range v.Slots {
		slots = append(slots, slotScoreDTO{
			Slot:       string(s.Slot),
			PlayerName: s.PlayerName,
			Made:       s.Made,
			Opp:        s.Opp,
			Value:      s.Value,
		})
	}
	return rosterScoreDTO{
		PlayerID:     v.PlayerID,
		TournamentID: v.TournamentID,
		Slots:        slots,
		Total:        v.Total,
	}
}

func guessToDTO(v fantasy.Guess) guessDTO {
	return guessDTO{
		PlayerID:     v.PlayerID,
		LeagueID:     v.LeagueID,
		TournamentID: v.TournamentID,
		Guess:        v.Guess,
		CreatedAt:    formatTime(v.CreatedAt),
	}
}

func guessResultToDTO(v fantasy.GuessResult) guessResultDTO {
	return guessResultDTO{
		PlayerID:     v.PlayerID,
		LeagueID:     v.LeagueID,
		TournamentID: v.TournamentID,
		Guess:        v.Guess.Guess,
		MemberName:   v.MemberName,
		GSSPlayer:    v.GSSPlayer,
		Actual:       v.Actual,
		Diff:         v.Diff,
	}
}
