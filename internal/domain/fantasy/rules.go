package fantasy

import (
	"fmt"
	"math"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

var (
	ErrDuplicateSlotPlayer = crerr.New("slot players must be distinct")
	ErrNotEnoughRosters    = crerr.New("at least two rosters are required")
	ErrRosterExists        = crerr.New("member already has a roster in this league")
)

type Slot string

const (
	SlotT8BI Slot = "T8BI"
	SlotFPBI Slot = "FPBI"
	SlotOPBI Slot = "OPBI"
	SlotOBI  Slot = "OBI"
	SlotS    Slot = "S"
)

var slotActions = map[Slot][]scoring.ActionType{
	SlotT8BI: {scoring.EightBallIn, scoring.OppEightBall},
	SlotFPBI: {scoring.ThreeBallIn, scoring.FourPlusIn},
	SlotOPBI: {scoring.BallIn, scoring.TwoBallIn},
	SlotOBI:  {scoring.OppBallIn},
	SlotS:    {scoring.Scratch},
}

func (r Roster) Validate() error {
	if strings.TrimSpace(r.MemberName) == "" {
		return fmt.Errorf("member name is required")
	}
	if r.LeagueID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if strings.TrimSpace(r.GSS) == "" {
		return fmt.Errorf("GSS player is required")
	}

	seen := make(map[string]Slot, 5)
	for _, binding := range r.SlotPlayers() {
		name := strings.TrimSpace(binding.PlayerName)
		if name == "" {
			return fmt.Errorf("%s player is required", binding.Slot)
		}
		if prev, dup := seen[name]; dup {
			return crerr.Wrapf(ErrDuplicateSlotPlayer, "player=%s slots=%s,%s", name, prev, binding.Slot)
		}
		seen[name] = binding.Slot
	}
	return nil
}

// SlotScore is one slot's contribution. For T8BI, Made counts 8 Ball In and Opp counts Opp. 8 Ball In.
type SlotScore struct {
	Slot       Slot
	PlayerName string
	Made       int64
	Opp        int64
	Value      float64
}

type RosterScore struct {
	PlayerID     string
	TournamentID int64
	Slots        []SlotScore
	Total        float64
}

// ScoreRoster scores a roster from one tournament's tallies. T8BI keeps its sign so an
// opponent 8 ball nets against a made one; every other slot adds |count x value|.
func ScoreRoster(r Roster, tournamentID int64, tallies []action.Tally) RosterScore {
	counts := make(map[string]map[scoring.ActionType]int64)
	for _, t := range tallies {
		if t.TournamentID != tournamentID {
			continue
		}
		perPlayer, ok := counts[t.PlayerName]
		if !ok {
			perPlayer = make(map[scoring.ActionType]int64)
			counts[t.PlayerName] = perPlayer
		}
		perPlayer[t.ActionType] += t.Count
	}

	out := RosterScore{PlayerID: r.PlayerID, TournamentID: tournamentID}
	for _, binding := range r.SlotPlayers() {
		perPlayer := counts[binding.PlayerName]
		score := SlotScore{Slot: binding.Slot, PlayerName: binding.PlayerName}

		if binding.Slot == SlotT8BI {
			score.Made = perPlayer[scoring.EightBallIn]
			score.Opp = perPlayer[scoring.OppEightBall]
			score.Value = scoring.Points(scoring.EightBallIn, score.Made) + scoring.Points(scoring.OppEightBall, score.Opp)
		} else {
			for _, actionType := range slotActions[binding.Slot] {
				n := perPlayer[actionType]
				score.Made += n
				score.Value += math.Abs(scoring.Points(actionType, n))
			}
		}

		out.Slots = append(out.Slots, score)
		out.Total += score.Value
	}
	return out
}

// Decide records both scores and the winner. An exact tie goes to team2.
func (m Matchup) Decide(score1, score2 float64) Matchup {
	m.Score1 = score1
	m.Score2 = score2
	if score1 > score2 {
		m.WinnerID = m.Team1ID
	} else {
		m.WinnerID = m.Team2ID
	}
	return m
}

// Schedule pairs rosters round robin over the league's weeks using the circle method:
// the first roster is fixed and the rest rotate one place per week. An odd roster count
// adds a bye, and the roster drawn against the bye sits the week out.
func Schedule(league League, rosterIDs []string) ([]Matchup, error) {
	if len(rosterIDs) < 2 {
		return nil, crerr.Wrapf(ErrNotEnoughRosters, "rosters=%d", len(rosterIDs))
	}
	if league.Weeks <= 0 {
		return nil, fmt.Errorf("weeks must be greater than zero")
	}

	seen := make(map[string]struct{}, len(rosterIDs))
	for _, id := range rosterIDs {
		if id == "" {
			return nil, fmt.Errorf("roster id is required")
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("roster %s listed twice", id)
		}
		seen[id] = struct{}{}
	}

	const bye = ""
	ring := append([]string(nil), rosterIDs...)
	if len(ring)%2 == 1 {
		ring = append(ring, bye)
	}
	n := len(ring)

	out := make([]Matchup, 0, league.Weeks*n/2)
	for week, tournamentID := range league.Tournaments() {
		for i := 0; i < n/2; i++ {
			home, away := ring[i], ring[n-1-i]
			if home == bye || away == bye {
				continue
			}
			if week%2 == 1 && i == 0 {
				home, away = away, home
			}
			out = append(out, Matchup{
				LeagueID:     league.ID,
				TournamentID: tournamentID,
				Team1ID:      home,
				Team2ID:      away,
			})
		}

		// rotate everything but the first slot clockwise
		last := ring[n-1]
		copy(ring[2:], ring[1:n-1])
		ring[1] = last
	}
	return out, nil
}
