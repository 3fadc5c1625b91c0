package season

import (
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/pool-league/internal/domain/scoring"
)

var ErrSeasonNotFound = crerr.New("no season matches tournament")

// Season is a named contiguous tournament id range, delimited separately per mode.
type Season struct {
	ID             int64
	SeasonName     string
	StartSinglesID int64
	EndSinglesID   int64
	StartDoublesID int64
	EndDoublesID   int64
}

func (s Season) Validate() error {
	if strings.TrimSpace(s.SeasonName) == "" {
		return fmt.Errorf("season name is required")
	}
	if !s.Range(scoring.ModeSingles).Valid() {
		return fmt.Errorf("singles range is invalid: start=%d end=%d", s.StartSinglesID, s.EndSinglesID)
	}
	if !s.Range(scoring.ModeDoubles).Valid() {
		return fmt.Errorf("doubles range is invalid: start=%d end=%d", s.StartDoublesID, s.EndDoublesID)
	}
	return nil
}

func (s Season) Range(mode scoring.Mode) scoring.TournamentRange {
	if mode == scoring.ModeDoubles {
		return scoring.TournamentRange{From: s.StartDoublesID, To: s.EndDoublesID}
	}
	return scoring.TournamentRange{From: s.StartSinglesID, To: s.EndSinglesID}
}

// Resolve finds the season whose range for mode contains tournamentID.
func Resolve(seasons []Season, mode scoring.Mode, tournamentID int64) (Season, error) {
	for _, s := range seasons {
		if s.Range(mode).Contains(tournamentID) {
			return s, nil
		}
	}
	return Season{}, crerr.Wrapf(ErrSeasonNotFound, "mode=%s tournament=%d", mode, tournamentID)
}

// Current is the season with the highest id.
func Current(seasons []Season) (Season, bool) {
	var (
		current Season
		found   bool
	)
	for _, s := range seasons {
		if !found || s.ID > current.ID {
			current = s
			found = true
		}
	}
	return current, found
}
