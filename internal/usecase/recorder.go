package usecase

import "github.com/riskibarqy/pool-league/internal/domain/scoring"

// MetricsRecorder receives business events worth counting.
type MetricsRecorder interface {
	EndGameRecorded(mode scoring.Mode, actions, standings int)
	FantasyMatchupScored(mode scoring.Mode)
}

type noopRecorder struct{}

func (noopRecorder) EndGameRecorded(scoring.Mode, int, int) {}
func (noopRecorder) FantasyMatchupScored(scoring.Mode)      {}

func recorderOrNoop(r MetricsRecorder) MetricsRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
