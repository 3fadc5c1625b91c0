package award

import (
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

var ErrUnknownKind = crerr.New("unknown award kind")

type Kind string

const (
	KindAllStar Kind = "allStar"
	KindAllNpa1 Kind = "allNpa1"
	KindAllNpa2 Kind = "allNpa2"
	KindAllNpa3 Kind = "allNpa3"
)

func ParseKind(raw string) (Kind, error) {
	switch k := Kind(strings.TrimSpace(raw)); k {
	case KindAllStar, KindAllNpa1, KindAllNpa2, KindAllNpa3:
		return k, nil
	default:
		return "", crerr.Wrapf(ErrUnknownKind, "award=%q", raw)
	}
}

// Award tracks selections per player. Seasons fields are comma-terminated season tokens.
type Award struct {
	PlayerName        string
	AllStarSelections int
	AllNpa1Selections int
	AllNpa2Selections int
	AllNpa3Selections int
	AllStarSeasons    string
	AllNpaSeasons     string
}

// Grant increments the selection counter for kind and appends "<season>," to the matching
// seasons list. Repeated seasons are kept.
func (a Award) Grant(kind Kind, season string) (Award, error) {
	season = strings.TrimSpace(season)
	if season == "" {
		return a, fmt.Errorf("season is required")
	}

	switch kind {
	case KindAllStar:
		a.AllStarSelections++
		a.AllStarSeasons = appendSeason(a.AllStarSeasons, season)
	case KindAllNpa1:
		a.AllNpa1Selections++
		a.AllNpaSeasons = appendSeason(a.AllNpaSeasons, season)
	case KindAllNpa2:
		a.AllNpa2Selections++
		a.AllNpaSeasons = appendSeason(a.AllNpaSeasons, season)
	case KindAllNpa3:
		a.AllNpa3Selections++
		a.AllNpaSeasons = appendSeason(a.AllNpaSeasons, season)
	default:
		return a, crerr.Wrapf(ErrUnknownKind, "award=%q", kind)
	}
	return a, nil
}

func appendSeason(seasons, season string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(seasons)
	_, _ = buf.WriteString(season)
	_ = buf.WriteByte(',')
	return buf.String()
}
