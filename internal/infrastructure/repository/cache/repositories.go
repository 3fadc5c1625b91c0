package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/game"
	"github.com/riskibarqy/pool-league/internal/domain/matchup"
	"github.com/riskibarqy/pool-league/internal/domain/scoring"
	"github.com/riskibarqy/pool-league/internal/domain/season"
	basecache "github.com/riskibarqy/pool-league/internal/platform/cache"
)

const (
	prefixTallies  = "tallies:"
	prefixPlayers  = "players:"
	prefixMatchups = "matchups:"
	prefixSeasons  = "season:"
)

func rangeKey(rng *scoring.TournamentRange) string {
	if rng == nil {
		return "all"
	}
	return strconv.FormatInt(rng.From, 10) + "-" + strconv.FormatInt(rng.To, 10)
}

type ActionRepository struct {
	next  action.Repository
	cache *basecache.Store
}

func NewActionRepository(next action.Repository, cache *basecache.Store) *ActionRepository {
	return &ActionRepository{next: next, cache: cache}
}

func (r *ActionRepository) ListTallies(ctx context.Context, filter action.Filter) ([]action.Tally, error) {
	players := append([]string(nil), filter.Players...)
	sort.Strings(players)
	key := prefixTallies + string(filter.Mode) + ":" + rangeKey(filter.Range) + ":" + strings.Join(players, ";")

	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListTallies(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]action.Tally(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]action.Tally)
	return append([]action.Tally(nil), items...), nil
}

func (r *ActionRepository) ListPlayers(ctx context.Context) ([]string, error) {
	v, err := r.cache.GetOrLoad(ctx, prefixPlayers+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.ListPlayers(ctx)
		if err != nil {
			return nil, err
		}
		return append([]string(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]string)
	return append([]string(nil), items...), nil
}

// MaxTournamentID is never cached; numbering must see every write.
func (r *ActionRepository) MaxTournamentID(ctx context.Context, mode scoring.Mode) (int64, bool, error) {
	return r.next.MaxTournamentID(ctx, mode)
}

type MatchupRepository struct {
	next  matchup.Repository
	cache *basecache.Store
}

func NewMatchupRepository(next matchup.Repository, cache *basecache.Store) *MatchupRepository {
	return &MatchupRepository{next: next, cache: cache}
}

func (r *MatchupRepository) Create(ctx context.Context, m matchup.Matchup) (matchup.Matchup, error) {
	created, err := r.next.Create(ctx, m)
	if err != nil {
		return matchup.Matchup{}, err
	}
	r.cache.DeletePrefix(ctx, prefixMatchups+string(m.Mode)+":")
	return created, nil
}

func (r *MatchupRepository) ListByMode(ctx context.Context, mode scoring.Mode, rng *scoring.TournamentRange) ([]matchup.Matchup, error) {
	key := prefixMatchups + string(mode) + ":" + rangeKey(rng)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByMode(ctx, mode, rng)
		if err != nil {
			return nil, err
		}
		return append([]matchup.Matchup(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]matchup.Matchup)
	return append([]matchup.Matchup(nil), items...), nil
}

func (r *MatchupRepository) MaxTournamentID(ctx context.Context, mode scoring.Mode) (int64, bool, error) {
	return r.next.MaxTournamentID(ctx, mode)
}

// GameRepository drops cached tallies and players after every end-game write.
type GameRepository struct {
	next  game.Repository
	cache *basecache.Store
}

func NewGameRepository(next game.Repository, cache *basecache.Store) *GameRepository {
	return &GameRepository{next: next, cache: cache}
}

func (r *GameRepository) NextTournamentID(ctx context.Context, mode scoring.Mode) (int64, error) {
	return r.next.NextTournamentID(ctx, mode)
}

func (r *GameRepository) OpenTournamentID(ctx context.Context, mode scoring.Mode) (int64, error) {
	return r.next.OpenTournamentID(ctx, mode)
}

func (r *GameRepository) RecordEndGame(ctx context.Context, g game.EndGame) (game.Result, error) {
	res, err := r.next.RecordEndGame(ctx, g)
	if err != nil {
		return game.Result{}, err
	}
	r.cache.DeletePrefix(ctx, prefixTallies+string(g.Mode)+":")
	r.cache.DeletePrefix(ctx, prefixPlayers)
	return res, nil
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) Create(ctx context.Context, s season.Season) (season.Season, error) {
	created, err := r.next.Create(ctx, s)
	if err != nil {
		return season.Season{}, err
	}
	r.cache.DeletePrefix(ctx, prefixSeasons)
	return created, nil
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	v, err := r.cache.GetOrLoad(ctx, prefixSeasons+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]season.Season(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]season.Season)
	return append([]season.Season(nil), items...), nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (season.Season, bool, error) {
	key := prefixSeasons + "id:" + strconv.FormatInt(id, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedSeasonByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeasonByID)
	return cached.value, cached.exists, nil
}

type cachedSeasonByID struct {
	value  season.Season
	exists bool
}
