package award

import "context"

type Repository interface {
	List(ctx context.Context) ([]Award, error)
	// Apply loads the player's award row (zero value when absent), runs fn and stores the result atomically.
	Apply(ctx context.Context, playerName string, fn func(Award) (Award, error)) (Award, error)
}
