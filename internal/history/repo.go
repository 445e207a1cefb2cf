package history

import "context"

// Repo stores and lists analysis request records.
type Repo interface {
	Save(ctx context.Context, rec Record) error
	List(ctx context.Context, clientID string, limit, offset int) ([]Record, error)
}
