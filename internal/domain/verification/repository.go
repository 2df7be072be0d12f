package verification

import "context"

// Repository appends to the verification ledger. Rows are never updated or
// deleted.
type Repository interface {
	Create(ctx context.Context, log *Log) error
}
