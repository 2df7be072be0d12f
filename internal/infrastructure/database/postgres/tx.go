package postgres

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// WithinTx runs fn inside a single database transaction. The transaction
// handle travels through the context so repository calls made from fn join
// it transparently.
func (d *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// session returns the transaction bound to ctx, or a plain context-scoped
// handle when no transaction is open.
func (d *DB) session(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return d.DB.WithContext(ctx)
}
