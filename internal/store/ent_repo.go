package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lingoflow/ent"
)

// entRepo implements Repo using the ent client. Inside InTx the client is
// bound to the transaction.
type entRepo struct {
	client *ent.Client
}

func (r *entRepo) InTx(ctx context.Context, fn func(w Writer) error) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(&entRepo{client: tx.Client()}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rollback: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
