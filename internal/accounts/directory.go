package accounts

import (
	"context"

	"github.com/wisebook/wisebook/internal/storage"
)

// Directory is the single source of truth for registered accounts, persisted
// as one JSON array under one storage key. There is no partial-update
// primitive: callers load, mutate in memory, and save the whole array back.
type Directory struct {
	store *storage.Store
}

func NewDirectory(store *storage.Store) *Directory {
	return &Directory{store: store}
}

// LoadAll returns all registered accounts, or an empty slice when the key
// has never been written (or cannot be read).
func (d *Directory) LoadAll(ctx context.Context) []Account {
	accounts := []Account{}
	d.store.Load(ctx, storage.KeyAccounts, &accounts)
	return accounts
}

// SaveAll overwrites the whole directory in a single key write.
func (d *Directory) SaveAll(ctx context.Context, accounts []Account) bool {
	return d.store.Save(ctx, storage.KeyAccounts, accounts)
}
