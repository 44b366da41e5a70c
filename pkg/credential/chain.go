package credential

import (
	"context"
	"errors"
)

// ChainStore consults stores in order. Writes go to every writable store.
type ChainStore struct {
	stores []Store
}

// NewChainStore creates a store that reads from stores in order.
func NewChainStore(stores ...Store) *ChainStore {
	return &ChainStore{stores: stores}
}

func (c *ChainStore) Get(ctx context.Context, name string) (string, error) {
	for _, s := range c.stores {
		v, err := s.Get(ctx, name)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", err
		}
	}
	return "", ErrNotFound
}

func (c *ChainStore) Set(ctx context.Context, name, value string) error {
	written := false
	for _, s := range c.stores {
		err := s.Set(ctx, name, value)
		if errors.Is(err, ErrReadOnly) {
			continue
		}
		if err != nil {
			return err
		}
		written = true
	}
	if !written {
		return ErrReadOnly
	}
	return nil
}

// Delete removes name from every writable store. It returns ErrStillProvided
// when a read-only store keeps serving it afterwards, and ErrNotFound when no
// store held it.
func (c *ChainStore) Delete(ctx context.Context, name string) error {
	deleted, shadowed := false, false
	for _, s := range c.stores {
		err := s.Delete(ctx, name)
		switch {
		case err == nil:
			deleted = true
		case errors.Is(err, ErrReadOnly):
			if _, gerr := s.Get(ctx, name); gerr == nil {
				shadowed = true
			}
		case errors.Is(err, ErrNotFound):
		default:
			return err
		}
	}
	switch {
	case shadowed:
		return ErrStillProvided
	case !deleted:
		return ErrNotFound
	}
	return nil
}
