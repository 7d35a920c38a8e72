package cart

import (
	"context"
	"log"
)

// Storage is one durable slot per cart id holding the serialized item list.
// There is exactly one writer per cart within a request; concurrent clients
// on the same cart are last-write-wins, no merge.
type Storage interface {
	Load(ctx context.Context, cartId string) ([]LineItem, error)
	Save(ctx context.Context, cartId string, items []LineItem) error
	Delete(ctx context.Context, cartId string) error
}

// Store owns one cart state. It hydrates once from its storage slot at
// construction and writes the full item list back after every item
// mutation. A failed load is treated as "no saved cart".
type Store struct {
	CartId  string
	Storage Storage
	state   State
}

func NewStore(ctx context.Context, cartId string, storage Storage) *Store {
	s := &Store{CartId: cartId, Storage: storage}
	if storage != nil {
		items, err := storage.Load(ctx, cartId)
		if err != nil {
			log.Printf("no saved cart %s: %v", cartId, err)
		} else {
			s.state.Items = items
		}
	}
	return s
}

func (s *Store) State() State {
	return s.state
}

// Dispatch applies the action and persists the item list unless the action
// only touched the visibility flag. The in-memory state keeps the applied
// action even when the write fails, so a later mutation retries the write.
func (s *Store) Dispatch(ctx context.Context, action Action) error {
	s.state = Reduce(s.state, action)
	if s.Storage == nil {
		return nil
	}
	if _, ok := action.(ToggleCart); ok {
		return nil
	}
	if err := s.Storage.Save(ctx, s.CartId, s.state.Items); err != nil {
		log.Printf("failed to save cart %s: %v", s.CartId, err)
		return err
	}
	return nil
}
