package store

import (
	"context"
	"sync"

	"github.com/V6nn/Pillar-Bank-ATM/internal/atm/entity"
	"github.com/V6nn/Pillar-Bank-ATM/internal/pkg/pkgerror"
)

// InMemoryStore keeps the accounts of one ATM process. The set is small, so
// lookups scan the slice in insertion order.
type InMemoryStore struct {
	mu       sync.RWMutex
	accounts []*entity.Account
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) AddAccount(ctx context.Context, account *entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(account.Number()) >= 0 {
		return pkgerror.NewBusiness("account already exists", pkgerror.CodeConflict)
	}

	s.accounts = append(s.accounts, account)

	return nil
}

// Seed adds every account, stopping at the first duplicate.
func (s *InMemoryStore) Seed(ctx context.Context, accounts ...*entity.Account) error {
	for _, acc := range accounts {
		if err := s.AddAccount(ctx, acc); err != nil {
			return err
		}
	}

	return nil
}

func (s *InMemoryStore) FindAccount(ctx context.Context, number string) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(number)
	if i < 0 {
		return nil, pkgerror.ErrNotFound
	}

	return s.accounts[i], nil
}

func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.accounts)
}

func (s *InMemoryStore) indexOf(number string) int {
	for i, acc := range s.accounts {
		if acc.Number() == number {
			return i
		}
	}

	return -1
}
