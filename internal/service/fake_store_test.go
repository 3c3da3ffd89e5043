package service

import (
	"context"
	"sync"

	"github.com/clothyvs/dashboard-backend/internal/model"
	"github.com/clothyvs/dashboard-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryStore is an in-memory admins collection with a unique email index.
type memoryStore struct {
	mu       sync.Mutex
	accounts []model.AdminAccount

	connectErr error
	findErr    error
	createErr  error

	connects int
	closes   int
	finds    int
	writes   int
}

func newMemoryStore(seed ...model.AdminAccount) *memoryStore {
	return &memoryStore{accounts: seed}
}

func (s *memoryStore) Connect(ctx context.Context) (repository.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connectErr != nil {
		return nil, s.connectErr
	}
	s.connects++
	return &memorySession{store: s}, nil
}

func (s *memoryStore) count(email string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.accounts {
		if a.Email == email {
			n++
		}
	}
	return n
}

func (s *memoryStore) open() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connects - s.closes
}

type memorySession struct {
	store  *memoryStore
	closed bool
}

func (m *memorySession) Admins() repository.AdminRepository {
	return (*memoryAdmins)(m.store)
}

func (m *memorySession) Close(ctx context.Context) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if !m.closed {
		m.closed = true
		m.store.closes++
	}
	return nil
}

type memoryAdmins memoryStore

func (r *memoryAdmins) FindByEmail(ctx context.Context, email string) (*model.AdminAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, a := range r.accounts {
		if a.Email == email {
			found := a
			return &found, nil
		}
	}
	return nil, repository.ErrAdminNotFound
}

func (r *memoryAdmins) Create(ctx context.Context, a *model.AdminAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return repository.ErrDuplicateEmail
		}
	}
	a.ID = primitive.NewObjectID()
	r.accounts = append(r.accounts, *a)
	r.writes++
	return nil
}
