package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clothyvs/dashboard-backend/internal/config"
	"github.com/clothyvs/dashboard-backend/internal/model"
	"github.com/clothyvs/dashboard-backend/internal/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func defaultSeed() config.SeedAdmin {
	return config.SeedAdmin{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "12345678",
		Role:     model.RoleAdmin,
	}
}

func newTestProvisioner(store *memoryStore, seed config.SeedAdmin, out *bytes.Buffer) *AdminProvisioner {
	p := NewAdminProvisioner(store, NewBcryptHasher(bcrypt.MinCost), seed, zerolog.New(out))
	p.now = func() time.Time { return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC) }
	return p
}

func TestProvisionCreatesDefaultAdmin(t *testing.T) {
	store := newMemoryStore()
	var out bytes.Buffer
	p := newTestProvisioner(store, defaultSeed(), &out)

	res := p.Run(context.Background())

	require.NoError(t, res.Err)
	assert.Equal(t, OutcomeCreated, res.Outcome)
	assert.Equal(t, 1, store.count("admin@example.com"))

	a := res.Account
	require.NotNil(t, a)
	assert.False(t, a.ID.IsZero())
	assert.Equal(t, model.LocalizedText{"en": "Admin"}, a.Name)
	assert.Equal(t, model.RoleAdmin, a.Role)
	assert.Equal(t, model.StatusActive, a.Status)
	assert.NotNil(t, a.AccessList)
	assert.Empty(t, a.AccessList)
	assert.Empty(t, a.Image)
	assert.Empty(t, a.Address)
	assert.Empty(t, a.Country)
	assert.Empty(t, a.City)
	assert.Empty(t, a.Phone)
	assert.Equal(t, time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC), a.JoinedAt)

	assert.Contains(t, out.String(), "Admin user created successfully.")
	assert.Equal(t, StateDone, p.State())
	assert.Zero(t, store.open())
}

func TestProvisionIsIdempotent(t *testing.T) {
	store := newMemoryStore()
	var out bytes.Buffer
	p := newTestProvisioner(store, defaultSeed(), &out)

	first := p.Run(context.Background())
	second := p.Run(context.Background())

	assert.Equal(t, OutcomeCreated, first.Outcome)
	assert.Equal(t, OutcomeAlreadyExists, second.Outcome)
	assert.NoError(t, second.Err)
	assert.Equal(t, first.Account.ID, second.Account.ID)
	assert.Equal(t, 1, store.count("admin@example.com"))
	assert.Equal(t, 1, store.writes)
	assert.Zero(t, store.open())
}

func TestProvisionLeavesExistingAccount(t *testing.T) {
	existing := model.AdminAccount{
		Email:        "admin@example.com",
		PasswordHash: "kept",
		Role:         model.RoleSuperAdmin,
		Status:       model.StatusInactive,
	}
	store := newMemoryStore(existing)
	var out bytes.Buffer
	p := newTestProvisioner(store, defaultSeed(), &out)

	res := p.Run(context.Background())

	assert.Equal(t, OutcomeAlreadyExists, res.Outcome)
	assert.NoError(t, res.Err)
	assert.Equal(t, 1, store.count("admin@example.com"))
	assert.Equal(t, "kept", res.Account.PasswordHash)
	assert.Equal(t, model.RoleSuperAdmin, res.Account.Role)
	assert.Contains(t, out.String(), "Admin already exists.")
	assert.NotContains(t, out.String(), "Error creating admin")
	assert.Equal(t, 1, store.finds)
	assert.Zero(t, store.writes)
	assert.Zero(t, store.open())
}

func TestProvisionStoresSaltedHash(t *testing.T) {
	store := newMemoryStore()
	var out bytes.Buffer
	seed := defaultSeed()
	p := newTestProvisioner(store, seed, &out)

	res := p.Provision(context.Background())
	require.NoError(t, res.Err)

	hash := res.Account.PasswordHash
	assert.NotEqual(t, seed.Password, hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(seed.Password)))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong-password")))
}

func TestProvisionUsesConfiguredSeed(t *testing.T) {
	store := newMemoryStore(model.AdminAccount{Email: "admin@example.com"})
	var out bytes.Buffer
	seed := config.SeedAdmin{
		Name:     "Store Manager",
		Email:    "manager@example.com",
		Password: "s3cret-pass",
		Role:     model.RoleManager,
	}
	p := newTestProvisioner(store, seed, &out)

	res := p.Provision(context.Background())

	require.NoError(t, res.Err)
	assert.Equal(t, OutcomeCreated, res.Outcome)
	assert.Equal(t, "manager@example.com", res.Account.Email)
	assert.Equal(t, model.RoleManager, res.Account.Role)
	assert.Equal(t, "Store Manager", res.Account.Name["en"])
	assert.Equal(t, 1, store.count("admin@example.com"))
	assert.Equal(t, 1, store.count("manager@example.com"))
}

func TestProvisionConnectionFailure(t *testing.T) {
	store := newMemoryStore()
	store.connectErr = errors.New("server selection timeout")
	var out bytes.Buffer
	p := newTestProvisioner(store, defaultSeed(), &out)

	res := p.Run(context.Background())

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Nil(t, res.Account)

	var connErr *ConnectionError
	require.ErrorAs(t, res.Err, &connErr)
	assert.ErrorContains(t, res.Err, "server selection timeout")

	assert.Contains(t, out.String(), "Error creating admin")
	assert.Contains(t, out.String(), `"kind":"connection"`)
	assert.Equal(t, StateDone, p.State())
	assert.Zero(t, store.open())
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) {
	return "", errors.New("entropy source unavailable")
}

func TestProvisionPersistenceFailures(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *memoryStore)
		hasher PasswordHasher
		wantOp string
	}{
		{
			name:   "lookup fails",
			setup:  func(s *memoryStore) { s.findErr = errors.New("socket closed") },
			wantOp: "find admin",
		},
		{
			name:   "insert fails",
			setup:  func(s *memoryStore) { s.createErr = errors.New("not primary") },
			wantOp: "create admin",
		},
		{
			name:   "hashing fails",
			setup:  func(s *memoryStore) {},
			hasher: failingHasher{},
			wantOp: "hash password",
		},
		{
			name:   "concurrent run won the race",
			setup:  func(s *memoryStore) { s.createErr = repository.ErrDuplicateEmail },
			wantOp: "create admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			tt.setup(store)
			var out bytes.Buffer
			p := newTestProvisioner(store, defaultSeed(), &out)
			if tt.hasher != nil {
				p.hasher = tt.hasher
			}

			res := p.Run(context.Background())

			assert.Equal(t, OutcomeFailed, res.Outcome)
			assert.Nil(t, res.Account)
			var perr *PersistenceError
			require.ErrorAs(t, res.Err, &perr)
			assert.Equal(t, tt.wantOp, perr.Op)
			assert.Contains(t, out.String(), `"kind":"persistence"`)

			// The session is released on the error path too.
			assert.Equal(t, 1, store.connects)
			assert.Zero(t, store.open())
			assert.Zero(t, store.count("admin@example.com"))
			assert.Zero(t, store.writes)
		})
	}
}

func TestProvisionDuplicateKeyIsDistinguishable(t *testing.T) {
	store := newMemoryStore()
	store.createErr = repository.ErrDuplicateEmail
	var out bytes.Buffer

	res := newTestProvisioner(store, defaultSeed(), &out).Provision(context.Background())

	assert.ErrorIs(t, res.Err, repository.ErrDuplicateEmail)
}

func TestProvisionReleasesOnCancelledContext(t *testing.T) {
	store := newMemoryStore()
	var out bytes.Buffer
	p := newTestProvisioner(store, defaultSeed(), &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p.Run(ctx)

	assert.Equal(t, 1, store.connects)
	assert.Zero(t, store.open())
}

func TestProvisionStateString(t *testing.T) {
	assert.Equal(t, "disconnected", StateDisconnected.String())
	assert.Equal(t, "connected", StateConnected.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "unknown", ProvisionState(42).String())
}
