package service

import (
	"context"
	"errors"
	"time"

	"github.com/clothyvs/dashboard-backend/internal/config"
	"github.com/clothyvs/dashboard-backend/internal/model"
	"github.com/clothyvs/dashboard-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ProvisionState is where a provisioning run currently is.
type ProvisionState int

const (
	StateDisconnected ProvisionState = iota
	StateConnected
	StateDone
)

func (s ProvisionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// ProvisionOutcome is the terminal result of a run.
type ProvisionOutcome string

const (
	OutcomeCreated       ProvisionOutcome = "created"
	OutcomeAlreadyExists ProvisionOutcome = "already_exists"
	OutcomeFailed        ProvisionOutcome = "failed"
)

// ProvisionResult describes a finished run. Account is the stored or newly
// created record and is nil when the run failed.
type ProvisionResult struct {
	Outcome ProvisionOutcome
	Account *model.AdminAccount
	Err     error
}

// AdminProvisioner seeds the default admin account if no account with the
// same email exists. A provisioner performs one run at a time and does not
// guard against concurrent runs; the store's unique email index does.
type AdminProvisioner struct {
	connector repository.Connector
	hasher    PasswordHasher
	seed      config.SeedAdmin
	now       func() time.Time
	log       zerolog.Logger
	state     ProvisionState
}

// NewAdminProvisioner creates a new AdminProvisioner.
func NewAdminProvisioner(
	connector repository.Connector,
	hasher PasswordHasher,
	seed config.SeedAdmin,
	log zerolog.Logger,
) *AdminProvisioner {
	return &AdminProvisioner{
		connector: connector,
		hasher:    hasher,
		seed:      seed,
		now:       time.Now,
		log:       log.With().Str("component", "admin_provisioner").Logger(),
	}
}

// State returns the current run state.
func (p *AdminProvisioner) State() ProvisionState {
	return p.state
}

// Run provisions the admin and reports the outcome to the operator. Errors
// are logged, never returned: the session is released and the run ends.
func (p *AdminProvisioner) Run(ctx context.Context) ProvisionResult {
	res := p.Provision(ctx)

	switch res.Outcome {
	case OutcomeAlreadyExists:
		p.log.Info().Str("email", p.seed.Email).Msg("Admin already exists.")
	case OutcomeCreated:
		p.log.Info().
			Str("email", res.Account.Email).
			Str("id", res.Account.ID.Hex()).
			Msg("Admin user created successfully.")
	default:
		ev := p.log.Error().Err(res.Err).Str("email", p.seed.Email)
		var connErr *ConnectionError
		if errors.As(res.Err, &connErr) {
			ev = ev.Str("kind", "connection")
		} else {
			ev = ev.Str("kind", "persistence")
		}
		ev.Msg("Error creating admin")
	}

	return res
}

// Provision performs one Disconnected → Connected → Done run. Failures come
// back in ProvisionResult.Err as *ConnectionError or *PersistenceError.
func (p *AdminProvisioner) Provision(ctx context.Context) ProvisionResult {
	p.state = StateDisconnected

	sess, err := p.connector.Connect(ctx)
	if err != nil {
		p.state = StateDone
		return failed(&ConnectionError{Err: err})
	}
	p.state = StateConnected

	defer func() {
		// Release even when ctx is already cancelled.
		if err := sess.Close(context.WithoutCancel(ctx)); err != nil {
			p.log.Warn().Err(err).Msg("Failed to release data store session")
		}
		p.state = StateDone
	}()

	admins := sess.Admins()

	existing, err := admins.FindByEmail(ctx, p.seed.Email)
	switch {
	case err == nil:
		return ProvisionResult{Outcome: OutcomeAlreadyExists, Account: existing}
	case !errors.Is(err, repository.ErrAdminNotFound):
		return failed(&PersistenceError{Op: "find admin", Err: err})
	}

	hash, err := p.hasher.Hash(p.seed.Password)
	if err != nil {
		return failed(&PersistenceError{Op: "hash password", Err: err})
	}

	account := model.NewAdminAccount(p.seed.Name, p.seed.Email, hash, p.seed.Role, p.now())
	if err := admins.Create(ctx, account); err != nil {
		return failed(&PersistenceError{Op: "create admin", Err: err})
	}

	return ProvisionResult{Outcome: OutcomeCreated, Account: account}
}

func failed(err error) ProvisionResult {
	return ProvisionResult{Outcome: OutcomeFailed, Err: err}
}
