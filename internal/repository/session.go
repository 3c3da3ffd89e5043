package repository

import "context"

// Session is a scoped handle on the data store. The holder must call Close
// exactly once, on every exit path.
type Session interface {
	Admins() AdminRepository
	Close(ctx context.Context) error
}

// Connector opens store sessions.
type Connector interface {
	Connect(ctx context.Context) (Session, error)
}
