package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountStatus is the lifecycle status of an admin account.
type AccountStatus string

const (
	StatusActive   AccountStatus = "Active"
	StatusInactive AccountStatus = "Inactive"
)

// LocalizedText maps a language code to a translated value, e.g. {"en": "Admin"}.
type LocalizedText map[string]string

// AdminAccount represents a dashboard administrator stored in the admins collection.
type AdminAccount struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         LocalizedText      `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password"`
	Role         Role               `json:"role" bson:"role"`
	Status       AccountStatus      `json:"status" bson:"status"`
	Image        string             `json:"image" bson:"image"`
	Address      string             `json:"address" bson:"address"`
	Country      string             `json:"country" bson:"country"`
	City         string             `json:"city" bson:"city"`
	Phone        string             `json:"phone" bson:"phone"`
	AccessList   []string           `json:"access_list" bson:"access_list"`
	JoinedAt     time.Time          `json:"joiningData" bson:"joiningData"`
}

// NewAdminAccount builds an account with the dashboard defaults: active status,
// empty profile fields and an empty access list.
func NewAdminAccount(name, email, passwordHash string, role Role, joinedAt time.Time) *AdminAccount {
	if role == "" {
		role = RoleAdmin
	}
	return &AdminAccount{
		Name:         LocalizedText{"en": name},
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       StatusActive,
		AccessList:   []string{},
		JoinedAt:     joinedAt.UTC(),
	}
}
