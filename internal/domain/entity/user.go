package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles de usuario. Gobiernan el acceso por ruta en el middleware RBAC.
const (
	RoleOwner        = "owner"
	RoleReceptionist = "receptionist"
	RoleMechanic     = "mechanic"
	RoleCustomer     = "customer"
)

// ValidRole indica si el rol pertenece a la enumeración fija.
func ValidRole(r string) bool {
	switch r {
	case RoleOwner, RoleReceptionist, RoleMechanic, RoleCustomer:
		return true
	}
	return false
}

// User cuenta de la aplicación. PasswordHash nunca se serializa hacia la API
// (los DTOs de respuesta lo omiten).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"` // único
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	Phone        string             `bson:"phone,omitempty"`
	Address      string             `bson:"address,omitempty"`
	NationalID   string             `bson:"national_id,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}
