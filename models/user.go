package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleClient     = "client"
	RoleOwner      = "owner"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// IsAdminRole reports whether a role carries admin privileges. Admin and
// super-admin are one privilege tier everywhere in the API.
func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

type User struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name         string               `json:"name" bson:"name"`
	Email        string               `json:"email" bson:"email"`
	Password     string               `json:"password,omitempty" bson:"password"`
	Role         string               `json:"role" bson:"role"`
	Phone        string               `json:"phone,omitempty" bson:"phone"`
	City         string               `json:"city,omitempty" bson:"city"`
	ProfileImage string               `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	IsBlocked    bool                 `json:"isBlocked" bson:"isBlocked"`
	Favorites    []primitive.ObjectID `json:"favorites" bson:"favorites"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt" bson:"updatedAt"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
	City     string `json:"city" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=owner client"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}
