// Package dto defines Data Transfer Objects for authentication.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate a staff account
// @Example {"email": "owner@kopikita.id", "password": "password123"}
type LoginRequest struct {
	// Email is the account's email address.
	Email string `json:"email" binding:"required,email" example:"owner@kopikita.id"`
	// Password is the account's password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// RegisterRequest represents the JSON request body for the register endpoint.
//
// @Description Request to register a new staff account
// @Example {"email": "barista@kopikita.id", "password": "password123", "name": "Ayu", "role": "barista"}
type RegisterRequest struct {
	// Email is the account's email address.
	Email string `json:"email" binding:"required,email" example:"barista@kopikita.id"`
	// Password is the account's password (minimum 6 characters).
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	// Name is the person's full name (optional).
	Name string `json:"name,omitempty" example:"Ayu"`
	// Role is "owner" or "barista"; defaults to "barista".
	Role string `json:"role,omitempty" binding:"omitempty,oneof=owner barista" example:"barista"`
} // @name RegisterRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with JWT tokens
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// RefreshToken is the JWT refresh token.
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// User contains the authenticated account information.
	User UserResponse `json:"user"`
} // @name LoginResponse

// TokenPair represents access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// Claims represents JWT claims. Defined here rather than in the service
// package to avoid import cycles.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
	Role   string             `json:"role"`
}

// UserResponse represents account information in API responses.
type UserResponse struct {
	// Email is the account's email address.
	Email string `json:"email" example:"owner@kopikita.id"`
	// Name is the person's full name.
	Name string `json:"name,omitempty" example:"Ayu"`
	// Role is the account role.
	Role string `json:"role" example:"barista"`
} // @name UserResponse

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

// Validate performs custom validation on the register request.
func (r *RegisterRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	if r.Role != "" && r.Role != "owner" && r.Role != "barista" {
		return &ValidationError{Field: "role", Message: "role must be owner or barista"}
	}
	return nil
}
