// models/models.go
package models

import (
	"io"
	"time"
)

// Tribe represents a building or grouping of rooms
type Tribe struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Room represents a rentable unit belonging to a tribe
type Room struct {
	ID         int    `json:"id" db:"id"`
	RoomNumber string `json:"room_number" db:"room_number"`
	TribeID    int    `json:"tribe_id" db:"tribe_id"`
}

// Supplier represents a vendor expenses are paid to
type Supplier struct {
	ID            int    `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	ContactPerson string `json:"contact_person,omitempty" db:"contact_person"`
	Phone         string `json:"phone,omitempty" db:"phone"`
	Email         string `json:"email,omitempty" db:"email"`
	Address       string `json:"address,omitempty" db:"address"`
}

// ExpenseCategory represents reference data for classifying expenses
type ExpenseCategory struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description,omitempty" db:"description"`
}

// UserInfo holds the cached display name for an authenticated email
type UserInfo struct {
	ID        int       `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UserSession represents a stored login session
type UserSession struct {
	SessionID string    `json:"session_id" db:"session_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Email     string    `json:"email" db:"email"`
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DocumentFile is an attachment submitted with a payment or expense.
// The reader is consumed at most once, during upload.
type DocumentFile struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// DocumentRef is the stored public URL and storage key of an uploaded document
type DocumentRef struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// CreateSupplierRequest request model
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// LoginRequest request model
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse response model
type LoginResponse struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// SaveUserInfoRequest request model
type SaveUserInfoRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
}
