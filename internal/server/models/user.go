package models

import "time"

// User is a registered account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	IsCorporate bool      `json:"isCorporate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewUser is the input to users.Repository.Create and Update. Password must
// already be hashed by the caller.
type NewUser struct {
	Username    string
	Email       string
	Password    string
	IsCorporate bool
}
