// Copyright (c) 2026 Vidtube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements user identity: registration, login, refresh-token
rotation and the public profile every other module joins on.

# Storage

  - Accounts live in PostgreSQL (users.account).
  - Refresh sessions live in Redis and expire on their own.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member. Every user is also a channel.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Fullname     string    `json:"fullname"`
	Avatar       string    `json:"avatar"`
	CoverImage   string    `json:"coverImage"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile is the public projection of a [User] embedded in other resources.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Avatar   string `json:"avatar"`
}

// Profile returns the public projection of u.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, Fullname: u.Fullname, Avatar: u.Avatar}
}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldFullname = "fullname"
	FieldLogin    = "login"
	FieldUserID   = "userId"
)

// # Constraints

const (
	UsernameMinLen = 3
	UsernameMaxLen = 30
	PasswordMinLen = 8
	PasswordMaxLen = 72 // bcrypt input limit
	FullnameMaxLen = 100
)
