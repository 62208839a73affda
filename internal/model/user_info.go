// Package model defines the database entities.
// This file defines the user account model.
package model

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserInfo is a registered user. Maps to the user_info table.
type UserInfo struct {
	gorm.Model

	// Uuid is the user's public identifier, "U" + date-prefixed random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:user unique id"`

	// Username is the display name chosen at registration.
	Username string `gorm:"column:username;type:varchar(30);not null;comment:display name"`

	// Email is the login identifier.
	Email string `gorm:"column:email;uniqueIndex;type:varchar(100);not null;comment:login email"`

	// Password stores the bcrypt hash, never the plaintext.
	Password string `gorm:"column:password;type:varchar(100);not null;comment:bcrypt hash"`

	// Status is 0 for normal, 1 for disabled.
	Status int8 `gorm:"column:status;index;not null;comment:0 normal 1 disabled"`

	// RawPassword receives the plaintext from the registration flow and is
	// hashed in BeforeSave. Never persisted or serialised.
	RawPassword string `gorm:"-" json:"-"`
}

// TableName pins the table name instead of relying on GORM pluralisation.
func (UserInfo) TableName() string {
	return "user_info"
}

// BeforeSave hashes RawPassword into Password so callers only ever set
// the plaintext field.
func (u *UserInfo) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = ""
	}
	return nil
}

// CheckPassword verifies a login attempt against the stored hash.
func (u *UserInfo) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}

// MemberName is the name shown on campaign rosters: the display name,
// falling back to the email local part when no name was set.
func (u *UserInfo) MemberName() string {
	if u.Username != "" {
		return u.Username
	}
	if i := strings.Index(u.Email, "@"); i > 0 {
		return u.Email[:i]
	}
	return u.Email
}
