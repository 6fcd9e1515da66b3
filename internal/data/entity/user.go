package entity

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

type User struct {
	Base         `bson:",inline"`
	Name         string     `bson:"name" json:"name"`
	Email        string     `bson:"email" json:"email"`
	PasswordHash string     `bson:"password" json:"-"`
	Role         UserRole   `bson:"role" json:"role"`
	IsActive     bool       `bson:"isActive" json:"isActive"`
	ProfileImage string     `bson:"profileImage" json:"profileImage"`
	PhoneNumber  string     `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Address      *Address   `bson:"address,omitempty" json:"address,omitempty"`
	LastLogin    *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`

	// SHA-256 hex of the refresh token currently honored for this user.
	// Rotation overwrites it, which is what makes a rotated token single-use.
	RefreshTokenHash string `bson:"refreshTokenHash,omitempty" json:"-"`
}

// FullAddress renders the address as a single display line, empty when unset.
func (u *User) FullAddress() string {
	if u.Address == nil || u.Address.Street == "" {
		return ""
	}
	a := u.Address
	return strings.TrimSpace(a.Street + ", " + a.City + ", " + a.State + " " + a.ZipCode + ", " + a.Country)
}
