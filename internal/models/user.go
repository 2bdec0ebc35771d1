package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles an identity record can hold.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
	RoleBuyer  = "buyer"
)

// Gender values accepted in a user profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Profile holds the personal details nested inside a user document.
type Profile struct {
	FirstName   string    `bson:"firstName" json:"firstName"`
	LastName    string    `bson:"lastName" json:"lastName"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Avatar      string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	DateOfBirth time.Time `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender      string    `bson:"gender,omitempty" json:"gender,omitempty"`
}

// Address is one entry of a user's address book.
type Address struct {
	Label        string `bson:"label" json:"label"`
	FullName     string `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	AddressLine1 string `bson:"addressLine1" json:"addressLine1"`
	AddressLine2 string `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	City         string `bson:"city" json:"city"`
	State        string `bson:"state" json:"state"`
	PostalCode   string `bson:"postalCode" json:"postalCode"`
	Country      string `bson:"country" json:"country"`
	IsDefault    bool   `bson:"isDefault" json:"isDefault"`
}

// User is an identity record: keyed by email, optionally linked to a
// Google account. RefreshTokens is never serialized into API responses.
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email           string             `bson:"email" json:"email"`
	GoogleID        string             `bson:"googleId,omitempty" json:"googleId,omitempty"`
	Role            string             `bson:"role" json:"role"`
	Profile         Profile            `bson:"profile" json:"profile"`
	Addresses       []Address          `bson:"addresses,omitempty" json:"addresses,omitempty"`
	IsEmailVerified bool               `bson:"isEmailVerified" json:"isEmailVerified"`
	IsPhoneVerified bool               `bson:"isPhoneVerified" json:"isPhoneVerified"`
	IsActive        bool               `bson:"isActive" json:"isActive"`
	LastLogin       time.Time          `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	RefreshTokens   []string           `bson:"refreshTokens,omitempty" json:"-"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultAddress returns the first address flagged as default, or nil.
// Multiple defaults are permitted; the first one wins.
func (u *User) DefaultAddress() *Address {
	for i := range u.Addresses {
		if u.Addresses[i].IsDefault {
			return &u.Addresses[i]
		}
	}
	return nil
}

// FullName joins the profile name fields for display purposes.
func (u *User) FullName() string {
	if u.Profile.LastName == "" {
		return u.Profile.FirstName
	}
	return u.Profile.FirstName + " " + u.Profile.LastName
}
