package models

import "time"

// Customer represents a registered student of the driving school.
type Customer struct {
	ID            string    `bson:"id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	PasswordHash  string    `bson:"passwordHash" json:"-"`
	FirstName     string    `bson:"firstName" json:"firstName"`
	LastName      string    `bson:"lastName" json:"lastName"`
	PhoneNumber   string    `bson:"phoneNumber" json:"phoneNumber"`
	Address       string    `bson:"address" json:"address"`
	NIC           string    `bson:"nic" json:"nic"`
	LicenseNumber string    `bson:"licenseNumber" json:"licenseNumber,omitempty"`
	TokenHash     string    `bson:"tokenHash" json:"-"`
	RegisteredAt  time.Time `bson:"registeredAt" json:"registeredAt"`
	LastActiveAt  time.Time `bson:"lastActiveAt" json:"lastActiveAt"`
}

// FullName returns the customer's display name.
func (c Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// CustomerRegistration is the payload accepted when a customer signs up.
type CustomerRegistration struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address"`
	NIC         string `json:"nic" binding:"required"`
}

// CustomerUpdate carries the mutable profile fields. Empty fields are left untouched.
type CustomerUpdate struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PhoneNumber   string `json:"phoneNumber"`
	Address       string `json:"address"`
	LicenseNumber string `json:"licenseNumber"`
}
