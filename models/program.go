package models

import "time"

// TrainingProgram is a packaged course a customer can enroll in.
type TrainingProgram struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	LicenseType   string    `bson:"licenseType" json:"licenseType"`
	Duration      string    `bson:"duration" json:"duration"`
	Description   string    `bson:"description" json:"description,omitempty"`
	Price         int       `bson:"price" json:"price"`
	Prerequisites []string  `bson:"prerequisites" json:"prerequisites,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProgramCreate is the payload accepted when staff define a new program.
type ProgramCreate struct {
	Name          string   `json:"name" binding:"required"`
	LicenseType   string   `json:"licenseType" binding:"required"`
	Duration      string   `json:"duration" binding:"required"`
	Description   string   `json:"description"`
	Price         int      `json:"price" binding:"required,min=0"`
	Prerequisites []string `json:"prerequisites"`
}

// ProgramUpdate carries the mutable program fields. Nil fields are left untouched.
type ProgramUpdate struct {
	Name          *string   `json:"name"`
	LicenseType   *string   `json:"licenseType"`
	Duration      *string   `json:"duration"`
	Description   *string   `json:"description"`
	Price         *int      `json:"price"`
	Prerequisites *[]string `json:"prerequisites"`
}
