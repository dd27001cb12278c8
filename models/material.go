package models

import "time"

// Training-material visibility.
const (
	VisibilityAll      = "ALL"
	VisibilityEnrolled = "ENROLLED"
)

// TrainingMaterial is the metadata record for a study document or video.
// Blob storage is handled outside this service; FileName points at the
// externally hosted object.
type TrainingMaterial struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	FileName       string    `bson:"fileName" json:"fileName"`
	FileType       string    `bson:"fileType" json:"fileType"`
	Category       string    `bson:"category" json:"category"`
	Description    string    `bson:"description" json:"description,omitempty"`
	FileSize       int64     `bson:"fileSize" json:"fileSize,omitempty"`
	ForLicenseType string    `bson:"forLicenseType" json:"forLicenseType"`
	Visibility     string    `bson:"visibility" json:"visibility"`
	DownloadCount  int       `bson:"downloadCount" json:"downloadCount"`
	UploadDate     time.Time `bson:"uploadDate" json:"uploadDate"`
	UploadedBy     string    `bson:"uploadedBy" json:"uploadedBy"`
}

// MaterialCreate is the payload accepted when staff register a material.
type MaterialCreate struct {
	Name           string `json:"name" binding:"required"`
	FileName       string `json:"fileName" binding:"required"`
	FileType       string `json:"fileType" binding:"required"`
	Category       string `json:"category" binding:"required"`
	Description    string `json:"description"`
	FileSize       int64  `json:"fileSize"`
	ForLicenseType string `json:"forLicenseType" binding:"required"`
	Visibility     string `json:"visibility" binding:"required"`
}

// MaterialUpdate carries the mutable material fields. Nil fields are left untouched.
type MaterialUpdate struct {
	Name           *string `json:"name"`
	Category       *string `json:"category"`
	Description    *string `json:"description"`
	ForLicenseType *string `json:"forLicenseType"`
	Visibility     *string `json:"visibility"`
}
