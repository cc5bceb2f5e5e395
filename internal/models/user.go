package models

import "time"

// Role is the access level of a user
type Role string

const (
	RolePatient  Role = "patient"
	RoleHospital Role = "hospital"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleHospital || r == RoleAdmin
}

// User represents the users table
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Email        string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"size:30" json:"phone,omitempty"`
	PasswordHash string    `gorm:"column:password;not null;size:255" json:"-"`
	Role         Role      `gorm:"size:20;default:patient" json:"role"`
	HospitalID   *uint     `gorm:"index" json:"hospital_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// OwnsHospital reports whether the user is the staff account of the given hospital
func (u *User) OwnsHospital(hospitalID uint) bool {
	return u.HospitalID != nil && *u.HospitalID == hospitalID
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"not null;size:255;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
