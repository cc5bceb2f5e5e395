package models

import "time"

// BookingStatus is the lifecycle tag on a booking
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingDischarged BookingStatus = "discharged"
)

// Booking represents a reserved bed at a hospital
type Booking struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	PatientID  uint          `gorm:"not null;index" json:"patient_id"`
	HospitalID uint          `gorm:"not null;index" json:"hospital_id"`
	DoctorID   *uint         `gorm:"index" json:"doctor_id,omitempty"`
	BedType    BedType       `gorm:"size:20;not null" json:"bed_type"`
	Status     BookingStatus `gorm:"size:20;default:pending" json:"status"`
	Name       string        `gorm:"size:150" json:"name"`
	Contact    string        `gorm:"size:50" json:"contact"`
	Symptoms   string        `gorm:"type:text" json:"symptoms,omitempty"`
	IDProof    string        `gorm:"column:id_proof;size:255" json:"id_proof,omitempty"`
	CreatedAt  time.Time     `gorm:"index" json:"created_at"`

	Patient  *User     `gorm:"foreignKey:PatientID" json:"-"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Booking model
func (Booking) TableName() string {
	return "bookings"
}

// Waitlist represents the waitlist table. Rows are never written by the service
type Waitlist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	BedType   BedType   `gorm:"size:20" json:"bed_type"`
	CreatedAt time.Time `json:"created_at"`

	Patient *User `gorm:"foreignKey:PatientID" json:"-"`
}

// TableName specifies the table name for Waitlist model
func (Waitlist) TableName() string {
	return "waitlist"
}
