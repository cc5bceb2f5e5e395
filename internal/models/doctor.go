package models

import (
	"fmt"
	"time"
)

// Doctor belongs to exactly one hospital. Available is a counter of free slots
type Doctor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:150;not null" json:"name"`
	Specialization string    `gorm:"size:150" json:"specialization,omitempty"`
	Photo          string    `gorm:"size:255" json:"photo,omitempty"`
	HospitalID     uint      `gorm:"not null;index" json:"hospital_id"`
	Available      int       `gorm:"default:1" json:"available"`
	Experience     int       `gorm:"default:0" json:"experience"`
	Age            *int      `json:"age,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}

// ChoiceLabel renders the doctor the way the booking form lists it
func (d *Doctor) ChoiceLabel() string {
	spec := d.Specialization
	if spec == "" {
		spec = "Doctor"
	}
	age := "-"
	if d.Age != nil {
		age = fmt.Sprintf("%d", *d.Age)
	}
	status := "Unavailable"
	if d.Available > 0 {
		status = "Available"
	}
	return fmt.Sprintf("%s — %s | %d yrs | Age %s | %s", d.Name, spec, d.Experience, age, status)
}
