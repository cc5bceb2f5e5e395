package models

import "time"

// Hospital represents a hospital and its aggregate bed counters
type Hospital struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Name                string    `gorm:"size:255;not null" json:"name"`
	Address             string    `gorm:"type:text" json:"address,omitempty"`
	City                string    `gorm:"size:100;index" json:"city,omitempty"`
	Contact             string    `gorm:"size:50" json:"contact,omitempty"`
	ICUTotal            int       `gorm:"column:icu_total;default:0" json:"icu_total"`
	OxygenTotal         int       `gorm:"column:oxygen_total;default:0" json:"oxygen_total"`
	NormalTotal         int       `gorm:"column:normal_total;default:0" json:"normal_total"`
	VentilatorTotal     int       `gorm:"column:ventilator_total;default:0" json:"ventilator_total"`
	ICUAvailable        int       `gorm:"column:icu_available;default:0" json:"icu_available"`
	OxygenAvailable     int       `gorm:"column:oxygen_available;default:0" json:"oxygen_available"`
	NormalAvailable     int       `gorm:"column:normal_available;default:0" json:"normal_available"`
	VentilatorAvailable int       `gorm:"column:ventilator_available;default:0" json:"ventilator_available"`
	CreatedAt           time.Time `json:"created_at"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// Available returns the availability counter for the given bed type
func (h *Hospital) Available(b BedType) int {
	switch b {
	case BedICU:
		return h.ICUAvailable
	case BedOxygen:
		return h.OxygenAvailable
	case BedNormal:
		return h.NormalAvailable
	case BedVentilator:
		return h.VentilatorAvailable
	}
	return 0
}

// Total returns the total capacity for the given bed type
func (h *Hospital) Total(b BedType) int {
	switch b {
	case BedICU:
		return h.ICUTotal
	case BedOxygen:
		return h.OxygenTotal
	case BedNormal:
		return h.NormalTotal
	case BedVentilator:
		return h.VentilatorTotal
	}
	return 0
}

// BedCounts is the totals-per-type payload used by create and edit
type BedCounts struct {
	ICU        int `json:"icu_total" form:"icu_total" binding:"min=0"`
	Oxygen     int `json:"oxygen_total" form:"oxygen_total" binding:"min=0"`
	Normal     int `json:"normal_total" form:"normal_total" binding:"min=0"`
	Ventilator int `json:"ventilator_total" form:"ventilator_total" binding:"min=0"`
}

// Get returns the count for the given bed type
func (c BedCounts) Get(b BedType) int {
	switch b {
	case BedICU:
		return c.ICU
	case BedOxygen:
		return c.Oxygen
	case BedNormal:
		return c.Normal
	case BedVentilator:
		return c.Ventilator
	}
	return 0
}

// Availability is the realtime availability view of a hospital
type Availability struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	ICU        int    `json:"icu"`
	Oxygen     int    `json:"oxygen"`
	Normal     int    `json:"normal"`
	Ventilator int    `json:"ventilator"`
}

// AvailabilityOf builds the availability view for h
func AvailabilityOf(h *Hospital) Availability {
	return Availability{
		ID:         h.ID,
		Name:       h.Name,
		ICU:        h.ICUAvailable,
		Oxygen:     h.OxygenAvailable,
		Normal:     h.NormalAvailable,
		Ventilator: h.VentilatorAvailable,
	}
}
