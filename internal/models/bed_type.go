package models

// BedType is one of the four inventory categories tracked per hospital
type BedType string

const (
	BedICU        BedType = "icu"
	BedOxygen     BedType = "oxygen"
	BedNormal     BedType = "normal"
	BedVentilator BedType = "ventilator"
)

// BedTypes lists every bed type in display order
var BedTypes = []BedType{BedICU, BedOxygen, BedNormal, BedVentilator}

// Valid reports whether b is one of the known bed types
func (b BedType) Valid() bool {
	switch b {
	case BedICU, BedOxygen, BedNormal, BedVentilator:
		return true
	}
	return false
}

// AvailableColumn returns the hospitals column holding the availability counter for b
func (b BedType) AvailableColumn() string {
	switch b {
	case BedICU:
		return "icu_available"
	case BedOxygen:
		return "oxygen_available"
	case BedNormal:
		return "normal_available"
	case BedVentilator:
		return "ventilator_available"
	}
	return ""
}

// TotalColumn returns the hospitals column holding the total capacity for b
func (b BedType) TotalColumn() string {
	switch b {
	case BedICU:
		return "icu_total"
	case BedOxygen:
		return "oxygen_total"
	case BedNormal:
		return "normal_total"
	case BedVentilator:
		return "ventilator_total"
	}
	return ""
}

// Label is the human readable name shown on forms
func (b BedType) Label() string {
	switch b {
	case BedICU:
		return "ICU"
	case BedOxygen:
		return "Oxygen"
	case BedNormal:
		return "Normal"
	case BedVentilator:
		return "Ventilator"
	}
	return string(b)
}
