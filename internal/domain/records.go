package domain

import "time"

// RawRecord is a row as delivered by the record source, before field
// reconciliation. Column names and value types vary between sources.
type RawRecord map[string]any

// VitalsRecord is a point-in-time health measurement after normalization.
// Weight and WeightKg always hold the same resolved value, as do Height and
// HeightCm.
type VitalsRecord struct {
	Date        time.Time `json:"date"`
	Systolic    *float64  `json:"systolic"`
	Diastolic   *float64  `json:"diastolic"`
	HeartRate   *float64  `json:"heart_rate"`
	BloodSugar  *float64  `json:"blood_sugar"`
	Temperature *float64  `json:"temperature"`
	Weight      *float64  `json:"weight"`
	WeightKg    *float64  `json:"weight_kg"`
	Height      *float64  `json:"height"`
	HeightCm    *float64  `json:"height_cm"`
}

// BehaviorRecord is a point-in-time lifestyle measurement after
// normalization. StressLevel is on a 1-10 scale.
type BehaviorRecord struct {
	Date            time.Time `json:"date"`
	ExerciseMinutes *float64  `json:"exercise_duration"`
	SleepHours      *float64  `json:"sleep_hours"`
	StressLevel     *float64  `json:"stress_level"`
	WaterIntake     *float64  `json:"water_intake"`
	Steps           *float64  `json:"steps"`
	Mood            string    `json:"mood,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// UserProfile carries optional context about the user.
type UserProfile struct {
	Height            *float64   `json:"height"`
	Weight            *float64   `json:"weight"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Gender            string     `json:"gender,omitempty"`
	MedicalConditions []string   `json:"medical_conditions,omitempty"`
	Medications       []string   `json:"medications,omitempty"`
}

// MedicationEntry is a structured medication as stored by the user.
type MedicationEntry struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	Schedule  string `json:"schedule,omitempty"`
}
