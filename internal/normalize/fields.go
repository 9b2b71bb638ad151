// Package normalize reconciles inconsistently named and typed record fields
// into the engine's typed records.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/healthtrend/backend/internal/domain"
)

// fieldSpec resolves one canonical field from the first alias holding a
// non-nil value. When zeroIsAbsent is set, a resolved zero is treated as
// missing.
type fieldSpec struct {
	name         string
	aliases      []string
	zeroIsAbsent bool
}

// Canonical field names.
const (
	fieldSystolic    = "systolic"
	fieldDiastolic   = "diastolic"
	fieldHeartRate   = "heart_rate"
	fieldBloodSugar  = "blood_sugar"
	fieldTemperature = "temperature"
	fieldWeight      = "weight_kg"
	fieldHeight      = "height_cm"
	fieldExercise    = "exercise_duration"
	fieldSleep       = "sleep_hours"
	fieldWater       = "water_intake"
	fieldSteps       = "steps"
)

var dateAliases = []string{"date", "measurement_date", "record_date", "recorded_at", "created_at"}

// Alias priority is the order below; earlier aliases win.
var vitalsFields = []fieldSpec{
	{fieldSystolic, []string{"systolic", "blood_pressure_systolic", "systolic_bp", "bp_systolic"}, true},
	{fieldDiastolic, []string{"diastolic", "blood_pressure_diastolic", "diastolic_bp", "bp_diastolic"}, true},
	{fieldHeartRate, []string{"heart_rate", "heartRate", "pulse", "pulse_rate"}, true},
	{fieldBloodSugar, []string{"blood_sugar", "bloodSugar", "blood_glucose", "glucose"}, true},
	{fieldTemperature, []string{"temperature", "body_temperature", "temp"}, false},
	{fieldWeight, []string{"weight", "weight_kg", "body_weight"}, true},
	{fieldHeight, []string{"height", "height_cm"}, true},
}

var behaviorFields = []fieldSpec{
	{fieldExercise, []string{"exercise_duration", "exercise_minutes", "exercise"}, false},
	{fieldSleep, []string{"sleep_hours", "sleep_duration", "sleep"}, false},
	{fieldWater, []string{"water_intake", "water", "water_ml"}, false},
	{fieldSteps, []string{"steps", "step_count", "daily_steps"}, false},
}

var profileFields = []fieldSpec{
	{fieldHeight, []string{"height", "height_cm"}, true},
	{fieldWeight, []string{"weight", "weight_kg", "body_weight"}, true},
}

var (
	stressAliases      = []string{"stress_level", "stress"}
	moodAliases        = []string{"mood"}
	notesAliases       = []string{"notes", "note"}
	dobAliases         = []string{"date_of_birth", "dob", "birth_date"}
	genderAliases      = []string{"gender", "sex"}
	conditionAliases   = []string{"medical_conditions", "conditions", "medical_history"}
	medicationsAliases = []string{"medications", "current_medications", "medication"}
)

// stressScores maps categorical stress labels onto the 1-10 scale.
var stressScores = map[string]float64{
	"low":      2,
	"moderate": 5,
	"high":     8,
}

// DefaultStressScore is used for stress values that are present but not
// recognized.
const DefaultStressScore = 5.0

// Vitals normalizes one vitals row. Height falls back to the profile's
// height when the row carries none.
func Vitals(raw domain.RawRecord, profile *domain.UserProfile) domain.VitalsRecord {
	values := resolveAll(raw, vitalsFields)

	rec := domain.VitalsRecord{
		Date:        Date(first(raw, dateAliases)),
		Systolic:    values[fieldSystolic],
		Diastolic:   values[fieldDiastolic],
		HeartRate:   values[fieldHeartRate],
		BloodSugar:  values[fieldBloodSugar],
		Temperature: values[fieldTemperature],
	}

	weight := values[fieldWeight]
	rec.Weight, rec.WeightKg = weight, clone(weight)

	height := values[fieldHeight]
	if height == nil && profile != nil {
		height = clone(profile.Height)
	}
	rec.Height, rec.HeightCm = height, clone(height)

	return rec
}

// VitalsList normalizes every row in order.
func VitalsList(raws []domain.RawRecord, profile *domain.UserProfile) []domain.VitalsRecord {
	out := make([]domain.VitalsRecord, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Vitals(raw, profile))
	}
	return out
}

// Behavior normalizes one lifestyle row.
func Behavior(raw domain.RawRecord) domain.BehaviorRecord {
	values := resolveAll(raw, behaviorFields)

	return domain.BehaviorRecord{
		Date:            Date(first(raw, dateAliases)),
		ExerciseMinutes: values[fieldExercise],
		SleepHours:      values[fieldSleep],
		StressLevel:     Stress(first(raw, stressAliases)),
		WaterIntake:     values[fieldWater],
		Steps:           values[fieldSteps],
		Mood:            String(first(raw, moodAliases)),
		Notes:           String(first(raw, notesAliases)),
	}
}

// BehaviorList normalizes every row in order.
func BehaviorList(raws []domain.RawRecord) []domain.BehaviorRecord {
	out := make([]domain.BehaviorRecord, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Behavior(raw))
	}
	return out
}

// Profile normalizes a profile row. A nil row yields a nil profile.
func Profile(raw domain.RawRecord) *domain.UserProfile {
	if raw == nil {
		return nil
	}
	values := resolveAll(raw, profileFields)

	profile := &domain.UserProfile{
		Height:            values[fieldHeight],
		Weight:            values[fieldWeight],
		Gender:            String(first(raw, genderAliases)),
		MedicalConditions: ParseList(first(raw, conditionAliases)),
		Medications:       ParseList(first(raw, medicationsAliases)),
	}
	if dob := Date(first(raw, dobAliases)); !dob.IsZero() {
		profile.DateOfBirth = &dob
	}
	return profile
}

// Stress coerces a stress value onto the 1-10 scale. Categories are mapped
// through a fixed lookup; any other present value scores 5.
func Stress(v any) *float64 {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			return nil
		}
		if score, ok := stressScores[key]; ok {
			return &score
		}
	}
	if n := Number(v); n != nil {
		return n
	}
	score := DefaultStressScore
	return &score
}

// Number coerces numeric kinds and numeric-looking strings. Anything else,
// including NaN and infinities, yields nil.
func Number(v any) *float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case *float64:
		if x == nil {
			return nil
		}
		f = *x
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		f = parsed
	case []byte:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(string(x)), 64)
		if err != nil {
			return nil
		}
		f = parsed
	case pgtype.Numeric:
		fv, err := x.Float64Value()
		if err != nil || !fv.Valid {
			return nil
		}
		f = fv.Float64
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date coerces a time value or a date string. Unparsable input yields the
// zero time.
func Date(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x
	case *time.Time:
		if x != nil {
			return *x
		}
	case pgtype.Date:
		if x.Valid {
			return x.Time
		}
	case pgtype.Timestamptz:
		if x.Valid {
			return x.Time
		}
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// String returns the trimmed text of a scalar value.
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case []byte:
		return strings.TrimSpace(string(x))
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return ""
	}
}

func resolveAll(raw domain.RawRecord, specs []fieldSpec) map[string]*float64 {
	out := make(map[string]*float64, len(specs))
	for _, spec := range specs {
		n := Number(first(raw, spec.aliases))
		if n != nil && spec.zeroIsAbsent && *n == 0 {
			n = nil
		}
		out[spec.name] = n
	}
	return out
}

func first(raw domain.RawRecord, aliases []string) any {
	for _, alias := range aliases {
		if v, ok := raw[alias]; ok && v != nil {
			return v
		}
	}
	return nil
}

func clone(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
