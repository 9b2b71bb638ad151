package normalize

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/healthtrend/backend/internal/domain"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *float64
	}{
		{"float", 98.6, ptr(98.6)},
		{"int", 120, ptr(120)},
		{"int64", int64(7), ptr(7)},
		{"numeric string", "98.6", ptr(98.6)},
		{"padded string", "  72 ", ptr(72)},
		{"json number", json.Number("5.5"), ptr(5.5)},
		{"empty string", "", nil},
		{"garbage", "abc", nil},
		{"nil", nil, nil},
		{"bool", true, nil},
		{"nan string", "NaN", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Number(tt.in)
			if !sameFloat(got, tt.want) {
				t.Fatalf("Number(%v) = %v, want %v", tt.in, deref(got), deref(tt.want))
			}
		})
	}
}

func TestVitalsResolvesAliasesInPriorityOrder(t *testing.T) {
	raw := domain.RawRecord{
		"measurement_date": "2024-03-01",
		"weight":           nil,
		"weight_kg":        "82.5",
		"body_weight":      90,
		"systolic_bp":      "128",
		"diastolic":        84,
		"glucose":          "105.2",
	}

	rec := Vitals(raw, nil)

	if !sameFloat(rec.Weight, ptr(82.5)) || !sameFloat(rec.WeightKg, ptr(82.5)) {
		t.Fatalf("expected weight 82.5 from weight_kg, got %v / %v", deref(rec.Weight), deref(rec.WeightKg))
	}
	if rec.Weight == rec.WeightKg {
		t.Fatal("Weight and WeightKg must not share a pointer")
	}
	if !sameFloat(rec.Systolic, ptr(128)) || !sameFloat(rec.Diastolic, ptr(84)) {
		t.Fatalf("unexpected blood pressure %v/%v", deref(rec.Systolic), deref(rec.Diastolic))
	}
	if !sameFloat(rec.BloodSugar, ptr(105.2)) {
		t.Fatalf("expected blood sugar 105.2, got %v", deref(rec.BloodSugar))
	}
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !rec.Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, rec.Date)
	}
}

func TestVitalsZeroPolicy(t *testing.T) {
	raw := domain.RawRecord{
		"systolic":    0,
		"diastolic":   "0",
		"heart_rate":  0,
		"blood_sugar": 0.0,
		"temperature": 0,
	}

	rec := Vitals(raw, nil)

	if rec.Systolic != nil || rec.Diastolic != nil || rec.HeartRate != nil || rec.BloodSugar != nil {
		t.Fatalf("zero vitals should be absent, got %+v", rec)
	}
	if !sameFloat(rec.Temperature, ptr(0)) {
		t.Fatalf("zero temperature should be kept, got %v", deref(rec.Temperature))
	}
}

func TestVitalsHeightFallsBackToProfile(t *testing.T) {
	profile := &domain.UserProfile{Height: ptr(170)}

	rec := Vitals(domain.RawRecord{"date": "2024-01-01", "weight": 70}, profile)
	if !sameFloat(rec.Height, ptr(170)) || !sameFloat(rec.HeightCm, ptr(170)) {
		t.Fatalf("expected height 170 from profile, got %v / %v", deref(rec.Height), deref(rec.HeightCm))
	}
	if rec.Height == profile.Height {
		t.Fatal("profile height pointer must not be shared")
	}

	own := Vitals(domain.RawRecord{"height_cm": "182"}, profile)
	if !sameFloat(own.Height, ptr(182)) {
		t.Fatalf("expected record height to win, got %v", deref(own.Height))
	}
}

func TestBehaviorCoercion(t *testing.T) {
	raw := domain.RawRecord{
		"date":              time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		"exercise_duration": "0",
		"sleep_duration":    "seven",
		"stress_level":      "HIGH",
		"steps":             int32(8000),
		"mood":              " calm ",
	}

	rec := Behavior(raw)

	if !sameFloat(rec.ExerciseMinutes, ptr(0)) {
		t.Fatalf("zero exercise should be kept, got %v", deref(rec.ExerciseMinutes))
	}
	if rec.SleepHours != nil {
		t.Fatalf("unparsable sleep should be nil, got %v", deref(rec.SleepHours))
	}
	if !sameFloat(rec.StressLevel, ptr(8)) {
		t.Fatalf("expected high stress to map to 8, got %v", deref(rec.StressLevel))
	}
	if !sameFloat(rec.Steps, ptr(8000)) || rec.Mood != "calm" {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestStress(t *testing.T) {
	tests := []struct {
		in   any
		want *float64
	}{
		{"low", ptr(2)},
		{"Moderate", ptr(5)},
		{"high", ptr(8)},
		{"frazzled", ptr(DefaultStressScore)},
		{"7", ptr(7)},
		{3, ptr(3)},
		{"", nil},
		{nil, nil},
	}

	for _, tt := range tests {
		if got := Stress(tt.in); !sameFloat(got, tt.want) {
			t.Errorf("Stress(%v) = %v, want %v", tt.in, deref(got), deref(tt.want))
		}
	}
}

func TestProfile(t *testing.T) {
	if Profile(nil) != nil {
		t.Fatal("nil row should yield nil profile")
	}

	p := Profile(domain.RawRecord{
		"height_cm":          "175",
		"dob":                "1980-06-15",
		"sex":                "female",
		"medical_conditions": []any{"Asthma", " Hypertension "},
		"medications":        "Lisinopril; Metformin",
	})

	if !sameFloat(p.Height, ptr(175)) {
		t.Fatalf("expected height 175, got %v", deref(p.Height))
	}
	if p.DateOfBirth == nil || p.DateOfBirth.Year() != 1980 {
		t.Fatalf("expected date of birth in 1980, got %v", p.DateOfBirth)
	}
	if p.Gender != "female" {
		t.Fatalf("expected gender female, got %q", p.Gender)
	}
	if !reflect.DeepEqual(p.MedicalConditions, []string{"Asthma", "Hypertension"}) {
		t.Fatalf("unexpected conditions %q", p.MedicalConditions)
	}
	if !reflect.DeepEqual(p.Medications, []string{"Lisinopril", "Metformin"}) {
		t.Fatalf("unexpected medications %q", p.Medications)
	}
}

func ptr(v float64) *float64 { return &v }

func sameFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func deref(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
