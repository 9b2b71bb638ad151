package trend

import (
	"time"

	"github.com/healthtrend/backend/internal/domain"
)

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return day0.AddDate(0, 0, n)
}

func num(v float64) *float64 {
	return &v
}

func weighIn(d int, weight, height float64) domain.VitalsRecord {
	return domain.VitalsRecord{
		Date:     day(d),
		Weight:   num(weight),
		WeightKg: num(weight),
		Height:   num(height),
		HeightCm: num(height),
	}
}

func bp(d int, systolic, diastolic float64) domain.VitalsRecord {
	return domain.VitalsRecord{Date: day(d), Systolic: num(systolic), Diastolic: num(diastolic)}
}

func sugar(d int, value float64) domain.VitalsRecord {
	return domain.VitalsRecord{Date: day(d), BloodSugar: num(value)}
}

func habit(d int, exercise, sleep, stress float64) domain.BehaviorRecord {
	return domain.BehaviorRecord{
		Date:            day(d),
		ExerciseMinutes: num(exercise),
		SleepHours:      num(sleep),
		StressLevel:     num(stress),
	}
}
