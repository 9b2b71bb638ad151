package service

import (
	"github.com/healthtrend/backend/internal/domain"
)

// HealthRepository is re-exported from domain for convenience
type HealthRepository = domain.HealthRepository
