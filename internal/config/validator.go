package config

import (
	"github.com/FerroO2000/ringq/internal"
)

// Validator is an utility struct for validating a configuration.
// Every anomaly found is logged as a warning and the offending value is
// repaired to its fallback.
type Validator struct {
	tel *internal.Telemetry

	anomalyCollector *AnomalyCollector
}

// NewValidator returns a new validator.
func NewValidator(tel *internal.Telemetry) *Validator {
	return &Validator{
		tel: tel,

		anomalyCollector: newAnomalyCollector(),
	}
}

// Validate validates the given configuration.
func (v *Validator) Validate(config Config) {
	config.Validate(v.anomalyCollector)

	for anomaly := range v.anomalyCollector.iter() {
		v.tel.LogWarn("config anomaly",
			"field", anomaly.field, "reason", anomaly.reason,
			"actual", anomaly.actual, "fallback", anomaly.fallback)
	}
}
