package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/c14220110/healthcheck-backend/internal/health/models"
)

// UnwellTemperature adalah ambang suhu (°C) yang langsung menandai karyawan tidak sehat.
const UnwellTemperature = 37.2

// ParseTemperature mengubah input suhu menjadi angka. Input yang tidak bisa di-parse
// (termasuk NaN dan Inf) menjadi 0.0.
func ParseTemperature(raw string) float64 {
	t, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(t) || math.IsInf(t, 0) {
		return 0.0
	}
	return t
}

// EvaluateFlag menghitung flag satu submission.
func EvaluateFlag(temperature float64, throat, fever, cough string, selectedParts []string) models.Flag {
	if temperature >= UnwellTemperature ||
		throat != models.ThroatNormal ||
		fever != models.FeverNormal ||
		cough != models.CoughNone ||
		len(selectedParts) > 0 {
		return models.FlagUnwell
	}
	return models.FlagNormal
}
