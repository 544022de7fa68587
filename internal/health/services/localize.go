package services

import (
	"strings"

	"github.com/c14220110/healthcheck-backend/internal/health/models"
	"github.com/c14220110/healthcheck-backend/pkg/utils"
)

const partsSeparator = ", "

// joinParts menyimpan list bagian tubuh sebagai string yang dipisah koma.
func joinParts(parts []string) string {
	return strings.Join(parts, partsSeparator)
}

func partsOrNone(parts string) string {
	if parts == "" {
		return "なし"
	}
	return parts
}

// resultLabels dipakai pada respons submit.
func resultLabels(s models.Submission) models.SubmissionResult {
	r := models.SubmissionResult{
		ID:            s.ID,
		Temperature:   s.Temperature,
		Throat:        "痛い",
		Fever:         "高い",
		Cough:         "ある",
		SelectedParts: partsOrNone(s.SelectedParts),
		Flag:          s.Flag,
		SubmittedAt:   s.SubmittedAt.In(utils.DisplayLocation).Format(utils.DateTimeLayout),
	}
	if s.ThroatStatus == models.ThroatNormal {
		r.Throat = "正常"
	}
	if s.FeverStatus == models.FeverNormal {
		r.Fever = "正常"
	}
	if s.CoughStatus == models.CoughNone {
		r.Cough = "ない"
	}
	return r
}

// recordLabels dipakai pada pencarian catatan per rentang waktu.
func recordLabels(s models.Submission) models.LocalizedRecord {
	r := models.LocalizedRecord{
		Temperature:   s.Temperature,
		Throat:        "痛い",
		Fever:         "高い",
		Cough:         "ある",
		SelectedParts: partsOrNone(s.SelectedParts),
		Date:          s.SubmittedAt.In(utils.DisplayLocation).Format(utils.DateTimeLayout),
	}
	if s.ThroatStatus == models.ThroatNormal {
		r.Throat = "ない"
	}
	if s.FeverStatus == models.FeverNormal {
		r.Fever = "ない"
	}
	if s.CoughStatus == models.CoughNone {
		r.Cough = "ない"
	}
	return r
}
