package models

import "time"

// Flag adalah status kesehatan hasil evaluasi satu submission.
type Flag int

const (
	FlagNormal Flag = 0
	FlagUnwell Flag = 1
)

// Nilai status yang diterima pada field throat/fever/cough.
const (
	ThroatNormal = "normal"
	FeverNormal  = "normal"
	CoughNone    = "no"
)

// Submission mewakili record di tabel health_submissions.
type Submission struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employee_id"`
	Temperature   float64   `json:"temperature"`
	ThroatStatus  string    `json:"throat"`
	FeverStatus   string    `json:"fever"`
	CoughStatus   string    `json:"cough"`
	SelectedParts string    `json:"selected_parts"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Flag          Flag      `json:"flag"`
}

// SubmissionInput adalah data mentah dari form self-check.
// SelectedParts berisi list nama bagian tubuh yang di-encode sebagai JSON.
type SubmissionInput struct {
	Temperature   string `json:"temperature" form:"temperature"`
	Throat        string `json:"throat" form:"throat"`
	Fever         string `json:"fever" form:"fever"`
	Cough         string `json:"cough" form:"cough"`
	SelectedParts string `json:"selectedParts" form:"selectedParts"`
}

// SubmissionResult dikembalikan langsung setelah submit berhasil.
type SubmissionResult struct {
	ID            int64   `json:"id"`
	Temperature   float64 `json:"temperature"`
	Throat        string  `json:"throat"`
	Fever         string  `json:"fever"`
	Cough         string  `json:"cough"`
	SelectedParts string  `json:"selected_parts"`
	Flag          Flag    `json:"flag"`
	SubmittedAt   string  `json:"submitted_at"`
}
