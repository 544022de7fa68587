package models

import "time"

// RecordQuery adalah parameter pencarian catatan kesehatan dalam rentang waktu UTC.
type RecordQuery struct {
	EmployeeID int64
	Start      time.Time
	End        time.Time
}

// LocalizedRecord adalah catatan kesehatan dengan label tampilan.
type LocalizedRecord struct {
	Temperature   float64 `json:"temperature"`
	Throat        string  `json:"throat"`
	Fever         string  `json:"fever"`
	Cough         string  `json:"cough"`
	SelectedParts string  `json:"selected_parts"`
	Date          string  `json:"date"`
}
