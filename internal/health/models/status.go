package models

import (
	"encoding/json"
	"fmt"
)

// HealthState adalah status harian seorang karyawan di tampilan roster.
type HealthState int

const (
	StateNotSubmitted HealthState = iota
	StateNormal
	StateUnwell
)

// Flag mengembalikan representasi numerik lama: 0 normal, 1 unwell, 2 belum submit.
func (s HealthState) Flag() int {
	switch s {
	case StateNormal:
		return 0
	case StateUnwell:
		return 1
	default:
		return 2
	}
}

func (s HealthState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateUnwell:
		return "unwell"
	default:
		return "not_submitted"
	}
}

func (s HealthState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// StateFromFlag memetakan flag yang tersimpan ke HealthState.
func StateFromFlag(f Flag) HealthState {
	if f == FlagUnwell {
		return StateUnwell
	}
	return StateNormal
}

// StatusFilter memilih baris roster berdasarkan status harian.
type StatusFilter string

const (
	FilterAll          StatusFilter = "all"
	FilterUnregistered StatusFilter = "unregistered"
	FilterHealthy      StatusFilter = "healthy"
	FilterUnwell       StatusFilter = "unwell"
)

func ParseStatusFilter(raw string) (StatusFilter, error) {
	switch f := StatusFilter(raw); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterUnregistered, FilterHealthy, FilterUnwell:
		return f, nil
	default:
		return "", fmt.Errorf("filter must be one of: all, unregistered, healthy, unwell")
	}
}

// StatusRow adalah satu baris hasil join roster x submission hari itu.
type StatusRow struct {
	EmployeeID     int64       `json:"employee_id"`
	EmployeeNumber string      `json:"employee_number"`
	DepartmentCode string      `json:"department_code"`
	DepartmentName string      `json:"department_name"`
	Name           string      `json:"name"`
	State          HealthState `json:"status"`
	Flag           int         `json:"flag"`
	SubmissionID   *int64      `json:"submission_id,omitempty"`
	Temperature    *float64    `json:"temperature,omitempty"`
}

// StatusQuery adalah parameter tampilan roster.
type StatusQuery struct {
	Search string
	Date   string
	Filter string
}
