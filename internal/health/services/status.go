package services

import (
	"sort"
	"strings"

	"github.com/c14220110/healthcheck-backend/internal/health/models"
	rostermodels "github.com/c14220110/healthcheck-backend/internal/roster/models"
)

// JoinStatus menggabungkan roster dengan submission satu hari (left outer join).
// Submission harus sudah dibatasi pada hari yang diminta. Bila seorang karyawan submit
// lebih dari sekali, submission terakhir (submitted_at, lalu id) yang dipakai.
func JoinStatus(roster []rostermodels.RosterEntry, daySubmissions []models.Submission, search string, filter models.StatusFilter) []models.StatusRow {
	latest := make(map[int64]models.Submission, len(daySubmissions))
	for _, sub := range daySubmissions {
		cur, ok := latest[sub.EmployeeID]
		if !ok || sub.SubmittedAt.After(cur.SubmittedAt) ||
			(sub.SubmittedAt.Equal(cur.SubmittedAt) && sub.ID > cur.ID) {
			latest[sub.EmployeeID] = sub
		}
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	seen := make(map[int64]bool, len(roster))
	rows := []models.StatusRow{}

	for _, entry := range roster {
		if seen[entry.EmployeeID] {
			continue
		}
		seen[entry.EmployeeID] = true

		deptName := entry.DepartmentName
		if deptName == "" {
			deptName = rostermodels.UnknownDepartmentName
		}
		if !matchesSearch(needle, entry.EmployeeNumber, entry.Name, deptName) {
			continue
		}

		row := models.StatusRow{
			EmployeeID:     entry.EmployeeID,
			EmployeeNumber: entry.EmployeeNumber,
			DepartmentCode: entry.DepartmentCode,
			DepartmentName: deptName,
			Name:           entry.Name,
			State:          models.StateNotSubmitted,
		}
		if sub, ok := latest[entry.EmployeeID]; ok {
			id, temp := sub.ID, sub.Temperature
			row.State = models.StateFromFlag(sub.Flag)
			row.SubmissionID = &id
			row.Temperature = &temp
		}
		row.Flag = row.State.Flag()

		if !filterAccepts(filter, row.State) {
			continue
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].EmployeeID < rows[j].EmployeeID })
	return rows
}

func matchesSearch(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func filterAccepts(filter models.StatusFilter, state models.HealthState) bool {
	switch filter {
	case models.FilterUnregistered:
		return state == models.StateNotSubmitted
	case models.FilterHealthy:
		return state == models.StateNormal
	case models.FilterUnwell:
		return state == models.StateUnwell
	default:
		return true
	}
}
