package models

type DashboardData struct {
	TotalEmployees int `json:"total_employees"`
	TotalAdmins    int `json:"total_admins"`
}
