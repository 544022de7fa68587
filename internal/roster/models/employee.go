package models

import "time"

// Employee mewakili record di tabel employees.
type Employee struct {
	ID             int64     `json:"id"`
	EmployeeNumber string    `json:"employee_number"`
	DepartmentCode string    `json:"department_code"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
}

// EmployeeView adalah Employee dengan nama departemen yang sudah di-resolve.
type EmployeeView struct {
	Employee
	DepartmentName string `json:"department_name"`
}

// RosterEntry adalah baris roster ringkas yang dipakai oleh status harian.
type RosterEntry struct {
	EmployeeID     int64  `json:"employee_id"`
	EmployeeNumber string `json:"employee_number"`
	DepartmentCode string `json:"department_code"`
	DepartmentName string `json:"department_name"`
	Name           string `json:"name"`
}

type EmployeeInput struct {
	EmployeeNumber  string `json:"employee_number"`
	DepartmentCode  string `json:"department"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	IsAdmin         bool   `json:"is_admin"`
}

type EmployeeUpdate struct {
	EmployeeNumber string `json:"employee_number"`
	DepartmentCode string `json:"department"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	IsAdmin        bool   `json:"is_admin"`
}
