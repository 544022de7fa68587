package models

// Department adalah data referensi; Employee.DepartmentCode merujuk ke Abbreviation.
type Department struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// UnknownDepartmentName dipakai bila kode departemen tidak ditemukan.
const UnknownDepartmentName = "unknown department"
