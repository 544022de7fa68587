package services

import (
	"context"
	"testing"
	"time"

	"github.com/c14220110/healthcheck-backend/internal/common/apperror"
	"github.com/c14220110/healthcheck-backend/internal/roster/models"
	"github.com/c14220110/healthcheck-backend/internal/testutil"
)

func newInput(number, email string) models.EmployeeInput {
	return models.EmployeeInput{
		EmployeeNumber:  number,
		DepartmentCode:  "it",
		Name:            "Nakamura",
		Phone:           "0312345678",
		Email:           email,
		Password:        "pass1",
		ConfirmPassword: "pass1",
	}
}

func TestCreateEmployee(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	emp, err := svc.CreateEmployee(ctx, newInput(" E500 ", "nakamura@example.com"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if emp.EmployeeNumber != "E500" || emp.DepartmentName != "IT部門" {
		t.Errorf("employee = %+v", emp)
	}
	if emp.PasswordHash == "pass1" || !CheckPassword(emp.PasswordHash, "pass1") {
		t.Error("password must be stored hashed")
	}

	logged, err := svc.Authenticate(ctx, "E500", "pass1")
	if err != nil || logged.ID != emp.ID {
		t.Errorf("authenticate: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "E500", "wrong1"); apperror.GetCode(err) != apperror.CodeUnauthorized {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody", "pass1"); apperror.GetCode(err) != apperror.CodeUnauthorized {
		t.Errorf("unknown number: err = %v", err)
	}
}

func TestCreateEmployee_Conflicts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	if _, err := svc.CreateEmployee(ctx, newInput("E501", "a@example.com")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateEmployee(ctx, newInput("E501", "b@example.com")); apperror.GetCode(err) != apperror.CodeConflict {
		t.Errorf("duplicate number: err = %v", err)
	}
	if _, err := svc.CreateEmployee(ctx, newInput("E502", "a@example.com")); apperror.GetCode(err) != apperror.CodeConflict {
		t.Errorf("duplicate email: err = %v", err)
	}
}

func TestCreateEmployee_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	tests := map[string]func(*models.EmployeeInput){
		"unknown department": func(in *models.EmployeeInput) { in.DepartmentCode = "legal" },
		"missing name":       func(in *models.EmployeeInput) { in.Name = "  " },
		"bad email":          func(in *models.EmployeeInput) { in.Email = "not-an-email" },
		"long phone":         func(in *models.EmployeeInput) { in.Phone = "0123456789012345" },
		"weak password":      func(in *models.EmployeeInput) { in.Password, in.ConfirmPassword = "abcd", "abcd" },
		"mismatch":           func(in *models.EmployeeInput) { in.ConfirmPassword = "pass2" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := newInput("E510", "v@example.com")
			mutate(&in)
			if _, err := svc.CreateEmployee(ctx, in); apperror.GetCode(err) != apperror.CodeValidation {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestUpdateEmployee(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	a, err := svc.CreateEmployee(ctx, newInput("E520", "a520@example.com"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateEmployee(ctx, newInput("E521", "a521@example.com")); err != nil {
		t.Fatal(err)
	}

	update := models.EmployeeUpdate{
		EmployeeNumber: "E520",
		DepartmentCode: "finance",
		Name:           "Nakamura Ken",
		Phone:          "0311112222",
		Email:          "a520@example.com",
		IsAdmin:        true,
	}
	got, err := svc.UpdateEmployee(ctx, a.ID, update)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.DepartmentName != "財務部" || !got.IsAdmin || got.Name != "Nakamura Ken" {
		t.Errorf("updated = %+v", got)
	}

	// tanpa perubahan tetap sukses
	if _, err := svc.UpdateEmployee(ctx, a.ID, update); err != nil {
		t.Errorf("idempotent update: %v", err)
	}

	update.EmployeeNumber = "E521"
	if _, err := svc.UpdateEmployee(ctx, a.ID, update); apperror.GetCode(err) != apperror.CodeConflict {
		t.Errorf("number collision: err = %v", err)
	}

	update.EmployeeNumber = "E599"
	update.Email = "e599@example.com"
	if _, err := svc.UpdateEmployee(ctx, 9999, update); apperror.GetCode(err) != apperror.CodeNotFound {
		t.Errorf("missing employee: err = %v", err)
	}
}

func TestDeleteEmployee_RemovesSubmissions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	emp, err := svc.CreateEmployee(ctx, newInput("E530", "a530@example.com"))
	if err != nil {
		t.Fatal(err)
	}
	testutil.InsertSubmission(t, db, emp.ID, 36.5, 0, time.Now())
	testutil.InsertSubmission(t, db, emp.ID, 37.5, 1, time.Now())

	deleted, err := svc.DeleteEmployee(ctx, emp.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.EmployeeNumber != "E530" {
		t.Errorf("deleted = %+v", deleted)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM health_submissions WHERE employee_id = ?", emp.ID).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("%d submissions left after delete", count)
	}
	if _, err := svc.GetEmployee(ctx, emp.ID); apperror.GetCode(err) != apperror.CodeNotFound {
		t.Errorf("get after delete: err = %v", err)
	}
	if _, err := svc.DeleteEmployee(ctx, emp.ID); apperror.GetCode(err) != apperror.CodeNotFound {
		t.Errorf("second delete: err = %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	emp, err := svc.CreateEmployee(ctx, newInput("E540", "a540@example.com"))
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.ChangePassword(ctx, emp.ID, "new2", "new2"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "E540", "new2"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if err := svc.ChangePassword(ctx, emp.ID, "NOLOWER1", "NOLOWER1"); apperror.GetCode(err) != apperror.CodeValidation {
		t.Errorf("weak password: err = %v", err)
	}
	if err := svc.ChangePassword(ctx, 9999, "new2", "new2"); apperror.GetCode(err) != apperror.CodeNotFound {
		t.Errorf("unknown employee: err = %v", err)
	}
}

func TestRosterAndDashboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	testutil.InsertEmployee(t, db, "E550", "Admin", "hr", true)
	testutil.InsertEmployee(t, db, "E551", "Orphan", "gone", false)

	roster, err := svc.ListRoster(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(roster) != 2 {
		t.Fatalf("roster = %+v", roster)
	}
	if roster[1].DepartmentName != models.UnknownDepartmentName {
		t.Errorf("orphan department = %q", roster[1].DepartmentName)
	}

	dash, err := svc.GetDashboard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if dash.TotalEmployees != 2 || dash.TotalAdmins != 1 {
		t.Errorf("dashboard = %+v", dash)
	}
}
