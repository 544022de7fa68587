// cmd/create-admin membuat akun admin pertama agar dashboard bisa dipakai.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/c14220110/healthcheck-backend/config"
	"github.com/c14220110/healthcheck-backend/internal/common/apperror"
	"github.com/c14220110/healthcheck-backend/internal/roster/models"
	"github.com/c14220110/healthcheck-backend/internal/roster/services"
	"github.com/c14220110/healthcheck-backend/pkg/storage"
)

func main() {
	number := flag.String("number", "admin", "nomor karyawan admin")
	name := flag.String("name", "Administrator", "nama admin")
	email := flag.String("email", "admin@example.com", "email admin")
	phone := flag.String("phone", "0000000000", "nomor telepon admin")
	department := flag.String("department", "hr", "kode departemen")
	password := flag.String("password", "admin1", "password awal (4-16 karakter, huruf kecil dan angka)")
	flag.Parse()

	// Load config dan koneksi DB sama seperti server
	cfg := config.LoadConfig()
	db, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := storage.SeedDepartments(ctx, db); err != nil {
		log.Fatalf("failed to seed departments: %v", err)
	}

	svc := services.NewEmployeeService(db)
	if _, err := svc.FindByNumber(ctx, *number); err == nil {
		fmt.Println("Admin already exists with employee number:", *number)
		os.Exit(0)
	} else if apperror.GetCode(err) != apperror.CodeNotFound {
		log.Fatalf("failed to query employees: %v", err)
	}

	admin, err := svc.CreateEmployee(ctx, models.EmployeeInput{
		EmployeeNumber:  *number,
		DepartmentCode:  *department,
		Name:            *name,
		Phone:           *phone,
		Email:           *email,
		Password:        *password,
		ConfirmPassword: *password,
		IsAdmin:         true,
	})
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	fmt.Println("Admin created successfully!")
	fmt.Println("   ID:", admin.ID)
	fmt.Println("   Employee number:", admin.EmployeeNumber)
	fmt.Println("   Password:", *password, "(plain, remember to change later!)")
}
