package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Karyawan"
)

// Claims terpadu untuk token karyawan.
type Claims struct {
	IDKaryawan     string `json:"id_karyawan"`
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	IsAdmin        bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// EmployeeID mengembalikan ID karyawan numerik dari klaim.
func (c *Claims) EmployeeID() (int64, error) {
	id, err := strconv.ParseInt(c.IDKaryawan, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid employee id in token")
	}
	return id, nil
}

// GenerateJWTToken membuat token JWT HS256 dengan exp sesuai parameter.
func GenerateJWTToken(secret string, idKaryawan int64, employeeNumber, name string, isAdmin bool, exp time.Time) (string, error) {
	jwtKey := []byte(secret)
	if len(jwtKey) == 0 {
		return "", fmt.Errorf("JWT secret key is missing")
	}

	role := RoleEmployee
	if isAdmin {
		role = RoleAdmin
	}

	claims := Claims{
		IDKaryawan:     strconv.FormatInt(idKaryawan, 10),
		EmployeeNumber: employeeNumber,
		Name:           name,
		Role:           role,
		IsAdmin:        isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   employeeNumber,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateJWTToken memvalidasi token JWT dan mengembalikan klaim terpadu.
func ValidateJWTToken(secret, tokenString string) (*Claims, error) {
	jwtKey := []byte(secret)
	if len(jwtKey) == 0 {
		return nil, fmt.Errorf("JWT secret key is missing")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Pastikan metode signing benar
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
