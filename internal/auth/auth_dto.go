package auth

import "face-attendance/internal/employee"

type LoginRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name       string `json:"name" binding:"required,min=2"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	EmployeeID string `json:"employeeId" binding:"required,min=4"`
	Department string `json:"department"`
}

type LoginResponse struct {
	Token string                    `json:"token"`
	User  employee.EmployeeResponse `json:"user"`
}
