package auth

import (
	"context"
	"errors"

	autherrors "face-attendance/internal/auth/errors"
	"face-attendance/internal/employee"
	"face-attendance/internal/shared/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, employeeID, password string) (LoginResponse, error)
	Signup(ctx context.Context, req SignupRequest) (employee.EmployeeResponse, error)
}

type service struct {
	repo   employee.Repository
	tokens *token.Manager
	hasher CredentialHasher
	logger *zap.Logger
}

func NewService(repo employee.Repository, tokens *token.Manager, hasher CredentialHasher) Service {
	return &service{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
		logger: zap.L().Named("auth.service"),
	}
}

func (s *service) Login(ctx context.Context, employeeID, password string) (LoginResponse, error) {
	emp, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		// Unknown id and wrong password are indistinguishable on the wire.
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(emp.Password, password); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(emp.ID.String(), emp.Email)
	if err != nil {
		s.logger.Error("issue token failed", zap.String("employee_id", employeeID), zap.Error(err))
		return LoginResponse{}, err
	}

	return LoginResponse{
		Token: accessToken,
		User:  employee.ToResponse(emp),
	}, nil
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (employee.EmployeeResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, autherrors.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return employee.EmployeeResponse{}, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := &employee.Employee{
		ID:         uuid.New(),
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Password:   hashed,
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		// The unique indexes back the duplicate check under concurrency.
		return employee.EmployeeResponse{}, autherrors.ErrUserAlreadyExists
	}

	s.logger.Info("employee registered",
		zap.String("employee_id", emp.EmployeeID),
		zap.String("email", emp.Email),
	)
	return employee.ToResponse(emp), nil
}
