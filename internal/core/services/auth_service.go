package services

import (
	"context"
	"errors"

	"carrental/internal/adapters/persistence/models"
	"carrental/internal/adapters/persistence/repositories"
	"carrental/internal/config"
	"carrental/internal/core/domain"
	"carrental/internal/pkg/jwt"
	"carrental/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService verifies credentials and issues or verifies tokens
type AuthService struct {
	customerRepo repositories.CustomerRepository
	employeeRepo repositories.EmployeeRepository
	jwtCfg       config.JWTConfig
}

// NewAuthService creates a new auth service
func NewAuthService(
	customerRepo repositories.CustomerRepository,
	employeeRepo repositories.EmployeeRepository,
	jwtCfg config.JWTConfig,
) *AuthService {
	return &AuthService{
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		jwtCfg:       jwtCfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=255"`
}

// TokenResponse is returned by the login endpoints
type TokenResponse struct {
	Token string `json:"token"`
}

// LoginCustomer checks customer credentials and returns a signed token
func (s *AuthService) LoginCustomer(ctx context.Context, input *LoginInput) (*TokenResponse, error) {
	customer, err := s.customerRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBadLogin
		}
		return nil, err
	}

	if !password.Verify(input.Password, customer.Password) {
		return nil, domain.ErrBadLogin
	}

	token, err := s.CustomerToken(customer)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{Token: token}, nil
}

// LoginEmployee checks employee credentials and returns a signed token
func (s *AuthService) LoginEmployee(ctx context.Context, input *LoginInput) (*TokenResponse, error) {
	employee, err := s.employeeRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBadLogin
		}
		return nil, err
	}

	if !password.Verify(input.Password, employee.Password) {
		return nil, domain.ErrBadLogin
	}

	token, err := s.EmployeeToken(employee)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{Token: token}, nil
}

// CustomerToken issues a token for a customer
func (s *AuthService) CustomerToken(c *models.Customer) (string, error) {
	return s.IssueToken(&domain.Principal{
		ID:     c.ID,
		Type:   domain.PrincipalCustomer,
		IsGold: c.IsGold,
	})
}

// EmployeeToken issues a token for an employee
func (s *AuthService) EmployeeToken(e *models.Employee) (string, error) {
	return s.IssueToken(&domain.Principal{
		ID:      e.ID,
		Type:    domain.PrincipalEmployee,
		IsAdmin: e.IsAdmin,
	})
}

// IssueToken signs a token for the principal
func (s *AuthService) IssueToken(p *domain.Principal) (string, error) {
	return jwt.GenerateToken(p.ID, string(p.Type), p.IsGold, p.IsAdmin, s.jwtCfg.Secret, s.jwtCfg.TTL())
}

// VerifyToken decodes a request token into a principal
func (s *AuthService) VerifyToken(token string) (*domain.Principal, error) {
	if token == "" {
		return nil, domain.ErrNoTokenProvided
	}

	claims, err := jwt.ValidateToken(token, s.jwtCfg.Secret)
	if err != nil {
		return nil, domain.ErrTokenRejected
	}

	return &domain.Principal{
		ID:      claims.ID,
		Type:    domain.PrincipalType(claims.UserType),
		IsGold:  claims.IsGold,
		IsAdmin: claims.IsAdmin,
	}, nil
}
