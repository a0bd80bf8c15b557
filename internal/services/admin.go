package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"eventattend/internal/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 100
)

type adminService struct {
	adminRepo   domain.AdminRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAdminService creates an AdminService with the given repository and auth ports.
func NewAdminService(adminRepo domain.AdminRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AdminService {
	return &adminService{
		adminRepo:   adminRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *adminService) Register(ctx context.Context, input domain.RegisterAdminInput) (*domain.Admin, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", domain.ErrInvalidInput)
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}
	role := input.Role
	if role == "" {
		role = domain.RoleEventAdmin
	}
	if role != domain.RoleSuperAdmin && role != domain.RoleEventAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := domain.NewAdmin(name, email, hash, strings.TrimSpace(input.Institution), role)
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

func (s *adminService) Login(ctx context.Context, email, password string) (string, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", "", fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same error as a wrong password, to prevent account enumeration.
			return "", "", domain.ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("get admin: %w", err)
	}
	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		return "", "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(admin.ID, admin.Role, s.tokenExpiry)
	if err != nil {
		return "", "", fmt.Errorf("issue token: %w", err)
	}
	return token, admin.Role, nil
}

func (s *adminService) List(ctx context.Context) ([]*domain.Admin, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

// validatePassword enforces the account password policy: 8-100 characters
// with at least one uppercase letter, one lowercase letter, and one digit,
// and no spaces.
func validatePassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be between %d and %d characters", domain.ErrInvalidInput, minPasswordLength, maxPasswordLength)
	}
	var hasUpper, hasLower, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case unicode.IsSpace(c):
			return fmt.Errorf("%w: password must not contain spaces", domain.ErrInvalidInput)
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("%w: password must include uppercase, lowercase, and numbers", domain.ErrInvalidInput)
	}
	return nil
}
