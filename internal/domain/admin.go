package domain

import (
	"context"
	"time"
)

// Admin roles. Event admins only see their own events; super admins see everything.
const (
	RoleSuperAdmin = "super_admin"
	RoleEventAdmin = "event_admin"
)

// Admin represents an administrator account.
// swagger:model Admin
type Admin struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Institution  string    `json:"institution,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewAdmin returns a new Admin. ID is set by the repository on create.
func NewAdmin(name, email, passwordHash, institution, role string) *Admin {
	return &Admin{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Institution:  institution,
		Role:         role,
	}
}

// PasswordHasher hashes and verifies admin passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated admin.
type TokenIssuer interface {
	Issue(adminID int64, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated admin identity.
type TokenVerifier interface {
	Verify(token string) (adminID int64, role string, err error)
}

// AdminRepository defines storage operations for admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	List(ctx context.Context) ([]*Admin, error)
}

// RegisterAdminInput carries the fields needed to create an admin account.
type RegisterAdminInput struct {
	Name        string
	Email       string
	Password    string
	Institution string
	Role        string
}

// AdminService defines admin registration, login, and listing.
type AdminService interface {
	Register(ctx context.Context, input RegisterAdminInput) (*Admin, error)
	// Login returns a signed token and the admin's role, or ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (token, role string, err error)
	List(ctx context.Context) ([]*Admin, error)
}
