package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventattend/internal/delivery/http/helpers"
	"eventattend/internal/domain"
)

type mockAdminService struct {
	admin  *domain.Admin
	admins []*domain.Admin
	token  string
	role   string
	err    error
}

func (m *mockAdminService) Register(ctx context.Context, input domain.RegisterAdminInput) (*domain.Admin, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.admin, nil
}

func (m *mockAdminService) Login(ctx context.Context, email, password string) (string, string, error) {
	if m.err != nil {
		return "", "", m.err
	}
	return m.token, m.role, nil
}

func (m *mockAdminService) List(ctx context.Context) ([]*domain.Admin, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.admins, nil
}

func TestAdminController_RegisterAdmin_Success(t *testing.T) {
	svc := &mockAdminService{admin: &domain.Admin{ID: 7, Email: "alice@example.com", Role: domain.RoleEventAdmin}}
	ctrl := NewAdminController(testLogger(), svc)

	body := `{"name":"Alice","email":"alice@example.com","password":"Passw0rd"}`
	req := httptest.NewRequest(http.MethodPost, "/admins/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.RegisterAdmin(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	var resp RegisterAdminResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.AdminID != 7 {
		t.Fatalf("expected adminId 7, got %d", resp.AdminID)
	}
}

func TestAdminController_RegisterAdmin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"missing fields", `{"email":"alice@example.com"}`, nil, http.StatusBadRequest},
		{"weak password", `{"name":"Alice","email":"alice@example.com","password":"password"}`, domain.ErrInvalidInput, http.StatusBadRequest},
		{"duplicate email", `{"name":"Alice","email":"alice@example.com","password":"Passw0rd"}`, domain.ErrDuplicate, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAdminService{err: tt.err}
			ctrl := NewAdminController(testLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/admins/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			ctrl.RegisterAdmin(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAdminController_Login_Success(t *testing.T) {
	svc := &mockAdminService{token: "signed-token", role: domain.RoleSuperAdmin}
	ctrl := NewAdminController(testLogger(), svc)

	body := `{"email":"alice@example.com","password":"Passw0rd"}`
	req := httptest.NewRequest(http.MethodPost, "/admins/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Token != "signed-token" || resp.Role != domain.RoleSuperAdmin {
		t.Fatalf("unexpected login response: %s", w.Body.String())
	}
}

func TestAdminController_Login_InvalidCredentials(t *testing.T) {
	svc := &mockAdminService{err: domain.ErrInvalidCredentials}
	ctrl := NewAdminController(testLogger(), svc)

	body := `{"email":"alice@example.com","password":"Wr0ngPass"}`
	req := httptest.NewRequest(http.MethodPost, "/admins/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.Login(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	var resp helpers.MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Message != "Invalid credentials." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestAdminController_ListAdmins(t *testing.T) {
	svc := &mockAdminService{admins: []*domain.Admin{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Role: domain.RoleSuperAdmin},
	}}
	ctrl := NewAdminController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/admins", nil)
	w := httptest.NewRecorder()

	ctrl.ListAdmins(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("admin listing must not leak password hashes: %s", w.Body.String())
	}
}
