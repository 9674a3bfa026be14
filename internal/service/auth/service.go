package auth

import (
	"context"
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/auth"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/employee"
	pkgjwt "github.com/workpoint-ph/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employees employee.Repository
	jwt       pkgjwt.Service
}

func NewAuthService(employeeRepo employee.Repository, jwtService pkgjwt.Service) auth.Service {
	return &AuthServiceImpl{
		employees: employeeRepo,
		jwt:       jwtService,
	}
}

// Login implements auth.Service. An unknown code and a wrong password are
// indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employees.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}
	if !emp.IsActive {
		return auth.LoginResponse{}, employee.ErrEmployeeInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := s.jwt.GenerateAccessToken(emp.ID, emp.Code, string(emp.Role))
	if err != nil {
		return auth.LoginResponse{}, err
	}
	refreshToken, refreshExp, err := s.jwt.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshTokenExpiresAt: refreshExp,
		EmployeeID:            emp.ID,
		FullName:              emp.FullName,
		Role:                  string(emp.Role),
	}, nil
}

// Refresh implements auth.Service.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	employeeID, err := s.validateRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, err
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, err
	}
	if !emp.IsActive {
		return auth.RefreshResponse{}, employee.ErrEmployeeInactive
	}

	accessToken, accessExp, err := s.jwt.GenerateAccessToken(emp.ID, emp.Code, string(emp.Role))
	if err != nil {
		return auth.RefreshResponse{}, err
	}
	return auth.RefreshResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessExp,
	}, nil
}

// Logout implements auth.Service. Revoking an already invalid token is not an
// error; logout must always succeed from the client's point of view.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwt.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) validateRefreshToken(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", auth.ErrInvalidToken
	}
	if s.jwt.IsTokenRevoked(refreshToken) {
		return "", auth.ErrRefreshTokenRevoked
	}

	token, err := s.jwt.JWTAuth().Decode(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired()) {
			return "", auth.ErrTokenExpired
		}
		return "", auth.ErrInvalidToken
	}

	if tokenType, ok := token.Get("type"); !ok || tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}
	if !token.Expiration().IsZero() && token.Expiration().Before(time.Now()) {
		return "", auth.ErrTokenExpired
	}

	idVal, ok := token.Get("employee_id")
	if !ok {
		return "", auth.ErrInvalidToken
	}
	employeeID, ok := idVal.(string)
	if !ok || employeeID == "" {
		return "", auth.ErrInvalidToken
	}
	return employeeID, nil
}
