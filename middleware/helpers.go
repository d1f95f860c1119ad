package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Dosada05/prediction-pool/models"
)

const (
	jwtClaimSubject = "sub"
	jwtClaimRole    = "role"
	jwtClaimExpiry  = "exp"
	jwtClaimIssued  = "iat"
)

var errNoClaims = errors.New("user claims not found in context or invalid type")

// GenerateToken signs an HS256 token identifying the user by username.
func GenerateToken(secret []byte, user *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		jwtClaimSubject: user.Username,
		jwtClaimRole:    string(user.Role),
		jwtClaimIssued:  now.Unix(),
		jwtClaimExpiry:  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// WithClaims stores claims the way Authenticate does. Handler tests use it to
// skip token signing.
func WithClaims(ctx context.Context, username string, role models.UserRole) context.Context {
	return context.WithValue(ctx, userContextKey, jwt.MapClaims{
		jwtClaimSubject: username,
		jwtClaimRole:    string(role),
	})
}

func usernameFromClaims(claims jwt.MapClaims) (string, error) {
	sub, ok := claims[jwtClaimSubject].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("missing '%s' claim in token", jwtClaimSubject)
	}
	return sub, nil
}

func GetUsernameFromContext(ctx context.Context) (string, error) {
	claims, ok := ctx.Value(userContextKey).(jwt.MapClaims)
	if !ok {
		return "", errNoClaims
	}
	return usernameFromClaims(claims)
}

func GetUserRoleFromContext(ctx context.Context) (models.UserRole, error) {
	claims, ok := ctx.Value(userContextKey).(jwt.MapClaims)
	if !ok {
		return "", errNoClaims
	}
	roleStr, ok := claims[jwtClaimRole].(string)
	if !ok {
		return "", fmt.Errorf("missing '%s' claim in token", jwtClaimRole)
	}

	role := models.UserRole(roleStr)
	switch role {
	case models.RoleAdmin, models.RoleUser:
		return role, nil
	default:
		return "", fmt.Errorf("invalid role value in claim: %q", roleStr)
	}
}
