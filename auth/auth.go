package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/gitmusaddique/FitnessTracker-sub000/models"
)

const (
	userTokenTTL  = 7 * 24 * time.Hour
	adminTokenTTL = 24 * time.Hour
)

// Manager issues and verifies the two token schemes. User and admin
// tokens are signed with independent secrets, so one surface's token is
// never structurally valid on the other.
type Manager struct {
	userSecret  []byte
	adminSecret []byte
}

func NewManager(userSecret, adminSecret string) *Manager {
	return &Manager{
		userSecret:  []byte(userSecret),
		adminSecret: []byte(adminSecret),
	}
}

func (m *Manager) UserSecret() string  { return string(m.userSecret) }
func (m *Manager) AdminSecret() string { return string(m.adminSecret) }

// IssueUserToken returns a signed 7-day token for the end-user surface.
func (m *Manager) IssueUserToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(userTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.userSecret)
}

// IssueAdminToken returns a signed 24-hour token carrying the role
// claim the admin middleware requires.
func (m *Manager) IssueAdminToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(adminTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.adminSecret)
}

// VerifyUserToken parses and validates a user token, returning the
// subject id.
func (m *Manager) VerifyUserToken(tokenString string) (string, error) {
	id, _, err := verify(tokenString, m.userSecret)
	return id, err
}

// VerifyAdminToken parses and validates an admin token, returning the
// subject id and the role claim.
func (m *Manager) VerifyAdminToken(tokenString string) (string, string, error) {
	return verify(tokenString, m.adminSecret)
}

func verify(tokenString string, secret []byte) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid token claims")
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", "", fmt.Errorf("no id found in claims")
	}
	role, _ := claims["role"].(string)
	return id, role, nil
}
