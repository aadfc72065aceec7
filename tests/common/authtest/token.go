//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"petcare-booking/internal/pkg/config"
	"petcare-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken signs a bearer token the way the upstream identity service
// does, using the secret the app under test verifies with.
func IssueToken(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role string) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)

	token, err := jwt.NewService(cfg.Secret, duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
