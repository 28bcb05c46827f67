package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yudhapane/kacapos/pkg/apperror"
	"github.com/yudhapane/kacapos/pkg/utils"
)

func newTestOwnerService(t *testing.T) *OwnerService {
	t.Helper()
	jwtManager := utils.NewJWTManager("test-secret", 30*time.Minute)
	svc, err := NewOwnerService("123456", jwtManager)
	require.NoError(t, err)
	return svc
}

func TestOwnerLogin(t *testing.T) {
	svc := newTestOwnerService(t)

	result, err := svc.Login("123456")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), result.ExpiresAt, time.Minute)
}

func TestOwnerLoginWrongPasscode(t *testing.T) {
	svc := newTestOwnerService(t)

	_, err := svc.Login("654321")
	assert.ErrorIs(t, err, apperror.ErrInvalidPasscode)
}

func TestOwnerLoginTokenValidates(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", 30*time.Minute)
	svc, err := NewOwnerService("123456", jwtManager)
	require.NoError(t, err)

	result, err := svc.Login("123456")
	require.NoError(t, err)

	claims, err := jwtManager.ValidateOwnerToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Role)
}
