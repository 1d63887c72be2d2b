package tokens

import (
	"testing"
	"time"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJWT(t *testing.T) {
	key := []byte("secret")
	id := uuid.New()

	token, err := GenerateUserJWT(id, domain.RoleAdmin, time.Minute, key)
	require.NoError(t, err)

	claims, validateErr := ValidateUserJWT(token, key)
	require.NoError(t, validateErr)
	assert.Equal(t, id, claims.ID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)

	_, wrongKeyErr := ValidateUserJWT(token, []byte("other"))
	require.Error(t, wrongKeyErr)

	expired, expiredErr := GenerateUserJWT(id, domain.RoleClient, -time.Minute, key)
	require.NoError(t, expiredErr)
	_, err = ValidateUserJWT(expired, key)
	require.ErrorIs(t, err, ErrTokenExpired)

	_, err = ValidateUserJWT("garbage", key)
	require.Error(t, err)
}
