package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketmoney/pocket_money_app/internal/utils"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := utils.GenerateJWT("parent", "secret", time.Hour, "pocket-money-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "parent", claims.Subject)
	assert.Equal(t, "pocket-money-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("parent", "secret", time.Hour, "pocket-money-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("parent", "secret", -time.Minute, "pocket-money-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
