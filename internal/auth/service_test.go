package auth_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/fitpro-app/fitpro/internal/auth"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSessionKeyPrefix = "fitpro-service-session||"
	testTokensSetKey     = "fitpro-service-sessions"
)

func TestService_Login(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	service := auth.NewService(auth.DefaultTTL, rdb)
	service.RandStringFunc = func(s int) (string, error) {
		return "test-token", nil
	}

	createdAt := time.Now()
	mock.ExpectSet(testSessionKeyPrefix+"test-token", createdAt.Unix(), 0).SetVal("OK")
	mock.ExpectSAdd(testTokensSetKey, "test-token").SetVal(1)

	token, err := service.Login(context.Background(), createdAt)
	require.NoError(t, err)
	assert.Equal(t, "test-token", token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Logout(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	service := auth.NewService(auth.DefaultTTL, rdb)

	createdAt := time.Now().Add(-time.Hour)
	sessionKey := testSessionKeyPrefix + "test-token"
	mock.ExpectGet(sessionKey).SetVal(strconv.FormatInt(createdAt.Unix(), 10))
	mock.ExpectSet(sessionKey, 0, 0).SetVal("OK")
	mock.ExpectSRem(testTokensSetKey, "test-token").SetVal(1)

	loggedOut, err := service.Logout(context.Background(), "test-token")
	require.NoError(t, err)
	assert.True(t, loggedOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Logout_UnknownToken(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	service := auth.NewService(auth.DefaultTTL, rdb)

	mock.ExpectGet(testSessionKeyPrefix + "unknown").RedisNil()

	_, err := service.Logout(context.Background(), "unknown")
	require.Error(t, err)
}

func TestLoginChecker_IsLogged(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	checker := auth.NewLoginChecker(time.Hour, rdb)

	// fresh session
	mock.ExpectGet(testSessionKeyPrefix + "fresh").
		SetVal(strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10))
	isLogged, err := checker.IsLogged(context.Background(), "fresh")
	require.NoError(t, err)
	assert.True(t, isLogged)

	// expired session
	mock.ExpectGet(testSessionKeyPrefix + "stale").
		SetVal(strconv.FormatInt(time.Now().Add(-2*time.Hour).Unix(), 10))
	isLogged, err = checker.IsLogged(context.Background(), "stale")
	require.NoError(t, err)
	assert.False(t, isLogged)

	// unknown token
	mock.ExpectGet(testSessionKeyPrefix + "nope").RedisNil()
	_, err = checker.IsLogged(context.Background(), "nope")
	require.Error(t, err)
}
