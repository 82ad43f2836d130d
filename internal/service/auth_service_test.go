package service

import (
	"testing"

	"studyshare_backend/internal/model"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := testDB(t)
	return NewAuthService(repository.NewUserRepository(db), testConfig())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.Register("Alice@Example.EDU", "Passw0rd!", "Alice", model.RoleStudent)
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, 3600, token.ExpiresIn)
	// Email is stored normalized.
	assert.Equal(t, "alice@example.edu", token.User.Email)
	assert.NotEqual(t, "Passw0rd!", token.User.Password)

	login, err := svc.Login("alice@example.edu", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, token.User.ID, login.User.ID)

	claims, err := util.ParseJWT(login.AccessToken, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, token.User.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register("bob@example.edu", "Passw0rd!", "Bob", model.RoleStudent)
	require.NoError(t, err)

	_, err = svc.Register("BOB@example.edu", "Passw0rd!", "Bob Again", model.RoleStudent)
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register("carol@example.edu", "weak", "Carol", model.RoleStudent)
	assert.ErrorIs(t, err, util.ErrWeakPassword)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register("dave@example.edu", "Passw0rd!", "Dave", model.RoleStudent)
	require.NoError(t, err)

	_, err = svc.Login("dave@example.edu", "WrongPass1")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login("nobody@example.edu", "Passw0rd!")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.Register("erin@example.edu", "Passw0rd!", "Erin", model.RoleStudent)
	require.NoError(t, err)
	userID := token.User.ID

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(userID, "NotCurrent1", "NewPassw0rd")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})

	t.Run("weak new password", func(t *testing.T) {
		err := svc.ChangePassword(userID, "Passw0rd!", "short")
		assert.ErrorIs(t, err, util.ErrWeakPassword)
	})

	t.Run("successful change", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(userID, "Passw0rd!", "NewPassw0rd"))

		_, err := svc.Login("erin@example.edu", "Passw0rd!")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)

		_, err = svc.Login("erin@example.edu", "NewPassw0rd")
		assert.NoError(t, err)
	})
}
