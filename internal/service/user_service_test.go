package service

import (
	"testing"

	"studyshare_backend/internal/model"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	owner := seedUser(t, db, "owner", model.RoleStudent)
	stranger := seedUser(t, db, "stranger", model.RoleStudent)
	admin := seedUser(t, db, "admin", model.RoleAdmin)

	name := "New Name"
	avatar := "https://cdn.example.edu/a.png"

	t.Run("stranger denied", func(t *testing.T) {
		_, err := svc.UpdateProfile(owner.ID, UserUpdate{Name: &name}, claimsFor(stranger))
		assert.ErrorIs(t, err, util.ErrPermissionDenied)
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		_, err := svc.UpdateProfile(owner.ID, UserUpdate{}, claimsFor(owner))
		assert.ErrorIs(t, err, util.ErrNoFieldsToUpdate)
	})

	t.Run("owner updates", func(t *testing.T) {
		user, err := svc.UpdateProfile(owner.ID, UserUpdate{Name: &name, AvatarURL: &avatar}, claimsFor(owner))
		require.NoError(t, err)
		assert.Equal(t, name, user.Name)
		assert.Equal(t, avatar, user.AvatarURL)
	})

	t.Run("admin updates someone else", func(t *testing.T) {
		other := "Renamed By Admin"
		user, err := svc.UpdateProfile(owner.ID, UserUpdate{Name: &other}, claimsFor(admin))
		require.NoError(t, err)
		assert.Equal(t, other, user.Name)
	})
}

func TestUserListByRole(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	seedUser(t, db, "s1", model.RoleStudent)
	seedUser(t, db, "s2", model.RoleStudent)
	seedUser(t, db, "t1", model.RoleTutor)

	students, err := svc.List("student", 0)
	require.NoError(t, err)
	assert.Len(t, students, 2)

	all, err := svc.List("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
