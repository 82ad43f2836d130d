package service

import (
	"fmt"
	"testing"
	"time"

	"studyshare_backend/internal/config"
	"studyshare_backend/internal/model"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an isolated in-memory database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Resource{},
		&model.ResourceRequest{},
		&model.Tutor{},
		&model.TutorRequest{},
		&model.Post{},
	))

	return db
}

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-for-unit-tests",
			ExpireTime: time.Hour,
		},
	}
}

func seedUser(t *testing.T, db *gorm.DB, id string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{
		UUIDBase: model.UUIDBase{ID: id},
		Email:    id + "@example.edu",
		Name:     id,
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	category := &model.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func claimsFor(user *model.User) *util.Claims {
	return &util.Claims{UserID: user.ID, Role: user.Role, Email: user.Email}
}

func newTestResourceService(t *testing.T, db *gorm.DB, rdb *redis.Client) *ResourceService {
	t.Helper()
	return NewResourceService(
		repository.NewResourceRepository(db),
		repository.NewCategoryRepository(db),
		rdb,
	)
}
