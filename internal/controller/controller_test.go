package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyshare_backend/internal/model"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/service"
	"studyshare_backend/internal/util"
	"studyshare_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fixture struct {
	router   *gin.Engine
	db       *gorm.DB
	user     *model.User
	resource *service.ResourceService
}

// newFixture wires the JSON-binding controllers onto an in-memory database,
// with the custom validators installed the way the app does at startup.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	util.RegisterValidators()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
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
		&model.Post{},
	))

	user := &model.User{
		UUIDBase: model.UUIDBase{ID: "author-1"},
		Email:    "author-1@example.edu",
		Name:     "author-1",
		Password: "x",
		Role:     model.RoleStudent,
	}
	require.NoError(t, db.Create(user).Error)

	categoryRepo := repository.NewCategoryRepository(db)
	requestService := service.NewRequestService(repository.NewResourceRequestRepository(db), categoryRepo)
	postService := service.NewPostService(repository.NewPostRepository(db), categoryRepo)
	resourceService := service.NewResourceService(repository.NewResourceRepository(db), categoryRepo, nil)

	claims := &util.Claims{UserID: user.ID, Role: user.Role, Email: user.Email}
	router := gin.New()
	api := router.Group("/api", func(c *gin.Context) { c.Set("user", claims) })
	api.POST("/requests", NewRequestController(requestService).Create)
	api.POST("/posts", NewPostController(postService).Create)
	api.GET("/resources/search", NewResourceController(resourceService, nil).Search)

	return &fixture{router: router, db: db, user: user, resource: resourceService}
}

func (f *fixture) postJSON(t *testing.T, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) getJSON(t *testing.T, path string) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCreateRequestBindingRejections(t *testing.T) {
	f := newFixture(t)

	rejected := []struct {
		name string
		body map[string]any
	}{
		{"topic below minimum length", map[string]any{
			"topic":       "AB",
			"description": "I need the 2019 calculus past paper",
		}},
		{"description below minimum length", map[string]any{
			"topic":       "Calculus",
			"description": "too short",
		}},
		{"preferred format outside the set", map[string]any{
			"topic":            "Calculus",
			"description":      "I need the 2019 calculus past paper",
			"preferred_format": "carrier_pigeon",
		}},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			w := f.postJSON(t, "/api/requests", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	var count int64
	require.NoError(t, f.db.Model(&model.ResourceRequest{}).Count(&count).Error)
	assert.Zero(t, count, "rejected payloads must not persist rows")

	w := f.postJSON(t, "/api/requests", map[string]any{
		"topic":       "Calculus",
		"description": "I need the 2019 calculus past paper",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, f.db.Model(&model.ResourceRequest{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreatePostBindingRejections(t *testing.T) {
	f := newFixture(t)

	rejected := []struct {
		name string
		body map[string]any
	}{
		{"post type outside the set", map[string]any{
			"title":       "Calculus study group",
			"description": "Weekly calculus study group, everyone welcome to join.",
			"post_type":   "party",
		}},
		{"description below minimum length", map[string]any{
			"title":       "Calculus study group",
			"description": "short",
			"post_type":   "announcement",
		}},
		{"attachment is not an http url", map[string]any{
			"title":           "Calculus study group",
			"description":     "Weekly calculus study group, everyone welcome to join.",
			"post_type":       "announcement",
			"attachment_urls": []string{"ftp://files.example.edu/flyer.pdf"},
		}},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			w := f.postJSON(t, "/api/posts", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	var count int64
	require.NoError(t, f.db.Model(&model.Post{}).Count(&count).Error)
	assert.Zero(t, count, "rejected payloads must not persist rows")

	w := f.postJSON(t, "/api/posts", map[string]any{
		"title":       "Calculus study group",
		"description": "Weekly calculus study group, everyone welcome to join.",
		"post_type":   "announcement",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, f.db.Model(&model.Post{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSearchSuggestionOnEmptyResults(t *testing.T) {
	f := newFixture(t)

	category := &model.Category{Name: "Mathematics"}
	require.NoError(t, f.db.Create(category).Error)

	t.Run("query with no matches", func(t *testing.T) {
		w, resp := f.getJSON(t, "/api/resources/search?q=quantum+basket+weaving")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Suggestion)
	})

	t.Run("filter-only search with no matches", func(t *testing.T) {
		w, resp := f.getJSON(t, "/api/resources/search?category="+category.ID)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Suggestion, "empty result set suggests a request even without q")
	})

	t.Run("no suggestion when results exist", func(t *testing.T) {
		_, err := f.resource.Create(service.ResourceCreate{
			Title:      "Calculus lecture notes",
			CategoryID: category.ID,
		}, f.user.ID)
		require.NoError(t, err)

		w, resp := f.getJSON(t, "/api/resources/search?category="+category.ID)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, resp.Suggestion)
	})
}
