package service

import (
	"testing"

	"studyshare_backend/internal/model"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCategoryCreateDuplicate(t *testing.T) {
	db := testDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	_, err := svc.Create("Mathematics", "", "sigma")
	require.NoError(t, err)

	_, err = svc.Create("Mathematics", "again", "")
	assert.ErrorIs(t, err, util.ErrCategoryExists)
}

func TestCategoryDeleteCascades(t *testing.T) {
	db := testDB(t)
	categoryRepo := repository.NewCategoryRepository(db)
	svc := NewCategoryService(categoryRepo)
	resourceSvc := newTestResourceService(t, db, nil)

	author := seedUser(t, db, "author", model.RoleStudent)
	keep := seedCategory(t, db, "Physics")
	doomed := seedCategory(t, db, "Astrology")

	_, err := resourceSvc.Create(ResourceCreate{Title: "Star Charts", CategoryID: doomed.ID}, author.ID)
	require.NoError(t, err)
	kept, err := resourceSvc.Create(ResourceCreate{Title: "Mechanics", CategoryID: keep.ID}, author.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(doomed.ID))

	_, err = categoryRepo.FindByID(doomed.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Resources under the deleted category are gone; others survive.
	resources, err := resourceSvc.List(0)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, kept.ID, resources[0].ID)
}

func TestCategoryListWithCounts(t *testing.T) {
	db := testDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	resourceSvc := newTestResourceService(t, db, nil)

	author := seedUser(t, db, "author", model.RoleStudent)
	math := seedCategory(t, db, "Mathematics")
	seedCategory(t, db, "Physics")

	for _, title := range []string{"Notes A", "Notes B"} {
		_, err := resourceSvc.Create(ResourceCreate{Title: title, CategoryID: math.ID}, author.ID)
		require.NoError(t, err)
	}

	counts, err := svc.ListWithCounts()
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byName := map[string]int64{}
	for _, c := range counts {
		byName[c.Name] = c.ResourceCount
	}
	assert.EqualValues(t, 2, byName["Mathematics"])
	assert.EqualValues(t, 0, byName["Physics"])
}
