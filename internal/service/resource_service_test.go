package service

import (
	"context"
	"testing"

	"studyshare_backend/internal/model"
	"studyshare_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCreate(t *testing.T) {
	db := testDB(t)
	svc := newTestResourceService(t, db, nil)
	author := seedUser(t, db, "author", model.RoleStudent)
	category := seedCategory(t, db, "Mathematics")

	t.Run("unknown category rejected", func(t *testing.T) {
		_, err := svc.Create(ResourceCreate{
			Title:      "Calculus Notes",
			CategoryID: "missing",
		}, author.ID)
		assert.ErrorIs(t, err, util.ErrInvalidCategory)

		var count int64
		db.Model(&model.Resource{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("tags are sanitized", func(t *testing.T) {
		view, err := svc.Create(ResourceCreate{
			Title:      "Calculus Notes",
			CategoryID: category.ID,
			FileType:   model.FilePDF,
			Tags:       []string{"Calculus", "CALCULUS", "x"},
		}, author.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"calculus"}, view.Tags)
		assert.Equal(t, "Mathematics", view.CategoryName)
		assert.Equal(t, "author", view.AuthorName)
	})
}

func TestResourceOwnership(t *testing.T) {
	db := testDB(t)
	svc := newTestResourceService(t, db, nil)
	author := seedUser(t, db, "owner", model.RoleStudent)
	stranger := seedUser(t, db, "stranger", model.RoleStudent)
	admin := seedUser(t, db, "admin", model.RoleAdmin)
	category := seedCategory(t, db, "Physics")

	created, err := svc.Create(ResourceCreate{
		Title:      "Mechanics Summary",
		CategoryID: category.ID,
	}, author.ID)
	require.NoError(t, err)

	newTitle := "Mechanics Summary v2"

	t.Run("stranger cannot update", func(t *testing.T) {
		_, err := svc.Update(created.ID, ResourceUpdate{Title: &newTitle}, claimsFor(stranger))
		assert.ErrorIs(t, err, util.ErrPermissionDenied)

		unchanged, err := svc.ResourceRepo.FindByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mechanics Summary", unchanged.Title)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		err := svc.Delete(created.ID, claimsFor(stranger))
		assert.ErrorIs(t, err, util.ErrPermissionDenied)
	})

	t.Run("owner can update", func(t *testing.T) {
		view, err := svc.Update(created.ID, ResourceUpdate{Title: &newTitle}, claimsFor(author))
		require.NoError(t, err)
		assert.Equal(t, newTitle, view.Title)
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		_, err := svc.Update(created.ID, ResourceUpdate{}, claimsFor(author))
		assert.ErrorIs(t, err, util.ErrNoFieldsToUpdate)
	})

	t.Run("admin can delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(created.ID, claimsFor(admin)))

		_, err := svc.Get(context.Background(), created.ID, "", "")
		assert.Error(t, err)
	})
}

func TestResourceViewDedup(t *testing.T) {
	db := testDB(t)
	rdb := testRedis(t)
	svc := newTestResourceService(t, db, rdb)
	author := seedUser(t, db, "author", model.RoleStudent)
	category := seedCategory(t, db, "Chemistry")

	created, err := svc.Create(ResourceCreate{
		Title:      "Organic Chemistry Flashcards",
		CategoryID: category.ID,
	}, author.ID)
	require.NoError(t, err)

	ctx := context.Background()

	// First visit counts, repeat within the window does not.
	view, err := svc.Get(ctx, created.ID, "viewer-1", "")
	require.NoError(t, err)
	assert.Equal(t, 1, view.ViewCount)

	view, err = svc.Get(ctx, created.ID, "viewer-1", "")
	require.NoError(t, err)
	assert.Equal(t, 1, view.ViewCount)

	// A different viewer counts separately.
	view, err = svc.Get(ctx, created.ID, "viewer-2", "")
	require.NoError(t, err)
	assert.Equal(t, 2, view.ViewCount)

	// Anonymous viewers dedup by IP.
	view, err = svc.Get(ctx, created.ID, "", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 3, view.ViewCount)

	view, err = svc.Get(ctx, created.ID, "", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 3, view.ViewCount)
}

func TestResourceSearch(t *testing.T) {
	db := testDB(t)
	svc := newTestResourceService(t, db, nil)
	author := seedUser(t, db, "author", model.RoleStudent)
	math := seedCategory(t, db, "Mathematics")
	physics := seedCategory(t, db, "Physics")

	for _, r := range []ResourceCreate{
		{Title: "Linear Algebra Notes", CategoryID: math.ID, FileType: model.FileNotes},
		{Title: "Calculus Past Paper", CategoryID: math.ID, FileType: model.FilePastPaper},
		{Title: "Optics Lecture", CategoryID: physics.ID, FileType: model.FileVideo},
	} {
		_, err := svc.Create(r, author.ID)
		require.NoError(t, err)
	}

	t.Run("case-insensitive title match", func(t *testing.T) {
		got, err := svc.Search("lInEaR", "", "", 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Linear Algebra Notes", got[0].Title)
	})

	t.Run("category filter", func(t *testing.T) {
		got, err := svc.Search("", math.ID, "", 0)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("file type filter", func(t *testing.T) {
		got, err := svc.Search("", "", "video", 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Optics Lecture", got[0].Title)
	})

	t.Run("no matches returns empty slice", func(t *testing.T) {
		got, err := svc.Search("quantum knitting", "", "", 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestTrackDownload(t *testing.T) {
	db := testDB(t)
	svc := newTestResourceService(t, db, nil)
	author := seedUser(t, db, "author", model.RoleStudent)
	category := seedCategory(t, db, "Biology")

	created, err := svc.Create(ResourceCreate{
		Title:      "Genetics Cheat Sheet",
		CategoryID: category.ID,
	}, author.ID)
	require.NoError(t, err)

	require.NoError(t, svc.TrackDownload(created.ID))
	require.NoError(t, svc.TrackDownload(created.ID))

	resource, err := svc.ResourceRepo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, resource.DownloadCount)

	assert.Error(t, svc.TrackDownload("missing"))
}
