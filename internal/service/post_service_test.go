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

func newTestPostService(t *testing.T, db *gorm.DB) *PostService {
	t.Helper()
	return NewPostService(
		repository.NewPostRepository(db),
		repository.NewCategoryRepository(db),
	)
}

func TestPostCreate(t *testing.T) {
	db := testDB(t)
	svc := newTestPostService(t, db)
	author := seedUser(t, db, "author", model.RoleStudent)

	t.Run("unknown category rejected", func(t *testing.T) {
		missing := "missing"
		_, err := svc.Create(PostCreate{
			Title:       "Study group forming",
			Description: "Weekly calculus study group, Tuesdays at the library",
			PostType:    model.PostAnnouncement,
			CategoryID:  &missing,
		}, author.ID)
		assert.ErrorIs(t, err, util.ErrInvalidCategory)
	})

	t.Run("category optional", func(t *testing.T) {
		view, err := svc.Create(PostCreate{
			Title:       "Study group forming",
			Description: "Weekly calculus study group, Tuesdays at the library",
			PostType:    model.PostAnnouncement,
		}, author.ID)
		require.NoError(t, err)
		assert.True(t, view.IsActive)
		assert.False(t, view.IsPinned)
		assert.Equal(t, "author", view.AuthorName)
		assert.NotNil(t, view.AttachmentURLs)
	})
}

func TestPostListOrderingAndFilters(t *testing.T) {
	db := testDB(t)
	svc := newTestPostService(t, db)
	author := seedUser(t, db, "author", model.RoleStudent)

	regular, err := svc.Create(PostCreate{
		Title:       "Looking for physics notes",
		Description: "Anyone have notes from last semester's optics course?",
		PostType:    model.PostHelpRequest,
	}, author.ID)
	require.NoError(t, err)

	pinned, err := svc.Create(PostCreate{
		Title:       "Exam period library hours",
		Description: "The main library stays open until midnight during exams",
		PostType:    model.PostAnnouncement,
	}, author.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.Post{}).Where("id = ?", pinned.ID).Update("is_pinned", true).Error)

	hidden, err := svc.Create(PostCreate{
		Title:       "Old announcement nobody needs",
		Description: "This one has been retired and should not show up anymore",
		PostType:    model.PostAnnouncement,
	}, author.ID)
	require.NoError(t, err)
	inactive := false
	_, err = svc.Update(hidden.ID, PostUpdate{IsActive: &inactive}, claimsFor(author))
	require.NoError(t, err)

	t.Run("pinned first, inactive hidden", func(t *testing.T) {
		posts, err := svc.List("", "", 0)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, pinned.ID, posts[0].ID)
		assert.Equal(t, regular.ID, posts[1].ID)
	})

	t.Run("type filter", func(t *testing.T) {
		posts, err := svc.List("help_request", "", 0)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, regular.ID, posts[0].ID)
	})

	t.Run("author listing includes inactive", func(t *testing.T) {
		posts, err := svc.ListByAuthor(author.ID, 0)
		require.NoError(t, err)
		assert.Len(t, posts, 3)
	})
}

func TestPostOwnership(t *testing.T) {
	db := testDB(t)
	svc := newTestPostService(t, db)
	author := seedUser(t, db, "author", model.RoleStudent)
	stranger := seedUser(t, db, "stranger", model.RoleStudent)

	created, err := svc.Create(PostCreate{
		Title:       "Tutoring available",
		Description: "Offering help with first-year programming assignments",
		PostType:    model.PostTutorFlyer,
	}, author.ID)
	require.NoError(t, err)

	title := "Tutoring available this term"

	t.Run("stranger cannot update", func(t *testing.T) {
		_, err := svc.Update(created.ID, PostUpdate{Title: &title}, claimsFor(stranger))
		assert.ErrorIs(t, err, util.ErrPermissionDenied)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(created.ID, claimsFor(stranger)), util.ErrPermissionDenied)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(created.ID, claimsFor(author)))
		_, err := svc.Get(created.ID)
		assert.Error(t, err)
	})
}
