package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteva/pkg/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "noteva.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestArticleCRUD(t *testing.T) {
	s := openTestStore(t)

	a := &models.Article{Title: "First Post", Body: "hello", Tags: []string{"go", "cms"}}
	require.NoError(t, s.CreateArticle(a))
	require.NotEmpty(t, a.ID)
	assert.Equal(t, "first-post", a.Slug)
	assert.Equal(t, models.StatusDraft, a.Status)

	got, err := s.GetArticle(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Title, got.Title)
	assert.ElementsMatch(t, []string{"go", "cms"}, got.Tags)

	got.Status = models.StatusPublished
	got.Tags = []string{"go"}
	require.NoError(t, s.UpdateArticle(got))

	bySlug, err := s.GetArticleBySlug("first-post")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, bySlug.Status)
	assert.Equal(t, []string{"go"}, bySlug.Tags)

	require.NoError(t, s.DeleteArticle(a.ID))
	_, err = s.GetArticle(a.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestArticleDuplicateSlug(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.CreateArticle(&models.Article{Title: "Same"}))
	err := s.CreateArticle(&models.Article{Title: "Same"})
	assert.ErrorIs(t, err, models.ErrDuplicateSlug)
}

func TestListArticlesPaginationAndFilters(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		a := &models.Article{
			Title:  "Post " + string(rune('A'+i)),
			Status: models.StatusPublished,
			Tags:   []string{"common"},
		}
		require.NoError(t, s.CreateArticle(a))
	}
	require.NoError(t, s.CreateArticle(&models.Article{Title: "Draft one"}))

	published, total, err := s.ListArticles(ArticleFilter{Status: models.StatusPublished, Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, published, 2)
	assert.Equal(t, 3, models.TotalPages(total, 2))

	tagged, total, err := s.ListArticles(ArticleFilter{TagSlug: "common"})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, tagged, 5)

	all, total, err := s.ListArticles(ArticleFilter{})
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Len(t, all, 6)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  Already--dashed  ", "already-dashed"},
		{"C'est l'été!", "c-est-l-t"},
		{"123 Go", "123-go"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func TestCategoryCRUDAndCounts(t *testing.T) {
	s := openTestStore(t)

	cat := &models.Category{Name: "Tech", Description: "tech posts"}
	require.NoError(t, s.CreateCategory(cat))
	assert.Equal(t, "tech", cat.Slug)

	require.NoError(t, s.CreateArticle(&models.Article{Title: "In Tech", CategoryID: cat.ID}))

	cats, err := s.ListCategories()
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, 1, cats[0].ArticleCount)

	bySlug, err := s.GetCategoryBySlug("tech")
	require.NoError(t, err)
	assert.Equal(t, cat.ID, bySlug.ID)

	cat.Name = "Technology"
	require.NoError(t, s.UpdateCategory(cat))
	require.NoError(t, s.DeleteCategory(cat.ID))
	assert.ErrorIs(t, s.DeleteCategory(cat.ID), models.ErrNotFound)
}

func TestTagsCreatedViaArticles(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.CreateArticle(&models.Article{Title: "P1", Tags: []string{"go", "sql"}}))
	require.NoError(t, s.CreateArticle(&models.Article{Title: "P2", Tags: []string{"go"}}))

	tags, err := s.ListTags()
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "go", tags[0].Name)
	assert.Equal(t, 2, tags[0].ArticleCount)

	require.NoError(t, s.DeleteTag(tags[0].ID))
	tags, err = s.ListTags()
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestCommentModeration(t *testing.T) {
	s := openTestStore(t)
	a := &models.Article{Title: "Post"}
	require.NoError(t, s.CreateArticle(a))

	c := &models.Comment{ArticleID: a.ID, Author: "reader", Body: "nice"}
	require.NoError(t, s.CreateComment(c))
	assert.Equal(t, models.CommentPending, c.Status)

	approved, total, err := s.ListComments(a.ID, models.CommentApproved, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, approved)

	require.NoError(t, s.SetCommentStatus(c.ID, models.CommentApproved))
	approved, total, err = s.ListComments(a.ID, models.CommentApproved, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, approved, 1)

	require.NoError(t, s.DeleteComment(c.ID))
	assert.ErrorIs(t, s.DeleteComment(c.ID), models.ErrNotFound)
}

func TestNavItems(t *testing.T) {
	s := openTestStore(t)

	parent := &models.NavItem{Title: "More", NavType: models.NavCustom, Target: "#", Position: 1}
	require.NoError(t, s.SaveNavItem(parent))

	child := &models.NavItem{ParentID: parent.ID, Title: "About", NavType: models.NavPage, Target: "about"}
	require.NoError(t, s.SaveNavItem(child))

	child.Title = "About Us"
	require.NoError(t, s.SaveNavItem(child))

	items, err := s.ListNavItems()
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, s.DeleteNavItem(parent.ID))
	items, err = s.ListNavItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].ParentID, "children of a deleted item are reparented to top level")
}

func TestPluginRecords(t *testing.T) {
	s := openTestStore(t)

	rec, err := s.GetPluginRecord("music-player")
	require.NoError(t, err)
	assert.False(t, rec.Enabled)
	assert.Empty(t, rec.Settings, "unknown plugin comes back empty, not as an error")

	rec.Enabled = true
	rec.Settings = map[string]any{"volume": 55.0, "songs": []any{map[string]any{"url": "a.mp3"}}}
	require.NoError(t, s.SavePluginRecord(rec))

	got, err := s.GetPluginRecord("music-player")
	require.NoError(t, err)
	assert.True(t, got.Enabled)
	assert.Equal(t, 55.0, got.Settings["volume"])

	all, err := s.ListPluginRecords()
	require.NoError(t, err)
	assert.Contains(t, all, "music-player")
}

func TestSiteSettings(t *testing.T) {
	s := openTestStore(t)

	v, err := s.GetSetting("theme", "default")
	require.NoError(t, err)
	assert.Equal(t, "default", v)

	require.NoError(t, s.SetSetting("theme", "dark"))
	require.NoError(t, s.SetSetting("theme", "darker"))
	v, err = s.GetSetting("theme", "default")
	require.NoError(t, err)
	assert.Equal(t, "darker", v)

	all, err := s.AllSettings()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"theme": "darker"}, all)
}

func TestUsersAndLoginLog(t *testing.T) {
	s := openTestStore(t)

	u, err := s.CreateUser("admin", "hash")
	require.NoError(t, err)

	got, err := s.GetUserByName("admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.GetUserByName("ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, s.AppendLoginLog(&models.LoginLog{Username: "admin", IP: "1.2.3.4", Success: true}))
	require.NoError(t, s.AppendLoginLog(&models.LoginLog{Username: "admin", IP: "1.2.3.4", Success: false}))

	logs, total, err := s.ListLoginLogs(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, logs, 2)
}
