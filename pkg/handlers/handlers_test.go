package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteva/pkg/models"
	"noteva/pkg/plugin"
	"noteva/pkg/plugin/musicplayer"
	"noteva/pkg/services"
	"noteva/pkg/store"
)

func setupTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(filepath.Join(t.TempDir(), "noteva.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	services.Init(st)

	host := plugin.NewHost(services.SiteAdapter{})
	mgr := plugin.NewManager(host)
	require.NoError(t, mgr.Add(musicplayer.New()))
	mgr.Boot(nil)
	Init(mgr, host)

	r := gin.New()
	api := r.Group("/admin/api")
	api.GET("/articles", ListArticles)
	api.GET("/articles/:id", GetArticle)
	api.POST("/articles", CreateArticle)
	api.PUT("/articles/:id", UpdateArticle)
	api.DELETE("/articles/:id", DeleteArticle)
	api.GET("/plugins", ListPlugins)
	api.GET("/plugins/:id/settings", GetPluginSettings)
	api.PUT("/plugins/:id/settings", SavePluginSettings)
	api.POST("/plugins/:id/enabled", SetPluginEnabled)
	api.GET("/plugins/:id/schema", GetPluginSchema)
	api.GET("/security/logins", ListLoginLogs)
	r.POST("/api/comments", PostComment)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestArticleLifecycleOverAPI(t *testing.T) {
	r := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/admin/api/articles", models.Article{Title: "Via API", Body: "hi"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		Data models.Article `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	w = doJSON(t, r, http.MethodGet, "/admin/api/articles?page=1&per_page=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list models.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 1, list.TotalPages)
	assert.Equal(t, 5, list.PerPage)

	created.Data.Status = models.StatusPublished
	w = doJSON(t, r, http.MethodPut, "/admin/api/articles/"+created.Data.ID, created.Data)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, "/admin/api/articles/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/api/articles/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateArticleRejectsBadJSON(t *testing.T) {
	r := setupTestAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/admin/api/articles", bytes.NewBufferString("{nope"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPluginEndpoints(t *testing.T) {
	r := setupTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/admin/api/plugins", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), musicplayer.PluginID)

	// Unknown plugin ID returns empty settings, not an error.
	w = doJSON(t, r, http.MethodGet, "/admin/api/plugins/no-such/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)

	// Saving settings to an unknown plugin is rejected.
	w = doJSON(t, r, http.MethodPut, "/admin/api/plugins/no-such/settings", map[string]any{"x": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	settings := map[string]any{"volume": 40, "loop": true}
	w = doJSON(t, r, http.MethodPut, "/admin/api/plugins/"+musicplayer.PluginID+"/settings", settings)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/admin/api/plugins/"+musicplayer.PluginID+"/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 40.0, resp.Data["volume"])

	// Live snapshot was refreshed alongside the stored row.
	live := pluginHost.Settings().GetSettings(musicplayer.PluginID)
	assert.Equal(t, 40.0, live.Float("volume", 0))

	w = doJSON(t, r, http.MethodGet, "/admin/api/plugins/"+musicplayer.PluginID+"/schema", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Playlist")
}

func TestEnablePluginAfterBoot(t *testing.T) {
	r := setupTestAPI(t)

	settings := map[string]any{"songs": `[{"url":"late.mp3"}]`}
	w := doJSON(t, r, http.MethodPut, "/admin/api/plugins/"+musicplayer.PluginID+"/settings", settings)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.False(t, pluginHost.Slots().Claimed(musicplayer.Slot))

	w = doJSON(t, r, http.MethodPost, "/admin/api/plugins/"+musicplayer.PluginID+"/enabled",
		map[string]any{"enabled": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, pluginHost.Slots().Claimed(musicplayer.Slot),
		"enabling after boot claims the slot without a restart")
}

func TestPostCommentValidatesArticle(t *testing.T) {
	r := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/comments", map[string]any{
		"article_id": "missing", "author": "x", "body": "y",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	created := doJSON(t, r, http.MethodPost, "/admin/api/articles", models.Article{Title: "Commentable"})
	var resp struct {
		Data models.Article `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))

	w = doJSON(t, r, http.MethodPost, "/api/comments", map[string]any{
		"article_id": resp.Data.ID, "author": "reader", "body": "first!",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), models.CommentPending)
}

func TestLoginLogEnvelope(t *testing.T) {
	r := setupTestAPI(t)
	require.NoError(t, services.Store().AppendLoginLog(&models.LoginLog{Username: "admin", Success: false}))

	w := doJSON(t, r, http.MethodGet, "/admin/api/security/logins", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list models.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.TotalPages)
}
