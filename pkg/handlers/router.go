package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"noteva/pkg/config"
	"noteva/pkg/services"
)

// NewRouter builds the full route table: public blog pages, auth, and
// the session-guarded admin API.
func NewRouter() *gin.Engine {
	r := gin.Default()

	// Session Setup
	store := cookie.NewStore([]byte(config.SessionSecret))
	r.Use(sessions.Sessions(config.SessionName, store))

	// Static Files & Templates. The active theme may override the
	// builtin template set and serves its assets under /themes.
	r.LoadHTMLGlob(services.TemplatesGlob())
	r.Static(config.UploadsURL, config.UploadsDir)
	r.Static("/static", "./static")
	r.Static("/themes", config.ThemesDir)

	// --- Public Blog ---
	r.GET("/", Home)
	r.GET("/article/:slug", ArticlePage)
	r.GET("/page/:slug", ArticlePage)
	r.GET("/archives", Archives)
	r.GET("/categories", Categories)
	r.GET("/category/:slug", CategoryPage)
	r.GET("/tags", Tags)
	r.GET("/tag/:slug", TagPage)
	r.GET("/api/site", SiteInfo)
	r.GET("/api/nav", GetNav)
	r.POST("/api/comments", PostComment)

	// --- Auth Routes ---
	r.GET("/login", LoginPage)
	r.POST("/login", Login)
	r.GET("/logout", Logout)

	// --- Admin SPA (Authorized) ---
	authorized := r.Group("/admin")
	authorized.Use(AuthRequired)
	{
		authorized.GET("/", func(c *gin.Context) { c.HTML(http.StatusOK, "admin.html", nil) })

		api := authorized.Group("/api")
		{
			api.GET("/user", CheckUser)

			api.GET("/articles", ListArticles)
			api.GET("/articles/:id", GetArticle)
			api.POST("/articles", CreateArticle)
			api.PUT("/articles/:id", UpdateArticle)
			api.DELETE("/articles/:id", DeleteArticle)
			api.GET("/articles/:id/export", ExportArticle)
			api.POST("/articles/import", ImportArticle)

			api.GET("/categories", ListCategories)
			api.POST("/categories", CreateCategory)
			api.PUT("/categories/:id", UpdateCategory)
			api.DELETE("/categories/:id", DeleteCategory)

			api.GET("/tags", ListTags)
			api.DELETE("/tags/:id", DeleteTag)

			api.GET("/comments", ListComments)
			api.POST("/comments/:id/approve", ApproveComment)
			api.DELETE("/comments/:id", DeleteComment)

			api.GET("/nav", ListNavItems)
			api.POST("/nav", SaveNavItem)
			api.DELETE("/nav/:id", DeleteNavItem)

			api.GET("/plugins", ListPlugins)
			api.GET("/plugins/:id/settings", GetPluginSettings)
			api.PUT("/plugins/:id/settings", SavePluginSettings)
			api.POST("/plugins/:id/enabled", SetPluginEnabled)
			api.GET("/plugins/:id/schema", GetPluginSchema)

			api.GET("/themes", ListThemes)
			api.POST("/themes/activate", ActivateTheme)

			api.GET("/settings", GetSettings)
			api.PUT("/settings", SaveSettings)

			api.GET("/security/logins", ListLoginLogs)

			api.GET("/media", ListMedia)
			api.POST("/media", UploadMedia)
			api.DELETE("/media", DeleteMedia)
		}
	}

	return r
}
