package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"noteva/pkg/models"
	"noteva/pkg/services"
	"noteva/pkg/store"
)

// renderSlot asks the slot registry for a fragment. A failing or absent
// renderer degrades to an empty fragment.
func renderSlot(name string) template.HTML {
	var buf bytes.Buffer
	if err := pluginHost.Slots().Render(name, &buf); err != nil {
		log.Printf("public: rendering slot %s: %v", name, err)
		return ""
	}
	return template.HTML(buf.String())
}

// basePage assembles the data every public template needs.
func basePage() gin.H {
	site := services.SiteAdapter{}
	return gin.H{
		"Site":        site.SiteInfo(),
		"Nav":         site.Nav(),
		"FooterSlot":  renderSlot("footer"),
		"SidebarSlot": renderSlot("sidebar"),
	}
}

// Home renders the paginated published article list.
func Home(c *gin.Context) {
	page, perPage := pageParams(c)
	articles, total, err := services.Store().ListArticles(store.ArticleFilter{
		Status:  models.StatusPublished,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load articles")
		return
	}
	data := basePage()
	data["Articles"] = articles
	data["Page"] = page
	data["TotalPages"] = models.TotalPages(total, perPage)
	c.HTML(http.StatusOK, "home.html", data)
}

// ArticlePage renders one published article with its approved comments.
func ArticlePage(c *gin.Context) {
	article, err := services.Store().GetArticleBySlug(c.Param("slug"))
	if err != nil || article.Status != models.StatusPublished {
		c.String(http.StatusNotFound, "not found")
		return
	}
	comments, _, err := services.Store().ListComments(article.ID, models.CommentApproved, 0, 0)
	if err != nil {
		comments = nil
	}
	data := basePage()
	data["Article"] = article
	data["Comments"] = comments
	c.HTML(http.StatusOK, "article.html", data)
}

// Archives renders the full published list, newest first.
func Archives(c *gin.Context) {
	articles, err := services.PublishedArticles()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load archives")
		return
	}
	data := basePage()
	data["Articles"] = articles
	c.HTML(http.StatusOK, "archives.html", data)
}

// Categories renders the category index.
func Categories(c *gin.Context) {
	cats, err := services.Store().ListCategories()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load categories")
		return
	}
	data := basePage()
	data["Categories"] = cats
	c.HTML(http.StatusOK, "categories.html", data)
}

// Tags renders the tag index.
func Tags(c *gin.Context) {
	tags, err := services.Store().ListTags()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load tags")
		return
	}
	data := basePage()
	data["Tags"] = tags
	c.HTML(http.StatusOK, "tags.html", data)
}

// CategoryPage lists published articles in one category.
func CategoryPage(c *gin.Context) {
	cat, err := services.Store().GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}
	page, perPage := pageParams(c)
	articles, total, err := services.Store().ListArticles(store.ArticleFilter{
		Status:     models.StatusPublished,
		CategoryID: cat.ID,
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load articles")
		return
	}
	data := basePage()
	data["Category"] = cat
	data["Articles"] = articles
	data["Page"] = page
	data["TotalPages"] = models.TotalPages(total, perPage)
	c.HTML(http.StatusOK, "category.html", data)
}

// TagPage lists published articles carrying one tag.
func TagPage(c *gin.Context) {
	page, perPage := pageParams(c)
	articles, total, err := services.Store().ListArticles(store.ArticleFilter{
		Status:  models.StatusPublished,
		TagSlug: c.Param("slug"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load articles")
		return
	}
	data := basePage()
	data["Tag"] = c.Param("slug")
	data["Articles"] = articles
	data["Page"] = page
	data["TotalPages"] = models.TotalPages(total, perPage)
	c.HTML(http.StatusOK, "tag.html", data)
}

// SiteInfo is the public JSON endpoint plugins and themes can call.
func SiteInfo(c *gin.Context) {
	ok(c, services.SiteAdapter{}.SiteInfo())
}
