package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"noteva/pkg/models"
	"noteva/pkg/services"
	"noteva/pkg/store"
)

func ListArticles(c *gin.Context) {
	page, perPage := pageParams(c)
	filter := store.ArticleFilter{
		Status:     c.Query("status"),
		CategoryID: c.Query("category_id"),
		TagSlug:    c.Query("tag"),
		Page:       page,
		PerPage:    perPage,
	}
	articles, total, err := services.Store().ListArticles(filter)
	if err != nil {
		failErr(c, err)
		return
	}
	okList(c, articles, page, total, perPage)
}

func GetArticle(c *gin.Context) {
	article, err := services.Store().GetArticle(c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, article)
}

func CreateArticle(c *gin.Context) {
	var art models.Article
	if err := c.BindJSON(&art); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := services.Store().CreateArticle(&art); err != nil {
		failErr(c, err)
		return
	}
	services.InvalidateArticleCache()
	ok(c, art)
}

func UpdateArticle(c *gin.Context) {
	var art models.Article
	if err := c.BindJSON(&art); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	art.ID = c.Param("id")
	if err := services.Store().UpdateArticle(&art); err != nil {
		failErr(c, err)
		return
	}
	services.InvalidateArticleCache()
	ok(c, art)
}

func DeleteArticle(c *gin.Context) {
	if err := services.Store().DeleteArticle(c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	services.InvalidateArticleCache()
	ok(c, gin.H{"status": "deleted"})
}

// ExportArticle serves an article as a markdown download.
func ExportArticle(c *gin.Context) {
	article, err := services.Store().GetArticle(c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	content, err := services.ExportArticle(article)
	if err != nil {
		fail(c, http.StatusInternalServerError, "export failed")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+article.Slug+`.md"`)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", content)
}

// ImportArticle accepts an uploaded markdown file and creates a draft.
func ImportArticle(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "no file uploaded")
		return
	}
	src, err := file.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "cannot read upload")
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		fail(c, http.StatusBadRequest, "cannot read upload")
		return
	}

	article, err := services.ImportArticle(file.Filename, content)
	if err != nil {
		fail(c, http.StatusBadRequest, "cannot parse file")
		return
	}
	if err := services.Store().CreateArticle(article); err != nil {
		failErr(c, err)
		return
	}
	services.InvalidateArticleCache()
	ok(c, article)
}
