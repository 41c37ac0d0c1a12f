package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"noteva/pkg/models"
	"noteva/pkg/services"
)

func ListComments(c *gin.Context) {
	page, perPage := pageParams(c)
	comments, total, err := services.Store().ListComments(
		c.Query("article_id"), c.Query("status"), page, perPage,
	)
	if err != nil {
		failErr(c, err)
		return
	}
	okList(c, comments, page, total, perPage)
}

func ApproveComment(c *gin.Context) {
	if err := services.Store().SetCommentStatus(c.Param("id"), models.CommentApproved); err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"status": "approved"})
}

func DeleteComment(c *gin.Context) {
	if err := services.Store().DeleteComment(c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"status": "deleted"})
}

// PostComment is the public endpoint readers use; comments land pending.
func PostComment(c *gin.Context) {
	var req struct {
		ArticleID string `json:"article_id" binding:"required"`
		Author    string `json:"author" binding:"required"`
		Email     string `json:"email"`
		Body      string `json:"body" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	if _, err := services.Store().GetArticle(req.ArticleID); err != nil {
		failErr(c, err)
		return
	}
	comment := &models.Comment{
		ArticleID: req.ArticleID,
		Author:    req.Author,
		Email:     req.Email,
		Body:      req.Body,
	}
	if err := services.Store().CreateComment(comment); err != nil {
		failErr(c, err)
		return
	}
	ok(c, comment)
}
