package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"noteva/pkg/models"
	"noteva/pkg/services"
)

func ListCategories(c *gin.Context) {
	cats, err := services.Store().ListCategories()
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, cats)
}

func CreateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.BindJSON(&cat); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := services.Store().CreateCategory(&cat); err != nil {
		failErr(c, err)
		return
	}
	ok(c, cat)
}

func UpdateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.BindJSON(&cat); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	cat.ID = c.Param("id")
	if err := services.Store().UpdateCategory(&cat); err != nil {
		failErr(c, err)
		return
	}
	ok(c, cat)
}

func DeleteCategory(c *gin.Context) {
	if err := services.Store().DeleteCategory(c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"status": "deleted"})
}

func ListTags(c *gin.Context) {
	tags, err := services.Store().ListTags()
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, tags)
}

func DeleteTag(c *gin.Context) {
	if err := services.Store().DeleteTag(c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"status": "deleted"})
}
