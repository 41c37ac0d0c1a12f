package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"noteva/pkg/services"
)

func ListMedia(c *gin.Context) {
	files, err := services.ListMediaFiles()
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to list media: "+err.Error())
		return
	}
	ok(c, files)
}

func UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "no file uploaded")
		return
	}

	info, err := services.SaveMediaFile(file)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to save file: "+err.Error())
		return
	}
	ok(c, info)
}

func DeleteMedia(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := services.DeleteMediaFile(req.Name); err != nil {
		fail(c, http.StatusInternalServerError, "failed to delete: "+err.Error())
		return
	}
	ok(c, gin.H{"status": "deleted"})
}
