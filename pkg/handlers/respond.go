package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"noteva/pkg/config"
	"noteva/pkg/models"
	"noteva/pkg/plugin"
)

var (
	pluginManager *plugin.Manager
	pluginHost    *plugin.Host
)

// Init wires the plugin host into the handlers package. Must run before
// the router is built.
func Init(mgr *plugin.Manager, host *plugin.Host) {
	pluginManager = mgr
	pluginHost = host
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, models.Response{Data: data})
}

func okList(c *gin.Context, data any, page, total, perPage int) {
	c.JSON(http.StatusOK, models.ListResponse{
		Data:       data,
		Page:       page,
		TotalPages: models.TotalPages(total, perPage),
		PerPage:    perPage,
	})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, models.Response{Error: msg})
}

// failErr maps store sentinels onto HTTP statuses.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrInvalidID):
		fail(c, http.StatusBadRequest, "invalid id")
	case errors.Is(err, models.ErrDuplicateSlug):
		fail(c, http.StatusConflict, "slug already in use")
	default:
		fail(c, http.StatusInternalServerError, err.Error())
	}
}

// pageParams reads ?page and ?per_page with sane bounds.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(config.PerPage)))
	if perPage < 1 || perPage > 100 {
		perPage = config.PerPage
	}
	return page, perPage
}
