package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"noteva/pkg/models"
	"noteva/pkg/services"
)

// GetNav returns the resolved navigation tree.
func GetNav(c *gin.Context) {
	nav, err := services.GetNav()
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, nav)
}

// ListNavItems returns the flat item list for the admin editor.
func ListNavItems(c *gin.Context) {
	items, err := services.Store().ListNavItems()
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, items)
}

func SaveNavItem(c *gin.Context) {
	var item models.NavItem
	if err := c.BindJSON(&item); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	switch item.NavType {
	case models.NavBuiltin, models.NavPage, models.NavExternal, models.NavCustom:
	default:
		fail(c, http.StatusBadRequest, "unknown nav_type")
		return
	}
	if err := services.Store().SaveNavItem(&item); err != nil {
		failErr(c, err)
		return
	}
	ok(c, item)
}

func DeleteNavItem(c *gin.Context) {
	if err := services.Store().DeleteNavItem(c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"status": "deleted"})
}
