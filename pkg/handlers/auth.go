package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"noteva/pkg/models"
	"noteva/pkg/services"
)

func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get("user")
	if user == nil {
		if strings.HasPrefix(c.Request.URL.Path, "/admin/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{Error: "unauthorized"})
		} else {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		}
		return
	}
	c.Next()
}

func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Login checks credentials and records the attempt in the login log
// whether it succeeds or not.
func Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON")
		return
	}

	entry := models.LoginLog{
		Username:  req.Username,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	user, err := services.Store().GetUserByName(req.Username)
	authed := err == nil &&
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) == nil

	entry.Success = authed
	if logErr := services.Store().AppendLoginLog(&entry); logErr != nil {
		log.Printf("auth: writing login log: %v", logErr)
	}

	if !authed {
		fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	session := sessions.Default(c)
	session.Set("user", user.Username)
	session.Save()
	ok(c, gin.H{"username": user.Username})
}

func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}

// CheckUser reports the logged-in user for the admin SPA boot.
func CheckUser(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get("user")
	if user == nil {
		fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	ok(c, gin.H{"username": user})
}
