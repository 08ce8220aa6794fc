package handlers

import (
	"github.com/gin-gonic/gin"
)

func getStringFromCtx(c *gin.Context, key string) (string, bool) {
	v, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func getUserAndRole(c *gin.Context) (userID, role string) {
	if v, ok := getStringFromCtx(c, "user_id"); ok {
		userID = v
	}
	if v, ok := getStringFromCtx(c, "role"); ok {
		role = v
	}
	return
}
