package response

import "github.com/gin-gonic/gin"

// Body is the error envelope every failed request returns.
type Body struct {
	Error string `json:"error"`
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, Body{Error: msg})
}

// AbortError stops the handler chain; for middleware.
func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Body{Error: msg})
}
