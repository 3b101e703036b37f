// File: /utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// MessageResponse is the single-field body used for every error response.
type MessageResponse struct {
	Msg string `json:"msg"`
}

func SendError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, MessageResponse{Msg: msg})
}

func SendMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageResponse{Msg: msg})
}
