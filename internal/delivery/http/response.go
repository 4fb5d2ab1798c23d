package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.WithFields(logrus.Fields{
		"status": statusCode,
		"path":   c.Request.URL.Path,
	}).Error(message)
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}
