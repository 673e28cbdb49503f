package handlers

import (
	"errors"
	"leaguecatalog/pkg/apperrors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// writeError answers with the status of the error kind and its public message.
// Foreign errors never leak their text.
func writeError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": http.StatusText(http.StatusInternalServerError)})
		return
	}

	c.JSON(appErr.Status(), gin.H{"error": appErr.Message})
}
