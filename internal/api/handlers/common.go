package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nimblelabs/inquiry-api/internal/utils"
)

// writeError maps an error to the endpoint's plain-text contract: a missing
// required field is the only client error; everything else is the generic
// server error with no detail leaked.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	if utils.HTTPStatus(err) == http.StatusBadRequest {
		c.String(http.StatusBadRequest, "Missing required fields")
		return
	}
	c.String(http.StatusInternalServerError, "Server error")
}
