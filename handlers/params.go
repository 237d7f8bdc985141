package handlers

import (
	"net/http"
	"strconv"

	"meal-marketplace-api/pkg/resp"

	"github.com/gin-gonic/gin"
)

// pathID parses a numeric path parameter, failing the request with a
// 400 when it is not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		resp.Fail(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

func queryID(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
