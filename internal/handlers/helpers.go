package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/httperr"
)

const msgResourceNotFound = "Recurso no encontrado"

// pathID reads the :id segment. Non numeric ids answer 404, the same as
// an unknown numeric id.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, msgResourceNotFound)
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, "Datos inválidos")
		return false
	}
	return true
}
