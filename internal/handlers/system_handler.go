package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/httpresp"
)

// SystemHandler serves the operational endpoints.
type SystemHandler struct {
	routes  func() gin.RoutesInfo
	migrate func() error
	log     zerolog.Logger
}

func NewSystemHandler(
	routes func() gin.RoutesInfo,
	migrate func() error,
	log zerolog.Logger,
) *SystemHandler {
	return &SystemHandler{
		routes:  routes,
		migrate: migrate,
		log:     log,
	}
}

func (h *SystemHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, "✅ API del estudio de tatuajes funcionando")
}

func (h *SystemHandler) Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}

// Debug lists the registered routes as "METHOD /path".
func (h *SystemHandler) Debug(c *gin.Context) {
	routes := h.routes()

	rules := make([]string, 0, len(routes))
	for _, r := range routes {
		rules = append(rules, r.Method+" "+r.Path)
	}

	httpresp.OK(c, gin.H{"rules": rules})
}

func (h *SystemHandler) InitDB(c *gin.Context) {
	if err := h.migrate(); err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, gin.H{"status": "Tablas creadas"})
}
