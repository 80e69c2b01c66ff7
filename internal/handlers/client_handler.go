package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/dto"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/httpresp"
	ucClient "github.com/BruksfildServices01/tattoo-scheduler/internal/usecase/client"
)

type ClientHandler struct {
	listUC   *ucClient.ListClients
	createUC *ucClient.CreateClient
	updateUC *ucClient.UpdateClient
	deleteUC *ucClient.DeleteClient
	log      zerolog.Logger
}

func NewClientHandler(
	listUC *ucClient.ListClients,
	createUC *ucClient.CreateClient,
	updateUC *ucClient.UpdateClient,
	deleteUC *ucClient.DeleteClient,
	log zerolog.Logger,
) *ClientHandler {
	return &ClientHandler{
		listUC:   listUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		log:      log,
	}
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	out := make([]dto.ClientDTO, 0, len(clients))
	for i := range clients {
		out = append(out, dto.NewClientDTO(&clients[i]))
	}

	httpresp.OK(c, out)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ucClient.CreateClientInput
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{
		"mensaje": "Cliente creado",
		"cliente": dto.NewClientDTO(client),
	})
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ucClient.UpdateClientInput
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.updateUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"mensaje": "Cliente actualizado",
		"cliente": dto.NewClientDTO(client),
	})
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.deleteUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"mensaje": "Cliente eliminado",
		"id":      deleted,
	})
}

func (h *ClientHandler) Ping(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "clientes ok"})
}
