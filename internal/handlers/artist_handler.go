package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/dto"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/httpresp"
	ucArtist "github.com/BruksfildServices01/tattoo-scheduler/internal/usecase/artist"
)

type ArtistHandler struct {
	listUC   *ucArtist.ListArtists
	createUC *ucArtist.CreateArtist
	updateUC *ucArtist.UpdateArtist
	deleteUC *ucArtist.DeleteArtist
	log      zerolog.Logger
}

func NewArtistHandler(
	listUC *ucArtist.ListArtists,
	createUC *ucArtist.CreateArtist,
	updateUC *ucArtist.UpdateArtist,
	deleteUC *ucArtist.DeleteArtist,
	log zerolog.Logger,
) *ArtistHandler {
	return &ArtistHandler{
		listUC:   listUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		log:      log,
	}
}

func (h *ArtistHandler) List(c *gin.Context) {
	artists, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	out := make([]dto.ArtistDTO, 0, len(artists))
	for i := range artists {
		out = append(out, dto.NewArtistDTO(&artists[i]))
	}

	httpresp.OK(c, out)
}

func (h *ArtistHandler) Create(c *gin.Context) {
	var req ucArtist.CreateArtistInput
	if !bindJSON(c, &req) {
		return
	}

	artist, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{
		"mensaje":  "Tatuador creado",
		"tatuador": dto.NewArtistDTO(artist),
	})
}

func (h *ArtistHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ucArtist.UpdateArtistInput
	if !bindJSON(c, &req) {
		return
	}

	artist, err := h.updateUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"mensaje":  "Tatuador actualizado",
		"tatuador": dto.NewArtistDTO(artist),
	})
}

func (h *ArtistHandler) Delete(c *gin.Context) {
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
		"mensaje": "Tatuador eliminado",
		"id":      deleted,
	})
}
