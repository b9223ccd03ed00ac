package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
	"github.com/BruksfildServices01/chair-scheduler/internal/httpresp"
	ucStylist "github.com/BruksfildServices01/chair-scheduler/internal/usecase/stylist"
)

type StylistHandler struct {
	create *ucStylist.CreateStylist
	list   *ucStylist.ListStylists
	delete *ucStylist.DeleteStylist
}

func NewStylistHandler(
	create *ucStylist.CreateStylist,
	list *ucStylist.ListStylists,
	del *ucStylist.DeleteStylist,
) *StylistHandler {
	return &StylistHandler{
		create: create,
		list:   list,
		delete: del,
	}
}

type CreateStylistRequest struct {
	Name string `json:"name"`
}

func (h *StylistHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *StylistHandler) Create(c *gin.Context) {
	var req CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	s, err := h.create.Execute(c.Request.Context(), req.Name)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, s)
}

// Delete remove o profissional e, em cascata, seus agendamentos.
func (h *StylistHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"), "id")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}
