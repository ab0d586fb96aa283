package controllers

import (
	"net/http"

	"wealthmindset/internal/delivery/http/helpers"
	"wealthmindset/internal/domain"
)

type EventController struct {
	Catalog domain.EventCatalog
}

func NewEventController(catalog domain.EventCatalog) *EventController {
	return &EventController{Catalog: catalog}
}

// List godoc
// @Summary List promoted events
// @Description Returns the static event catalog used by the landing page's event listings. Events are defined at deploy time and never change at runtime.
// @Tags public
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.Event}
// @Router /api/events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Catalog.List())
}
