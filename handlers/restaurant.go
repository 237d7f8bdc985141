package handlers

import (
	"meal-marketplace-api/pkg/resp"
	"meal-marketplace-api/repository"
	"meal-marketplace-api/services"
	"meal-marketplace-api/statemachine"

	"github.com/gin-gonic/gin"
)

// RestaurantHandler serves the public browse surface.
type RestaurantHandler struct {
	browse *services.RestaurantService
}

func NewRestaurantHandler(browse *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{browse: browse}
}

// List returns providers filtered by cuisine/search/open (public)
func (h *RestaurantHandler) List(c *gin.Context) {
	providers, err := h.browse.List(repository.ProviderFilter{
		Cuisine:  c.Query("cuisine"),
		Search:   c.Query("search"),
		OpenOnly: c.Query("open") == "true",
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "providers", gin.H{"count": len(providers), "providers": providers})
}

// Storefront returns a provider with its available menu (public)
func (h *RestaurantHandler) Storefront(c *gin.Context) {
	profile, err := h.browse.Storefront(c.Param("slug"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "provider", profile)
}

// StateMachineInfo returns the order lifecycle transition table (public)
func StateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	resp.OK(c, "order lifecycle", gin.H{
		"transitions":     info,
		"terminal_states": []string{"DELIVERED", "CANCELLED"},
	})
}
