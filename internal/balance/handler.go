package balance

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tallyhq/tally/pkg/middleware"
	"github.com/tallyhq/tally/pkg/response"
)

// Handler handles HTTP requests for balance queries
type Handler struct {
	service *Service
}

// NewHandler creates a new balance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for balance endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/group/{groupId}", h.GroupBalances)
	r.Get("/group/{groupId}/settle-options", h.SettleOptions)

	return r
}

// GroupBalances handles GET /balances/group/{groupId}
// @Summary      Get group balances
// @Description  Net debt edges for a group with a human-readable summary
// @Tags         balances
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=GroupBalancesResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /balances/group/{groupId} [get]
func (h *Handler) GroupBalances(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	balances, err := h.service.GroupBalances(r.Context(), groupID)
	if err != nil {
		response.InternalError(w, "Failed to compute balances")
		return
	}

	response.JSON(w, http.StatusOK, balances)
}

// SettleOptions handles GET /balances/group/{groupId}/settle-options
// @Summary      Get settle options for the acting user
// @Description  Lists who the acting user (X-Actor-ID header) still owes
// @Tags         balances
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Param        X-Actor-ID header int true "Acting user ID"
// @Success      200 {object} response.APIResponse{data=SettleOptionsResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /balances/group/{groupId}/settle-options [get]
func (h *Handler) SettleOptions(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	actorID, ok := middleware.GetActorID(r.Context())
	if !ok {
		response.BadRequest(w, "X-Actor-ID header is required")
		return
	}

	options, err := h.service.SettleOptions(r.Context(), groupID, actorID)
	if err != nil {
		response.InternalError(w, "Failed to compute settle options")
		return
	}

	response.JSON(w, http.StatusOK, options)
}
