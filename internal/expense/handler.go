package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tallyhq/tally/internal/expense/split"
	"github.com/tallyhq/tally/internal/user"
	"github.com/tallyhq/tally/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Get("/group/{groupId}", h.ListByGroup)
	r.Patch("/{id}", h.Update)
	r.Post("/{id}/resplit", h.Resplit)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /expenses
// @Summary      Record an expense
// @Description  Record an expense and split it among the listed participants
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body CreateExpenseRequest true "Expense creation request"
// @Success      201 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.GroupID == 0 || req.PayerID == 0 || req.Description == "" {
		response.BadRequest(w, "group_id, payer_id and description are required")
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to record expense")
		return
	}

	response.JSON(w, http.StatusCreated, toResponseWithShares(result))
}

// GetByID handles GET /expenses/{id}
// @Summary      Get expense by ID
// @Tags         expenses
// @Produce      json
// @Param        id path int true "Expense ID"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return
	}

	result, err := h.service.GetWithShares(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get expense")
		return
	}

	response.JSON(w, http.StatusOK, toResponseWithShares(result))
}

// ListByGroup handles GET /expenses/group/{groupId}
// @Summary      List expenses in a group
// @Tags         expenses
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Param        page query int false "Page number (default 1)"
// @Param        per_page query int false "Page size (default 20, max 100)"
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Router       /expenses/group/{groupId} [get]
func (h *Handler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	expenses, total, err := h.service.ListByGroup(r.Context(), groupID, perPage, (page-1)*perPage)
	if err != nil {
		response.InternalError(w, "Failed to list expenses")
		return
	}

	expenseResponses := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		expenseResponses[i] = e.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	response.JSONWithMeta(w, http.StatusOK, expenseResponses, &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	})
}

// Update handles PATCH /expenses/{id}
// @Summary      Correct an expense
// @Description  Edit description, amount, or category without touching shares
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id path int true "Expense ID"
// @Param        request body UpdateExpenseRequest true "Fields to update"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return
	}

	var req UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Amount != nil && *req.Amount <= 0 {
		response.BadRequest(w, "amount must be positive")
		return
	}

	expense, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update expense")
		return
	}

	response.JSON(w, http.StatusOK, expense.ToResponse())
}

// Resplit handles POST /expenses/{id}/resplit
// @Summary      Re-split an expense
// @Description  Replace an expense's shares with a freshly computed split
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id path int true "Expense ID"
// @Param        request body ResplitExpenseRequest true "New split definition"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id}/resplit [post]
func (h *Handler) Resplit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return
	}

	var req ResplitExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.Resplit(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to re-split expense")
		return
	}

	response.JSON(w, http.StatusOK, toResponseWithShares(result))
}

// Delete handles DELETE /expenses/{id}
// @Summary      Delete an expense
// @Tags         expenses
// @Produce      json
// @Param        id path int true "Expense ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete expense")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Expense deleted"})
}

// writeError maps service errors onto HTTP statuses: unknown references and
// bad split definitions are client errors, everything unexpected is a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrExpenseNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, user.ErrNotInGroup),
		errors.Is(err, split.ErrUnknownType),
		errors.Is(err, split.ErrNoParticipants),
		errors.Is(err, split.ErrNonPositiveAmount),
		errors.Is(err, split.ErrMissingCustomAmount),
		errors.Is(err, split.ErrNonPositiveShare),
		errors.Is(err, split.ErrCustomAmountsMismatch),
		errors.Is(err, split.ErrDuplicateParticipant):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, fallback)
	}
}

func toResponseWithShares(result *ExpenseWithShares) *ExpenseResponse {
	resp := result.Expense.ToResponse()
	resp.Message = result.Message
	if len(result.Shares) > 0 {
		resp.Shares = make([]*ShareResponse, len(result.Shares))
		for i, s := range result.Shares {
			resp.Shares[i] = s.ToResponse()
		}
	}
	return resp
}
