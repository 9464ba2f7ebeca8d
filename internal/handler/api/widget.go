package api

import (
	"net/http"

	reqdto "booking-widget/internal/handler/dto/request"
	resdto "booking-widget/internal/handler/dto/response"
	"booking-widget/internal/handler/httperr"
	"booking-widget/internal/handler/middleware"
	"booking-widget/internal/pkg/errs"
	"booking-widget/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	msgDatesRequired        = "Please select check-in and check-out."
	msgNoRoomSelected       = "Please select a room first."
	msgGuestDetailsRequired = "Please enter guest name and email."
	msgLoadPlansFailed      = "Error loading plans"
)

type WidgetHandler struct {
	widgetUseCase usecase.WidgetUseCase
}

func NewWidgetHandler(widgetUseCase usecase.WidgetUseCase) *WidgetHandler {
	return &WidgetHandler{
		widgetUseCase: widgetUseCase,
	}
}

// @Summary List rate plans
// @Description Rate plan options for the search form. The first option is always "All".
// @Tags widget
// @Produce json
// @Success 200 {object} resdto.RatePlansResponse
// @Failure 502 {object} httperr.Response
// @Router /api/widget/rate-plans [get]
func (h *WidgetHandler) RatePlans(c *gin.Context) {
	options, err := h.widgetUseCase.LoadRatePlans(c.Request.Context())
	if err != nil {
		httperr.Abort(c, http.StatusBadGateway, err, msgLoadPlansFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatePlanOptions(options))
}

// @Summary Get widget state
// @Description Current view of the caller's widget session
// @Tags widget
// @Produce json
// @Success 200 {object} resdto.WidgetViewResponse
// @Router /api/widget [get]
func (h *WidgetHandler) Get(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, usecase.ErrSessionNotFound, "Internal server error")
		return
	}
	view, err := h.widgetUseCase.View(c.Request.Context(), sessionID)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWidgetView(view))
}

// @Summary Search availability
// @Description Search rooms for the given stay. Backend failures are reported in the returned view.
// @Tags widget
// @Accept json
// @Produce json
// @Param request body reqdto.SearchRequest true "Stay query"
// @Success 200 {object} resdto.WidgetViewResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/widget/search [post]
func (h *WidgetHandler) Search(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, usecase.ErrSessionNotFound, "Internal server error")
		return
	}
	var req reqdto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	view, err := h.widgetUseCase.Search(c.Request.Context(), sessionID, req.ToDomain())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWidgetView(view))
}

// @Summary Select room
// @Description Select one of the displayed results by index
// @Tags widget
// @Accept json
// @Produce json
// @Param request body reqdto.SelectRequest true "Result index"
// @Success 200 {object} resdto.WidgetViewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/widget/select [post]
func (h *WidgetHandler) Select(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, usecase.ErrSessionNotFound, "Internal server error")
		return
	}
	var req reqdto.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	view, err := h.widgetUseCase.Select(c.Request.Context(), sessionID, *req.Index)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWidgetView(view))
}

// @Summary Cancel selection
// @Description Close the booking panel and return to the results
// @Tags widget
// @Produce json
// @Success 200 {object} resdto.WidgetViewResponse
// @Failure 409 {object} httperr.Response
// @Router /api/widget/cancel [post]
func (h *WidgetHandler) Cancel(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, usecase.ErrSessionNotFound, "Internal server error")
		return
	}
	view, err := h.widgetUseCase.CancelSelection(c.Request.Context(), sessionID)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWidgetView(view))
}

// @Summary Confirm booking
// @Description Submit the selected room with guest details. The verdict is reported as the view's outcome.
// @Tags widget
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmRequest true "Guest details"
// @Success 200 {object} resdto.WidgetViewResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/widget/confirm [post]
func (h *WidgetHandler) Confirm(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, usecase.ErrSessionNotFound, "Internal server error")
		return
	}
	var req reqdto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	view, err := h.widgetUseCase.Confirm(c.Request.Context(), sessionID, req.ToDomain())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWidgetView(view))
}

// @Summary Dismiss outcome
// @Description Close the booking outcome modal
// @Tags widget
// @Produce json
// @Success 200 {object} resdto.WidgetViewResponse
// @Failure 409 {object} httperr.Response
// @Router /api/widget/dismiss [post]
func (h *WidgetHandler) Dismiss(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, usecase.ErrSessionNotFound, "Internal server error")
		return
	}
	view, err := h.widgetUseCase.DismissOutcome(c.Request.Context(), sessionID)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWidgetView(view))
}

func (h *WidgetHandler) abort(c *gin.Context, err error) {
	switch {
	case errs.Is(err, usecase.ErrDatesRequired):
		httperr.Abort(c, http.StatusBadRequest, err, msgDatesRequired)
	case errs.Is(err, usecase.ErrNoRoomSelected):
		httperr.Abort(c, http.StatusBadRequest, err, msgNoRoomSelected)
	case errs.Is(err, usecase.ErrGuestDetailsRequired):
		httperr.Abort(c, http.StatusBadRequest, err, msgGuestDetailsRequired)
	case errs.Is(err, usecase.ErrOfferNotFound):
		httperr.Abort(c, http.StatusNotFound, err, "Room not found")
	case errs.Is(err, usecase.ErrSessionNotFound):
		httperr.Abort(c, http.StatusNotFound, err, "Session not found")
	case errs.Is(err, usecase.ErrInvalidTransition):
		httperr.Abort(c, http.StatusConflict, err, "Action not allowed right now")
	default:
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
