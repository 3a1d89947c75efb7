package save_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type SaveResponse struct {
	Saved bool `json:"saved"`
}

type Handler struct {
	engine ParkingEngine
	logger Logger
}

func NewHandler(engine ParkingEngine, logger Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger,
	}
}

// Handle POST /api/v1/admin/bookings/save
// Маршрут закрыт ролью ADMIN.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.SaveBookings(r.Context()); err != nil {
		h.logger.Error("POST /admin/bookings/save - Failed to save bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/bookings/save - Bookings saved to file")
	handlers.RespondJSON(w, http.StatusOK, SaveResponse{Saved: true})
}
