package load_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type LoadResponse struct {
	Loaded int `json:"loaded"`
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

// Handle POST /api/v1/admin/bookings/load
// Маршрут закрыт ролью ADMIN.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	loaded, err := h.engine.LoadBookings(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/bookings/load - Failed to load bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/bookings/load - Bookings loaded from file: count=%d", loaded)
	handlers.RespondJSON(w, http.StatusOK, LoadResponse{Loaded: loaded})
}
