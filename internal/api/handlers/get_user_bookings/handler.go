package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/users"
)

const (
	msgMissingUser  = "отсутствует личность пользователя"
	msgUserNotFound = "пользователь не найден"
	msgForbidden    = "доступ запрещен"
)

type Handler struct {
	engine    ParkingEngine
	directory UserDirectory
	logger    Logger
}

func NewHandler(engine ParkingEngine, directory UserDirectory, logger Logger) *Handler {
	return &Handler{
		engine:    engine,
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /api/v1/users/{username}/bookings
// История берется из списка пользователя (им владеет коллаборатор),
// записи бронирований подтягиваются из журнала по id.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{username}/bookings - Missing actor identity")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if actor.Username != username && !actor.Role.IsStaff() {
		h.logger.Warn("GET /users/{username}/bookings - Access denied: target=%s, actor=%s",
			username, actor.Username)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	ids, err := h.directory.BookingIDs(r.Context(), username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			h.logger.Warn("GET /users/{username}/bookings - User %s not found", username)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /users/{username}/bookings - Failed to get history for %s: %v", username, err)
		handlers.RespondInternalError(w)
		return
	}

	bookings := h.engine.GetBookings(r.Context(), ids)

	h.logger.Info("GET /users/{username}/bookings - %d bookings returned for user=%s",
		len(bookings), username)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBookings(bookings))
}
