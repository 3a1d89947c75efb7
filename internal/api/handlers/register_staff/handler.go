package register_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUsername    = "некорректное имя пользователя"
	msgInvalidRole        = "некорректная роль: ожидается ATTENDANT или ADMIN"
	msgUserExists         = "имя пользователя уже занято"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/users
// Создание учетных записей персонала. Маршрут закрыт ролью ADMIN.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	role := domain.Role(req.Role)
	if role != domain.RoleAttendant && role != domain.RoleAdmin {
		h.logger.Warn("POST /admin/users - Invalid staff role %q", req.Role)
		handlers.RespondBadRequest(w, msgInvalidRole)
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidUsername):
			h.logger.Warn("POST /admin/users - Invalid username %q", req.Username)
			handlers.RespondBadRequest(w, msgInvalidUsername)

		case errors.Is(err, users.ErrUserExists):
			h.logger.Warn("POST /admin/users - Username %s already taken", req.Username)
			handlers.RespondError(w, http.StatusConflict, msgUserExists)

		default:
			h.logger.Error("POST /admin/users - Failed to register staff %s: %v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/users - Staff registered: id=%d, username=%s, role=%s",
		user.ID, user.Username, user.Role)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainUser(user))
}
