package register_user

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

// Handle POST /api/v1/auth/register
// Публичная регистрация всегда создает пользователя с ролью USER;
// учетные записи персонала создает администратор отдельным запросом.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password, domain.RoleUser)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidUsername):
			h.logger.Warn("POST /auth/register - Invalid username %q", req.Username)
			handlers.RespondBadRequest(w, msgInvalidUsername)

		case errors.Is(err, users.ErrUserExists):
			h.logger.Warn("POST /auth/register - Username %s already taken", req.Username)
			handlers.RespondError(w, http.StatusConflict, msgUserExists)

		default:
			h.logger.Error("POST /auth/register - Failed to register user %s: %v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: id=%d, username=%s", user.ID, user.Username)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainUser(user))
}
