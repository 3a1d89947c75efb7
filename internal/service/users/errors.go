package users

import "errors"

var (
	// ErrInvalidUsername возвращается при пустом или некорректном имени пользователя
	ErrInvalidUsername = errors.New("users.service: invalid username")

	// ErrUserExists возвращается, когда имя пользователя уже занято
	ErrUserExists = errors.New("users.service: username already taken")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users.service: user not found")

	// ErrInvalidCredentials возвращается при неверной паре логин/пароль
	ErrInvalidCredentials = errors.New("users.service: invalid credentials")

	// ErrInvalidRole возвращается при недопустимой роли
	ErrInvalidRole = errors.New("users.service: invalid role")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users.service: internal error")
)
