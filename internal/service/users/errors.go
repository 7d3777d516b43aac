package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser возвращается, когда email или username уже заняты
	ErrDuplicateUser = errors.New("user with this email or username already exists")

	// ErrInvalidCredentials возвращается при неверном email или пароле.
	// Сообщение одинаково для обоих случаев, чтобы не раскрывать,
	// существует ли аккаунт.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
