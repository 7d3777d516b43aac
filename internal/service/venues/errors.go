package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrBlockedSlotNotFound возвращается, когда заблокированный слот не найден
	ErrBlockedSlotNotFound = errors.New("blocked slot not found")

	// ErrDuplicateName возвращается, когда имя площадки уже занято
	ErrDuplicateName = errors.New("venue with this name already exists")

	// ErrVenueInUse возвращается при попытке удалить площадку,
	// на которую ссылаются бронирования
	ErrVenueInUse = errors.New("venue has bookings and cannot be deleted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
