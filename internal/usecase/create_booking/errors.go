package create_booking

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrVenueNotAvailable возвращается, когда площадка не принимает бронирования
	// (статус Booked или Maintenance) - независимо от занятости слотов
	ErrVenueNotAvailable = errors.New("create_booking: venue is not available for booking")

	// ErrSlotConflict возвращается, когда кандидатный интервал пересекается
	// с занятым (бронирование или блокировка администратора)
	ErrSlotConflict = errors.New("create_booking: requested slot conflicts with an occupied interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
