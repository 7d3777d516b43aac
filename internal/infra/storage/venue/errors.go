package venue

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue.repository: venue not found")

	// ErrBlockedSlotNotFound возвращается, когда заблокированный слот не найден
	ErrBlockedSlotNotFound = errors.New("venue.repository: blocked slot not found")

	// ErrDuplicateName возвращается при попытке создать площадку с занятым именем
	ErrDuplicateName = errors.New("venue.repository: venue with this name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("venue.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("venue.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("venue.repository: failed to scan row")
)
