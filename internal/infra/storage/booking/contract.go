package booking

import "github.com/cst-sportspot/booking-service/pkg/txmanager"

// DBExecutor переиспользуем интерфейс исполнителя запросов из txmanager,
// чтобы репозиторий одинаково работал с *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
