package reservation

import "github.com/m04kA/SMC-RentalService/pkg/dbmetrics"

// DBExecutor интерфейс выполнения запросов
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
