package booking

import "github.com/eywa-crm/EYWA-ScheduleService/pkg/txmanager"

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx
// Репозиторий прозрачно работает и в транзакции, и вне её:
// активная транзакция достается из контекста через txmanager.GetExecutor
type DBExecutor = txmanager.Executor
