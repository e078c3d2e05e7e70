package schedule

import "github.com/TecWeb-Studio/newbodyline2/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
