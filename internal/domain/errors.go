package domain

import "errors"

// ErrNotFound оборачивается репозиториями, когда запрошенная запись
// отсутствует. Транспортный слой отличает его от прочих ошибок хранилища.
var ErrNotFound = errors.New("запись не найдена")
