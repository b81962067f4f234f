package storage

import "errors"

// ErrRouteNotFound возвращается, когда маршрут с таким именем отсутствует в хранилище
var ErrRouteNotFound = errors.New("route not found")
