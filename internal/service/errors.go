package service

import "errors"

// Виды ошибок сервиса. Конкретные ошибки оборачивают их через %w.
var (
	// ErrValidation пустое или некорректное поле запроса
	ErrValidation = errors.New("validation error")
	// ErrNotFound маршрут с таким именем не существует
	ErrNotFound = errors.New("route not found")
	// ErrStore сбой хранилища маршрутов или QR-кодов
	ErrStore = errors.New("store error")
	// ErrRenderFailure не удалось построить QR-код
	ErrRenderFailure = errors.New("render failure")
)
