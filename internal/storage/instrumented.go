package storage

import (
	"context"
	"errors"
	"time"

	"github.com/InQaaaaGit/qr_route.git/internal/models"
)

// OpObserver получает длительность и результат каждой операции хранилища
type OpObserver interface {
	ObserveStorageOp(op, result string, elapsed time.Duration)
}

// Результаты операций для OpObserver
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// InstrumentedStorage оборачивает RouteStorage и сообщает о каждой операции наблюдателю
type InstrumentedStorage struct {
	next     RouteStorage
	observer OpObserver
}

// NewInstrumentedStorage создает обёртку над хранилищем
func NewInstrumentedStorage(next RouteStorage, observer OpObserver) *InstrumentedStorage {
	return &InstrumentedStorage{next: next, observer: observer}
}

func (s *InstrumentedStorage) observe(op string, start time.Time, err error) {
	result := ResultOK
	switch {
	case errors.Is(err, ErrRouteNotFound):
		result = ResultNotFound
	case err != nil:
		result = ResultError
	}
	s.observer.ObserveStorageOp(op, result, time.Since(start))
}

// Get см. RouteStorage.Get
func (s *InstrumentedStorage) Get(ctx context.Context, name string) (destination string, err error) {
	defer func(start time.Time) { s.observe("get", start, err) }(time.Now())
	return s.next.Get(ctx, name)
}

// Put см. RouteStorage.Put
func (s *InstrumentedStorage) Put(ctx context.Context, name, destination string) (err error) {
	defer func(start time.Time) { s.observe("put", start, err) }(time.Now())
	return s.next.Put(ctx, name, destination)
}

// Update см. RouteStorage.Update
func (s *InstrumentedStorage) Update(ctx context.Context, name, destination string) (err error) {
	defer func(start time.Time) { s.observe("update", start, err) }(time.Now())
	return s.next.Update(ctx, name, destination)
}

// Delete см. RouteStorage.Delete
func (s *InstrumentedStorage) Delete(ctx context.Context, name string) (err error) {
	defer func(start time.Time) { s.observe("delete", start, err) }(time.Now())
	return s.next.Delete(ctx, name)
}

// List см. RouteStorage.List
func (s *InstrumentedStorage) List(ctx context.Context) (routes []models.Route, err error) {
	defer func(start time.Time) { s.observe("list", start, err) }(time.Now())
	return s.next.List(ctx)
}

// CheckConnection см. RouteStorage.CheckConnection
func (s *InstrumentedStorage) CheckConnection(ctx context.Context) error {
	return s.next.CheckConnection(ctx)
}

// Close см. RouteStorage.Close
func (s *InstrumentedStorage) Close() error {
	return s.next.Close()
}
