// Package auth проверяет bearer-токен, которым защищены изменяющие операции.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
)

// ErrForbidden предъявленный токен отсутствует или не совпадает с настроенным
var ErrForbidden = errors.New("forbidden")

// Guard сравнивает предъявленный токен с единственным секретом процесса
type Guard struct {
	digest [sha256.Size]byte
}

// NewGuard создает Guard для заданного секрета
func NewGuard(secret string) *Guard {
	return &Guard{digest: sha256.Sum256([]byte(secret))}
}

// Authorize возвращает ErrForbidden, если токен пуст или не совпадает.
// Сравниваются хеши фиксированной длины за постоянное время,
// поэтому ни длина, ни содержимое секрета не утекают через время ответа.
func (g *Guard) Authorize(presented string) error {
	if presented == "" {
		return ErrForbidden
	}
	digest := sha256.Sum256([]byte(presented))
	if subtle.ConstantTimeCompare(digest[:], g.digest[:]) != 1 {
		return ErrForbidden
	}
	return nil
}
