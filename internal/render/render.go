// Package render превращает строку в QR-код в формате SVG.
// Рендерер не хранит состояния и ничего не сохраняет: решение о том, куда
// деть результат, принимает вызывающий код.
package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// ErrRenderFailure возвращается, если QR-код не удалось построить
var ErrRenderFailure = errors.New("render failure")

// quietZone ширина пустой рамки вокруг кода в модулях
const quietZone = 4

// Renderer строит изображение QR-кода для переданной строки
type Renderer interface {
	Render(payload string) ([]byte, error)
}

// QRRenderer реализует Renderer через github.com/boombuler/barcode
type QRRenderer struct {
	level qr.ErrorCorrectionLevel
}

// NewQRRenderer создает рендерер с уровнем коррекции ошибок M
func NewQRRenderer() *QRRenderer {
	return &QRRenderer{level: qr.M}
}

// Render кодирует payload и возвращает SVG-документ
func (r *QRRenderer) Render(payload string) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrRenderFailure)
	}

	code, err := qr.Encode(payload, r.level, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}

	return toSVG(code, payload)
}

// toSVG рисует каждый тёмный модуль квадратом 1x1 в системе координат viewBox
func toSVG(code barcode.Barcode, payload string) ([]byte, error) {
	bounds := code.Bounds()
	size := bounds.Dx() + 2*quietZone

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" shape-rendering="crispEdges">`, size, size)
	buf.WriteString("<title>")
	if err := xml.EscapeText(&buf, []byte(payload)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	buf.WriteString("</title>")
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="#ffffff"/>`, size, size)

	buf.WriteString(`<path fill="#000000" d="`)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if isDark(code, x, y) {
				fmt.Fprintf(&buf, "M%d %dh1v1h-1z", x-bounds.Min.X+quietZone, y-bounds.Min.Y+quietZone)
			}
		}
	}
	buf.WriteString(`"/></svg>`)

	return buf.Bytes(), nil
}

func isDark(code barcode.Barcode, x, y int) bool {
	r, g, b, _ := code.At(x, y).RGBA()
	return r+g+b < 3*0x8000
}
