// Package models содержит структуры данных, которыми обмениваются слои сервиса.
package models

// Route представляет связку имени и адреса назначения
type Route struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
}

// CreateRouteRequest тело запроса POST /crear
type CreateRouteRequest struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
}

// CreateRouteResponse ответ на успешное создание маршрута.
// ArtifactRef пуст, если QR-код не сохраняется на диск; тогда SVG передаётся в поле SVG.
type CreateRouteResponse struct {
	Message     string `json:"message"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Payload     string `json:"payload"`
	ArtifactRef string `json:"artifact_ref,omitempty"`
	SVG         string `json:"svg,omitempty"`
}

// UpdateRouteRequest тело запроса PUT /actualizar/{name}
type UpdateRouteRequest struct {
	NewDestination string `json:"new_destination"`
}

// UpdateRouteResponse ответ на успешное изменение адреса назначения
type UpdateRouteResponse struct {
	Message        string `json:"message"`
	Name           string `json:"name"`
	NewDestination string `json:"new_destination"`
}

// DeleteRouteResponse ответ на успешное удаление маршрута
type DeleteRouteResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// ErrorResponse структурированное описание ошибки: вид и подробности
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}
