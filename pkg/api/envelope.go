package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Fixed user-facing messages produced by the request layer. The platform
// serves a Spanish-speaking audience, so the literals stay in Spanish.
const (
	MsgSessionExpired  = "Sesión expirada. Inicia sesión de nuevo"
	MsgEmailRegistered = "El email ya está registrado"
	MsgInvalidRequest  = "Solicitud inválida"
	MsgInvalidResponse = "Respuesta inválida del servidor"
	MsgNetworkError    = "Error de red. Inténtalo de nuevo"
)

// Result is the normalized envelope returned by every API call. Success
// results never carry Error; failure results never carry Data. Status is
// zero when the request never reached the server.
type Result struct {
	Success bool            `json:"success"`
	Status  int             `json:"status,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// successResult wraps a parsed payload in a success envelope.
func successResult(data json.RawMessage) Result {
	return Result{Success: true, Data: data}
}

// failureResult wraps a status and message in a failure envelope.
func failureResult(status int, msg string) Result {
	return Result{Success: false, Status: status, Error: msg}
}

// Decode unmarshals the success payload into v.
func (r Result) Decode(v any) error {
	if !r.Success {
		return fmt.Errorf("cannot decode failure result: %s", r.Error)
	}
	if len(r.Data) == 0 {
		return fmt.Errorf("result has no data")
	}
	return json.Unmarshal(r.Data, v)
}

// serverMessage extracts the optional message field from an error body.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}
