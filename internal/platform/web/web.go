// Package web agrupa los helpers HTTP que antes se duplicaban en cada handler.
package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"cat-collector/internal/platform/apperrors"
)

// ErrorResponse es el cuerpo JSON de toda respuesta de error.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError responde con el status que corresponde al error de dominio.
// Los errores internos no exponen su mensaje.
func WriteError(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatus(err)

	resp := ErrorResponse{Error: http.StatusText(status)}
	if ve, ok := apperrors.AsValidation(err); ok {
		resp.Error = ve.Message
		resp.Field = ve.Field
	} else if status == http.StatusNotFound {
		resp.Error = "not found"
	}
	WriteJSON(w, status, resp)
}

// SeeOther es la respuesta estándar a un POST de formulario.
func SeeOther(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// FormInt lee un entero opcional del formulario; vacío => def.
func FormInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.PostFormValue(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Invalid(key, "must be a whole number")
	}
	return n, nil
}

// ParseForm acepta urlencoded y multipart.
func ParseForm(r *http.Request, maxMemory int64) error {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return apperrors.Invalid("", "invalid form")
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return apperrors.Invalid("", "invalid form")
	}
	return nil
}
