package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"cat-collector/internal/platform/apperrors"
)

func TestWriteError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, apperrors.Invalid("meal", "unknown meal"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["field"] != "meal" || body["error"] != "unknown meal" {
		t.Fatalf("unexpected body %#v", body)
	}
}

func TestWriteError_InternalHidesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("pq: password authentication failed"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}
}

func TestFormInt(t *testing.T) {
	form := url.Values{"age": {"4"}, "bad": {"four"}}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if n, err := FormInt(r, "age", 0); err != nil || n != 4 {
		t.Fatalf("age = %d, %v", n, err)
	}
	if n, err := FormInt(r, "missing", 0); err != nil || n != 0 {
		t.Fatalf("missing = %d, %v", n, err)
	}
	if _, err := FormInt(r, "bad", 0); err == nil {
		t.Fatal("expected validation error")
	}
}
