package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20 // 1MB

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldViolation is one entry of a validation error response.
type FieldViolation struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]any {
	return map[string]any{"detail": msg}
}

func writeViolations(w http.ResponseWriter, violations ...FieldViolation) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": violations})
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

// decodeBody reads a JSON body into v and validates it. On failure the error
// response has already been written and false is returned.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		writeViolations(w, FieldViolation{
			Loc:  []string{"body"},
			Msg:  "invalid JSON body",
			Type: "value_error.jsondecode",
		})
		return false
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeInternalError(w, r, err)
			return false
		}
		violations := make([]FieldViolation, len(verrs))
		for i, fe := range verrs {
			violations[i] = FieldViolation{
				Loc:  []string{"body", fe.Field()},
				Msg:  violationMessage(fe),
				Type: "value_error." + fe.Tag(),
			}
		}
		writeViolations(w, violations...)
		return false
	}

	return true
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

// pathID parses a positive integer URL parameter. On failure a 422 has been written.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeViolations(w, FieldViolation{
			Loc:  []string{"path", name},
			Msg:  "value is not a valid positive integer",
			Type: "type_error.integer",
		})
		return 0, false
	}
	return id, true
}

// baseURL returns scheme://host of the request, honouring X-Forwarded-Proto.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme, _, _ = strings.Cut(proto, ",")
		scheme = strings.TrimSpace(scheme)
	}
	return scheme + "://" + r.Host
}
