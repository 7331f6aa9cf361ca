package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/tuanvumaihuynh/invoicing-api/internal/apperr"
)

// decodeJSON reads the request body into a T.
func decodeJSON[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, apperr.InvalidRequestBodyErr.WrapParent(err)
	}
	return v, nil
}

// pathInt64 binds the named path parameter as a simple-style integer.
func pathInt64(r *http.Request, name string) (int64, error) {
	var v int64
	if err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		}); err != nil {
		return 0, apperr.InvalidPathParamErr.
			WithMsg(fmt.Sprintf("invalid format for parameter %s", name)).
			WrapParent(err)
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
