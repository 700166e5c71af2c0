// Package bind decodes and validates a JSON request body into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/turboost/store/pkg/validate"
)

// Request bodies are small JSON documents; 1 MB is plenty.
const maxBodyBytes = 1 << 20

// JSON decodes r.Body into dest and runs validation.
// Returns (errs, nil) on validation failures and (nil, err) on malformed
// or oversized bodies.
func JSON(r *http.Request, dest interface{}) (map[string]string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if errs := validate.Struct(dest); validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}
