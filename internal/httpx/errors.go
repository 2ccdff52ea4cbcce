package httpx

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/MikeMC777/ordenes-ofertas/internal/store"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// example: missing required field(s): first_name
	Error string `json:"error"`
}

var ErrMalformedRequest = errors.New("malformed request")

var jsonNamesOnce sync.Once

// UseJSONFieldNames makes validation errors report json tag names
// (first_name) instead of Go field names (FirstName). Safe to call repeatedly.
func UseJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// Malformed converts a binding failure into an ErrMalformedRequest that
// names the missing fields when the body decoded but failed validation.
func Malformed(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		return &malformedError{msg: "missing required field(s): " + strings.Join(missing, ", ")}
	}
	return &malformedError{msg: "invalid json body: " + err.Error()}
}

// Invalid builds an ErrMalformedRequest with a caller-supplied message.
func Invalid(msg string) error { return &malformedError{msg: msg} }

type malformedError struct{ msg string }

func (e *malformedError) Error() string { return e.msg }
func (e *malformedError) Unwrap() error { return ErrMalformedRequest }

// Status maps error kinds to HTTP status codes.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrMalformedRequest):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicateID):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Abort records err for the access log and writes it as HTTPError. Server
// faults get a generic message.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	code := Status(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.AbortWithStatusJSON(code, HTTPError{Error: msg})
}
