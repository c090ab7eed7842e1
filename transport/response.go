package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/contact-manager/constant"
	"github.com/muhammadheryan/contact-manager/utils/errors"
)

// errorResponse is the wire shape for every failure. Fields is set for
// validation errors; Conflict for duplicate-pair errors.
type errorResponse struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Fields   map[string]string `json:"fields,omitempty"`
	Conflict *conflictDetail   `json:"conflict,omitempty"`
}

type conflictDetail struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, v interface{}) {
	writeJSON(w, http.StatusOK, v)
}

func writeError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case errors.ValidationError:
		writeJSON(w, e.ErrorHTTPCode(), errorResponse{
			Code:    e.ErrorCode(),
			Message: e.Error(),
			Fields:  e.Fields,
		})
	case errors.DuplicateError:
		writeJSON(w, e.ErrorHTTPCode(), errorResponse{
			Code:    e.ErrorCode(),
			Message: e.Error(),
			Conflict: &conflictDetail{
				Email: e.Email,
				Phone: e.Phone,
			},
		})
	case errors.CustomError:
		writeJSON(w, e.ErrorHTTPCode(), errorResponse{
			Code:    e.ErrorCode(),
			Message: e.Error(),
		})
	default:
		// Never leak internal detail for unclassified failures.
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    constant.ErrorTypeCode[constant.ErrInternal],
			Message: constant.ErrorTypeMessage[constant.ErrInternal],
		})
	}
}
