// Package common holds the response building shared by every handler: JSON
// writing and the single mapping from the request-error taxonomy to HTTP
// responses, so no two endpoints disagree about a failure kind.
package common

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Tidepool/internal/core/apperrors"
)

// WriteJSON writes a JSON response with the given status
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already sent at this point, just log it.
		log.Printf("Failed to encode response: %v", err)
	}
}

type errorBody struct {
	Error    string            `json:"error"`
	Message  string            `json:"message"`
	Resource string            `json:"resource,omitempty"`
	ID       string            `json:"id,omitempty"`
	Field    string            `json:"field,omitempty"`
	Value    string            `json:"value,omitempty"`
	Fields   []string          `json:"fields,omitempty"`
	Context  map[string]string `json:"context,omitempty"`
}

// WriteError converts a request failure into its structured JSON response.
// Each taxonomy kind maps 1:1 to a status and body shape; anything outside
// the taxonomy becomes a generic 500 with the detail kept server-side.
func WriteError(w http.ResponseWriter, err error) {
	var invalidField *apperrors.InvalidFieldError
	var missingFields *apperrors.MissingFieldsError
	var malformedBody *apperrors.MalformedBodyError
	var malformedID *apperrors.MalformedIDError
	var notFound *apperrors.NotFoundError
	var conflict *apperrors.ConflictError
	var dependency *apperrors.DependencyError

	switch {
	case errors.As(err, &invalidField):
		WriteJSON(w, http.StatusBadRequest, errorBody{
			Error:   "InvalidField",
			Message: err.Error(),
			Field:   invalidField.Field,
			Value:   invalidField.Value,
		})

	case errors.As(err, &missingFields):
		WriteJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:   "MissingFields",
			Message: err.Error(),
			Fields:  missingFields.Fields,
		})

	case errors.As(err, &malformedBody):
		WriteJSON(w, http.StatusBadRequest, errorBody{
			Error:   "MalformedBody",
			Message: "Request body could not be parsed",
		})

	case errors.As(err, &malformedID):
		WriteJSON(w, http.StatusBadRequest, errorBody{
			Error:    "MalformedId",
			Message:  err.Error(),
			Resource: malformedID.Resource,
			ID:       malformedID.ID,
		})

	case errors.As(err, &notFound):
		WriteJSON(w, http.StatusNotFound, errorBody{
			Error:    "NotFound",
			Message:  err.Error(),
			Resource: notFound.Resource,
			ID:       notFound.ID,
		})

	case errors.As(err, &conflict):
		WriteJSON(w, http.StatusConflict, errorBody{
			Error:    "ResourceConflict",
			Message:  err.Error(),
			Resource: conflict.Resource,
			ID:       conflict.ID,
		})

	case errors.As(err, &dependency):
		WriteJSON(w, http.StatusBadRequest, errorBody{
			Error:   "DependencyError",
			Message: err.Error(),
			Context: dependency.Expected,
		})

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error while handling request: %v", err)
		WriteJSON(w, http.StatusInternalServerError, errorBody{
			Error:   "InternalServerError",
			Message: "An internal error occurred",
		})
	}
}

// DecodeBody parses a JSON request body into a generic map so handlers can
// distinguish absent fields from zero values. Parse failures surface as
// MalformedBody.
func DecodeBody(r *http.Request) (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		return nil, apperrors.NewMalformedBody(err.Error())
	}
	return data, nil
}
