// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package api

import (
	"errors"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/moneebshammout/social-media-app/internal/database"
	"github.com/moneebshammout/social-media-app/internal/logging"
	"github.com/moneebshammout/social-media-app/internal/models"
	"github.com/moneebshammout/social-media-app/internal/validation"
)

// respondJSON writes the response envelope.
func respondJSON(w http.ResponseWriter, status int, response models.Response) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respond writes a success envelope.
func respond(w http.ResponseWriter, data any, msg string) {
	respondJSON(w, http.StatusOK, models.NewResponse(data, msg))
}

// respondCached writes a success envelope straight from cached bytes,
// avoiding a decode/re-encode round trip.
func respondCached(w http.ResponseWriter, raw json.RawMessage, msg string) {
	respond(w, raw, msg)
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, status int, data any, msg string) {
	respondJSON(w, status, models.NewErrorResponse(data, msg))
}

// respondDBError maps a query-layer failure onto the envelope. Missing nodes
// and whitelist violations are the client's problem; everything else is ours.
func respondDBError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondAppError(w, &AppError{Status: http.StatusNotFound, Msg: "Not Found"})
	case errors.Is(err, database.ErrInvalidEntity):
		respondAppError(w, &AppError{Status: http.StatusBadRequest, Msg: err.Error()})
	default:
		logging.Error().Err(err).Msg(msg)
		respondAppError(w, &AppError{Status: http.StatusInternalServerError, Msg: msg})
	}
}

// decodeAndValidate decodes the request body and validates the resulting
// struct, writing the error envelope itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, map[string]any{}, "Invalid JSON body")
		return false
	}
	return validate(w, v)
}

// validate runs struct validation, writing the violation envelope on failure.
func validate(w http.ResponseWriter, v any) bool {
	if verr := validation.ValidateStruct(v); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Violations(), "Validation Failed")
		return false
	}
	return true
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed. Validation catches required-but-missing values afterwards.
func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
