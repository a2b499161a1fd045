// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package api

import "net/http"

// AppError carries an HTTP status and envelope payload through handler
// plumbing. Handlers surface it verbatim; any other error becomes a 400
// with a best-effort message.
type AppError struct {
	Status int
	Msg    string
	Data   any
}

func (e *AppError) Error() string {
	return e.Msg
}

// respondAppError writes an error onto the envelope, unwrapping AppError
// when the handler raised one.
func respondAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*AppError); ok {
		data := appErr.Data
		if data == nil {
			data = map[string]any{}
		}
		respondError(w, appErr.Status, data, appErr.Msg)
		return
	}
	respondError(w, http.StatusBadRequest, map[string]any{}, err.Error())
}
