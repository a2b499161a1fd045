// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

// Package models defines the response envelope, graph schema constants,
// state enums, feed sum type and request DTOs shared by the API and
// database layers.
package models

// Response is the uniform envelope returned by every endpoint, success and
// failure alike. Clients branch on Success, not on HTTP status alone.
type Response struct {
	Data    any    `json:"data"`
	Msg     string `json:"msg"`
	Success bool   `json:"success"`
}

// NewResponse wraps a payload in a successful envelope.
func NewResponse(data any, msg string) Response {
	if data == nil {
		data = map[string]any{}
	}
	return Response{Data: data, Msg: msg, Success: true}
}

// NewErrorResponse wraps an error payload in a failed envelope.
// Data is optional and typically carries a field violation list.
func NewErrorResponse(data any, msg string) Response {
	return Response{Data: data, Msg: msg, Success: false}
}
