// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the client and
// the server: typed context keys, JSON responses, the resty client wrapper,
// JWT issuing and parsing, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// DeviceIDCtxKey is the key under which the auth middleware stores the
// device id taken from the token subject.
//
//	ctx := context.WithValue(ctx, utils.DeviceIDCtxKey, "laptop")
var DeviceIDCtxKey = contextKey("deviceID")

// GetDeviceIDFromContext returns the device id stored by the auth middleware.
// ok is false when the value is missing, empty or of an unexpected type.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok && deviceID != ""
}
