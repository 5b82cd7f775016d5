// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-budget-sync/internal/adapter"
	"github.com/MKhiriev/go-budget-sync/internal/store"
)

// syncErrorKind tells the sync engine what to do with a failed change.
type syncErrorKind int

const (
	// syncErrorTransient puts the change back to PENDING for the next pass.
	syncErrorTransient syncErrorKind = iota
	// syncErrorConflict hands the change to the conflict strategy.
	syncErrorConflict
	// syncErrorPermanent parks the change as CONFLICT for the user.
	syncErrorPermanent
)

func (k syncErrorKind) String() string {
	switch k {
	case syncErrorConflict:
		return "conflict"
	case syncErrorPermanent:
		return "permanent"
	default:
		return "transient"
	}
}

var conflictErrors = []error{
	adapter.ErrVersionConflict,
	store.ErrVersionConflict,
}

var permanentErrors = []error{
	adapter.ErrBadRequest,
	adapter.ErrUnauthorized,
	adapter.ErrForbidden,
	adapter.ErrNotFound,
	adapter.ErrUnprocessable,
	adapter.ErrMalformedResponse,
	store.ErrInvalidEntity,
	store.ErrEncodingPayload,
	store.ErrDecodingPayload,
	ErrNoSyncTarget,
	ErrUnknownCategoryOp,
}

var transientErrors = []error{
	adapter.ErrInternalServerError,
	adapter.ErrBadGateway,
	adapter.ErrServiceUnavailable,
	adapter.ErrGatewayTimeout,
	adapter.ErrUnhealthy,
	context.DeadlineExceeded,
	context.Canceled,
	io.EOF,
	io.ErrUnexpectedEOF,
	syscall.ECONNREFUSED,
	syscall.ECONNRESET,
	syscall.ECONNABORTED,
	syscall.EPIPE,
	syscall.ETIMEDOUT,
	syscall.ENETUNREACH,
	syscall.EHOSTUNREACH,
}

var transientKeywords = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"timeout",
	"timed out",
	"no such host",
	"network is unreachable",
	"temporarily unavailable",
	"too many connections",
	"pool",
}

var permanentKeywords = []string{
	"unauthorized",
	"forbidden",
	"permission denied",
	"constraint",
	"malformed",
	"invalid",
}

// classifySyncError sorts err into one of the three kinds. known is false
// when nothing matched and the transient default was used.
func classifySyncError(err error) (kind syncErrorKind, known bool) {
	if err == nil {
		return syncErrorTransient, false
	}

	if isAny(err, conflictErrors) {
		return syncErrorConflict, true
	}
	if isAny(err, permanentErrors) {
		return syncErrorPermanent, true
	}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return syncErrorPermanent, true
	}

	if isAny(err, transientErrors) {
		return syncErrorTransient, true
	}

	var (
		netErr net.Error
		dnsErr *net.DNSError
		opErr  *net.OpError
		urlErr *url.Error
	)
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) || errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return syncErrorTransient, true
	}

	msg := strings.ToLower(err.Error())
	for _, kw := range transientKeywords {
		if strings.Contains(msg, kw) {
			return syncErrorTransient, true
		}
	}
	for _, kw := range permanentKeywords {
		if strings.Contains(msg, kw) {
			return syncErrorPermanent, true
		}
	}

	return syncErrorTransient, false
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
