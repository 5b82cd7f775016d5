// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived background parts of a process as one
// unit: started in order, stopped together under a deadline.
package workers

import "context"

// Worker is a background component with an explicit lifecycle.
//
// Start must not block for the lifetime of the work; it launches it and
// returns. Stop must return once the work has ended or ctx is done.
type Worker interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
