// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client hosts the sync engine in a long-running process.
//
// The App recovers the queue after a crash, starts the connection monitor
// and the sync engine, seeds the local cache on the first successful
// connection and pushes queued changes every time the connection comes
// back. Shutdown is bounded so a stuck request cannot hold the process.
package client
