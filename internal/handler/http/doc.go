// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the reference sync server.
//
// Entities are stored as opaque JSON documents under /api/v1/entities,
// categories and activity notes have their own routes. Writes carry the
// version the client wants to reach; a stale version answers 409 Conflict.
// Bearer authentication is applied when the server has a token sign key.
package http
