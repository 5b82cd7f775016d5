// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

// psq builds SQLite statements.
var psq = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var pendingChangeColumns = []string{
	"id", "entity_type", "entity_id", "operation", "payload",
	"local_version", "created_at", "retry_count", "last_error", "status",
}

const (
	resetProcessingChanges = `UPDATE pending_changes SET status = ? WHERE status = ?;`

	insertPendingChange = `
		INSERT INTO pending_changes (
			id,
			entity_type,
			entity_id,
			operation,
			payload,
			local_version,
			created_at,
			retry_count,
			last_error,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectCoalescableChange = `
		SELECT id, operation
		FROM pending_changes
		WHERE entity_type = ? AND entity_id = ? AND status <> ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1;`

	coalescePendingChange = `
		UPDATE pending_changes
		SET operation = ?,
			payload = ?,
			local_version = ?,
			status = ?,
			retry_count = 0,
			last_error = NULL
		WHERE id = ?;`

	// requeuePendingChange coalesces like coalescePendingChange and moves the
	// row behind every other queued row.
	requeuePendingChange = `
		UPDATE pending_changes
		SET operation = ?,
			payload = ?,
			local_version = ?,
			status = ?,
			retry_count = 0,
			last_error = NULL,
			created_at = MAX(?, (SELECT COALESCE(MAX(created_at), 0) + 1 FROM pending_changes))
		WHERE id = ?;`

	selectInFlightVersion = `
		SELECT MAX(local_version)
		FROM pending_changes
		WHERE entity_type = ? AND entity_id = ? AND status = ? AND operation <> ?;`

	selectDroppableChanges = `
		SELECT id, operation, local_version
		FROM pending_changes
		WHERE entity_type = ? AND entity_id = ? AND status <> ? AND operation <> ?
		ORDER BY created_at, rowid;`

	selectCoalescableDelete = `
		SELECT id
		FROM pending_changes
		WHERE entity_type = ? AND entity_id = ? AND status <> ? AND operation = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1;`

	deletePendingChange = `DELETE FROM pending_changes WHERE id = ?;`

	selectPendingChangeByID = `
		SELECT id, entity_type, entity_id, operation, payload, local_version, created_at, retry_count, last_error, status
		FROM pending_changes
		WHERE id = ?;`

	selectLatestChangeForEntity = `
		SELECT id, entity_type, entity_id, operation, payload, local_version, created_at, retry_count, last_error, status
		FROM pending_changes
		WHERE entity_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1;`

	countPendingChanges = `SELECT COUNT(*) FROM pending_changes;`

	existsPendingForType = `SELECT EXISTS (SELECT 1 FROM pending_changes WHERE entity_type = ?);`

	selectPendingEntityIDs = `SELECT DISTINCT entity_id FROM pending_changes WHERE entity_type = ?;`

	markChangeProcessing = `UPDATE pending_changes SET status = ? WHERE id = ?;`

	markChangeFailed = `
		UPDATE pending_changes
		SET status = ?, retry_count = retry_count + 1, last_error = ?
		WHERE id = ?;`

	markChangeConflict = `UPDATE pending_changes SET status = ?, last_error = ? WHERE id = ?;`

	resetChangeToPending = `
		UPDATE pending_changes
		SET status = ?, retry_count = 0, last_error = NULL
		WHERE id = ?;`

	replaceChangePayload = `UPDATE pending_changes SET payload = ?, local_version = ? WHERE id = ?;`

	selectSyncMetadata = `SELECT value FROM sync_metadata WHERE key = ?;`

	upsertSyncMetadata = `
		INSERT INTO sync_metadata (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`
)

const (
	upsertLocalEntity = `
		INSERT INTO local_entities (entity_type, id, version, created_at, modified_at, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (entity_type, id) DO UPDATE SET
			version = excluded.version,
			created_at = excluded.created_at,
			modified_at = excluded.modified_at,
			payload = excluded.payload;`

	selectLocalEntity = `SELECT payload FROM local_entities WHERE entity_type = ? AND id = ?;`

	selectLocalEntityVersion = `SELECT version FROM local_entities WHERE entity_type = ? AND id = ?;`

	deleteLocalEntity = `DELETE FROM local_entities WHERE entity_type = ? AND id = ?;`

	selectLocalCategories = `SELECT kind, name FROM local_categories ORDER BY kind, position, name;`

	insertLocalCategory = `
		INSERT INTO local_categories (kind, name, position)
		SELECT ?, ?, COALESCE(MAX(position) + 1, 0) FROM local_categories WHERE kind = ?
		ON CONFLICT (kind, name) DO NOTHING;`

	deleteLocalCategory = `DELETE FROM local_categories WHERE kind = ? AND name = ?;`

	shiftLocalCategoryPositions = `UPDATE local_categories SET position = position + ? WHERE kind = ?;`

	updateLocalCategoryPosition = `UPDATE local_categories SET position = ? WHERE kind = ? AND name = ?;`

	deleteAllLocalCategories = `DELETE FROM local_categories;`

	insertLocalCategoryAt = `INSERT INTO local_categories (kind, name, position) VALUES (?, ?, ?);`

	selectLocalNotes = `SELECT key, text, updated_at FROM local_notes ORDER BY key;`

	selectLocalNote = `SELECT key, text, updated_at FROM local_notes WHERE key = ?;`

	upsertLocalNote = `
		INSERT INTO local_notes (key, text, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET text = excluded.text, updated_at = excluded.updated_at;`

	deleteLocalNote = `DELETE FROM local_notes WHERE key = ?;`

	deleteAllLocalNotes = `DELETE FROM local_notes;`
)
