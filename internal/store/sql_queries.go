// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-budget-sync/models"
)

// pgq builds PostgreSQL statements.
var pgq = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	selectEntityVersionForUpdate = `SELECT version FROM entities WHERE entity_type = $1 AND id = $2 FOR UPDATE;`

	selectEntityVersion = `SELECT version FROM entities WHERE entity_type = $1 AND id = $2;`

	insertEntity = `
		INSERT INTO entities (entity_type, id, version, created_at, modified_at, modified_by, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (entity_type, id) DO NOTHING;`

	updateEntity = `
		UPDATE entities
		SET version = $3, created_at = $4, modified_at = $5, modified_by = $6, payload = $7
		WHERE entity_type = $1 AND id = $2;`

	deleteEntity = `DELETE FROM entities WHERE entity_type = $1 AND id = $2;`

	selectCategories = `SELECT kind, name FROM categories ORDER BY kind, position, name;`

	insertCategory = `
		INSERT INTO categories (kind, name, position)
		SELECT $1, $2, COALESCE(MAX(position) + 1, 0) FROM categories WHERE kind = $1
		ON CONFLICT (kind, name) DO NOTHING;`

	deleteCategory = `DELETE FROM categories WHERE kind = $1 AND name = $2;`

	shiftCategoryPositions = `UPDATE categories SET position = position + $1 WHERE kind = $2;`

	updateCategoryPosition = `UPDATE categories SET position = $1 WHERE kind = $2 AND name = $3;`

	selectNotes = `SELECT key, text, updated_at FROM activity_notes ORDER BY key;`

	upsertNote = `
		INSERT INTO activity_notes (key, text, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET text = EXCLUDED.text, updated_at = EXCLUDED.updated_at;`

	deleteNote = `DELETE FROM activity_notes WHERE key = $1;`
)

var remoteEntityColumns = []string{"id", "version", "created_at", "modified_at", "modified_by", "payload"}

func buildListEntitiesQuery(entityType models.EntityType) (string, []any, error) {
	return pgq.Select(remoteEntityColumns...).
		From("entities").
		Where(sq.Eq{"entity_type": entityType}).
		OrderBy("created_at NULLS FIRST", "id").
		ToSql()
}

func buildGetEntityQuery(entityType models.EntityType, id string) (string, []any, error) {
	return pgq.Select(remoteEntityColumns...).
		From("entities").
		Where(sq.Eq{"entity_type": entityType, "id": id}).
		ToSql()
}
