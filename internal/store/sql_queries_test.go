// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSaveArtifactQuery_Placeholders(t *testing.T) {
	pg, args, err := buildSaveArtifactQuery(DialectPostgres, testArtifact)
	require.NoError(t, err)
	require.Len(t, args, 4)
	assert.Contains(t, pg, "$4")
	assert.Contains(t, strings.ToLower(pg), "on conflict (name) do update")

	lite, _, err := buildSaveArtifactQuery(DialectSQLite, testArtifact)
	require.NoError(t, err)
	assert.NotContains(t, lite, "$1")
	assert.Equal(t, 4, strings.Count(lite, "?"))
}

func Test_buildSaveArtifactQuery_StoresUTC(t *testing.T) {
	a := testArtifact
	a.CreatedAt = time.Date(2026, 3, 1, 15, 0, 0, 0, time.FixedZone("MSK", 3*3600))

	_, args, err := buildSaveArtifactQuery(DialectSQLite, a)
	require.NoError(t, err)

	ts, ok := args[3].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.UTC, ts.Location())
	assert.Equal(t, 12, ts.Hour())
}

func Test_buildListExpiredQuery(t *testing.T) {
	before := time.Now()

	query, args, err := buildListExpiredQuery(DialectPostgres, before)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from artifacts")
	assert.Contains(t, q, "created_at < $1")
	assert.Contains(t, q, "order by created_at asc")
	require.Len(t, args, 1)
}

func Test_buildFindAndDeleteQueries(t *testing.T) {
	find, args, err := buildFindArtifactQuery(DialectPostgres, "x.enc")
	require.NoError(t, err)
	assert.Contains(t, find, "WHERE name = $1")
	assert.Equal(t, []any{"x.enc"}, args)

	del, args, err := buildDeleteArtifactQuery(DialectSQLite, "x.enc")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM artifacts WHERE name = ?", del)
	assert.Equal(t, []any{"x.enc"}, args)
}
