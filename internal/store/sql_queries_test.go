package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-smtp-mailer/models"
)

var (
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func TestSelectOptionsQuery(t *testing.T) {
	q, args, err := selectOptionsQuery(questionBuilder, "g")
	require.NoError(t, err)
	assert.Equal(t, "SELECT name, value FROM options WHERE group_name = ? ORDER BY name", q)
	assert.Equal(t, []any{"g"}, args)

	q, _, err = selectOptionsQuery(dollarBuilder, "g")
	require.NoError(t, err)
	assert.Contains(t, q, "group_name = $1")
}

func TestDeleteStaleOptionsQuery(t *testing.T) {
	q, args, err := deleteStaleOptionsQuery(dollarBuilder, "g", []string{"host", "port"})
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM options WHERE (group_name = $1 AND name NOT IN ($2,$3))", q)
	assert.Equal(t, []any{"g", "host", "port"}, args)

	q, args, err = deleteStaleOptionsQuery(questionBuilder, "g", nil)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM options WHERE (group_name = ?)", q)
	assert.Equal(t, []any{"g"}, args)
}

func TestUpsertOptionsQuery(t *testing.T) {
	q, args, err := upsertOptionsQuery(dollarBuilder, "g", models.Options{"port": "587", "host": "h"})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO options (group_name,name,value) VALUES ($1,$2,$3),($4,$5,$6) "+upsertOptionSuffix, q)
	// keys are sorted
	assert.Equal(t, []any{"g", "host", "h", "g", "port", "587"}, args)
}

func TestUpsertOptionsQuery_NoValues(t *testing.T) {
	_, _, err := upsertOptionsQuery(questionBuilder, "g", models.Options{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}
