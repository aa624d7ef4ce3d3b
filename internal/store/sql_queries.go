package store

import (
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-smtp-mailer/models"
)

const (
	optionsTable = "options"

	colGroup     = "group_name"
	colName      = "name"
	colValue     = "value"
	colUpdatedAt = "updated_at"

	upsertOptionSuffix = "ON CONFLICT (group_name, name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP"
)

// selectOptionsQuery reads every option of group.
func selectOptionsQuery(b sq.StatementBuilderType, group string) (string, []any, error) {
	q, args, err := b.Select(colName, colValue).
		From(optionsTable).
		Where(sq.Eq{colGroup: group}).
		OrderBy(colName).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}

// deleteStaleOptionsQuery removes the options of group whose names are not
// in keep. An empty keep removes the whole group.
func deleteStaleOptionsQuery(b sq.StatementBuilderType, group string, keep []string) (string, []any, error) {
	where := sq.And{sq.Eq{colGroup: group}}
	if len(keep) > 0 {
		where = append(where, sq.NotEq{colName: keep})
	}

	q, args, err := b.Delete(optionsTable).Where(where).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}

// upsertOptionsQuery writes every option of group in one statement.
// Keys are sorted so the statement is stable.
func upsertOptionsQuery(b sq.StatementBuilderType, group string, options models.Options) (string, []any, error) {
	ins := b.Insert(optionsTable).Columns(colGroup, colName, colValue)
	for _, name := range sortedKeys(options) {
		ins = ins.Values(group, name, options[name])
	}

	q, args, err := ins.Suffix(upsertOptionSuffix).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}

func sortedKeys(o models.Options) []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
