package database

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/genbaflow/genba-backend-go/internal/config"
)

// VerifySchema checks that every mapped table exists and carries every mapped
// column. Called once at startup; a failure here is a configuration error and
// no sync may run against a misaligned table.
func VerifySchema(ctx context.Context, db *DB, spec *config.SchemaSpec) error {
	names := make([]string, 0, len(spec.Collections))
	for name := range spec.Collections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		coll := spec.Collections[name]

		rows, err := db.Query(ctx, `
			SELECT column_name
			FROM information_schema.columns
			WHERE table_schema = 'public' AND table_name = $1
		`, coll.Table)
		if err != nil {
			return fmt.Errorf("inspect table %s: %w", coll.Table, err)
		}

		present := make(map[string]bool)
		for rows.Next() {
			var col string
			if err := rows.Scan(&col); err != nil {
				rows.Close()
				return fmt.Errorf("inspect table %s: %w", coll.Table, err)
			}
			present[col] = true
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("inspect table %s: %w", coll.Table, err)
		}

		if len(present) == 0 {
			return fmt.Errorf("collection %q: table %s does not exist", name, coll.Table)
		}

		var missing []string
		for _, col := range coll.Columns {
			if !present[col] {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("collection %q: table %s is missing columns: %s",
				name, coll.Table, strings.Join(missing, ", "))
		}
	}

	return nil
}
