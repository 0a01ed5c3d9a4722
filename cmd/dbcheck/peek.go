package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const previewLimit = 5

var (
	tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

	errInvalidTableName = errors.New("invalid table name")

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// tablePreview holds the rows of a table rendered as strings.
type tablePreview struct {
	columns []string
	rows    [][]string
}

func validTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}

// peekTable fetches the first rows of name. The name is interpolated into
// the statement, so it is checked against the identifier whitelist first.
func peekTable(ctx context.Context, q querier, name string) (tablePreview, error) {
	if !validTableName(name) {
		return tablePreview{}, fmt.Errorf("%w: %q", errInvalidTableName, name)
	}

	query, args, err := sq.Select("*").From(name).Limit(previewLimit).ToSql()
	if err != nil {
		return tablePreview{}, fmt.Errorf("error building query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return tablePreview{}, fmt.Errorf("error querying table %s: %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return tablePreview{}, fmt.Errorf("error reading columns: %w", err)
	}

	preview := tablePreview{columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return tablePreview{}, fmt.Errorf("error scanning row: %w", err)
		}

		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		preview.rows = append(preview.rows, row)
	}

	if err := rows.Err(); err != nil {
		return tablePreview{}, fmt.Errorf("error iterating rows: %w", err)
	}

	return preview, nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

func (p tablePreview) render() string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(p.columns...).
		Rows(p.rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
