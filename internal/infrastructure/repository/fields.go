// Package repository implements the domain repositories over the
// tabular record store. Filters are pushed to the store as formulas;
// email matches additionally get a normalized in-memory pass because
// store-side LOWER() does not fold every codepoint Go does.
package repository

import (
	"fmt"
	"strings"
	"time"

	"residconnect/internal/infrastructure/airtable"
)

func getString(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

// getStringSlice reads a linked-record or multi-value field. The store
// returns these as []interface{} of strings.
func getStringSlice(fields map[string]interface{}, key string) []string {
	raw, ok := fields[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// getFirstLink returns the first ID of a linked-record field, or "".
func getFirstLink(fields map[string]interface{}, key string) string {
	links := getStringSlice(fields, key)
	if len(links) == 0 {
		return ""
	}
	return links[0]
}

func getTime(fields map[string]interface{}, key string) *time.Time {
	s := getString(fields, key)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// escapeFormulaString escapes a value for embedding in a double-quoted
// formula literal.
func escapeFormulaString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// emailFilter builds a case-insensitive, trimmed equality formula for
// an email column.
func emailFilter(field, email string) string {
	return fmt.Sprintf(`LOWER(TRIM({%s}))="%s"`, field, escapeFormulaString(email))
}

func newestFirst() []airtable.SortField {
	return []airtable.SortField{{Field: airtable.FieldCreatedAt, Direction: "desc"}}
}
