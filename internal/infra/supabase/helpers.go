package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ============================================================
// HTTP helpers for POST, DELETE and PostgREST filters
// ============================================================

const (
	preferRepresentation = "return=representation"
	preferIgnoreDupes    = "resolution=ignore-duplicates,return=minimal"
)

// doPost inserts data into table and decodes the single created row into out.
func (c *Client) doPost(ctx context.Context, op, table string, data any, out any) error {
	body, err := c.mutate(ctx, op, http.MethodPost, table, data, preferRepresentation)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return fmt.Errorf("decode %s: %w", op, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("supabase POST %s returned no rows", table)
	}
	return json.Unmarshal(rows[0], out)
}

// doDelete deletes the rows matched by path and reports how many went away.
func (c *Client) doDelete(ctx context.Context, op, path string) (int, error) {
	body, err := c.mutate(ctx, op, http.MethodDelete, path, nil, preferRepresentation)
	if err != nil {
		return 0, err
	}
	var rows []json.RawMessage
	if len(body) > 0 {
		if err := json.Unmarshal(body, &rows); err != nil {
			return 0, fmt.Errorf("decode %s: %w", op, err)
		}
	}
	return len(rows), nil
}

// eq renders a PostgREST equality filter with an escaped value.
func eq(column, value string) string {
	return column + "=eq." + url.QueryEscape(value)
}

func byUser(table, userID string, extra ...string) string {
	q := table + "?" + eq("user_id", userID)
	for _, e := range extra {
		q += "&" + e
	}
	return q
}

func timestamp(t time.Time) string {
	return url.QueryEscape(t.UTC().Format(time.RFC3339))
}

// parseTime accepts timestamptz and date columns. Values without an offset
// (date, timestamp) are calendar values and are read in loc.
func parseTime(s string, loc *time.Location) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseTimePtr(s *string, loc *time.Location) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := parseTime(*s, loc)
	if t.IsZero() {
		return nil
	}
	return &t
}

// formatDate writes the calendar date t falls on in loc.
func formatDate(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := t.In(loc).Format("2006-01-02")
	return &s
}
