package debugui

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/engine"
)

// EntityRow is one line of the entity browser.
type EntityRow struct {
	ID    bridge.EntityID
	Name  string
	Mask  bridge.CapabilityMask
	Class string
}

// Column indexes of the entity browser table.
const (
	ColumnID = iota
	ColumnName
	ColumnClass
	ColumnCapabilities
	columnCount
)

// Rows lists every live entity of eng's host in spawn order.
func Rows(eng *engine.Engine) []EntityRow {
	s := eng.Host().Storage()
	ids := s.Entities()
	rows := make([]EntityRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, EntityRow{
			ID:    id,
			Name:  s.Name(id),
			Mask:  s.Mask(id),
			Class: eng.Class(id),
		})
	}
	return rows
}

// FilterRows keeps rows whose id, name, class or capabilities contain text,
// ignoring case.
func FilterRows(rows []EntityRow, text string) []EntityRow {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return rows
	}
	out := make([]EntityRow, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strconv.FormatUint(uint64(r.ID), 10), text) ||
			strings.Contains(strings.ToLower(r.Name), text) ||
			strings.Contains(strings.ToLower(r.Class), text) ||
			strings.Contains(strings.ToLower(r.Mask.String()), text) {
			out = append(out, r)
		}
	}
	return out
}

// SortRows sorts rows in place by column. Ties keep spawn order.
func SortRows(rows []EntityRow, column int, ascending bool) {
	slices.SortStableFunc(rows, func(a, b EntityRow) int {
		var c int
		switch column {
		case ColumnName:
			c = strings.Compare(a.Name, b.Name)
		case ColumnClass:
			c = strings.Compare(a.Class, b.Class)
		case ColumnCapabilities:
			c = cmp.Compare(a.Mask, b.Mask)
		default:
			c = cmp.Compare(a.ID, b.ID)
		}
		if !ascending {
			return -c
		}
		return c
	})
}

// Page returns the rows of page (zero based) and the page count.
func Page(rows []EntityRow, page, perPage int) ([]EntityRow, int) {
	if perPage <= 0 || len(rows) == 0 {
		return rows, 1
	}
	pages := (len(rows) + perPage - 1) / perPage
	page = max(0, min(page, pages-1))
	start := page * perPage
	end := min(start+perPage, len(rows))
	return rows[start:end], pages
}
