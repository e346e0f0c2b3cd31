package fbref

import (
	"context"
	"log/slog"
	"strings"

	"github.com/antzucaro/matchr"
)

// findIdentityColumn returns the column carrying the player name for a
// category table. exactly one such column is expected, a table without
// one is skipped by the locator.
func findIdentityColumn(table CategoryTable) (ColumnKey, bool) {
	for _, col := range table.Columns {
		if strings.Contains(col.Name, "Player") {
			return col, true
		}
	}
	return ColumnKey{}, false
}

// selectPlayerRow picks the row matching the target name inside one
// category table. names carry suffix decorations upstream, so matching
// is case-sensitive substring containment; an exact match always wins,
// and among several substring candidates the one closest to the target
// by Jaro-Winkler similarity is taken, which guards against one
// player's name being contained in another's.
func selectPlayerRow(table CategoryTable, identity ColumnKey, name string) (Row, bool) {
	var best Row
	var bestSimilarity float64

	for _, row := range table.Rows {
		cell := row[identity]
		if cell == name {
			return row, true
		}
		if !strings.Contains(cell, name) {
			continue
		}

		similarity := matchr.JaroWinkler(cell, name, false)
		if best == nil || similarity > bestSimilarity {
			best = row
			bestSimilarity = similarity
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}

// locatePlayer walks every category of one team's stats, finds the
// target player's row per category and merges the mapped fields into
// the record. returns false when no category contained the player.
func locatePlayer(ctx context.Context, r *PlayerMatchRecord, stats TeamStats, name string) bool {
	found := false
	for category, table := range stats {
		identity, ok := findIdentityColumn(table)
		if !ok {
			slog.DebugContext(ctx, "category table has no player column", "category", category)
			continue
		}

		row, ok := selectPlayerRow(table, identity, name)
		if !ok {
			continue
		}

		applied := applyCategory(r, category, row)
		// a row in an unmapped category contributes nothing and
		// does not count as a find
		found = found || len(applied) > 0
	}
	return found
}
