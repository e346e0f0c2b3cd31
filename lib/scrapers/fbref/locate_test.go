package fbref

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

var playerCol = ColumnKey{"", "Player"}

func miscTable(rows ...Row) CategoryTable {
	return CategoryTable{
		Columns: []ColumnKey{
			playerCol,
			{"Performance", "Fls"},
			{"Performance", "Fld"},
		},
		Rows: rows,
	}
}

func TestFindIdentityColumn(t *testing.T) {
	col, ok := findIdentityColumn(miscTable())
	require.True(t, ok)
	require.Equal(t, playerCol, col)

	_, ok = findIdentityColumn(CategoryTable{
		Columns: []ColumnKey{{"Performance", "Fls"}},
	})
	require.False(t, ok)
}

func TestSelectPlayerRowSubstring(t *testing.T) {
	table := miscTable(
		Row{playerCol: "Cole Palmer (c)", ColumnKey{"Performance", "Fls"}: "0"},
		Row{playerCol: "Moisés Caicedo", ColumnKey{"Performance", "Fls"}: "2"},
	)

	// upstream decorates names with suffixes, containment must match
	row, ok := selectPlayerRow(table, playerCol, "Cole Palmer")
	require.True(t, ok)
	require.Equal(t, "0", row[ColumnKey{"Performance", "Fls"}])

	_, ok = selectPlayerRow(table, playerCol, "Lionel Messi")
	require.False(t, ok)
}

func TestSelectPlayerRowPrefersExactOverContainment(t *testing.T) {
	table := miscTable(
		Row{playerCol: "Paulinho Junior", ColumnKey{"Performance", "Fls"}: "5"},
		Row{playerCol: "Paulinho", ColumnKey{"Performance", "Fls"}: "1"},
	)

	row, ok := selectPlayerRow(table, playerCol, "Paulinho")
	require.True(t, ok)
	require.Equal(t, "1", row[ColumnKey{"Performance", "Fls"}])
}

func TestSelectPlayerRowIsCaseSensitive(t *testing.T) {
	table := miscTable(
		Row{playerCol: "cole palmer"},
	)
	_, ok := selectPlayerRow(table, playerCol, "Cole Palmer")
	require.False(t, ok)
}

func TestLocatePlayerMergesAcrossCategories(t *testing.T) {
	stats := TeamStats{
		"Summary": {
			Columns: []ColumnKey{playerCol, {"", "Min"}},
			Rows: []Row{
				{playerCol: "Cole Palmer", ColumnKey{"", "Min"}: "90"},
			},
		},
		"Misc": miscTable(
			Row{
				playerCol:                       "Cole Palmer",
				ColumnKey{"Performance", "Fls"}: "0",
				ColumnKey{"Performance", "Fld"}: "3",
			},
		),
	}

	record := &PlayerMatchRecord{}
	found := locatePlayer(context.Background(), record, stats, "Cole Palmer")
	require.True(t, found)
	require.Equal(t, 90, *record.Minutes)
	require.Equal(t, 0, *record.Fouls)
	require.Equal(t, 3, *record.Fouled)
}

func TestLocatePlayerSingleCategoryOnly(t *testing.T) {
	stats := TeamStats{
		"Summary": {
			Columns: []ColumnKey{playerCol, {"", "Min"}},
			Rows: []Row{
				{playerCol: "Nicolas Jackson", ColumnKey{"", "Min"}: "90"},
			},
		},
		"Misc": miscTable(
			Row{
				playerCol:                       "Cole Palmer",
				ColumnKey{"Performance", "Fld"}: "3",
			},
		),
	}

	record := &PlayerMatchRecord{}
	found := locatePlayer(context.Background(), record, stats, "Cole Palmer")
	require.True(t, found)
	// only Misc matched, nothing from Summary may leak in
	require.Nil(t, record.Minutes)
	require.Empty(t, record.Position)
	require.Equal(t, 3, *record.Fouled)
}

func TestLocatePlayerNotFound(t *testing.T) {
	stats := TeamStats{
		"Misc": miscTable(
			Row{playerCol: "Nicolas Jackson"},
		),
	}
	record := &PlayerMatchRecord{}
	require.False(t, locatePlayer(context.Background(), record, stats, "Cole Palmer"))
}

func TestLocatePlayerSkipsTablesWithoutIdentityColumn(t *testing.T) {
	stats := TeamStats{
		"Misc": {
			Columns: []ColumnKey{{"Performance", "Fls"}},
			Rows:    []Row{{ColumnKey{"Performance", "Fls"}: "1"}},
		},
	}
	record := &PlayerMatchRecord{}
	require.False(t, locatePlayer(context.Background(), record, stats, "Cole Palmer"))
}
