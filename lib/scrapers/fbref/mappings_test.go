package fbref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// field collisions across categories would silently overwrite merged
// values, the registry must never grow one.
func TestNoFieldCollisionsAcrossCategories(t *testing.T) {
	seen := map[string]string{}
	for category, mappings := range categoryMappings {
		for _, m := range mappings {
			previous, exists := seen[m.Field]
			require.Falsef(t, exists,
				"field %q mapped by both %q and %q", m.Field, previous, category)
			seen[m.Field] = category
		}
	}
}

func TestApplyCategoryUnknownCategoryIsNoop(t *testing.T) {
	record := &PlayerMatchRecord{}
	applied := applyCategory(record, "Shiny New Category", Row{
		ColumnKey{"Performance", "Fls"}: "5",
	})
	require.Empty(t, applied)
	require.Nil(t, record.Fouls)
}

func TestApplyCategoryOmitsAbsentColumns(t *testing.T) {
	record := &PlayerMatchRecord{}
	applied := applyCategory(record, "Misc", Row{
		ColumnKey{"Performance", "Fld"}: "3",
	})
	require.Equal(t, []string{"fouled"}, applied)
	require.Nil(t, record.Fouls, "absent source column must stay absent")
	require.NotNil(t, record.Fouled)
	require.Equal(t, 3, *record.Fouled)
}

func TestApplyCategoryEmptyCountCellsDefaultToZero(t *testing.T) {
	record := &PlayerMatchRecord{}
	applyCategory(record, "Misc", Row{
		ColumnKey{"Performance", "Fls"}: "",
		ColumnKey{"Performance", "Fld"}: "3",
	})
	require.NotNil(t, record.Fouls)
	require.Equal(t, 0, *record.Fouls)
	require.Equal(t, 3, *record.Fouled)
}

func TestApplyCategorySummary(t *testing.T) {
	record := &PlayerMatchRecord{}
	applied := applyCategory(record, "Summary", Row{
		ColumnKey{"", "Min"}:               "45+2",
		ColumnKey{"", "Pos"}:               "AM",
		ColumnKey{"Performance", "Gls"}:    "1",
		ColumnKey{"Performance", "CrdY"}:   "",
		ColumnKey{"Performance", "Tkl"}:    "",
	})
	require.Len(t, applied, 5)

	require.NotNil(t, record.Minutes)
	require.Equal(t, 45, *record.Minutes)
	require.Equal(t, "AM", record.Position)
	require.Equal(t, 1, *record.Goals)
	require.Nil(t, record.YellowCards, "empty non-count cell stays absent")
	require.NotNil(t, record.Tackles)
	require.Equal(t, 0, *record.Tackles, "empty tackles cell defaults to zero")
}
