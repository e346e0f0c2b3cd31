package fbref

import (
	"log/slog"
	"strconv"
	"strings"
)

// ParseMinutes normalizes the irregular minute encodings upstream uses.
// stoppage time ("45+2") folds into the base minute, missing cells
// parse to 0. it never fails: anything unparseable logs a warning and
// comes back as 0.
func ParseMinutes(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	if idx := strings.Index(raw, "+"); idx >= 0 {
		raw = raw[:idx]
	}

	n, err := strconv.Atoi(raw)
	if err == nil {
		return n
	}

	// some sources render minutes as a float ("90.0")
	f, ferr := strconv.ParseFloat(raw, 64)
	if ferr == nil {
		return int(f)
	}

	slog.Warn("could not parse minutes", "value", raw)
	return 0
}

// empty or unparseable cells are absent, not zero.
func parseOptionalInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			slog.Warn("could not parse integer cell", "value", raw)
			return nil
		}
		n = int(f)
	}
	return &n
}

// event counts (tackles, fouls, fouled) treat an empty cell as zero:
// an un-recorded event count is zero, not unknown.
func parseCount(raw string) *int {
	if strings.TrimSpace(raw) == "" {
		zero := 0
		return &zero
	}
	return parseOptionalInt(raw)
}

func parseOptionalFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("could not parse float cell", "value", raw)
		return nil
	}
	return &f
}
