package fbref

import (
	"bytes"
	"context"
	"regexp"
	"strconv"
	"strings"

	"playerfouls-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Supplement carries the fields only obtainable from raw match-page
// markup. every field is best-effort: a nil/empty value means the
// landmark it is parsed from was missing or unreadable.
type Supplement struct {
	Starting              *bool
	TeamFouls             *int
	TeamFouled            *int
	TeamPossessionPct     *float64
	OpponentPossessionPct *float64
	RefereeName           string
	Attendance            *int
}

// ExtractSupplement parses the match page for the supplementary
// fields. sub-extractions fail independently: a missing attendance
// line must not cost us the referee name. team-level fields need the
// queried player's venue to pick the right half of each home/away
// pair and stay absent when the venue is unknown.
func ExtractSupplement(ctx context.Context, markup []byte, venue Venue, playerName string) (Supplement, error) {
	ctx, span := tracer.Start(ctx, "ExtractSupplement")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return Supplement{}, err
	}

	var sup Supplement
	sup.RefereeName = extractReferee(doc)
	sup.Attendance = extractAttendance(doc)

	if venue == VenueHome || venue == VenueAway {
		sup.TeamFouls, sup.TeamFouled = extractTeamFouls(doc, venue)
		sup.TeamPossessionPct, sup.OpponentPossessionPct = extractPossession(doc, venue)
	}
	if playerName != "" {
		sup.Starting = extractStarting(doc, playerName)
	}

	return sup, nil
}

// the officials line lists names suffixed with their role, e.g.
// "Chris Kavanagh (Referee)".
func extractReferee(doc *goquery.Document) string {
	referee := ""
	doc.Find("div.scorebox_meta span, div.scorebox_meta small").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := htmlutil.CleanText(sel.Text())
		if !strings.Contains(text, "(Referee)") {
			return true
		}
		name := strings.TrimSpace(strings.TrimSuffix(text, "(Referee)"))
		referee = strings.Trim(name, " ·,")
		return false
	})
	return referee
}

var attendanceDigits = regexp.MustCompile(`[\d][\d,.]*`)

func extractAttendance(doc *goquery.Document) *int {
	var attendance *int
	doc.Find("div.scorebox_meta div, div.scorebox_meta small").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := htmlutil.CleanText(sel.Text())
		if !strings.Contains(text, "Attendance") {
			return true
		}
		raw := attendanceDigits.FindString(text)
		if raw == "" {
			return true
		}
		raw = strings.ReplaceAll(raw, ",", "")
		raw = strings.ReplaceAll(raw, ".", "")
		n, err := strconv.Atoi(raw)
		if err != nil {
			return true
		}
		attendance = &n
		return false
	})
	return attendance
}

// the extra team stats block renders rows of three cells:
// home value, stat label, away value.
func extractTeamFouls(doc *goquery.Document, venue Venue) (teamFouls, teamFouled *int) {
	cells := doc.Find("div#team_stats_extra div")
	texts := make([]string, cells.Length())
	cells.Each(func(i int, sel *goquery.Selection) {
		texts[i] = htmlutil.CleanText(sel.Text())
	})

	for i := 1; i+1 < len(texts); i++ {
		if texts[i] != "Fouls" {
			continue
		}
		home := parseOptionalInt(texts[i-1])
		away := parseOptionalInt(texts[i+1])

		// a side's fouls are the times the other side was fouled
		if venue == VenueHome {
			return home, away
		}
		return away, home
	}
	return nil, nil
}

var percentValue = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// the possession split lives in the main team stats table: a header
// row labelled "Possession" followed by a row holding the two
// percentages, home left, away right.
func extractPossession(doc *goquery.Document, venue Venue) (own, opponent *float64) {
	doc.Find("div#team_stats tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if htmlutil.CleanText(row.Text()) != "Possession" {
			return true
		}

		values := percentValue.FindAllStringSubmatch(row.Next().Text(), -1)
		if len(values) < 2 {
			return false
		}
		home, herr := strconv.ParseFloat(values[0][1], 64)
		away, aerr := strconv.ParseFloat(values[1][1], 64)
		if herr != nil || aerr != nil {
			return false
		}

		if venue == VenueHome {
			own, opponent = &home, &away
		} else {
			own, opponent = &away, &home
		}
		return false
	})
	return own, opponent
}

// lineup tables list the starting eleven, then a "Bench" delimiter
// row, then the substitutes. a player found before the delimiter
// started the match; one found after it did not. a player in neither
// partition stays unknown rather than defaulting to false.
func extractStarting(doc *goquery.Document, playerName string) *bool {
	var starting *bool
	doc.Find("div.lineup table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		pastBench := false
		table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
			header := htmlutil.CleanText(row.Find("th").Text())
			if header == "Bench" {
				pastBench = true
				return true
			}
			if !strings.Contains(htmlutil.CleanText(row.Text()), playerName) {
				return true
			}
			started := !pastBench
			starting = &started
			return false
		})
		return starting == nil
	})
	return starting
}
