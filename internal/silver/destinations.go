package silver

import (
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/henrykw/travel-medallion/internal/warehouse"
)

// CleanDestinations validates bronze destination records into silver rows.
// Names are trimmed and title-cased; the hemisphere label derives from the
// validated latitude, so a record whose latitude failed validation gets a
// null hemisphere rather than a guess.
func CleanDestinations(raw []warehouse.BronzeDestinationRow, processedAt time.Time) []warehouse.SilverDestinationRow {
	rows := make([]warehouse.SilverDestinationRow, 0, len(raw))
	for _, d := range raw {
		if !d.DestinationID.Valid {
			continue
		}

		lat := cleanLatitude(d.DestLatitude)

		rows = append(rows, warehouse.SilverDestinationRow{
			DestinationID:   d.DestinationID.Int64,
			DestinationName: normalizeName(d.DestinationName),
			Latitude:        lat,
			Longitude:       cleanLongitude(d.DestLongitude),
			Hemisphere:      hemisphere(lat),
			IngestedAt:      d.IngestedAt,
			ProcessedAt:     processedAt,
		})
	}
	return rows
}

var titleCaser = cases.Title(language.English)

// normalizeName trims surrounding whitespace and title-cases a destination
// name. Null names stay null.
func normalizeName(name bigquery.NullString) bigquery.NullString {
	if !name.Valid {
		return bigquery.NullString{}
	}
	return nullString(titleCaser.String(strings.TrimSpace(name.StringVal)))
}

// hemisphere labels a validated latitude: non-negative is Northern, negative
// is Southern, null stays null.
func hemisphere(lat bigquery.NullFloat64) bigquery.NullString {
	if !lat.Valid {
		return bigquery.NullString{}
	}
	if lat.Float64 >= 0 {
		return nullString("Northern")
	}
	return nullString("Southern")
}
