package bronze

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/henrykw/travel-medallion/internal/warehouse"
)

// tsHashFormat is how a transaction timestamp renders inside the row hash.
// Changing it changes every fingerprint, which downstream change detection
// would read as a full reload.
const tsHashFormat = "2006-01-02 15:04:05"

// Fingerprint returns the MD5 content hash of a purchase's business key
// fields (id, ts, user_id, destination_id), joined with "|". Null fields are
// skipped by the join rather than rendered, matching concat_ws semantics.
func Fingerprint(p warehouse.RawPurchaseRow) string {
	parts := make([]string, 0, 4)
	if p.ID.Valid {
		parts = append(parts, strconv.FormatInt(p.ID.Int64, 10))
	}
	if p.TS.Valid {
		parts = append(parts, p.TS.Timestamp.UTC().Format(tsHashFormat))
	}
	if p.UserID.Valid {
		parts = append(parts, strconv.FormatInt(p.UserID.Int64, 10))
	}
	if p.DestinationID.Valid {
		parts = append(parts, strconv.FormatInt(p.DestinationID.Int64, 10))
	}

	sum := md5.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// IngestPurchases copies raw purchase events into bronze rows, attaching the
// ingestion timestamp, source identifier and content fingerprint. No rows are
// filtered and no values are coerced.
func IngestPurchases(raw []warehouse.RawPurchaseRow, ingestedAt time.Time, sourceTable string) []warehouse.BronzePurchaseRow {
	rows := make([]warehouse.BronzePurchaseRow, 0, len(raw))
	for _, p := range raw {
		rows = append(rows, warehouse.BronzePurchaseRow{
			ID:            p.ID,
			TS:            p.TS,
			UserID:        p.UserID,
			DestinationID: p.DestinationID,
			Clicked:       p.Clicked,
			Purchased:     p.Purchased,
			BookingDate:   p.BookingDate,
			Price:         p.Price,
			UserLatitude:  p.UserLatitude,
			UserLongitude: p.UserLongitude,
			IngestedAt:    ingestedAt,
			SourceTable:   sourceTable,
			RowHash:       Fingerprint(p),
		})
	}
	return rows
}

// IngestUsers copies raw user feature snapshots into bronze rows with lineage
// metadata attached.
func IngestUsers(raw []warehouse.RawUserRow, ingestedAt time.Time, sourceTable string) []warehouse.BronzeUserRow {
	rows := make([]warehouse.BronzeUserRow, 0, len(raw))
	for _, u := range raw {
		rows = append(rows, warehouse.BronzeUserRow{
			UserID:          u.UserID,
			TS:              u.TS,
			MeanPrice7D:     u.MeanPrice7D,
			Last6MPurchases: u.Last6MPurchases,
			UserLongitude:   u.UserLongitude,
			UserLatitude:    u.UserLatitude,
			IngestedAt:      ingestedAt,
			SourceTable:     sourceTable,
		})
	}
	return rows
}

// IngestDestinations copies raw destination records into bronze rows with
// lineage metadata attached.
func IngestDestinations(raw []warehouse.RawDestinationRow, ingestedAt time.Time, sourceTable string) []warehouse.BronzeDestinationRow {
	rows := make([]warehouse.BronzeDestinationRow, 0, len(raw))
	for _, d := range raw {
		rows = append(rows, warehouse.BronzeDestinationRow{
			DestinationID:   d.DestinationID,
			DestinationName: d.Name,
			DestLatitude:    d.Latitude,
			DestLongitude:   d.Longitude,
			IngestedAt:      ingestedAt,
			SourceTable:     sourceTable,
		})
	}
	return rows
}
