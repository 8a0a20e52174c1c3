// Package report publishes audit run summaries as JSON objects in a Cloud
// Storage bucket, one object per run.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/storage"

	"github.com/henrykw/travel-medallion/internal/warehouse"
)

// Document is the JSON payload written for one audit run.
type Document struct {
	RunID       string                     `json:"run_id"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Checks      int                        `json:"checks"`
	Passed      int                        `json:"passed"`
	Warnings    int                        `json:"warnings"`
	Failures    int                        `json:"failures"`
	Results     []warehouse.AuditResultRow `json:"results"`
}

// BuildDocument assembles the report payload with per-status tallies.
func BuildDocument(runID string, generatedAt time.Time, results []warehouse.AuditResultRow) Document {
	doc := Document{
		RunID:       runID,
		GeneratedAt: generatedAt,
		Checks:      len(results),
		Results:     results,
	}
	for _, r := range results {
		switch r.Status {
		case warehouse.StatusWarn:
			doc.Warnings++
		case warehouse.StatusFail:
			doc.Failures++
		default:
			doc.Passed++
		}
	}
	return doc
}

// ObjectName returns the bucket object path for a run's report.
func ObjectName(runID string) string {
	return fmt.Sprintf("audit-reports/%s.json", runID)
}

// Publisher uploads audit reports to a GCS bucket.
type Publisher struct {
	bucket string
	now    func() time.Time
}

// NewPublisher creates a publisher for the given bucket name.
func NewPublisher(bucket string) *Publisher {
	return &Publisher{bucket: bucket, now: time.Now}
}

// Publish uploads the report for one audit run. It assumes Application
// Default Credentials are configured (gcloud auth application-default login).
func (p *Publisher) Publish(ctx context.Context, runID string, results []warehouse.AuditResultRow) error {
	doc := BuildDocument(runID, p.now().UTC(), results)
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("Publish: encode report: %w", err)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("Publish: create storage client: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := client.Bucket(p.bucket).Object(ObjectName(runID)).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(payload); err != nil {
		_ = w.Close()
		return fmt.Errorf("Publish: write report object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("Publish: finalize upload: %w", err)
	}
	return nil
}
