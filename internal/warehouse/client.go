package warehouse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"

	"github.com/henrykw/travel-medallion/internal/config"
)

// Client wraps a BigQuery client with the resolved run configuration.
// All table reads and replaces the pipeline performs go through it.
type Client struct {
	bq  *bigquery.Client
	cfg config.Config
}

// NewClient creates a warehouse client for the configured project.
func NewClient(ctx context.Context, cfg config.Config) (*Client, error) {
	bq, err := bigquery.NewClient(ctx, cfg.Project)
	if err != nil {
		return nil, fmt.Errorf("warehouse.NewClient: creating bigquery client: %w", err)
	}
	return &Client{bq: bq, cfg: cfg}, nil
}

// Close releases the underlying BigQuery client.
func (c *Client) Close() error {
	return c.bq.Close()
}

// sourceRef renders a fully qualified source table reference for SQL.
func (c *Client) sourceRef(table string) string {
	return fmt.Sprintf("`%s.%s.%s`", c.cfg.Project, c.cfg.SourceDataset, table)
}

// targetRef renders a fully qualified target table reference for SQL.
func (c *Client) targetRef(table string) string {
	return fmt.Sprintf("`%s.%s.%s`", c.cfg.Project, c.cfg.TargetDataset, table)
}

// EnsureTargetDataset creates the target dataset if it does not exist yet.
func (c *Client) EnsureTargetDataset(ctx context.Context) error {
	ds := c.bq.Dataset(c.cfg.TargetDataset)
	_, err := ds.Metadata(ctx)
	if err == nil {
		return nil
	}
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != 404 {
		return fmt.Errorf("EnsureTargetDataset: reading metadata for %q: %w", c.cfg.TargetDataset, err)
	}
	meta := &bigquery.DatasetMetadata{
		Name:        c.cfg.TargetDataset,
		Description: "Medallion Architecture Data Engineering Pipeline - Bronze, Silver, Gold layers for travel data analytics",
	}
	if err := ds.Create(ctx, meta); err != nil {
		return fmt.Errorf("EnsureTargetDataset: creating dataset %q: %w", c.cfg.TargetDataset, err)
	}
	return nil
}

// queryRows runs a query and scans every result row into T.
func queryRows[T any](ctx context.Context, c *Client, sql string) ([]T, error) {
	q := c.bq.Query(sql)
	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("queryRows: reading query: %w", err)
	}

	var rows []T
	for {
		var row T
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("queryRows: iterating: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// queryCount runs a query whose single result column is an INT64 count.
func (c *Client) queryCount(ctx context.Context, sql string) (int64, error) {
	type countRow struct {
		N int64 `bigquery:"n"`
	}
	rows, err := queryRows[countRow](ctx, c, sql)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("queryCount: query returned no rows")
	}
	return rows[0].N, nil
}

// replaceRows atomically replaces the full contents of a target table with
// the given rows. The rows are staged as newline-delimited JSON and applied
// through a truncating load job, so readers see either the previous table
// or the complete new one. Table and column documentation is applied after
// the load succeeds.
func replaceRows[T any](ctx context.Context, c *Client, table string, rows []T) error {
	var sample T
	schema, err := bigquery.InferSchema(sample)
	if err != nil {
		return fmt.Errorf("replaceRows: inferring schema for %q: %w", table, err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for i, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("replaceRows: encoding row %d for %q: %w", i, table, err)
		}
	}

	src := bigquery.NewReaderSource(&buf)
	src.SourceFormat = bigquery.JSON
	src.Schema = schema

	loader := c.bq.Dataset(c.cfg.TargetDataset).Table(table).LoaderFrom(src)
	loader.WriteDisposition = bigquery.WriteTruncate
	loader.CreateDisposition = bigquery.CreateIfNeeded

	job, err := loader.Run(ctx)
	if err != nil {
		return fmt.Errorf("replaceRows: starting load for %q: %w", table, err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("replaceRows: waiting for load of %q: %w", table, err)
	}
	if err := status.Err(); err != nil {
		return fmt.Errorf("replaceRows: load of %q failed: %w", table, err)
	}

	if err := c.applyTableDocs(ctx, table); err != nil {
		return err
	}
	return nil
}

// applyTableDocs sets the table description, labels and column descriptions
// registered for a derived table. Tables without registered docs are left
// untouched.
func (c *Client) applyTableDocs(ctx context.Context, table string) error {
	docs, ok := tableDocs[table]
	if !ok {
		return nil
	}

	tbl := c.bq.Dataset(c.cfg.TargetDataset).Table(table)
	meta, err := tbl.Metadata(ctx)
	if err != nil {
		return fmt.Errorf("applyTableDocs: reading metadata for %q: %w", table, err)
	}

	update := bigquery.TableMetadataToUpdate{
		Description: docs.Description,
	}
	for k, v := range docs.Labels {
		update.SetLabel(k, v)
	}
	if len(docs.Columns) > 0 {
		schema := make(bigquery.Schema, len(meta.Schema))
		copy(schema, meta.Schema)
		for _, field := range schema {
			if desc, ok := docs.Columns[field.Name]; ok {
				field.Description = desc
			}
		}
		update.Schema = schema
	}

	if _, err := tbl.Update(ctx, update, meta.ETag); err != nil {
		return fmt.Errorf("applyTableDocs: updating metadata for %q: %w", table, err)
	}
	return nil
}
