package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
)

// tableRow adapts a parsed spreadsheet row to the BigQuery streaming insert
// API. An empty insert id lets the client generate one per row.
type tableRow map[string]bigquery.Value

// Save implements bigquery.ValueSaver.
func (r tableRow) Save() (map[string]bigquery.Value, string, error) {
	return r, "", nil
}

// InsertWarehouseRows streams parsed spreadsheet rows into the analytics
// table. Column names come from the spreadsheet header; the table schema is
// owned by the warehouse, not by this process.
func InsertWarehouseRows(ctx context.Context, bq *bigquery.Client, dataset, table string, rows []map[string]string) error {
	if len(rows) == 0 {
		return nil
	}

	savers := make([]tableRow, 0, len(rows))
	for _, row := range rows {
		tr := make(tableRow, len(row))
		for k, v := range row {
			tr[k] = v
		}
		savers = append(savers, tr)
	}

	if err := bq.Dataset(dataset).Table(table).Inserter().Put(ctx, savers); err != nil {
		return fmt.Errorf("insert %d rows into %s.%s: %w", len(savers), dataset, table, err)
	}
	return nil
}
