package sink

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"orderbot/pkg/config"
)

const defaultWriteRange = "A:F"

// SheetsSink appends rows to a Google Sheet.
type SheetsSink struct {
	svc           *sheets.Service
	spreadsheetID string
	writeRange    string
}

// NewSheetsFactory builds Sheets sinks from service-account
// credentials. Missing credentials or an unreachable API surface as a
// factory error at submission time.
func NewSheetsFactory(cfg config.SheetsConfig) Factory {
	return func(ctx context.Context) (RowSink, error) {
		if cfg.SpreadsheetID == "" {
			return nil, errors.New("sheets: spreadsheet_id is not configured")
		}
		if cfg.CredentialsFile == "" {
			return nil, errors.New("sheets: credentials_file is not configured")
		}

		svc, err := sheets.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
		if err != nil {
			return nil, fmt.Errorf("sheets: failed to create service: %w", err)
		}

		writeRange := cfg.WriteRange
		if writeRange == "" {
			writeRange = defaultWriteRange
		}

		return &SheetsSink{
			svc:           svc,
			spreadsheetID: cfg.SpreadsheetID,
			writeRange:    writeRange,
		}, nil
	}
}

// AppendRow appends one row to the configured range.
func (s *SheetsSink) AppendRow(ctx context.Context, row []string) error {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{values}}

	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.writeRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append failed: %w", err)
	}
	return nil
}
