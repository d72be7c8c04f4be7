package export

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// SheetsSink appends rows to one worksheet of a Google Spreadsheet using a
// service-account credentials file.
type SheetsSink struct {
	svc           *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewSheetsSink authenticates against the Sheets API and makes sure the
// worksheet carries the header row when it is empty.
func NewSheetsSink(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*SheetsSink, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return newSheetsSink(ctx, svc, spreadsheetID, sheetName)
}

// newSheetsSink wires a sink onto an existing service. Tests build the service
// against a local stub endpoint.
func newSheetsSink(ctx context.Context, svc *sheets.Service, spreadsheetID, sheetName string) (*SheetsSink, error) {
	s := &SheetsSink{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     fmt.Sprintf("%s!A:O", sheetName),
	}
	if err := s.ensureHeader(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SheetsSink) ensureHeader(ctx context.Context) error {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read sheet: %w", err)
	}
	if len(resp.Values) > 0 {
		return nil
	}
	return s.AppendRow(ctx, Header())
}

// AppendRow appends one row after the last non-empty row of the sheet.
func (s *SheetsSink) AppendRow(ctx context.Context, fields []string) error {
	values := make([]interface{}, len(fields))
	for i, f := range fields {
		values[i] = f
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{values}}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.readRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

// Clear removes all data rows. The header row is rewritten unless
// keepHeader is false.
func (s *SheetsSink) Clear(ctx context.Context, keepHeader bool) error {
	_, err := s.svc.Spreadsheets.Values.
		Clear(s.spreadsheetID, s.readRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("clear sheet: %w", err)
	}
	if !keepHeader {
		return nil
	}
	return s.AppendRow(ctx, Header())
}
