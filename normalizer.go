/*
 * Copyright (c) 2020 Siemens AG
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of
 * this software and associated documentation files (the "Software"), to deal in
 * the Software without restriction, including without limitation the rights to
 * use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
 * the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
 * FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
 * COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
 * IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
 * CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 *
 * Author(s): Jonas Plum
 */

package wxtimeline

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/forensicanalysis/wxtimeline/appid"
	"github.com/forensicanalysis/wxtimeline/guidmap"
	"github.com/forensicanalysis/wxtimeline/payload"
)

// RowErrorPolicy decides how a table scan continues after a row fails to decode.
type RowErrorPolicy string

const (
	// AbortTable stops the table scan at the first failing row. Rows decoded
	// before the failure are kept.
	AbortTable RowErrorPolicy = "abort"
	// SkipRow drops the failing row and continues with the next one.
	SkipRow RowErrorPolicy = "skip"
)

// ParseRowErrorPolicy parses "abort" or "skip". The empty string is AbortTable.
func ParseRowErrorPolicy(s string) (RowErrorPolicy, error) {
	switch RowErrorPolicy(s) {
	case "", AbortTable:
		return AbortTable, nil
	case SkipRow:
		return SkipRow, nil
	default:
		return "", errors.Errorf("unknown row error policy %q", s)
	}
}

// Options configure a Normalizer.
type Options struct {
	// Names resolves GUIDs, the built-in known folders are used if nil.
	Names     *guidmap.Table
	RowErrors RowErrorPolicy
	Logger    zerolog.Logger
}

// TableResult describes the scan of a single table.
type TableResult struct {
	Table   string
	Schema  Schema
	Rows    int
	Entries int
	Skipped int
	Err     error
}

// Missing reports whether the table does not exist in the store.
func (r TableResult) Missing() bool {
	return errors.Is(r.Err, ErrTableMissing)
}

// Timeline holds the normalized entries of the three tables. The sequences
// are independent and keep the storage order.
type Timeline struct {
	Operations []Entry
	PackageIDs []PackageEntry
	Activities []Entry

	Results []TableResult
}

// Result returns the scan result of table.
func (t *Timeline) Result(table string) (TableResult, bool) {
	for _, result := range t.Results {
		if result.Table == table {
			return result, true
		}
	}
	return TableResult{}, false
}

// The Normalizer turns raw activities cache rows into entries.
type Normalizer struct {
	names   *guidmap.Table
	decoder *payload.Decoder
	policy  RowErrorPolicy
	log     zerolog.Logger
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts Options) *Normalizer {
	names := opts.Names
	if names == nil {
		names = guidmap.Default()
	}
	policy := opts.RowErrors
	if policy == "" {
		policy = AbortTable
	}
	return &Normalizer{
		names:   names,
		decoder: payload.NewDecoder(names),
		policy:  policy,
		log:     opts.Logger,
	}
}

// Run scans all tables of source. Every table is attempted, failures are
// reported per table in the Timeline's Results.
func (n *Normalizer) Run(source Source) *Timeline {
	timeline := &Timeline{}

	result := n.scan(source, TableActivityOperation, func(row Row, schema Schema) error {
		entry, err := n.operation(row, schema)
		if err != nil {
			return err
		}
		timeline.Operations = append(timeline.Operations, entry)
		return nil
	})
	timeline.Results = append(timeline.Results, result)

	result = n.scan(source, TablePackageID, func(row Row, _ Schema) error {
		entry, err := n.packageID(row)
		if err != nil {
			return err
		}
		timeline.PackageIDs = append(timeline.PackageIDs, entry)
		return nil
	})
	timeline.Results = append(timeline.Results, result)

	result = n.scan(source, TableActivity, func(row Row, schema Schema) error {
		entry, err := n.activity(row, schema)
		if err != nil {
			return err
		}
		timeline.Activities = append(timeline.Activities, entry)
		return nil
	})
	timeline.Results = append(timeline.Results, result)

	return timeline
}

func (n *Normalizer) scan(source Source, table string, fn func(row Row, schema Schema) error) TableResult {
	result := TableResult{Table: table}
	logger := n.log.With().Str("table", table).Logger()

	columns, err := source.Columns(table)
	if err != nil {
		result.Err = err
		n.logTableError(logger, err)
		return result
	}
	result.Schema = DetectSchema(columns)

	count, err := source.Count(table)
	if err != nil {
		result.Err = err
		n.logTableError(logger, err)
		return result
	}
	logger.Info().Int("count", count).Int("schema", result.Schema.Version).Msg("entries found")

	err = source.Scan(table, func(row Row) error {
		result.Rows++
		logger.Trace().Int("row", result.Rows).Msg("decoding row")
		if err := fn(row, result.Schema); err != nil {
			rowErr := &RowError{Table: table, Row: result.Rows, Err: err}
			if n.policy == SkipRow {
				result.Skipped++
				logger.Warn().Err(rowErr).Msg("skipping row")
				return nil
			}
			return rowErr
		}
		result.Entries++
		return nil
	})
	if err != nil {
		result.Err = err
		n.logTableError(logger, err)
	}
	return result
}

func (n *Normalizer) logTableError(logger zerolog.Logger, err error) {
	if errors.Is(err, ErrTableMissing) {
		logger.Error().Msg("table does not exist")
		return
	}
	logger.Error().Err(err).Msg("error processing table")
}

func (n *Normalizer) executable(row Row) (string, error) {
	ids, err := appid.Parse(row.Bytes("AppId"))
	if err != nil {
		return "", err
	}
	return appid.Resolve(ids, n.names)
}

func (n *Normalizer) decodePayloads(row Row) (payload.Decoded, string, error) {
	decoded, err := n.decoder.Decode(row.Bytes("Payload"))
	if err != nil {
		return payload.Decoded{}, "", err
	}
	clipboard, err := n.decoder.DecodeClipboard(row.Bytes("ClipboardPayload"))
	if err != nil {
		return payload.Decoded{}, "", err
	}
	return decoded, clipboard, nil
}

// entry builds the fields shared by activities and operations.
func (n *Normalizer) entry(table string, row Row, schema Schema) (Entry, error) {
	id, err := readID(row, "Id")
	if err != nil {
		return Entry{}, err
	}

	executable, err := n.executable(row)
	if err != nil {
		return Entry{}, err
	}

	decoded, clipboard, err := n.decodePayloads(row)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Table:            table,
		ID:               id,
		ActivityType:     NewActivityType(row.Int64("ActivityType")),
		Executable:       executable,
		AppID:            readText(row, "AppId"),
		DisplayText:      decoded.DisplayText,
		ContentInfo:      decoded.ContentInfo,
		Description:      decoded.Description,
		Payload:          decoded.Text,
		ClipboardPayload: clipboard,
		DevicePlatform:   decoded.DevicePlatform,
		TimeZone:         decoded.TimeZone,
		ActiveDuration:   decoded.ActiveDuration,
		ReportingApp:     decoded.ReportingApp,

		StartTime:                    epochColumn(row, "StartTime"),
		EndTime:                      epochColumn(row, "EndTime"),
		LastModifiedTime:             epochColumn(row, "LastModifiedTime"),
		LastModifiedOnClient:         epochColumn(row, "LastModifiedOnClient"),
		OriginalLastModifiedOnClient: epochColumn(row, "OriginalLastModifiedOnClient"),
		ExpirationTime:               epochColumn(row, "ExpirationTime"),
		CreatedInCloud:               epochColumn(row, "CreatedInCloud"),
		LocalExpirationTime:          optionalEpochColumn(row, "LocalExpirationTime", schema.LocalExpiration),

		ETag:             row.Int64("ETag"),
		PackageIDHash:    readText(row, "PackageIdHash"),
		PlatformDeviceID: readText(row, "PlatformDeviceId"),

		DdsDeviceID:     readOptionalText(row, "DdsDeviceId", schema.SecondaryDeviceID),
		UserActionState: readOptionalInt(row, "UserActionState", schema.UserActionState),
		IsRead:          readOptionalInt(row, "IsRead", schema.UserActionState),
		GroupItems:      readOptionalText(row, "GroupItems", schema.GroupItems),
	}
	entry.Duration = duration(entry.StartTime, entry.EndTime)

	if decoded.Binary() {
		n.log.Trace().Str("table", table).Str("id", id).Msg("binary payload")
	}
	if !entry.ActivityType.Recognized() {
		n.log.Debug().Str("table", table).Str("id", id).Int64("code", entry.ActivityType.Code).Msg("unrecognized activity type")
	}
	return entry, nil
}

func (n *Normalizer) activity(row Row, schema Schema) (Entry, error) {
	entry, err := n.entry(TableActivity, row, schema)
	if err != nil {
		return Entry{}, err
	}
	entry.IsLocalOnly = readBool(row, "IsLocalOnly")
	return entry, nil
}

func (n *Normalizer) operation(row Row, schema Schema) (Entry, error) {
	entry, err := n.entry(TableActivityOperation, row, schema)
	if err != nil {
		return Entry{}, err
	}
	entry.OperationOrder = row.Int64("OperationOrder")
	entry.OperationType = row.Int64("OperationType")
	entry.CreatedTime = epochColumn(row, "CreatedTime")
	entry.OperationExpirationTime = epochColumn(row, "OperationExpirationTime")
	return entry, nil
}

func (n *Normalizer) packageID(row Row) (PackageEntry, error) {
	id, err := readID(row, "ActivityId")
	if err != nil {
		return PackageEntry{}, err
	}
	name := readText(row, "PackageName")
	return PackageEntry{
		ID:                    id,
		Platform:              platformName(readText(row, "Platform")),
		Name:                  name,
		AdditionalInformation: appid.AdditionalInformation(name, n.names),
		Expires:               epochColumn(row, "ExpirationTime"),
	}, nil
}
