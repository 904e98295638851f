package services

import (
	"errors"
	"strings"
	"time"
)

const exportDateLayout = "2006-01-02"

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
)

// ExportRange bounds an export by calendar day. To is exclusive: it points at
// the start of the day after the requested last day.
type ExportRange struct {
	From *time.Time
	To   *time.Time
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// ParseExportRange reads optional YYYY-MM-DD bounds. Both days are inclusive.
func ParseExportRange(rawFrom string, rawTo string, location *time.Location) (ExportRange, error) {
	fromRaw := strings.TrimSpace(rawFrom)
	toRaw := strings.TrimSpace(rawTo)
	if location == nil {
		location = time.UTC
	}

	exportRange := ExportRange{}
	if fromRaw != "" {
		parsedFrom, err := time.ParseInLocation(exportDateLayout, fromRaw, location)
		if err != nil {
			return ExportRange{}, ErrExportFromDateInvalid
		}
		from := DateAtLocation(parsedFrom, location)
		exportRange.From = &from
	}

	if toRaw != "" {
		parsedTo, err := time.ParseInLocation(exportDateLayout, toRaw, location)
		if err != nil {
			return ExportRange{}, ErrExportToDateInvalid
		}
		to := DateAtLocation(parsedTo, location).AddDate(0, 0, 1)
		exportRange.To = &to
	}

	if exportRange.From != nil && exportRange.To != nil && !exportRange.To.After(*exportRange.From) {
		return ExportRange{}, ErrExportRangeInvalid
	}
	return exportRange, nil
}
