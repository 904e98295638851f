package services

import (
	"strconv"
	"time"

	"github.com/terraincognita07/wellnest/internal/models"
)

const exportTimestampLayout = "2006-01-02 15:04"

var ExportCSVHeaders = []string{
	"Recorded at",
	"Heart rate (BPM)",
	"Systolic (mmHg)",
	"Diastolic (mmHg)",
	"Blood sugar (mg/dL)",
}

type ExportVitalsReader interface {
	ListRange(userID uint, from *time.Time, to *time.Time) ([]models.VitalsLog, error)
}

type ExportService struct {
	vitals   ExportVitalsReader
	location *time.Location
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

type ExportJSONEntry struct {
	RecordedAt string `json:"recorded_at"`
	HeartRate  *int   `json:"heart_rate"`
	Systolic   *int   `json:"bp_systolic"`
	Diastolic  *int   `json:"bp_diastolic"`
	BloodSugar *int   `json:"blood_sugar"`
}

func NewExportService(vitals ExportVitalsReader, location *time.Location) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{vitals: vitals, location: location}
}

func (service *ExportService) BuildSummary(userID uint, exportRange ExportRange) (ExportSummary, error) {
	logs, err := service.vitals.ListRange(userID, exportRange.From, exportRange.To)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(logs) == 0 {
		return ExportSummary{}, nil
	}

	return ExportSummary{
		TotalEntries: len(logs),
		HasData:      true,
		DateFrom:     DateAtLocation(logs[0].RecordedAt, service.location).Format(exportDateLayout),
		DateTo:       DateAtLocation(logs[len(logs)-1].RecordedAt, service.location).Format(exportDateLayout),
	}, nil
}

func (service *ExportService) BuildJSONEntries(userID uint, exportRange ExportRange) ([]ExportJSONEntry, error) {
	logs, err := service.vitals.ListRange(userID, exportRange.From, exportRange.To)
	if err != nil {
		return nil, err
	}

	entries := make([]ExportJSONEntry, 0, len(logs))
	for _, entry := range logs {
		entries = append(entries, ExportJSONEntry{
			RecordedAt: entry.RecordedAt.In(service.location).Format(time.RFC3339),
			HeartRate:  entry.HeartRate,
			Systolic:   entry.Systolic,
			Diastolic:  entry.Diastolic,
			BloodSugar: entry.BloodSugar,
		})
	}
	return entries, nil
}

// BuildCSVRows returns one row per reading in ExportCSVHeaders order. Missing
// values are empty cells.
func (service *ExportService) BuildCSVRows(userID uint, exportRange ExportRange) ([][]string, error) {
	logs, err := service.vitals.ListRange(userID, exportRange.From, exportRange.To)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(logs))
	for _, entry := range logs {
		rows = append(rows, []string{
			entry.RecordedAt.In(service.location).Format(exportTimestampLayout),
			csvOptionalInt(entry.HeartRate),
			csvOptionalInt(entry.Systolic),
			csvOptionalInt(entry.Diastolic),
			csvOptionalInt(entry.BloodSugar),
		})
	}
	return rows, nil
}

func csvOptionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}
