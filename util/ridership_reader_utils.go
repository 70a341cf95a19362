package util

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ttc-rider-server/models"
)

// ReadRidershipCSV loads the long-format ridership spreadsheet export.
// Expected header: station,line,day_type,hour,riders (any column order).
// Rows with a blank/NaN riders value or no station are skipped rather
// than failing the import; hour stays raw text for the shared
// normalizer.
func ReadRidershipCSV(filePath string) ([]models.RidershipRow, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open ridership csv %q: %w", filePath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"station", "line", "day_type", "hour", "riders"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("ridership csv missing column %q", required)
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv rows: %w", err)
	}

	var rows []models.RidershipRow
	for _, record := range records {
		field := func(name string) string {
			i := col[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		station := field("station")
		ridersText := field("riders")
		if station == "" || ridersText == "" || strings.EqualFold(ridersText, "nan") {
			continue
		}
		riders, err := strconv.ParseFloat(strings.ReplaceAll(ridersText, ",", ""), 64)
		if err != nil {
			continue
		}

		rows = append(rows, models.RidershipRow{
			Station: station,
			Line:    field("line"),
			DayType: field("day_type"),
			HourRaw: field("hour"),
			Riders:  riders,
		})
	}
	return rows, nil
}

// ReadCurrentConditionsFromJSON loads a CurrentConditions fixture from disk.
func ReadCurrentConditionsFromJSON(filePath string) (*models.CurrentConditions, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var conditions models.CurrentConditions
	if err := json.Unmarshal(data, &conditions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CurrentConditions: %w", err)
	}
	return &conditions, nil
}
