package models

// Location is one store from the static registry.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// DayRecord is one calendar day's archived weather for a location.
// Pointer fields are nil when the upstream archive has no value for that day.
type DayRecord struct {
	Date      string   `json:"date"`
	Weekday   string   `json:"weekday"`
	TMax      *float64 `json:"tmax"`
	TMin      *float64 `json:"tmin"`
	PrecipMM  *float64 `json:"precip_mm"`
	WindKMH   *float64 `json:"wind_kmh"`
	CloudPct  int      `json:"cloud_pct"`
	Condition string   `json:"condition"`
}

// ConditionAll disables the condition check in FilterCriteria.
const ConditionAll = "ALL"

// FilterCriteria holds the per-request day thresholds. Nil numeric fields and
// an empty or "ALL" condition leave the corresponding check inactive.
type FilterCriteria struct {
	MinTMax     *float64 `json:"min_tmax"`
	MinPrecipMM *float64 `json:"min_precip_mm"`
	MinWindKMH  *float64 `json:"min_wind_kmh"`
	Condition   string   `json:"condition"`
}

// RankingEntry is one location's aggregate in a ranking sweep. MeanTMax is nil
// when the fetch failed or no day carried a max temperature.
type RankingEntry struct {
	Location string   `json:"location"`
	MeanTMax *float64 `json:"mean_tmax"`
	Lat      float64  `json:"lat"`
	Lon      float64  `json:"lon"`
}

// Ranking is the result of one full sweep over the registry.
type Ranking struct {
	Entries   []RankingEntry `json:"entries"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
}
