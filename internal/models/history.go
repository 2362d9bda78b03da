package models

// HistoryEntry is one stored query in a session's history.
type HistoryEntry struct {
	Query      string      `json:"query"`
	Year       int         `json:"year"`
	RecordedAt string      `json:"recorded_at"`
	Days       []DayRecord `json:"days"`
}
