package models

// Placeholder is shown for every AppInfo field until the device answers.
const Placeholder = "?"

// AppInfo is the status snapshot reported by the device at GET /status/.
type AppInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	EspIDF      string `json:"esp_idf"`
	CompileDate string `json:"compile_date"`
	CompileTime string `json:"compile_time"`
	Elapse      string `json:"elapse"` // uptime, e.g. "0 day(s) 01:02:03"
}

// PlaceholderAppInfo returns the record displayed before the first successful fetch.
func PlaceholderAppInfo() AppInfo {
	return AppInfo{
		Name:        Placeholder,
		Version:     Placeholder,
		EspIDF:      Placeholder,
		CompileDate: Placeholder,
		CompileTime: Placeholder,
		Elapse:      Placeholder,
	}
}
