package model

// Theme names accepted by the settings.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings is the persisted, process-wide user state. It is loaded once
// at startup and written back on every mutation.
type Settings struct {
	Name          string `json:"name"`
	DailyTarget   int64  `json:"dailyTarget"`
	Theme         string `json:"theme"`
	BalanceHidden bool   `json:"balanceHidden"`
}

// DefaultSettings returns the settings used when nothing is persisted
// yet, or when the persisted payload cannot be decoded.
func DefaultSettings() Settings {
	return Settings{
		Name:          "User",
		DailyTarget:   0,
		Theme:         ThemeLight,
		BalanceHidden: false,
	}
}

// Merge overlays non-zero fields from other onto s, mirroring how a
// restored backup updates settings without clearing unset fields.
func (s Settings) Merge(other Settings) Settings {
	merged := s
	if other.Name != "" {
		merged.Name = other.Name
	}
	if other.Theme != "" {
		merged.Theme = other.Theme
	}
	merged.DailyTarget = other.DailyTarget
	merged.BalanceHidden = other.BalanceHidden
	return merged
}
