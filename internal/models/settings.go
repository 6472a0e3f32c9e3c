package models

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeCustom = "custom"
)

// SettingsID is the fixed id of the singleton settings record.
const SettingsID = "00000000-0000-0000-0000-000000000001"

type AppSettings struct {
	Meta
	PassphraseHash string `json:"passphraseHash"`
	ThemeMode      string `json:"themeMode"`
	ProfileName    string `json:"profileName"`
	ProfileEmail   string `json:"profileEmail"`
}

func IsThemeMode(value string) bool {
	switch value {
	case ThemeLight, ThemeDark, ThemeCustom:
		return true
	}
	return false
}
