package dto

// ThemeResponse is the active theme tag and whether it came from an
// explicit, persisted user choice.
type ThemeResponse struct {
	Theme     string `json:"theme"`
	Persisted bool   `json:"persisted"`
}

// ChangeThemeRequest selects a theme explicitly.
type ChangeThemeRequest struct {
	Theme string `json:"theme"`
}

// SystemPreferenceRequest reports the OS color-scheme preference.
type SystemPreferenceRequest struct {
	PrefersDark bool `json:"prefers_dark"`
}
