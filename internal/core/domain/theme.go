package domain

import "sort"

const (
	ThemeCodeberg      = "codeberg"
	ThemeCodebergLight = "codeberg_light"
	ThemeGitHub        = "github"
	ThemeGitHubLight   = "github_light"

	DefaultThemeKey = ThemeCodeberg
	LevelCount      = 5
)

// Theme is a palette for the rendered graph. Levels[0] is the "no activity"
// colour, Levels[4] the highest bucket.
type Theme struct {
	Bg      string             `json:"bg"`
	Text    string             `json:"text"`
	Subtext string             `json:"subtext"`
	Border  string             `json:"border"`
	Levels  [LevelCount]string `json:"levels"`
}

var themes = map[string]Theme{
	ThemeCodeberg: {
		Bg: "#1e1e2e", Text: "#cdd6f4", Subtext: "#a6adc8", Border: "#313244",
		Levels: [LevelCount]string{"#313244", "#7d3a1e", "#c4592c", "#e8733a", "#f5a06e"},
	},
	ThemeCodebergLight: {
		Bg: "#ffffff", Text: "#1e1e2e", Subtext: "#6c6f85", Border: "#e0e0e0",
		Levels: [LevelCount]string{"#ebedf0", "#f5c9a8", "#e8a86a", "#d4722d", "#a84a0e"},
	},
	ThemeGitHub: {
		Bg: "#0d1117", Text: "#e6edf3", Subtext: "#8b949e", Border: "#21262d",
		Levels: [LevelCount]string{"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353"},
	},
	ThemeGitHubLight: {
		Bg: "#ffffff", Text: "#24292f", Subtext: "#57606a", Border: "#d0d7de",
		Levels: [LevelCount]string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"},
	},
}

// LookupTheme returns the theme registered under key, falling back to the
// default theme for unknown keys. The second value reports whether key was known.
func LookupTheme(key string) (Theme, bool) {
	if t, ok := themes[key]; ok {
		return t, true
	}
	return themes[DefaultThemeKey], false
}

func ThemeKeys() []string {
	keys := make([]string, 0, len(themes))
	for k := range themes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
