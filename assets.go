package backdrop

import (
	_ "embed"

	"backdrop/misc"
)

var (
	//go:embed assets/theme.yaml
	defaultThemeYaml []byte
)

var defaultTheme Theme

func init() {
	var err error
	defaultTheme, err = ParseTheme(defaultThemeYaml)
	if err != nil {
		misc.ErrLogger.Fatalf("failed to load default theme : %v", err)
	}
}

// DefaultTheme returns colors of the portfolio site.
func DefaultTheme() Theme {
	return defaultTheme
}
