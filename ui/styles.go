// Package ui provides the graphical user interface for rfkill-panel.
// This file contains stylesheet loading and the base panel styles.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/rfkill-panel/common"
)

// baseCSS makes the window itself transparent so only the rounded
// panel background is painted. The user stylesheet is applied on top.
var baseCSS = fmt.Sprintf(`
window.rfkill-panel {
    background-color: transparent;
    box-shadow: none;
}

.rfkill-panel .panel {
    border-radius: 16px;
    background-color: alpha(@window_bg_color, %.2f);
    padding: %dpx;
}

.rfkill-panel .close-button {
    padding: 2px;
}

.rfkill-panel switch {
    margin-top: 4px;
}
`, common.BackgroundAlpha, common.PanelBorder)

// ReadStylesheet locates and reads the panel stylesheet. Relative paths
// are searched in the working directory, next to the executable and in
// the config directory.
func ReadStylesheet(name string) (string, error) {
	path, ok := common.FindFile(name)
	if !ok {
		return "", fmt.Errorf("%w: %s not found", common.ErrStylesheet, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStylesheet, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s is empty", common.ErrStylesheet, path)
	}

	common.LogDebug("Using stylesheet %s", path)
	return string(data), nil
}

// LoadStyles installs the base styles and the user stylesheet for the
// default display. Should be called during application activation.
func LoadStyles(userCSS string) {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	for _, css := range []string{baseCSS, userCSS} {
		provider := gtk.NewCSSProvider()
		provider.LoadFromString(css)

		gtk.StyleContextAddProviderForDisplay(
			display,
			provider,
			gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
		)
	}
}
