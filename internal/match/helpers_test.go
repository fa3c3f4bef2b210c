package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b-ciq/brandkit/internal/config"
	"github.com/b-ciq/brandkit/internal/inventory"
)

const fixtureJSON = `{
	"brand_guidelines": {
		"clear_space": "1/4 the height of the Q",
		"minimum_size": "70px height",
		"primary_green": "#229529"
	},
	"logos": {
		"ciq-1color-light": {
			"filename": "CIQ-logo-1color_blk.svg",
			"url": "https://assets.example.com/ciq/CIQ-logo-1color_blk.svg",
			"color_type": "1color", "color": "black", "background": "light"
		},
		"ciq-1color-dark": {
			"filename": "CIQ-logo-1color_wht.svg",
			"url": "https://assets.example.com/ciq/CIQ-logo-1color_wht.svg",
			"color_type": "1color", "color": "white", "background": "dark"
		},
		"ciq-2color-light": {
			"filename": "CIQ-logo-2color_light.svg",
			"url": "https://assets.example.com/ciq/CIQ-logo-2color_light.svg",
			"color_type": "2color", "background": "light"
		},
		"ciq-2color-dark": {
			"filename": "CIQ-logo-2color_dark.svg",
			"url": "https://assets.example.com/ciq/CIQ-logo-2color_dark.svg",
			"color_type": "2color", "background": "dark"
		},
		"ciq-green-light": {
			"filename": "CIQ-logo-green.svg",
			"url": "https://assets.example.com/ciq/CIQ-logo-green.svg",
			"color": "green", "background": "light"
		}
	},
	"fuzzball_logos": {
		"fuzzball-h-light": {
			"filename": "fuzzball-logo-h_blk.svg",
			"url": "https://assets.example.com/fuzzball/fuzzball-logo-h_blk.svg",
			"layout": "horizontal", "color": "black", "background": "light"
		},
		"fuzzball-h-dark": {
			"filename": "fuzzball-logo-h_wht.svg",
			"url": "https://assets.example.com/fuzzball/fuzzball-logo-h_wht.svg",
			"layout": "horizontal", "color": "white", "background": "dark"
		},
		"fuzzball-icon-light": {
			"filename": "fuzzball-icon_blk.svg",
			"url": "https://assets.example.com/fuzzball/fuzzball-icon_blk.svg",
			"layout": "icon", "color": "black", "background": "light"
		},
		"fuzzball-icon-dark": {
			"filename": "fuzzball-icon_wht.svg",
			"url": "https://assets.example.com/fuzzball/fuzzball-icon_wht.svg",
			"layout": "icon", "color": "white", "background": "dark",
			"guidance": "Use at small sizes; keep clear space around the mark."
		},
		"fuzzball-v-light": {
			"filename": "fuzzball-logo-v_blk.svg",
			"url": "https://assets.example.com/fuzzball/fuzzball-logo-v_blk.svg",
			"layout": "vertical", "color": "black", "background": "light"
		}
	},
	"warewulf-pro_logos": {
		"warewulf-h-dark": {
			"filename": "warewulf-pro-logo-h_wht.svg",
			"url": "https://assets.example.com/warewulf/warewulf-pro-logo-h_wht.svg",
			"layout": "horizontal", "color": "white", "background": "dark"
		},
		"warewulf-icon-dark": {
			"filename": "warewulf-pro-icon_wht.svg",
			"url": "https://assets.example.com/warewulf/warewulf-pro-icon_wht.svg",
			"layout": "icon", "color": "white", "background": "dark"
		}
	},
	"apptainer_logos": {
		"apptainer-h-light": {
			"filename": "apptainer-logo-h_blk.svg",
			"url": "https://assets.example.com/apptainer/apptainer-logo-h_blk.svg",
			"layout": "horizontal", "color": "black", "background": "light"
		}
	}
}`

func testInventory(t *testing.T) *inventory.Inventory {
	t.Helper()
	inv, skipped, err := inventory.DecodeInventory([]byte(fixtureJSON))
	require.NoError(t, err)
	require.Zero(t, skipped)
	return inv
}

func testMatchingConfig() config.MatchingConfig {
	return config.DefaultConfig().Matching
}
