package assets

import (
	"embed"
)

// Landing page templates
//
//go:embed templates
var Templates embed.FS
