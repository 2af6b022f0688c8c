// Package migrations embeds the versioned schema so the binary can migrate itself.
package migrations

import "embed"

//go:embed *.sql atlas.sum
var FS embed.FS
