package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var assetFS embed.FS

// FS returns the embedded asset tree. Level files live under levels/.
func FS() fs.FS {
	return assetFS
}
