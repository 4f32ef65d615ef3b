package levelspec

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var levelsFS embed.FS

// DiskDir is where Load looks for level files before falling back to the
// embedded defaults, so levels can be edited without rebuilding.
const DiskDir = "levelspec"

// Load reads the named level file, preferring the on-disk copy.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return levelsFS.ReadFile(clean)
}

func withExt(name string) string {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return name
	}
	return name + ".yaml"
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, DiskDir+"/"); ok {
		return after
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(clean))
}
