package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"keychain-backend/internal/model"
)

// The catalog is closed: only fonts shipped in the fonts directory are ever
// rendered, regardless of what the request asks for.
var catalog = map[string]string{
	"Pacifico:style=Regular": "Pacifico-Regular.ttf",
	"Lobster:style=Regular":  "Lobster-Regular.ttf",
}

// Resolver maps font keys to font files inside a fixed directory.
type Resolver struct {
	dir     string
	entries map[string]string
}

func NewResolver(dir string) *Resolver {
	return &Resolver{dir: dir, entries: catalog}
}

// Resolve returns the bare font filename for key. The rendering engine
// resolves the filename against the fonts directory on its own search path,
// so no path is ever returned. A key outside the catalog is a client error;
// a catalog entry whose file is missing is a deployment fault.
func (r *Resolver) Resolve(key string) (string, error) {
	file, ok := r.entries[key]
	if !ok {
		return "", model.NewPipelineError(model.KindUnknownFont,
			fmt.Sprintf("font %q is not available", key), "")
	}
	if _, err := os.Stat(filepath.Join(r.dir, file)); err != nil {
		return "", model.NewPipelineError(model.KindMissingFontAsset,
			fmt.Sprintf("font file %q not found in fonts directory", file), err.Error())
	}
	return file, nil
}

// DisplayName returns the family portion of a font key, e.g.
// "Pacifico:style=Regular" -> "Pacifico".
func DisplayName(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
