package fonts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keychain-backend/internal/model"
)

func TestResolveKnownFont(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Pacifico-Regular.ttf"), []byte("ttf"), 0o644))

	r := NewResolver(dir)
	file, err := r.Resolve("Pacifico:style=Regular")
	require.NoError(t, err)
	assert.Equal(t, "Pacifico-Regular.ttf", file)
	// bare filename, never a path
	assert.False(t, strings.ContainsAny(file, `/\`))
}

func TestResolveUnknownFont(t *testing.T) {
	r := NewResolver(t.TempDir())

	for _, key := range []string{
		"NonexistentFont",
		"Comic Sans:style=Regular",
		"",
		"../../../etc/passwd",
	} {
		_, err := r.Resolve(key)
		require.Error(t, err, "key %q", key)
		assert.Equal(t, model.KindUnknownFont, model.KindOf(err))
	}
}

func TestResolveMissingFontAsset(t *testing.T) {
	// Catalog entry exists but the backing file does not: a deployment
	// fault, not a client error.
	r := NewResolver(t.TempDir())
	_, err := r.Resolve("Lobster:style=Regular")
	require.Error(t, err)
	assert.Equal(t, model.KindMissingFontAsset, model.KindOf(err))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Pacifico", DisplayName("Pacifico:style=Regular"))
	assert.Equal(t, "Lobster", DisplayName("Lobster:style=Regular"))
	assert.Equal(t, "NoStyle", DisplayName("NoStyle"))
}
