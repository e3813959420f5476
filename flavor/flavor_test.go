package flavor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProviderNeverReturnsEmptyDecor(t *testing.T) {
	p := Default()

	assert.NotEmpty(t, p.Prefix())
	assert.NotEmpty(t, p.Title())
	assert.NotEmpty(t, p.Signature())
	assert.NotEmpty(t, p.Opening())
	assert.NotEmpty(t, p.Closing())
}

func TestMessageFormatsArguments(t *testing.T) {
	p := Default()

	msg := p.Message("purge", 12)
	assert.NotEmpty(t, msg)
	assert.Contains(t, msg, "12")
}

func TestMessageUnknownBankIsEmpty(t *testing.T) {
	p := Default()
	assert.Equal(t, "", p.Message("coronation"))
}

func TestDefaultBanksCoverEveryCommand(t *testing.T) {
	bank := defaultBank()
	for _, name := range []string{
		"banish", "castout", "pillory", "stocks", "pardon",
		"summon", "purge", "shame", "decree_confirm",
	} {
		assert.NotEmpty(t, bank.Messages[name], "bank %q is empty", name)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, p.Prefix())
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flavor.yaml")
	content := `prefixes:
  - "Oyez!"
messages:
  purge:
    - "Swept away %d scrolls."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Oyez!", p.Prefix())
	assert.Equal(t, "Swept away 3 scrolls.", p.Message("purge", 3))

	// Sections absent from the file keep their defaults.
	assert.NotEmpty(t, p.Title())
	assert.NotEmpty(t, p.Message("banish", "target"))
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flavor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prefixes: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
