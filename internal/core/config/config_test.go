package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDefaultsWhenFileMissing(t *testing.T) {
	c, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", c.DB.Driver)
	assert.Equal(t, 8080, c.App.HTTP.Port)
	assert.Equal(t, 7*24*60, c.Session.TTLMin)
	assert.Equal(t, "admin", c.Seed.AdminUsername)
	assert.True(t, c.DB.AutoMigrate)
}

func TestReadYAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
app:
  http:
    port: 9090
session:
  secret: from-file
seed:
  workTypes:
    - name: Oil change
      description: oil
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("APP_SESSION_SECRET", "from-env")

	c, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, c.App.HTTP.Port)
	assert.Equal(t, "from-env", c.Session.Secret)
	require.Len(t, c.Seed.WorkTypes, 1)
	assert.Equal(t, "Oil change", c.Seed.WorkTypes[0].Name)
}

func TestReadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))

	_, err := Read(path)
	assert.Error(t, err)
}
