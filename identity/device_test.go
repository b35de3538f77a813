// ABOUTME: Tests for device identity resolution
// ABOUTME: Covers generation, persistence, overrides, and corrupt files
package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_GeneratesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closet", "device.json")

	id, err := Resolve(path, "")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = ulid.Parse(id)
	assert.NoError(t, err, "device IDs are ULIDs")

	// A second resolve returns the same identity
	again, err := Resolve(path, "")
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestResolve_OverrideWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")

	id, err := Resolve(path, "device-from-env")
	require.NoError(t, err)
	assert.Equal(t, "device-from-env", id)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "override must not write a file")
}

func TestResolve_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := Resolve(path, "")
	assert.Error(t, err)
}

func TestResolve_EmptyDeviceID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"device_id":""}`), 0600))

	_, err := Resolve(path, "")
	assert.Error(t, err)
}
