package main

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dennisklein/dfree/internal/size"
)

func TestResolveBlockSize(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{}
		addBlockSizeFlag(cmd)

		return cmd
	}

	t.Run("parses the flag value", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set("block-size", "1M"))

		bs, err := resolveBlockSize(cmd)
		require.NoError(t, err)
		assert.Equal(t, uint64(1024*1024), bs.Bytes())
	})

	t.Run("rejects invalid flag values", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set("block-size", "10X"))

		_, err := resolveBlockSize(cmd)
		require.Error(t, err)

		var perr *size.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "10X", perr.Input)
	})

	t.Run("rejects a zero block size", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set("block-size", "0"))

		_, err := resolveBlockSize(cmd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"0"`)
	})

	t.Run("defaults to 1024 bytes", func(t *testing.T) {
		// Clear POSIXLY_CORRECT
		_ = os.Unsetenv("POSIXLY_CORRECT") //nolint:errcheck // best effort

		bs, err := resolveBlockSize(newCmd())
		require.NoError(t, err)
		assert.Equal(t, uint64(1024), bs.Bytes())
	})

	t.Run("defaults to 512 bytes when POSIXLY_CORRECT is set", func(t *testing.T) {
		t.Setenv("POSIXLY_CORRECT", "1")

		bs, err := resolveBlockSize(newCmd())
		require.NoError(t, err)
		assert.Equal(t, uint64(512), bs.Bytes())
	})

	t.Run("honors POSIXLY_CORRECT set to the empty string", func(t *testing.T) {
		t.Setenv("POSIXLY_CORRECT", "")

		bs, err := resolveBlockSize(newCmd())
		require.NoError(t, err)
		assert.Equal(t, uint64(512), bs.Bytes())
	})
}
