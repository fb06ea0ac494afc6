package blocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dennisklein/dfree/internal/blocks"
)

var (
	_ blocks.SizeFormat = blocks.StaticBlockSize{}
	_ blocks.SizeFormat = blocks.Decimal
	_ blocks.SizeFormat = blocks.Binary
)

func TestDefaultSizeFormat(t *testing.T) {
	assert.Equal(t, blocks.StaticBlockSize{}, blocks.DefaultSizeFormat())
}

func TestHumanReadableVariants(t *testing.T) {
	assert.NotEqual(t, blocks.Decimal, blocks.Binary)
}
