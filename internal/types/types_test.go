package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressTypeValues(t *testing.T) {
	assert.Equal(t, uint8(0), uint8(CompressNone))
	assert.Equal(t, uint8(1), uint8(CompressZlib))
	assert.Equal(t, uint8(2), uint8(CompressRaw))
	assert.Equal(t, uint8(3), uint8(CompressGzip))
	assert.Equal(t, uint8(4), uint8(CompressZstd))
}

func TestParseCompressType(t *testing.T) {
	for c := CompressNone; c <= CompressZstd; c++ {
		got, err := ParseCompressType(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := ParseCompressType("ZSTD")
	require.NoError(t, err)
	assert.Equal(t, CompressZstd, got)

	_, err = ParseCompressType("brotli")
	require.Error(t, err)
}

func TestCompressTypeUnknown(t *testing.T) {
	c := CompressType(9)
	assert.False(t, c.Valid())
	assert.Equal(t, "compress(9)", c.String())
}

func TestFileTypeString(t *testing.T) {
	assert.Equal(t, "sii", FileSII.String())
	assert.Equal(t, "soundref", FileSoundRef.String())
	assert.Equal(t, "filetype(42)", FileType(42).String())
	assert.Equal(t, "3nk", SII3nK.String())
}

func TestDictionaryResolve(t *testing.T) {
	d := NewDictionary(7)
	d.Paths[0xdeadbeef] = "def/world/road.sii"

	path, ok := d.Resolve(PathKey("manifest.sii"))
	require.True(t, ok)
	assert.Equal(t, "manifest.sii", path)

	path, ok = d.Resolve(HashKey{Hash: 0xdeadbeef, Salt: 7})
	require.True(t, ok)
	assert.Equal(t, "def/world/road.sii", path)

	_, ok = d.Resolve(HashKey{Hash: 0xdeadbeef, Salt: 8})
	assert.False(t, ok)

	_, ok = d.Resolve(HashKey{Hash: 1, Salt: 7})
	assert.False(t, ok)

	_, ok = d.Resolve(nil)
	assert.False(t, ok)
}
