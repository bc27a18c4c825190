package manifest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestEncodeText(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeText(&buf, []*domain.Result{
		{Path: "a.txt", Checksum: 0xe3069283},
		{Path: "dir/b c.bin", Checksum: 0x1},
	})
	require.NoError(t, err)
	assert.Equal(t, "e3069283  a.txt\n00000001  dir/b c.bin\n", buf.String())
}

func TestDecodeText(t *testing.T) {
	input := strings.Join([]string{
		"# generated by crcsum",
		"e3069283  a.txt",
		"",
		"CBF43926 *image.bin\r",
		"00000001  dir/b c.bin",
	}, "\n")

	results, err := DecodeText(strings.NewReader(input), domain.CRC32C)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, &domain.Result{Path: "a.txt", Checksum: 0xe3069283, Algorithm: domain.CRC32C}, results[0])
	assert.Equal(t, "image.bin", results[1].Path)
	assert.Equal(t, uint32(0xcbf43926), results[1].Checksum)
	assert.Equal(t, "dir/b c.bin", results[2].Path)
}

func TestDecodeTextErrors(t *testing.T) {
	for _, input := range []string{
		"e3069283",
		"e3069283a.txt",
		"zzzzzzzz  a.txt",
		"e3069283  ",
	} {
		_, err := DecodeText(strings.NewReader(input), domain.CRC32C)
		assert.True(t, errors.IsCategory(err, errors.ErrorManifest), input)
	}
}

func TestBinary(t *testing.T) {
	want := []*domain.Result{
		{Path: "a.txt", Algorithm: domain.CRC32C, Checksum: 0xe3069283, Size: 9},
		{Path: "big.zst", Algorithm: domain.CRC32IEEE, Checksum: 0xcbf43926, Size: 1 << 40},
	}

	b := MarshalBinary(want)

	// Fields from a newer writer must not break older readers.
	b = protowire.AppendTag(b, 15, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)

	got, err := UnmarshalBinary(b)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	empty, err := UnmarshalBinary(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUnmarshalBinaryErrors(t *testing.T) {
	b := MarshalBinary([]*domain.Result{{Path: "a", Checksum: 1}})

	_, err := UnmarshalBinary(b[:len(b)-2])
	assert.True(t, errors.IsCategory(err, errors.ErrorManifest))

	var noPath []byte
	noPath = protowire.AppendTag(noPath, fieldEntries, protowire.BytesType)
	noPath = protowire.AppendBytes(noPath, protowire.AppendFixed32(protowire.AppendTag(nil, fieldChecksum, protowire.Fixed32Type), 1))
	_, err = UnmarshalBinary(noPath)
	assert.True(t, errors.IsCategory(err, errors.ErrorManifest))

	_, err = UnmarshalBinary([]byte("e3069283  a.txt\n"))
	assert.Error(t, err)
}
