package sum

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/pkg/checksum"
	"github.com/iamNilotpal/crc/pkg/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func newService(t *testing.T, opts *domain.ChecksumOptions) *Service {
	t.Helper()
	s, err := New(opts, zap.NewNop().Sugar())
	require.NoError(t, err)
	return s
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestNewDefaults(t *testing.T) {
	s := newService(t, nil)
	assert.Equal(t, domain.CRC32C, s.Algorithm())
	assert.NotZero(t, s.opts.ChunkSize)
	assert.NotZero(t, s.opts.Concurrency)
	assert.Nil(t, s.decoder)
}

func TestNewInvalid(t *testing.T) {
	_, err := New(&domain.ChecksumOptions{Algorithm: "md5"}, zap.NewNop().Sugar())
	assert.True(t, errors.IsValidationError(err))

	_, err = New(&domain.ChecksumOptions{ChunkSize: 16}, zap.NewNop().Sugar())
	assert.True(t, errors.IsValidationError(err))
}

func TestSumReader(t *testing.T) {
	tests := []struct {
		algorithm domain.ChecksumAlgorithm
		want      uint32
	}{
		{domain.CRC32IEEE, 0xcbf43926},
		{domain.CRC32C, 0xe3069283},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			s := newService(t, &domain.ChecksumOptions{Algorithm: tt.algorithm})

			result, err := s.SumReader(context.Background(), "-", strings.NewReader("123456789"))
			require.NoError(t, err)
			assert.Equal(t, &domain.Result{Path: "-", Algorithm: tt.algorithm, Checksum: tt.want, Size: 9}, result)
		})
	}
}

func TestChunkSizeDoesNotChangeChecksum(t *testing.T) {
	data := make([]byte, 3*4096+123)
	rand.New(rand.NewSource(1)).Read(data)
	want := checksum.CRC32C(data, len(data), 0)

	for _, size := range []uint32{4096, 8192, 1 << 20} {
		for _, strategy := range []checksum.Strategy{checksum.Generic, checksum.Hardware} {
			s := newService(t, &domain.ChecksumOptions{ChunkSize: size, Strategy: strategy})

			// Short reads leave chunk edges off word boundaries.
			result, err := s.SumReader(context.Background(), "data", &shortReader{r: bytes.NewReader(data), max: 1000})
			require.NoError(t, err)
			assert.Equal(t, want, result.Checksum, "chunk %d %s", size, strategy)
			assert.Equal(t, uint64(len(data)), result.Size)
		}
	}
}

type shortReader struct {
	r   *bytes.Reader
	max int
}

func (s *shortReader) Read(p []byte) (int, error) {
	if len(p) > s.max {
		p = p[:s.max]
	}
	return s.r.Read(p)
}

func TestSumFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "check.txt", []byte("123456789"))

	s := newService(t, nil)
	result, err := s.SumFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xe3069283), result.Checksum)
	assert.Equal(t, path, result.Path)

	_, err = s.SumFile(context.Background(), filepath.Join(dir, "missing"))
	assert.True(t, errors.IsCategory(err, errors.ErrorIO))
}

func TestSumFileZstd(t *testing.T) {
	data := bytes.Repeat([]byte("123456789"), 5000)

	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := encoder.EncodeAll(data, nil)
	require.NoError(t, encoder.Close())

	dir := t.TempDir()
	path := writeFile(t, dir, "data.zst", compressed)
	corrupt := writeFile(t, dir, "corrupt.zst", []byte("not a zstd frame at all"))

	plain := newService(t, nil)
	result, err := plain.SumFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, checksum.ChecksumCastagnoli(compressed), result.Checksum)

	decoding := newService(t, &domain.ChecksumOptions{
		CompressionOptions: &domain.CompressionOptions{Enable: true, DecoderConcurrency: 1},
	})
	result, err = decoding.SumFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, checksum.ChecksumCastagnoli(data), result.Checksum)
	assert.Equal(t, uint64(len(data)), result.Size)

	_, err = decoding.SumFile(context.Background(), corrupt)
	assert.True(t, errors.IsCategory(err, errors.ErrorDecompression))
}

func TestSumFileCancelled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a", []byte("a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newService(t, nil).SumFile(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSumPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("123456789"))
	b := writeFile(t, dir, "tree/b.txt", []byte("b"))
	c := writeFile(t, dir, "tree/sub/c.txt", nil)

	s := newService(t, &domain.ChecksumOptions{Concurrency: 2})

	results, err := s.SumPaths(context.Background(), []string{a, filepath.Join(dir, "tree")}, true)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, a, results[0].Path)
	assert.Equal(t, uint32(0xe3069283), results[0].Checksum)
	assert.Equal(t, b, results[1].Path)
	assert.Equal(t, checksum.ChecksumCastagnoli([]byte("b")), results[1].Checksum)
	assert.Equal(t, c, results[2].Path)
	assert.Equal(t, uint32(0), results[2].Checksum)

	_, err = s.SumPaths(context.Background(), []string{filepath.Join(dir, "tree")}, false)
	assert.True(t, errors.IsCategory(err, errors.ErrorIO))

	_, err = s.SumPaths(context.Background(), []string{filepath.Join(dir, "nope")}, true)
	assert.True(t, errors.IsCategory(err, errors.ErrorIO))
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good", []byte("123456789"))
	bad := writeFile(t, dir, "bad", []byte("123456780"))

	s := newService(t, nil)

	entries := []*domain.Result{
		{Path: good, Checksum: 0xe3069283, Algorithm: domain.CRC32C},
		{Path: bad, Checksum: 0xe3069283},
		{Path: filepath.Join(dir, "missing"), Checksum: 1},
		{Path: good, Checksum: 0xcbf43926, Algorithm: domain.CRC32IEEE},
	}

	err := s.Verify(context.Background(), entries)
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.True(t, errors.IsCategory(errs[0], errors.ErrorMismatch))
	assert.True(t, errors.IsCategory(errs[1], errors.ErrorIO))
	assert.True(t, errors.IsCategory(errs[2], errors.ErrorManifest))

	assert.NoError(t, s.Verify(context.Background(), entries[:1]))
	assert.NoError(t, s.Verify(context.Background(), nil))
}
