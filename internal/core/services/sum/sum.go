// Package sum computes and verifies checksums of files and streams.
package sum

import (
	"context"
	"fmt"
	"io"

	"github.com/iamNilotpal/crc/internal/adapters/checksum"
	"github.com/iamNilotpal/crc/internal/adapters/compression"
	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/internal/core/ports"
	"github.com/iamNilotpal/crc/pkg/errors"
	"github.com/iamNilotpal/crc/pkg/fs"
	"github.com/iamNilotpal/crc/pkg/pool"
	"github.com/iamNilotpal/crc/pkg/system"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service streams inputs through a ChecksumPort. Every input is read in
// ChunkSize pieces and each piece is folded into the running checksum, so
// memory use is bounded regardless of input size.
type Service struct {
	opts *domain.ChecksumOptions

	fs       ports.FileSystemPort    // Opens and walks inputs.
	checksum ports.ChecksumPort      // Folds chunks into the running value.
	decoder  ports.DecompressionPort // Nil unless compressed inputs are decoded.
	buffers  *pool.BufferPool        // Chunk buffers shared across inputs.
	log      *zap.SugaredLogger
}

// New validates opts, filling zero values with defaults, and builds a Service
// reading from the local filesystem. A nil opts selects every default.
func New(opts *domain.ChecksumOptions, log *zap.SugaredLogger) (*Service, error) {
	if opts == nil {
		opts = &domain.ChecksumOptions{}
	}
	opts = prepareDefaults(opts)

	if err := Validate(opts); err != nil {
		return nil, err
	}

	port, err := checksum.New(opts)
	if err != nil {
		return nil, err
	}

	s := &Service{
		opts:     opts,
		log:      log,
		checksum: port,
		fs:       fs.NewLocalFileSystem(),
		buffers:  pool.NewBufferPool(int(opts.ChunkSize)),
	}

	if opts.CompressionOptions.Enable {
		decoder, err := compression.NewZstdDecompressor(
			compression.Options{DecoderConcurrency: opts.CompressionOptions.DecoderConcurrency},
		)
		if err != nil {
			return nil, err
		}
		s.decoder = decoder
	}

	log.Debugw(
		"checksum service ready",
		"algorithm", port.Name(),
		"strategy", opts.Strategy.String(),
		"chunkSize", opts.ChunkSize,
		"concurrency", opts.Concurrency,
		"decompress", s.decoder != nil,
	)

	return s, nil
}

// Algorithm returns the name of the checksum in use.
func (s *Service) Algorithm() domain.ChecksumAlgorithm {
	return domain.ChecksumAlgorithm(s.checksum.Name())
}

// SumReader checksums everything r yields. name labels the result and errors.
func (s *Service) SumReader(ctx context.Context, name string, r io.Reader) (*domain.Result, error) {
	return s.sum(ctx, name, r, errors.ErrorIO)
}

func (s *Service) sum(
	ctx context.Context, name string, r io.Reader, category errors.ErrorCategory,
) (*domain.Result, error) {
	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	var crc uint32
	var size uint64

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := r.Read(*buf)
		if n > 0 {
			crc = s.checksum.Update(crc, (*buf)[:n])
			size += uint64(n)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewChecksumError(category, "read", name, err)
		}
	}

	return &domain.Result{Path: name, Algorithm: s.Algorithm(), Checksum: crc, Size: size}, nil
}

// SumFile checksums the file at path. With decompression enabled, zstd files
// are decoded and the checksum covers the decompressed content.
func (s *Service) SumFile(ctx context.Context, path string) (*domain.Result, error) {
	var result *domain.Result

	err := system.RunWithContext(ctx, func(ctx context.Context) error {
		file, err := s.fs.Open(path)
		if err != nil {
			return errors.NewChecksumError(errors.ErrorIO, "open", path, err)
		}
		defer file.Close()

		var r io.Reader = file
		category := errors.ErrorIO

		if s.decoder != nil && s.decoder.Matches(path) {
			decoded, err := s.decoder.NewReader(file)
			if err != nil {
				return errors.NewChecksumError(errors.ErrorDecompression, "decode", path, err)
			}
			defer decoded.Close()

			r = decoded
			category = errors.ErrorDecompression
		}

		result, err = s.sum(ctx, path, r, category)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Debugw("checksummed file", "path", path, "checksum", result.Hex(), "size", result.Size)
	return result, nil
}

// SumPaths checksums every path, descending into directories when recursive
// is set. Up to Concurrency files are read in parallel; results keep the order
// of the expanded input list. The first failure cancels the remaining work.
func (s *Service) SumPaths(ctx context.Context, paths []string, recursive bool) ([]*domain.Result, error) {
	files, err := s.expand(paths, recursive)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(int(s.opts.Concurrency))

	for i, path := range files {
		g.Go(func() error {
			result, err := s.SumFile(gctx, path)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) expand(paths []string, recursive bool) ([]string, error) {
	files := make([]string, 0, len(paths))

	for _, path := range paths {
		isDir, err := s.fs.IsDir(path)
		if err != nil {
			return nil, errors.NewChecksumError(errors.ErrorIO, "stat", path, err)
		}

		if !isDir {
			files = append(files, path)
			continue
		}

		if !recursive {
			return nil, errors.NewChecksumError(errors.ErrorIO, "expand", path, fmt.Errorf("is a directory"))
		}

		found, err := s.fs.Walk(path)
		if err != nil {
			return nil, errors.NewChecksumError(errors.ErrorIO, "walk", path, err)
		}
		files = append(files, found...)
	}

	return files, nil
}

// Verify recomputes every entry and compares it with the recorded checksum.
// All entries are checked; the returned error combines every failure and
// multierr.Errors splits it back apart. Mismatches carry ErrorMismatch.
func (s *Service) Verify(ctx context.Context, entries []*domain.Result) error {
	errs := make([]error, len(entries))

	g := new(errgroup.Group)
	g.SetLimit(int(s.opts.Concurrency))

	for i, entry := range entries {
		g.Go(func() error {
			errs[i] = s.verify(ctx, entry)
			return nil
		})
	}
	_ = g.Wait()

	err := multierr.Combine(errs...)
	s.log.Infow(
		"verified manifest",
		"entries", len(entries),
		"failed", len(multierr.Errors(err)),
	)
	return err
}

func (s *Service) verify(ctx context.Context, entry *domain.Result) error {
	if entry.Algorithm != "" && entry.Algorithm != s.Algorithm() {
		return errors.NewChecksumError(
			errors.ErrorManifest, "verify", entry.Path,
			fmt.Errorf("recorded with %s, service computes %s", entry.Algorithm, s.Algorithm()),
		)
	}

	got, err := s.SumFile(ctx, entry.Path)
	if err != nil {
		return err
	}

	if got.Checksum != entry.Checksum {
		s.log.Warnw("checksum mismatch", "path", entry.Path, "expected", entry.Hex(), "actual", got.Hex())
		return errors.NewChecksumError(
			errors.ErrorMismatch, "verify", entry.Path,
			fmt.Errorf("expected %s, got %s", entry.Hex(), got.Hex()),
		)
	}

	return nil
}
