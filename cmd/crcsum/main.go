package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/iamNilotpal/crc/config"
	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/internal/core/services/sum"
	"github.com/iamNilotpal/crc/internal/manifest"
	"github.com/iamNilotpal/crc/pkg/checksum"
	"github.com/iamNilotpal/crc/pkg/errors"
	"github.com/iamNilotpal/crc/pkg/logger"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type flags struct {
	config     string
	algorithm  string
	engine     string
	format     string
	check      string
	recursive  bool
	decompress bool
	probe      bool
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	f, paths, err := parseFlags(args, os.Stderr)
	if err != nil {
		return 2
	}

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.NewWithLevel("crcsum", level)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, f, paths, os.Stdin, os.Stdout, log); err != nil {
		if ve := errors.AsValidationError(err); ve != nil {
			log.Errorw("invalid options", "field", ve.Field, "value", ve.Value, "error", ve.Err)
		} else {
			log.Errorw("crcsum failed", "error", err)
		}
		return 1
	}
	return 0
}

func parseFlags(args []string, output io.Writer) (*flags, []string, error) {
	f := &flags{}

	fs := flag.NewFlagSet("crcsum", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "usage: crcsum [flags] [paths...]")
		fs.PrintDefaults()
	}

	fs.StringVar(&f.config, "config", "", "YAML configuration file")
	fs.StringVar(&f.algorithm, "a", "", "checksum algorithm: crc32-ieee or crc32c")
	fs.StringVar(&f.engine, "engine", "", "engine strategy: auto, generic or hardware")
	fs.StringVar(&f.format, "o", "", "manifest format: text or binary")
	fs.StringVar(&f.check, "c", "", "verify the files listed in this manifest")
	fs.BoolVar(&f.recursive, "r", false, "descend into directories")
	fs.BoolVar(&f.decompress, "z", false, "checksum the decoded content of .zst files")
	fs.BoolVar(&f.probe, "probe", false, "log the engine strategy selected for this CPU and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(f *flags) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if f.config != "" {
		loaded, err := config.LoadConfig(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	switch f.algorithm {
	case "":
	case "crc32":
		cfg.Checksum.Algorithm = string(domain.CRC32IEEE)
	default:
		cfg.Checksum.Algorithm = f.algorithm
	}

	if f.engine != "" {
		cfg.Checksum.Engine = f.engine
	}
	if f.format != "" {
		cfg.ManifestFormat = f.format
	}
	if f.decompress {
		cfg.Compression.Enable = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(
	ctx context.Context,
	cfg *config.Config,
	f *flags,
	paths []string,
	stdin io.Reader,
	stdout io.Writer,
	log *zap.SugaredLogger,
) error {
	svc, err := sum.New(cfg.Options(), log)
	if err != nil {
		return err
	}

	if f.probe {
		probe(cfg, log)
		return nil
	}

	if f.check != "" {
		return verify(ctx, svc, cfg, f.check, stdout)
	}

	var results []*domain.Result
	if len(paths) == 0 || (len(paths) == 1 && paths[0] == "-") {
		result, err := svc.SumReader(ctx, "-", stdin)
		if err != nil {
			return err
		}
		results = []*domain.Result{result}
	} else {
		results, err = svc.SumPaths(ctx, paths, f.recursive)
		if err != nil {
			return err
		}
	}

	if cfg.ManifestFormat == config.FormatBinary {
		_, err = stdout.Write(manifest.MarshalBinary(results))
		return err
	}
	return manifest.EncodeText(stdout, results)
}

func probe(cfg *config.Config, log *zap.SugaredLogger) {
	strategy, _ := checksum.ParseStrategy(cfg.Checksum.Engine)
	engine := checksum.NewEngine(strategy)
	caps := checksum.DetectCapabilities()

	log.Infow(
		"checksum engine",
		"strategy", strategy.String(),
		"cpuIEEE", caps.HasIEEE,
		"cpuCastagnoli", caps.HasCastagnoli,
		"acceleratedIEEE", engine.Accelerated(checksum.IEEE),
		"acceleratedCastagnoli", engine.Accelerated(checksum.Castagnoli),
	)
}

func verify(ctx context.Context, svc *sum.Service, cfg *config.Config, path string, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewChecksumError(errors.ErrorManifest, "read", path, err)
	}

	var entries []*domain.Result
	if cfg.ManifestFormat == config.FormatBinary {
		entries, err = manifest.UnmarshalBinary(data)
	} else {
		entries, err = manifest.DecodeText(bytes.NewReader(data), svc.Algorithm())
	}
	if err != nil {
		return err
	}

	err = svc.Verify(ctx, entries)
	failed := multierr.Errors(err)
	for _, e := range failed {
		fmt.Fprintf(stdout, "FAILED %v\n", e)
	}
	fmt.Fprintf(stdout, "%d of %d files OK\n", len(entries)-len(failed), len(entries))

	return err
}
