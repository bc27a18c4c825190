// Package manifest reads and writes lists of checksummed inputs.
//
// The text form is one "<8 hex digits>  <path>" line per input, the layout of
// the coreutils *sum tools. The binary form is protobuf wire encoded:
//
//	message Manifest { repeated Entry entries = 1; }
//	message Entry {
//	  string  path      = 1;
//	  string  algorithm = 2;
//	  fixed32 checksum  = 3;
//	  uint64  size      = 4;
//	}
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/pkg/errors"
)

const hexDigits = 8

// EncodeText writes one line per result.
func EncodeText(w io.Writer, results []*domain.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if _, err := fmt.Fprintf(bw, "%s  %s\n", r.Hex(), r.Path); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeText parses a text manifest. The text form does not record the
// algorithm, so every entry is tagged with alg. Blank lines and lines starting
// with '#' are ignored.
func DecodeText(r io.Reader, alg domain.ChecksumAlgorithm) ([]*domain.Result, error) {
	var results []*domain.Result

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, err := parseLine(line)
		if err != nil {
			return nil, errors.NewChecksumError(errors.ErrorManifest, "parse", fmt.Sprintf("line %d", n), err)
		}
		result.Algorithm = alg
		results = append(results, result)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.NewChecksumError(errors.ErrorManifest, "read", "", err)
	}
	return results, nil
}

func parseLine(line string) (*domain.Result, error) {
	if len(line) < hexDigits+2 || line[hexDigits] != ' ' {
		return nil, fmt.Errorf("expected \"<checksum>  <path>\", got %q", line)
	}

	sum, err := strconv.ParseUint(line[:hexDigits], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid checksum %q: %w", line[:hexDigits], err)
	}

	// "  path" is text mode, " *path" binary mode; both name the same bytes.
	path := line[hexDigits+1:]
	if path[0] == ' ' || path[0] == '*' {
		path = path[1:]
	}
	if path == "" {
		return nil, fmt.Errorf("missing path after checksum %s", line[:hexDigits])
	}

	return &domain.Result{Path: path, Checksum: uint32(sum)}, nil
}
