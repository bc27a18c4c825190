package manifest

import (
	"fmt"

	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldEntries protowire.Number = 1

	fieldPath      protowire.Number = 1
	fieldAlgorithm protowire.Number = 2
	fieldChecksum  protowire.Number = 3
	fieldSize      protowire.Number = 4
)

// MarshalBinary encodes results as a Manifest message.
func MarshalBinary(results []*domain.Result) []byte {
	var b []byte
	for _, r := range results {
		b = protowire.AppendTag(b, fieldEntries, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalEntry(nil, r))
	}
	return b
}

func marshalEntry(b []byte, r *domain.Result) []byte {
	b = protowire.AppendTag(b, fieldPath, protowire.BytesType)
	b = protowire.AppendString(b, r.Path)
	b = protowire.AppendTag(b, fieldAlgorithm, protowire.BytesType)
	b = protowire.AppendString(b, string(r.Algorithm))
	b = protowire.AppendTag(b, fieldChecksum, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, r.Checksum)
	b = protowire.AppendTag(b, fieldSize, protowire.VarintType)
	b = protowire.AppendVarint(b, r.Size)
	return b
}

// UnmarshalBinary decodes a Manifest message. Unknown fields are skipped.
func UnmarshalBinary(b []byte) ([]*domain.Result, error) {
	var results []*domain.Result

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, manifestError(protowire.ParseError(n))
		}
		b = b[n:]

		if num != fieldEntries || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, manifestError(protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}

		raw, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, manifestError(protowire.ParseError(n))
		}
		b = b[n:]

		r, err := unmarshalEntry(raw)
		if err != nil {
			return nil, manifestError(fmt.Errorf("entry %d: %w", len(results), err))
		}
		results = append(results, r)
	}

	return results, nil
}

func unmarshalEntry(b []byte) (*domain.Result, error) {
	r := &domain.Result{}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == fieldPath && typ == protowire.BytesType:
			r.Path, n = protowire.ConsumeString(b)
		case num == fieldAlgorithm && typ == protowire.BytesType:
			var alg string
			alg, n = protowire.ConsumeString(b)
			r.Algorithm = domain.ChecksumAlgorithm(alg)
		case num == fieldChecksum && typ == protowire.Fixed32Type:
			r.Checksum, n = protowire.ConsumeFixed32(b)
		case num == fieldSize && typ == protowire.VarintType:
			r.Size, n = protowire.ConsumeVarint(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
	}

	if r.Path == "" {
		return nil, fmt.Errorf("missing path")
	}
	return r, nil
}

func manifestError(err error) error {
	return errors.NewChecksumError(errors.ErrorManifest, "unmarshal", "", err)
}
