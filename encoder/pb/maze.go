// Package pb encodes maze records in protobuf wire format.
//
// The layout is equivalent to this message:
//
//	message Maze {
//	  bytes  id         = 1;
//	  uint64 cols       = 2;
//	  uint64 rows       = 3;
//	  sint64 seed       = 4; // omitted when unseeded
//	  bytes  walls      = 5;
//	  repeated uint64 path = 6 [packed = true]; // col,row pairs
//	  bool   solved     = 7;
//	  int64  created_at = 8; // unix nanoseconds
//	}
package pb

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/ilhamhanifan/maze-solver/domain"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldID        protowire.Number = 1
	fieldCols      protowire.Number = 2
	fieldRows      protowire.Number = 3
	fieldSeed      protowire.Number = 4
	fieldWalls     protowire.Number = 5
	fieldPath      protowire.Number = 6
	fieldSolved    protowire.Number = 7
	fieldCreatedAt protowire.Number = 8
)

var (
	ErrMalformedSnapshot = errors.New("malformed maze snapshot")
	ErrNilRecord         = errors.New("maze record is nil")
)

// MarshalMaze encodes a maze record.
func MarshalMaze(m *domain.Maze) ([]byte, error) {
	if m == nil {
		return nil, ErrNilRecord
	}

	var b []byte
	b = protowire.AppendTag(b, fieldID, protowire.BytesType)
	b = protowire.AppendBytes(b, m.ID[:])
	b = appendVarintField(b, fieldCols, uint64(m.Cols))
	b = appendVarintField(b, fieldRows, uint64(m.Rows))
	if m.Seed != nil {
		b = appendVarintField(b, fieldSeed, protowire.EncodeZigZag(*m.Seed))
	}
	b = protowire.AppendTag(b, fieldWalls, protowire.BytesType)
	b = protowire.AppendBytes(b, m.Walls)

	if len(m.Path) > 0 {
		var packed []byte
		for _, p := range m.Path {
			packed = protowire.AppendVarint(packed, uint64(p.Col))
			packed = protowire.AppendVarint(packed, uint64(p.Row))
		}
		b = protowire.AppendTag(b, fieldPath, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}

	b = appendVarintField(b, fieldSolved, protowire.EncodeBool(m.Solved))
	b = appendVarintField(b, fieldCreatedAt, uint64(m.CreatedAt.UnixNano()))
	return b, nil
}

// UnmarshalMaze decodes a maze record. Unknown fields are skipped.
func UnmarshalMaze(b []byte) (*domain.Maze, error) {
	m := &domain.Maze{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, malformed(protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldID && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, malformed(protowire.ParseError(n))
			}
			id, err := uuid.FromBytes(v)
			if err != nil {
				return nil, malformed(err)
			}
			m.ID = id
			b = b[n:]

		case num == fieldWalls && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, malformed(protowire.ParseError(n))
			}
			m.Walls = append([]uint8(nil), v...)
			b = b[n:]

		case num == fieldPath && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, malformed(protowire.ParseError(n))
			}
			path, err := consumePath(v)
			if err != nil {
				return nil, err
			}
			m.Path = path
			b = b[n:]

		case typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, malformed(protowire.ParseError(n))
			}
			if err := setVarintField(m, num, v); err != nil {
				return nil, malformed(err)
			}
			b = b[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, malformed(protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if err := m.Validate(); err != nil {
		return nil, malformed(err)
	}
	return m, nil
}

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func setVarintField(m *domain.Maze, num protowire.Number, v uint64) error {
	switch num {
	case fieldCols, fieldRows:
		if v > math.MaxInt32 {
			return fmt.Errorf("dimension %d out of range", v)
		}
		if num == fieldCols {
			m.Cols = int(v)
		} else {
			m.Rows = int(v)
		}
	case fieldSeed:
		seed := protowire.DecodeZigZag(v)
		m.Seed = &seed
	case fieldSolved:
		m.Solved = protowire.DecodeBool(v)
	case fieldCreatedAt:
		m.CreatedAt = time.Unix(0, int64(v)).UTC()
	}
	return nil
}

func consumePath(b []byte) ([]domain.Position, error) {
	var vals []uint64
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, malformed(protowire.ParseError(n))
		}
		vals = append(vals, v)
		b = b[n:]
	}
	if len(vals)%2 != 0 {
		return nil, malformed(errors.New("odd path coordinate count"))
	}

	path := make([]domain.Position, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		path = append(path, domain.Position{Col: int(vals[i]), Row: int(vals[i+1])})
	}
	return path, nil
}

func malformed(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
}
