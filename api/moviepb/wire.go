package moviepb

import (
	"errors"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

var errInvalidUTF8 = errors.New("moviepb: string field contains invalid UTF-8")

// Message is implemented by every message in this package. The encoding is
// the standard protobuf binary format with proto3 field presence, so the
// bytes are interchangeable with protoc-generated code for api/movie.proto.
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(b []byte) error
}

// fieldFunc consumes the value of one field and reports how many bytes it used.
type fieldFunc func(num protowire.Number, typ protowire.Type, v []byte) (int, error)

func walkFields(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		b = b[n:]
	}

	return nil
}

func skipField(num protowire.Number, typ protowire.Type, v []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, v)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}

	return n, nil
}

func consumeString(v []byte, dst *string) (int, error) {
	s, n := protowire.ConsumeString(v)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if !utf8.ValidString(s) {
		return 0, errInvalidUTF8
	}

	*dst = s

	return n, nil
}

func consumeBool(v []byte, dst *bool) (int, error) {
	x, n := protowire.ConsumeVarint(v)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}

	*dst = protowire.DecodeBool(x)

	return n, nil
}

// consumeMovie merges an embedded Movie into *dst, allocating it on first use.
func consumeMovie(v []byte, dst **Movie) (int, error) {
	b, n := protowire.ConsumeBytes(v)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}

	if *dst == nil {
		*dst = &Movie{}
	}

	if err := (*dst).merge(b); err != nil {
		return 0, err
	}

	return n, nil
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.BytesType)

	return protowire.AppendString(b, s)
}

func sizeString(num protowire.Number, s string) int {
	if s == "" {
		return 0
	}

	return protowire.SizeTag(num) + protowire.SizeBytes(len(s))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.VarintType)

	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

// appendMovie writes m as an embedded message. A nil movie is absent; a
// non-nil one is always written, even when all its fields are empty.
func appendMovie(b []byte, num protowire.Number, m *Movie) []byte {
	if m == nil {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(m.size()))

	return m.appendTo(b)
}

func sizeMovie(num protowire.Number, m *Movie) int {
	if m == nil {
		return 0
	}

	return protowire.SizeTag(num) + protowire.SizeBytes(m.size())
}
