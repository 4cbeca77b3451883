package moviepb

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// Codec is a gRPC codec for this package's messages. It also handles any
// proto.Message, so services such as grpc.health.v1 can share a server with
// MovieService.
type Codec struct{}

var _ encoding.Codec = Codec{}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case Message:
		return m.Marshal()
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, fmt.Errorf("moviepb: cannot marshal %T", v)
	}
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case Message:
		return m.Unmarshal(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	default:
		return fmt.Errorf("moviepb: cannot unmarshal into %T", v)
	}
}

// Name keeps the standard content subtype (application/grpc+proto).
func (Codec) Name() string {
	return "proto"
}

// ServerCodec installs Codec on a gRPC server.
func ServerCodec() grpc.ServerOption {
	return grpc.ForceServerCodec(Codec{})
}
