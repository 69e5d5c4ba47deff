// Package rpcpb holds the wire messages, service descriptors and client stubs of the hello and
// marklogic gRPC services. Messages are plain structs with protobuf field tags and are encoded
// by the gogo protobuf runtime.
package rpcpb

import (
	"fmt"

	gogoproto "github.com/gogo/protobuf/proto"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// MaxMessageSize bounds request and response messages on servers and clients.
const MaxMessageSize = 16 * 1024 * 1024

// CodecName replaces grpc's default codec so stock protobuf clients interoperate.
const CodecName = "proto"

// Codec encodes tagged structs with gogo protobuf and generated messages (health checks,
// reflection) with the standard runtime.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case proto.Message:
		return proto.Marshal(m)
	case gogoproto.Message:
		return gogoproto.Marshal(m)
	default:
		return nil, fmt.Errorf("rpcpb: cannot marshal %T", v)
	}
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case proto.Message:
		return proto.Unmarshal(data, m)
	case gogoproto.Message:
		return gogoproto.Unmarshal(data, m)
	default:
		return fmt.Errorf("rpcpb: cannot unmarshal into %T", v)
	}
}

func (Codec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodec(Codec{})
}
