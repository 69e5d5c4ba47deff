package rpcpb

import (
	"context"

	gogoproto "github.com/gogo/protobuf/proto"
	"google.golang.org/grpc"
)

type DocumentRequest struct {
	JsonData    string            `protobuf:"bytes,1,opt,name=json_data,json=jsonData,proto3" json:"json_data,omitempty"`
	DocumentUri string            `protobuf:"bytes,2,opt,name=document_uri,json=documentUri,proto3" json:"document_uri,omitempty"`
	Collections []string          `protobuf:"bytes,3,rep,name=collections,proto3" json:"collections,omitempty"`
	Metadata    map[string]string `protobuf:"bytes,4,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *DocumentRequest) Reset()         { *m = DocumentRequest{} }
func (m *DocumentRequest) String() string { return gogoproto.CompactTextString(m) }
func (*DocumentRequest) ProtoMessage()    {}

func (m *DocumentRequest) GetJsonData() string {
	if m != nil {
		return m.JsonData
	}
	return ""
}

func (m *DocumentRequest) GetDocumentUri() string {
	if m != nil {
		return m.DocumentUri
	}
	return ""
}

func (m *DocumentRequest) GetCollections() []string {
	if m != nil {
		return m.Collections
	}
	return nil
}

func (m *DocumentRequest) GetMetadata() map[string]string {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type DocumentResponse struct {
	StatusMessage string `protobuf:"bytes,1,opt,name=status_message,json=statusMessage,proto3" json:"status_message,omitempty"`
	StatusCode    int32  `protobuf:"varint,2,opt,name=status_code,json=statusCode,proto3" json:"status_code,omitempty"`
	DocumentUri   string `protobuf:"bytes,3,opt,name=document_uri,json=documentUri,proto3" json:"document_uri,omitempty"`
	Details       string `protobuf:"bytes,4,opt,name=details,proto3" json:"details,omitempty"`
}

func (m *DocumentResponse) Reset()         { *m = DocumentResponse{} }
func (m *DocumentResponse) String() string { return gogoproto.CompactTextString(m) }
func (*DocumentResponse) ProtoMessage()    {}

func (m *DocumentResponse) GetStatusMessage() string {
	if m != nil {
		return m.StatusMessage
	}
	return ""
}

func (m *DocumentResponse) GetStatusCode() int32 {
	if m != nil {
		return m.StatusCode
	}
	return 0
}

// Succeeded reports a 2xx status_code.
func (m *DocumentResponse) Succeeded() bool {
	code := m.GetStatusCode()
	return code >= 200 && code < 300
}

func (m *DocumentResponse) GetDocumentUri() string {
	if m != nil {
		return m.DocumentUri
	}
	return ""
}

type GetDocumentRequest struct {
	DocumentUri string `protobuf:"bytes,1,opt,name=document_uri,json=documentUri,proto3" json:"document_uri,omitempty"`
}

func (m *GetDocumentRequest) Reset()         { *m = GetDocumentRequest{} }
func (m *GetDocumentRequest) String() string { return gogoproto.CompactTextString(m) }
func (*GetDocumentRequest) ProtoMessage()    {}

func (m *GetDocumentRequest) GetDocumentUri() string {
	if m != nil {
		return m.DocumentUri
	}
	return ""
}

// GetDocumentResponse carries the stored document. inserted_at is RFC 3339.
type GetDocumentResponse struct {
	DocumentUri string            `protobuf:"bytes,1,opt,name=document_uri,json=documentUri,proto3" json:"document_uri,omitempty"`
	JsonData    string            `protobuf:"bytes,2,opt,name=json_data,json=jsonData,proto3" json:"json_data,omitempty"`
	Collections []string          `protobuf:"bytes,3,rep,name=collections,proto3" json:"collections,omitempty"`
	Metadata    map[string]string `protobuf:"bytes,4,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	InsertedAt  string            `protobuf:"bytes,5,opt,name=inserted_at,json=insertedAt,proto3" json:"inserted_at,omitempty"`
	SizeBytes   int64             `protobuf:"varint,6,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
}

func (m *GetDocumentResponse) Reset()         { *m = GetDocumentResponse{} }
func (m *GetDocumentResponse) String() string { return gogoproto.CompactTextString(m) }
func (*GetDocumentResponse) ProtoMessage()    {}

func (m *GetDocumentResponse) GetJsonData() string {
	if m != nil {
		return m.JsonData
	}
	return ""
}

const (
	MarkLogicService_InsertDocument_FullMethodName = "/marklogic.MarkLogicService/InsertDocument"
	MarkLogicService_GetDocument_FullMethodName    = "/marklogic.MarkLogicService/GetDocument"
)

type MarkLogicServiceClient interface {
	InsertDocument(ctx context.Context, in *DocumentRequest, opts ...grpc.CallOption) (*DocumentResponse, error)
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
}

type markLogicServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMarkLogicServiceClient(cc grpc.ClientConnInterface) MarkLogicServiceClient {
	return &markLogicServiceClient{cc}
}

func (c *markLogicServiceClient) InsertDocument(ctx context.Context, in *DocumentRequest, opts ...grpc.CallOption) (*DocumentResponse, error) {
	out := new(DocumentResponse)
	if err := c.cc.Invoke(ctx, MarkLogicService_InsertDocument_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *markLogicServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	out := new(GetDocumentResponse)
	if err := c.cc.Invoke(ctx, MarkLogicService_GetDocument_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type MarkLogicServiceServer interface {
	InsertDocument(context.Context, *DocumentRequest) (*DocumentResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
}

func RegisterMarkLogicServiceServer(s grpc.ServiceRegistrar, srv MarkLogicServiceServer) {
	s.RegisterService(&MarkLogicService_ServiceDesc, srv)
}

func _MarkLogicService_InsertDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarkLogicServiceServer).InsertDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarkLogicService_InsertDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarkLogicServiceServer).InsertDocument(ctx, req.(*DocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarkLogicService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarkLogicServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarkLogicService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarkLogicServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var MarkLogicService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "marklogic.MarkLogicService",
	HandlerType: (*MarkLogicServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "InsertDocument",
			Handler:    _MarkLogicService_InsertDocument_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _MarkLogicService_GetDocument_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "marklogic.proto",
}
