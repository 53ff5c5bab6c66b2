// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: loans/v1/loans.proto

package loansv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AuthService_Register_FullMethodName      = "/loans.v1.AuthService/Register"
	AuthService_Login_FullMethodName         = "/loans.v1.AuthService/Login"
	AuthService_UpdateProfile_FullMethodName = "/loans.v1.AuthService/UpdateProfile"
)

// AuthServiceClient is the client API for AuthService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AuthService handles account registration and credential checks.
type AuthServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc}
}

func (c *authServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterResponse)
	err := c.cc.Invoke(ctx, AuthService_Register_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoginResponse)
	err := c.cc.Invoke(ctx, AuthService_Login_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateProfileResponse)
	err := c.cc.Invoke(ctx, AuthService_UpdateProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AuthServiceServer is the server API for AuthService service.
// All implementations must embed UnimplementedAuthServiceServer
// for forward compatibility.
//
// AuthService handles account registration and credential checks.
type AuthServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error)
	mustEmbedUnimplementedAuthServiceServer()
}

// UnimplementedAuthServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAuthServiceServer struct{}

func (UnimplementedAuthServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedAuthServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedAuthServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateProfile not implemented")
}
func (UnimplementedAuthServiceServer) mustEmbedUnimplementedAuthServiceServer() {}
func (UnimplementedAuthServiceServer) testEmbeddedByValue()                     {}

// UnsafeAuthServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AuthServiceServer will
// result in compilation errors.
type UnsafeAuthServiceServer interface {
	mustEmbedUnimplementedAuthServiceServer()
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	// If the following call pancis, it indicates UnimplementedAuthServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

func _AuthService_Register_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthService_Register_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuthServiceServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuthService_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthService_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuthServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuthService_UpdateProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).UpdateProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthService_UpdateProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuthServiceServer).UpdateProfile(ctx, req.(*UpdateProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AuthService_ServiceDesc is the grpc.ServiceDesc for AuthService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "loans.v1.AuthService",
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    _AuthService_Register_Handler,
		},
		{
			MethodName: "Login",
			Handler:    _AuthService_Login_Handler,
		},
		{
			MethodName: "UpdateProfile",
			Handler:    _AuthService_UpdateProfile_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "loans/v1/loans.proto",
}

const (
	DocumentsService_ProcessUpload_FullMethodName = "/loans.v1.DocumentsService/ProcessUpload"
	DocumentsService_ListDocuments_FullMethodName = "/loans.v1.DocumentsService/ListDocuments"
)

// DocumentsServiceClient is the client API for DocumentsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DocumentsService runs the recognition pipeline over uploaded files
// and serves the stored document records.
type DocumentsServiceClient interface {
	ProcessUpload(ctx context.Context, in *ProcessUploadRequest, opts ...grpc.CallOption) (*ProcessUploadResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
}

type documentsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentsServiceClient(cc grpc.ClientConnInterface) DocumentsServiceClient {
	return &documentsServiceClient{cc}
}

func (c *documentsServiceClient) ProcessUpload(ctx context.Context, in *ProcessUploadRequest, opts ...grpc.CallOption) (*ProcessUploadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessUploadResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ProcessUpload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentsServiceServer is the server API for DocumentsService service.
// All implementations must embed UnimplementedDocumentsServiceServer
// for forward compatibility.
//
// DocumentsService runs the recognition pipeline over uploaded files
// and serves the stored document records.
type DocumentsServiceServer interface {
	ProcessUpload(context.Context, *ProcessUploadRequest) (*ProcessUploadResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	mustEmbedUnimplementedDocumentsServiceServer()
}

// UnimplementedDocumentsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocumentsServiceServer struct{}

func (UnimplementedDocumentsServiceServer) ProcessUpload(context.Context, *ProcessUploadRequest) (*ProcessUploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessUpload not implemented")
}
func (UnimplementedDocumentsServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedDocumentsServiceServer) mustEmbedUnimplementedDocumentsServiceServer() {}
func (UnimplementedDocumentsServiceServer) testEmbeddedByValue()                          {}

// UnsafeDocumentsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocumentsServiceServer will
// result in compilation errors.
type UnsafeDocumentsServiceServer interface {
	mustEmbedUnimplementedDocumentsServiceServer()
}

func RegisterDocumentsServiceServer(s grpc.ServiceRegistrar, srv DocumentsServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocumentsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocumentsService_ServiceDesc, srv)
}

func _DocumentsService_ProcessUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ProcessUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ProcessUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ProcessUpload(ctx, req.(*ProcessUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocumentsService_ServiceDesc is the grpc.ServiceDesc for DocumentsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocumentsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "loans.v1.DocumentsService",
	HandlerType: (*DocumentsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessUpload",
			Handler:    _DocumentsService_ProcessUpload_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _DocumentsService_ListDocuments_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "loans/v1/loans.proto",
}

const (
	RecommendationsService_RankLenders_FullMethodName = "/loans.v1.RecommendationsService/RankLenders"
)

// RecommendationsServiceClient is the client API for RecommendationsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RecommendationsService scores lenders against an applicant profile.
type RecommendationsServiceClient interface {
	RankLenders(ctx context.Context, in *RankLendersRequest, opts ...grpc.CallOption) (*RankLendersResponse, error)
}

type recommendationsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRecommendationsServiceClient(cc grpc.ClientConnInterface) RecommendationsServiceClient {
	return &recommendationsServiceClient{cc}
}

func (c *recommendationsServiceClient) RankLenders(ctx context.Context, in *RankLendersRequest, opts ...grpc.CallOption) (*RankLendersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RankLendersResponse)
	err := c.cc.Invoke(ctx, RecommendationsService_RankLenders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecommendationsServiceServer is the server API for RecommendationsService service.
// All implementations must embed UnimplementedRecommendationsServiceServer
// for forward compatibility.
//
// RecommendationsService scores lenders against an applicant profile.
type RecommendationsServiceServer interface {
	RankLenders(context.Context, *RankLendersRequest) (*RankLendersResponse, error)
	mustEmbedUnimplementedRecommendationsServiceServer()
}

// UnimplementedRecommendationsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRecommendationsServiceServer struct{}

func (UnimplementedRecommendationsServiceServer) RankLenders(context.Context, *RankLendersRequest) (*RankLendersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RankLenders not implemented")
}
func (UnimplementedRecommendationsServiceServer) mustEmbedUnimplementedRecommendationsServiceServer() {
}
func (UnimplementedRecommendationsServiceServer) testEmbeddedByValue() {}

// UnsafeRecommendationsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RecommendationsServiceServer will
// result in compilation errors.
type UnsafeRecommendationsServiceServer interface {
	mustEmbedUnimplementedRecommendationsServiceServer()
}

func RegisterRecommendationsServiceServer(s grpc.ServiceRegistrar, srv RecommendationsServiceServer) {
	// If the following call pancis, it indicates UnimplementedRecommendationsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RecommendationsService_ServiceDesc, srv)
}

func _RecommendationsService_RankLenders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RankLendersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecommendationsServiceServer).RankLenders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RecommendationsService_RankLenders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecommendationsServiceServer).RankLenders(ctx, req.(*RankLendersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RecommendationsService_ServiceDesc is the grpc.ServiceDesc for RecommendationsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RecommendationsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "loans.v1.RecommendationsService",
	HandlerType: (*RecommendationsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RankLenders",
			Handler:    _RecommendationsService_RankLenders_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "loans/v1/loans.proto",
}

const (
	LoansService_CalculateEMI_FullMethodName        = "/loans.v1.LoansService/CalculateEMI"
	LoansService_SubmitApplication_FullMethodName   = "/loans.v1.LoansService/SubmitApplication"
	LoansService_ListApplications_FullMethodName    = "/loans.v1.LoansService/ListApplications"
	LoansService_ScheduleAppointment_FullMethodName = "/loans.v1.LoansService/ScheduleAppointment"
	LoansService_ListAppointments_FullMethodName    = "/loans.v1.LoansService/ListAppointments"
	LoansService_ExportApplications_FullMethodName  = "/loans.v1.LoansService/ExportApplications"
	LoansService_GenerateNOC_FullMethodName         = "/loans.v1.LoansService/GenerateNOC"
)

// LoansServiceClient is the client API for LoansService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// LoansService covers repayment math, applications, appointments,
// exports and certificates.
type LoansServiceClient interface {
	CalculateEMI(ctx context.Context, in *CalculateEMIRequest, opts ...grpc.CallOption) (*CalculateEMIResponse, error)
	SubmitApplication(ctx context.Context, in *SubmitApplicationRequest, opts ...grpc.CallOption) (*SubmitApplicationResponse, error)
	ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error)
	ScheduleAppointment(ctx context.Context, in *ScheduleAppointmentRequest, opts ...grpc.CallOption) (*ScheduleAppointmentResponse, error)
	ListAppointments(ctx context.Context, in *ListAppointmentsRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error)
	ExportApplications(ctx context.Context, in *ExportApplicationsRequest, opts ...grpc.CallOption) (*ExportApplicationsResponse, error)
	GenerateNOC(ctx context.Context, in *GenerateNOCRequest, opts ...grpc.CallOption) (*GenerateNOCResponse, error)
}

type loansServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLoansServiceClient(cc grpc.ClientConnInterface) LoansServiceClient {
	return &loansServiceClient{cc}
}

func (c *loansServiceClient) CalculateEMI(ctx context.Context, in *CalculateEMIRequest, opts ...grpc.CallOption) (*CalculateEMIResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CalculateEMIResponse)
	err := c.cc.Invoke(ctx, LoansService_CalculateEMI_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *loansServiceClient) SubmitApplication(ctx context.Context, in *SubmitApplicationRequest, opts ...grpc.CallOption) (*SubmitApplicationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitApplicationResponse)
	err := c.cc.Invoke(ctx, LoansService_SubmitApplication_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *loansServiceClient) ListApplications(ctx context.Context, in *ListApplicationsRequest, opts ...grpc.CallOption) (*ListApplicationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListApplicationsResponse)
	err := c.cc.Invoke(ctx, LoansService_ListApplications_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *loansServiceClient) ScheduleAppointment(ctx context.Context, in *ScheduleAppointmentRequest, opts ...grpc.CallOption) (*ScheduleAppointmentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScheduleAppointmentResponse)
	err := c.cc.Invoke(ctx, LoansService_ScheduleAppointment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *loansServiceClient) ListAppointments(ctx context.Context, in *ListAppointmentsRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAppointmentsResponse)
	err := c.cc.Invoke(ctx, LoansService_ListAppointments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *loansServiceClient) ExportApplications(ctx context.Context, in *ExportApplicationsRequest, opts ...grpc.CallOption) (*ExportApplicationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportApplicationsResponse)
	err := c.cc.Invoke(ctx, LoansService_ExportApplications_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *loansServiceClient) GenerateNOC(ctx context.Context, in *GenerateNOCRequest, opts ...grpc.CallOption) (*GenerateNOCResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateNOCResponse)
	err := c.cc.Invoke(ctx, LoansService_GenerateNOC_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoansServiceServer is the server API for LoansService service.
// All implementations must embed UnimplementedLoansServiceServer
// for forward compatibility.
//
// LoansService covers repayment math, applications, appointments,
// exports and certificates.
type LoansServiceServer interface {
	CalculateEMI(context.Context, *CalculateEMIRequest) (*CalculateEMIResponse, error)
	SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error)
	ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error)
	ScheduleAppointment(context.Context, *ScheduleAppointmentRequest) (*ScheduleAppointmentResponse, error)
	ListAppointments(context.Context, *ListAppointmentsRequest) (*ListAppointmentsResponse, error)
	ExportApplications(context.Context, *ExportApplicationsRequest) (*ExportApplicationsResponse, error)
	GenerateNOC(context.Context, *GenerateNOCRequest) (*GenerateNOCResponse, error)
	mustEmbedUnimplementedLoansServiceServer()
}

// UnimplementedLoansServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedLoansServiceServer struct{}

func (UnimplementedLoansServiceServer) CalculateEMI(context.Context, *CalculateEMIRequest) (*CalculateEMIResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateEMI not implemented")
}
func (UnimplementedLoansServiceServer) SubmitApplication(context.Context, *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitApplication not implemented")
}
func (UnimplementedLoansServiceServer) ListApplications(context.Context, *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListApplications not implemented")
}
func (UnimplementedLoansServiceServer) ScheduleAppointment(context.Context, *ScheduleAppointmentRequest) (*ScheduleAppointmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScheduleAppointment not implemented")
}
func (UnimplementedLoansServiceServer) ListAppointments(context.Context, *ListAppointmentsRequest) (*ListAppointmentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAppointments not implemented")
}
func (UnimplementedLoansServiceServer) ExportApplications(context.Context, *ExportApplicationsRequest) (*ExportApplicationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportApplications not implemented")
}
func (UnimplementedLoansServiceServer) GenerateNOC(context.Context, *GenerateNOCRequest) (*GenerateNOCResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateNOC not implemented")
}
func (UnimplementedLoansServiceServer) mustEmbedUnimplementedLoansServiceServer() {}
func (UnimplementedLoansServiceServer) testEmbeddedByValue()                      {}

// UnsafeLoansServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to LoansServiceServer will
// result in compilation errors.
type UnsafeLoansServiceServer interface {
	mustEmbedUnimplementedLoansServiceServer()
}

func RegisterLoansServiceServer(s grpc.ServiceRegistrar, srv LoansServiceServer) {
	// If the following call pancis, it indicates UnimplementedLoansServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&LoansService_ServiceDesc, srv)
}

func _LoansService_CalculateEMI_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateEMIRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoansServiceServer).CalculateEMI(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoansService_CalculateEMI_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoansServiceServer).CalculateEMI(ctx, req.(*CalculateEMIRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LoansService_SubmitApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoansServiceServer).SubmitApplication(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoansService_SubmitApplication_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoansServiceServer).SubmitApplication(ctx, req.(*SubmitApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LoansService_ListApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoansServiceServer).ListApplications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoansService_ListApplications_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoansServiceServer).ListApplications(ctx, req.(*ListApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LoansService_ScheduleAppointment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScheduleAppointmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoansServiceServer).ScheduleAppointment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoansService_ScheduleAppointment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoansServiceServer).ScheduleAppointment(ctx, req.(*ScheduleAppointmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LoansService_ListAppointments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAppointmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoansServiceServer).ListAppointments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoansService_ListAppointments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoansServiceServer).ListAppointments(ctx, req.(*ListAppointmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LoansService_ExportApplications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportApplicationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoansServiceServer).ExportApplications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoansService_ExportApplications_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoansServiceServer).ExportApplications(ctx, req.(*ExportApplicationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LoansService_GenerateNOC_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateNOCRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoansServiceServer).GenerateNOC(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoansService_GenerateNOC_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoansServiceServer).GenerateNOC(ctx, req.(*GenerateNOCRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LoansService_ServiceDesc is the grpc.ServiceDesc for LoansService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var LoansService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "loans.v1.LoansService",
	HandlerType: (*LoansServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CalculateEMI",
			Handler:    _LoansService_CalculateEMI_Handler,
		},
		{
			MethodName: "SubmitApplication",
			Handler:    _LoansService_SubmitApplication_Handler,
		},
		{
			MethodName: "ListApplications",
			Handler:    _LoansService_ListApplications_Handler,
		},
		{
			MethodName: "ScheduleAppointment",
			Handler:    _LoansService_ScheduleAppointment_Handler,
		},
		{
			MethodName: "ListAppointments",
			Handler:    _LoansService_ListAppointments_Handler,
		},
		{
			MethodName: "ExportApplications",
			Handler:    _LoansService_ExportApplications_Handler,
		},
		{
			MethodName: "GenerateNOC",
			Handler:    _LoansService_GenerateNOC_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "loans/v1/loans.proto",
}
