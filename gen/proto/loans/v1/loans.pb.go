// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: loans/v1/loans.proto

package loansv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type RegisterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	FullName      string                 `protobuf:"bytes,3,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Phone         string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterRequest) Reset() {
	*x = RegisterRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterRequest) ProtoMessage() {}

func (x *RegisterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterRequest.ProtoReflect.Descriptor instead.
func (*RegisterRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{0}
}

func (x *RegisterRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *RegisterRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *RegisterRequest) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *RegisterRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

type RegisterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterResponse) Reset() {
	*x = RegisterResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterResponse) ProtoMessage() {}

func (x *RegisterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterResponse.ProtoReflect.Descriptor instead.
func (*RegisterResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{1}
}

func (x *RegisterResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type LoginRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginRequest) Reset() {
	*x = LoginRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginRequest) ProtoMessage() {}

func (x *LoginRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginRequest.ProtoReflect.Descriptor instead.
func (*LoginRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{2}
}

func (x *LoginRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *LoginRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type LoginResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginResponse) Reset() {
	*x = LoginResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginResponse) ProtoMessage() {}

func (x *LoginResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginResponse.ProtoReflect.Descriptor instead.
func (*LoginResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{3}
}

func (x *LoginResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type UpdateProfileRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Email            string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	FullName         *string                `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3,oneof" json:"full_name,omitempty"`
	Phone            *string                `protobuf:"bytes,3,opt,name=phone,proto3,oneof" json:"phone,omitempty"`
	ProfileCompleted *bool                  `protobuf:"varint,4,opt,name=profile_completed,json=profileCompleted,proto3,oneof" json:"profile_completed,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *UpdateProfileRequest) Reset() {
	*x = UpdateProfileRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateProfileRequest) ProtoMessage() {}

func (x *UpdateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateProfileRequest.ProtoReflect.Descriptor instead.
func (*UpdateProfileRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{4}
}

func (x *UpdateProfileRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *UpdateProfileRequest) GetFullName() string {
	if x != nil && x.FullName != nil {
		return *x.FullName
	}
	return ""
}

func (x *UpdateProfileRequest) GetPhone() string {
	if x != nil && x.Phone != nil {
		return *x.Phone
	}
	return ""
}

func (x *UpdateProfileRequest) GetProfileCompleted() bool {
	if x != nil && x.ProfileCompleted != nil {
		return *x.ProfileCompleted
	}
	return false
}

type UpdateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateProfileResponse) Reset() {
	*x = UpdateProfileResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateProfileResponse) ProtoMessage() {}

func (x *UpdateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateProfileResponse.ProtoReflect.Descriptor instead.
func (*UpdateProfileResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{5}
}

func (x *UpdateProfileResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type User struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Email            string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	FullName         string                 `protobuf:"bytes,3,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Phone            string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ProfileCompleted bool                   `protobuf:"varint,6,opt,name=profile_completed,json=profileCompleted,proto3" json:"profile_completed,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_loans_v1_loans_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{6}
}

func (x *User) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *User) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *User) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *User) GetProfileCompleted() bool {
	if x != nil {
		return x.ProfileCompleted
	}
	return false
}

type ProcessUploadRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Email string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	// Paths readable by the server process.
	FilePaths     []string `protobuf:"bytes,2,rep,name=file_paths,json=filePaths,proto3" json:"file_paths,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessUploadRequest) Reset() {
	*x = ProcessUploadRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessUploadRequest) ProtoMessage() {}

func (x *ProcessUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessUploadRequest.ProtoReflect.Descriptor instead.
func (*ProcessUploadRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{7}
}

func (x *ProcessUploadRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *ProcessUploadRequest) GetFilePaths() []string {
	if x != nil {
		return x.FilePaths
	}
	return nil
}

type ProcessUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Warnings      []string               `protobuf:"bytes,2,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessUploadResponse) Reset() {
	*x = ProcessUploadResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessUploadResponse) ProtoMessage() {}

func (x *ProcessUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessUploadResponse.ProtoReflect.Descriptor instead.
func (*ProcessUploadResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{8}
}

func (x *ProcessUploadResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *ProcessUploadResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{9}
}

func (x *ListDocumentsRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{10}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type Document struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Email       string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	UploadTime  string                 `protobuf:"bytes,3,opt,name=upload_time,json=uploadTime,proto3" json:"upload_time,omitempty"`
	SourceFiles []string               `protobuf:"bytes,4,rep,name=source_files,json=sourceFiles,proto3" json:"source_files,omitempty"`
	// Extracted field values as JSON; absent fields serialize as null.
	ParsedJson    string `protobuf:"bytes,5,opt,name=parsed_json,json=parsedJson,proto3" json:"parsed_json,omitempty"`
	RawText       string `protobuf:"bytes,6,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_loans_v1_loans_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{11}
}

func (x *Document) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Document) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Document) GetUploadTime() string {
	if x != nil {
		return x.UploadTime
	}
	return ""
}

func (x *Document) GetSourceFiles() []string {
	if x != nil {
		return x.SourceFiles
	}
	return nil
}

func (x *Document) GetParsedJson() string {
	if x != nil {
		return x.ParsedJson
	}
	return ""
}

func (x *Document) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

type RankLendersRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Either name a stored document or pass the values directly.
	DocId         *int64  `protobuf:"varint,1,opt,name=doc_id,json=docId,proto3,oneof" json:"doc_id,omitempty"`
	Gpa           *string `protobuf:"bytes,2,opt,name=gpa,proto3,oneof" json:"gpa,omitempty"`
	Income        *string `protobuf:"bytes,3,opt,name=income,proto3,oneof" json:"income,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RankLendersRequest) Reset() {
	*x = RankLendersRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RankLendersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RankLendersRequest) ProtoMessage() {}

func (x *RankLendersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RankLendersRequest.ProtoReflect.Descriptor instead.
func (*RankLendersRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{12}
}

func (x *RankLendersRequest) GetDocId() int64 {
	if x != nil && x.DocId != nil {
		return *x.DocId
	}
	return 0
}

func (x *RankLendersRequest) GetGpa() string {
	if x != nil && x.Gpa != nil {
		return *x.Gpa
	}
	return ""
}

func (x *RankLendersRequest) GetIncome() string {
	if x != nil && x.Income != nil {
		return *x.Income
	}
	return ""
}

type RankLendersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lenders       []*RankedLender        `protobuf:"bytes,1,rep,name=lenders,proto3" json:"lenders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RankLendersResponse) Reset() {
	*x = RankLendersResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RankLendersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RankLendersResponse) ProtoMessage() {}

func (x *RankLendersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RankLendersResponse.ProtoReflect.Descriptor instead.
func (*RankLendersResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{13}
}

func (x *RankLendersResponse) GetLenders() []*RankedLender {
	if x != nil {
		return x.Lenders
	}
	return nil
}

type RankedLender struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BankId        int64                  `protobuf:"varint,1,opt,name=bank_id,json=bankId,proto3" json:"bank_id,omitempty"`
	BankName      string                 `protobuf:"bytes,2,opt,name=bank_name,json=bankName,proto3" json:"bank_name,omitempty"`
	Score         int32                  `protobuf:"varint,3,opt,name=score,proto3" json:"score,omitempty"`
	Why           string                 `protobuf:"bytes,4,opt,name=why,proto3" json:"why,omitempty"`
	Interest      float64                `protobuf:"fixed64,5,opt,name=interest,proto3" json:"interest,omitempty"`
	MaxAmount     float64                `protobuf:"fixed64,6,opt,name=max_amount,json=maxAmount,proto3" json:"max_amount,omitempty"`
	Approval      float64                `protobuf:"fixed64,7,opt,name=approval,proto3" json:"approval,omitempty"`
	Description   string                 `protobuf:"bytes,8,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RankedLender) Reset() {
	*x = RankedLender{}
	mi := &file_loans_v1_loans_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RankedLender) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RankedLender) ProtoMessage() {}

func (x *RankedLender) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RankedLender.ProtoReflect.Descriptor instead.
func (*RankedLender) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{14}
}

func (x *RankedLender) GetBankId() int64 {
	if x != nil {
		return x.BankId
	}
	return 0
}

func (x *RankedLender) GetBankName() string {
	if x != nil {
		return x.BankName
	}
	return ""
}

func (x *RankedLender) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *RankedLender) GetWhy() string {
	if x != nil {
		return x.Why
	}
	return ""
}

func (x *RankedLender) GetInterest() float64 {
	if x != nil {
		return x.Interest
	}
	return 0
}

func (x *RankedLender) GetMaxAmount() float64 {
	if x != nil {
		return x.MaxAmount
	}
	return 0
}

func (x *RankedLender) GetApproval() float64 {
	if x != nil {
		return x.Approval
	}
	return 0
}

func (x *RankedLender) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type CalculateEMIRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Principal     float64                `protobuf:"fixed64,1,opt,name=principal,proto3" json:"principal,omitempty"`
	AnnualRate    float64                `protobuf:"fixed64,2,opt,name=annual_rate,json=annualRate,proto3" json:"annual_rate,omitempty"`
	TenureYears   int32                  `protobuf:"varint,3,opt,name=tenure_years,json=tenureYears,proto3" json:"tenure_years,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CalculateEMIRequest) Reset() {
	*x = CalculateEMIRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CalculateEMIRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CalculateEMIRequest) ProtoMessage() {}

func (x *CalculateEMIRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CalculateEMIRequest.ProtoReflect.Descriptor instead.
func (*CalculateEMIRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{15}
}

func (x *CalculateEMIRequest) GetPrincipal() float64 {
	if x != nil {
		return x.Principal
	}
	return 0
}

func (x *CalculateEMIRequest) GetAnnualRate() float64 {
	if x != nil {
		return x.AnnualRate
	}
	return 0
}

func (x *CalculateEMIRequest) GetTenureYears() int32 {
	if x != nil {
		return x.TenureYears
	}
	return 0
}

type CalculateEMIResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Emi           float64                `protobuf:"fixed64,1,opt,name=emi,proto3" json:"emi,omitempty"`
	Months        int32                  `protobuf:"varint,2,opt,name=months,proto3" json:"months,omitempty"`
	TotalPayment  float64                `protobuf:"fixed64,3,opt,name=total_payment,json=totalPayment,proto3" json:"total_payment,omitempty"`
	TotalInterest float64                `protobuf:"fixed64,4,opt,name=total_interest,json=totalInterest,proto3" json:"total_interest,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CalculateEMIResponse) Reset() {
	*x = CalculateEMIResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CalculateEMIResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CalculateEMIResponse) ProtoMessage() {}

func (x *CalculateEMIResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CalculateEMIResponse.ProtoReflect.Descriptor instead.
func (*CalculateEMIResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{16}
}

func (x *CalculateEMIResponse) GetEmi() float64 {
	if x != nil {
		return x.Emi
	}
	return 0
}

func (x *CalculateEMIResponse) GetMonths() int32 {
	if x != nil {
		return x.Months
	}
	return 0
}

func (x *CalculateEMIResponse) GetTotalPayment() float64 {
	if x != nil {
		return x.TotalPayment
	}
	return 0
}

func (x *CalculateEMIResponse) GetTotalInterest() float64 {
	if x != nil {
		return x.TotalInterest
	}
	return 0
}

type SubmitApplicationRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Email            string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	BankId           int64                  `protobuf:"varint,2,opt,name=bank_id,json=bankId,proto3" json:"bank_id,omitempty"`
	FilledFormFields map[string]string      `protobuf:"bytes,3,rep,name=filled_form_fields,json=filledFormFields,proto3" json:"filled_form_fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	// When set, an appointment three days out is booked automatically.
	ScheduleAppointment bool `protobuf:"varint,4,opt,name=schedule_appointment,json=scheduleAppointment,proto3" json:"schedule_appointment,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *SubmitApplicationRequest) Reset() {
	*x = SubmitApplicationRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitApplicationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitApplicationRequest) ProtoMessage() {}

func (x *SubmitApplicationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitApplicationRequest.ProtoReflect.Descriptor instead.
func (*SubmitApplicationRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{17}
}

func (x *SubmitApplicationRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *SubmitApplicationRequest) GetBankId() int64 {
	if x != nil {
		return x.BankId
	}
	return 0
}

func (x *SubmitApplicationRequest) GetFilledFormFields() map[string]string {
	if x != nil {
		return x.FilledFormFields
	}
	return nil
}

func (x *SubmitApplicationRequest) GetScheduleAppointment() bool {
	if x != nil {
		return x.ScheduleAppointment
	}
	return false
}

type SubmitApplicationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AppId         int64                  `protobuf:"varint,1,opt,name=app_id,json=appId,proto3" json:"app_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	AppointmentId *int64                 `protobuf:"varint,3,opt,name=appointment_id,json=appointmentId,proto3,oneof" json:"appointment_id,omitempty"`
	ScheduledTime *string                `protobuf:"bytes,4,opt,name=scheduled_time,json=scheduledTime,proto3,oneof" json:"scheduled_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitApplicationResponse) Reset() {
	*x = SubmitApplicationResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitApplicationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitApplicationResponse) ProtoMessage() {}

func (x *SubmitApplicationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitApplicationResponse.ProtoReflect.Descriptor instead.
func (*SubmitApplicationResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{18}
}

func (x *SubmitApplicationResponse) GetAppId() int64 {
	if x != nil {
		return x.AppId
	}
	return 0
}

func (x *SubmitApplicationResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *SubmitApplicationResponse) GetAppointmentId() int64 {
	if x != nil && x.AppointmentId != nil {
		return *x.AppointmentId
	}
	return 0
}

func (x *SubmitApplicationResponse) GetScheduledTime() string {
	if x != nil && x.ScheduledTime != nil {
		return *x.ScheduledTime
	}
	return ""
}

type ListApplicationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicationsRequest) Reset() {
	*x = ListApplicationsRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicationsRequest) ProtoMessage() {}

func (x *ListApplicationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicationsRequest.ProtoReflect.Descriptor instead.
func (*ListApplicationsRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{19}
}

func (x *ListApplicationsRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type ListApplicationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applications  []*Application         `protobuf:"bytes,1,rep,name=applications,proto3" json:"applications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicationsResponse) Reset() {
	*x = ListApplicationsResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicationsResponse) ProtoMessage() {}

func (x *ListApplicationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicationsResponse.ProtoReflect.Descriptor instead.
func (*ListApplicationsResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{20}
}

func (x *ListApplicationsResponse) GetApplications() []*Application {
	if x != nil {
		return x.Applications
	}
	return nil
}

type Application struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	UserEmail        string                 `protobuf:"bytes,2,opt,name=user_email,json=userEmail,proto3" json:"user_email,omitempty"`
	BankId           int64                  `protobuf:"varint,3,opt,name=bank_id,json=bankId,proto3" json:"bank_id,omitempty"`
	Status           string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	FilledFormFields string                 `protobuf:"bytes,5,opt,name=filled_form_fields,json=filledFormFields,proto3" json:"filled_form_fields,omitempty"`
	Timestamp        string                 `protobuf:"bytes,6,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Application) Reset() {
	*x = Application{}
	mi := &file_loans_v1_loans_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Application) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Application) ProtoMessage() {}

func (x *Application) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Application.ProtoReflect.Descriptor instead.
func (*Application) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{21}
}

func (x *Application) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Application) GetUserEmail() string {
	if x != nil {
		return x.UserEmail
	}
	return ""
}

func (x *Application) GetBankId() int64 {
	if x != nil {
		return x.BankId
	}
	return 0
}

func (x *Application) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Application) GetFilledFormFields() string {
	if x != nil {
		return x.FilledFormFields
	}
	return ""
}

func (x *Application) GetTimestamp() string {
	if x != nil {
		return x.Timestamp
	}
	return ""
}

type ScheduleAppointmentRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Email  string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	AppId  int64                  `protobuf:"varint,2,opt,name=app_id,json=appId,proto3" json:"app_id,omitempty"`
	BankId int64                  `protobuf:"varint,3,opt,name=bank_id,json=bankId,proto3" json:"bank_id,omitempty"`
	// Accepted forms: "YYYY-MM-DDTHH:MM:SS" or "YYYY-MM-DD HH:MM".
	// Anything else is stored verbatim.
	ScheduledTime string `protobuf:"bytes,4,opt,name=scheduled_time,json=scheduledTime,proto3" json:"scheduled_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScheduleAppointmentRequest) Reset() {
	*x = ScheduleAppointmentRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleAppointmentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleAppointmentRequest) ProtoMessage() {}

func (x *ScheduleAppointmentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleAppointmentRequest.ProtoReflect.Descriptor instead.
func (*ScheduleAppointmentRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{22}
}

func (x *ScheduleAppointmentRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *ScheduleAppointmentRequest) GetAppId() int64 {
	if x != nil {
		return x.AppId
	}
	return 0
}

func (x *ScheduleAppointmentRequest) GetBankId() int64 {
	if x != nil {
		return x.BankId
	}
	return 0
}

func (x *ScheduleAppointmentRequest) GetScheduledTime() string {
	if x != nil {
		return x.ScheduledTime
	}
	return ""
}

type ScheduleAppointmentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AppointmentId int64                  `protobuf:"varint,1,opt,name=appointment_id,json=appointmentId,proto3" json:"appointment_id,omitempty"`
	ScheduledTime string                 `protobuf:"bytes,2,opt,name=scheduled_time,json=scheduledTime,proto3" json:"scheduled_time,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScheduleAppointmentResponse) Reset() {
	*x = ScheduleAppointmentResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleAppointmentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleAppointmentResponse) ProtoMessage() {}

func (x *ScheduleAppointmentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleAppointmentResponse.ProtoReflect.Descriptor instead.
func (*ScheduleAppointmentResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{23}
}

func (x *ScheduleAppointmentResponse) GetAppointmentId() int64 {
	if x != nil {
		return x.AppointmentId
	}
	return 0
}

func (x *ScheduleAppointmentResponse) GetScheduledTime() string {
	if x != nil {
		return x.ScheduledTime
	}
	return ""
}

func (x *ScheduleAppointmentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListAppointmentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAppointmentsRequest) Reset() {
	*x = ListAppointmentsRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAppointmentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAppointmentsRequest) ProtoMessage() {}

func (x *ListAppointmentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAppointmentsRequest.ProtoReflect.Descriptor instead.
func (*ListAppointmentsRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{24}
}

func (x *ListAppointmentsRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type ListAppointmentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Appointments  []*Appointment         `protobuf:"bytes,1,rep,name=appointments,proto3" json:"appointments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAppointmentsResponse) Reset() {
	*x = ListAppointmentsResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAppointmentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAppointmentsResponse) ProtoMessage() {}

func (x *ListAppointmentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAppointmentsResponse.ProtoReflect.Descriptor instead.
func (*ListAppointmentsResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{25}
}

func (x *ListAppointmentsResponse) GetAppointments() []*Appointment {
	if x != nil {
		return x.Appointments
	}
	return nil
}

type Appointment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	AppId         int64                  `protobuf:"varint,2,opt,name=app_id,json=appId,proto3" json:"app_id,omitempty"`
	UserEmail     string                 `protobuf:"bytes,3,opt,name=user_email,json=userEmail,proto3" json:"user_email,omitempty"`
	BankId        int64                  `protobuf:"varint,4,opt,name=bank_id,json=bankId,proto3" json:"bank_id,omitempty"`
	ScheduledTime string                 `protobuf:"bytes,5,opt,name=scheduled_time,json=scheduledTime,proto3" json:"scheduled_time,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Appointment) Reset() {
	*x = Appointment{}
	mi := &file_loans_v1_loans_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Appointment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Appointment) ProtoMessage() {}

func (x *Appointment) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Appointment.ProtoReflect.Descriptor instead.
func (*Appointment) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{26}
}

func (x *Appointment) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Appointment) GetAppId() int64 {
	if x != nil {
		return x.AppId
	}
	return 0
}

func (x *Appointment) GetUserEmail() string {
	if x != nil {
		return x.UserEmail
	}
	return ""
}

func (x *Appointment) GetBankId() int64 {
	if x != nil {
		return x.BankId
	}
	return 0
}

func (x *Appointment) GetScheduledTime() string {
	if x != nil {
		return x.ScheduledTime
	}
	return ""
}

func (x *Appointment) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Appointment) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ExportApplicationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportApplicationsRequest) Reset() {
	*x = ExportApplicationsRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportApplicationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportApplicationsRequest) ProtoMessage() {}

func (x *ExportApplicationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportApplicationsRequest.ProtoReflect.Descriptor instead.
func (*ExportApplicationsRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{27}
}

func (x *ExportApplicationsRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type ExportApplicationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportApplicationsResponse) Reset() {
	*x = ExportApplicationsResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportApplicationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportApplicationsResponse) ProtoMessage() {}

func (x *ExportApplicationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportApplicationsResponse.ProtoReflect.Descriptor instead.
func (*ExportApplicationsResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{28}
}

func (x *ExportApplicationsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type GenerateNOCRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Email string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	// Document the student details are read from.
	DocId         int64   `protobuf:"varint,2,opt,name=doc_id,json=docId,proto3" json:"doc_id,omitempty"`
	BankId        int64   `protobuf:"varint,3,opt,name=bank_id,json=bankId,proto3" json:"bank_id,omitempty"`
	LoanAmount    float64 `protobuf:"fixed64,4,opt,name=loan_amount,json=loanAmount,proto3" json:"loan_amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateNOCRequest) Reset() {
	*x = GenerateNOCRequest{}
	mi := &file_loans_v1_loans_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateNOCRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateNOCRequest) ProtoMessage() {}

func (x *GenerateNOCRequest) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateNOCRequest.ProtoReflect.Descriptor instead.
func (*GenerateNOCRequest) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{29}
}

func (x *GenerateNOCRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *GenerateNOCRequest) GetDocId() int64 {
	if x != nil {
		return x.DocId
	}
	return 0
}

func (x *GenerateNOCRequest) GetBankId() int64 {
	if x != nil {
		return x.BankId
	}
	return 0
}

func (x *GenerateNOCRequest) GetLoanAmount() float64 {
	if x != nil {
		return x.LoanAmount
	}
	return 0
}

type GenerateNOCResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Certificate   string                 `protobuf:"bytes,1,opt,name=certificate,proto3" json:"certificate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateNOCResponse) Reset() {
	*x = GenerateNOCResponse{}
	mi := &file_loans_v1_loans_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateNOCResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateNOCResponse) ProtoMessage() {}

func (x *GenerateNOCResponse) ProtoReflect() protoreflect.Message {
	mi := &file_loans_v1_loans_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateNOCResponse.ProtoReflect.Descriptor instead.
func (*GenerateNOCResponse) Descriptor() ([]byte, []int) {
	return file_loans_v1_loans_proto_rawDescGZIP(), []int{30}
}

func (x *GenerateNOCResponse) GetCertificate() string {
	if x != nil {
		return x.Certificate
	}
	return ""
}

var File_loans_v1_loans_proto protoreflect.FileDescriptor

const file_loans_v1_loans_proto_rawDesc = "" +
	"\n" +
	"\x14loans/v1/loans.proto\x12\bloans.v1\"v\n" +
	"\x0fRegisterRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\x12\x1b\n" +
	"\tfull_name\x18\x03 \x01(\tR\bfullName\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\"6\n" +
	"\x10RegisterResponse\x12\"\n" +
	"\x04user\x18\x01 \x01(\v2\x0e.loans.v1.UserR\x04user\"@\n" +
	"\fLoginRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\"3\n" +
	"\rLoginResponse\x12\"\n" +
	"\x04user\x18\x01 \x01(\v2\x0e.loans.v1.UserR\x04user\"\xc9\x01\n" +
	"\x14UpdateProfileRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12 \n" +
	"\tfull_name\x18\x02 \x01(\tH\x00R\bfullName\x88\x01\x01\x12\x19\n" +
	"\x05phone\x18\x03 \x01(\tH\x01R\x05phone\x88\x01\x01\x120\n" +
	"\x11profile_completed\x18\x04 \x01(\bH\x02R\x10profileCompleted\x88\x01\x01B\f\n" +
	"\n" +
	"_full_nameB\b\n" +
	"\x06_phoneB\x14\n" +
	"\x12_profile_completed\";\n" +
	"\x15UpdateProfileResponse\x12\"\n" +
	"\x04user\x18\x01 \x01(\v2\x0e.loans.v1.UserR\x04user\"\xab\x01\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x1b\n" +
	"\tfull_name\x18\x03 \x01(\tR\bfullName\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12+\n" +
	"\x11profile_completed\x18\x06 \x01(\bR\x10profileCompleted\"K\n" +
	"\x14ProcessUploadRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x1d\n" +
	"\n" +
	"file_paths\x18\x02 \x03(\tR\tfilePaths\"c\n" +
	"\x15ProcessUploadResponse\x12.\n" +
	"\bdocument\x18\x01 \x01(\v2\x12.loans.v1.DocumentR\bdocument\x12\x1a\n" +
	"\bwarnings\x18\x02 \x03(\tR\bwarnings\",\n" +
	"\x14ListDocumentsRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\"I\n" +
	"\x15ListDocumentsResponse\x120\n" +
	"\tdocuments\x18\x01 \x03(\v2\x12.loans.v1.DocumentR\tdocuments\"\xb0\x01\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x1f\n" +
	"\vupload_time\x18\x03 \x01(\tR\n" +
	"uploadTime\x12!\n" +
	"\fsource_files\x18\x04 \x03(\tR\vsourceFiles\x12\x1f\n" +
	"\vparsed_json\x18\x05 \x01(\tR\n" +
	"parsedJson\x12\x19\n" +
	"\braw_text\x18\x06 \x01(\tR\arawText\"\x82\x01\n" +
	"\x12RankLendersRequest\x12\x1a\n" +
	"\x06doc_id\x18\x01 \x01(\x03H\x00R\x05docId\x88\x01\x01\x12\x15\n" +
	"\x03gpa\x18\x02 \x01(\tH\x01R\x03gpa\x88\x01\x01\x12\x1b\n" +
	"\x06income\x18\x03 \x01(\tH\x02R\x06income\x88\x01\x01B\t\n" +
	"\a_doc_idB\x06\n" +
	"\x04_gpaB\t\n" +
	"\a_income\"G\n" +
	"\x13RankLendersResponse\x120\n" +
	"\alenders\x18\x01 \x03(\v2\x16.loans.v1.RankedLenderR\alenders\"\xe5\x01\n" +
	"\fRankedLender\x12\x17\n" +
	"\abank_id\x18\x01 \x01(\x03R\x06bankId\x12\x1b\n" +
	"\tbank_name\x18\x02 \x01(\tR\bbankName\x12\x14\n" +
	"\x05score\x18\x03 \x01(\x05R\x05score\x12\x10\n" +
	"\x03why\x18\x04 \x01(\tR\x03why\x12\x1a\n" +
	"\binterest\x18\x05 \x01(\x01R\binterest\x12\x1d\n" +
	"\n" +
	"max_amount\x18\x06 \x01(\x01R\tmaxAmount\x12\x1a\n" +
	"\bapproval\x18\a \x01(\x01R\bapproval\x12 \n" +
	"\vdescription\x18\b \x01(\tR\vdescription\"w\n" +
	"\x13CalculateEMIRequest\x12\x1c\n" +
	"\tprincipal\x18\x01 \x01(\x01R\tprincipal\x12\x1f\n" +
	"\vannual_rate\x18\x02 \x01(\x01R\n" +
	"annualRate\x12!\n" +
	"\ftenure_years\x18\x03 \x01(\x05R\vtenureYears\"\x8c\x01\n" +
	"\x14CalculateEMIResponse\x12\x10\n" +
	"\x03emi\x18\x01 \x01(\x01R\x03emi\x12\x16\n" +
	"\x06months\x18\x02 \x01(\x05R\x06months\x12#\n" +
	"\rtotal_payment\x18\x03 \x01(\x01R\ftotalPayment\x12%\n" +
	"\x0etotal_interest\x18\x04 \x01(\x01R\rtotalInterest\"\xa9\x02\n" +
	"\x18SubmitApplicationRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x17\n" +
	"\abank_id\x18\x02 \x01(\x03R\x06bankId\x12f\n" +
	"\x12filled_form_fields\x18\x03 \x03(\v28.loans.v1.SubmitApplicationRequest.FilledFormFieldsEntryR\x10filledFormFields\x121\n" +
	"\x14schedule_appointment\x18\x04 \x01(\bR\x13scheduleAppointment\x1aC\n" +
	"\x15FilledFormFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xc8\x01\n" +
	"\x19SubmitApplicationResponse\x12\x15\n" +
	"\x06app_id\x18\x01 \x01(\x03R\x05appId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12*\n" +
	"\x0eappointment_id\x18\x03 \x01(\x03H\x00R\rappointmentId\x88\x01\x01\x12*\n" +
	"\x0escheduled_time\x18\x04 \x01(\tH\x01R\rscheduledTime\x88\x01\x01B\x11\n" +
	"\x0f_appointment_idB\x11\n" +
	"\x0f_scheduled_time\"/\n" +
	"\x17ListApplicationsRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\"U\n" +
	"\x18ListApplicationsResponse\x129\n" +
	"\fapplications\x18\x01 \x03(\v2\x15.loans.v1.ApplicationR\fapplications\"\xb9\x01\n" +
	"\vApplication\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x1d\n" +
	"\n" +
	"user_email\x18\x02 \x01(\tR\tuserEmail\x12\x17\n" +
	"\abank_id\x18\x03 \x01(\x03R\x06bankId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12,\n" +
	"\x12filled_form_fields\x18\x05 \x01(\tR\x10filledFormFields\x12\x1c\n" +
	"\ttimestamp\x18\x06 \x01(\tR\ttimestamp\"\x89\x01\n" +
	"\x1aScheduleAppointmentRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x15\n" +
	"\x06app_id\x18\x02 \x01(\x03R\x05appId\x12\x17\n" +
	"\abank_id\x18\x03 \x01(\x03R\x06bankId\x12%\n" +
	"\x0escheduled_time\x18\x04 \x01(\tR\rscheduledTime\"\x83\x01\n" +
	"\x1bScheduleAppointmentResponse\x12%\n" +
	"\x0eappointment_id\x18\x01 \x01(\x03R\rappointmentId\x12%\n" +
	"\x0escheduled_time\x18\x02 \x01(\tR\rscheduledTime\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\"/\n" +
	"\x17ListAppointmentsRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\"U\n" +
	"\x18ListAppointmentsResponse\x129\n" +
	"\fappointments\x18\x01 \x03(\v2\x15.loans.v1.AppointmentR\fappointments\"\xca\x01\n" +
	"\vAppointment\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x15\n" +
	"\x06app_id\x18\x02 \x01(\x03R\x05appId\x12\x1d\n" +
	"\n" +
	"user_email\x18\x03 \x01(\tR\tuserEmail\x12\x17\n" +
	"\abank_id\x18\x04 \x01(\x03R\x06bankId\x12%\n" +
	"\x0escheduled_time\x18\x05 \x01(\tR\rscheduledTime\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\"1\n" +
	"\x19ExportApplicationsRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\"0\n" +
	"\x1aExportApplicationsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"{\n" +
	"\x12GenerateNOCRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x15\n" +
	"\x06doc_id\x18\x02 \x01(\x03R\x05docId\x12\x17\n" +
	"\abank_id\x18\x03 \x01(\x03R\x06bankId\x12\x1f\n" +
	"\vloan_amount\x18\x04 \x01(\x01R\n" +
	"loanAmount\"7\n" +
	"\x13GenerateNOCResponse\x12 \n" +
	"\vcertificate\x18\x01 \x01(\tR\vcertificate2\xdc\x01\n" +
	"\vAuthService\x12A\n" +
	"\bRegister\x12\x19.loans.v1.RegisterRequest\x1a\x1a.loans.v1.RegisterResponse\x128\n" +
	"\x05Login\x12\x16.loans.v1.LoginRequest\x1a\x17.loans.v1.LoginResponse\x12P\n" +
	"\rUpdateProfile\x12\x1e.loans.v1.UpdateProfileRequest\x1a\x1f.loans.v1.UpdateProfileResponse2\xb6\x01\n" +
	"\x10DocumentsService\x12P\n" +
	"\rProcessUpload\x12\x1e.loans.v1.ProcessUploadRequest\x1a\x1f.loans.v1.ProcessUploadResponse\x12P\n" +
	"\rListDocuments\x12\x1e.loans.v1.ListDocumentsRequest\x1a\x1f.loans.v1.ListDocumentsResponse2d\n" +
	"\x16RecommendationsService\x12J\n" +
	"\vRankLenders\x12\x1c.loans.v1.RankLendersRequest\x1a\x1d.loans.v1.RankLendersResponse2\x82\x05\n" +
	"\fLoansService\x12M\n" +
	"\fCalculateEMI\x12\x1d.loans.v1.CalculateEMIRequest\x1a\x1e.loans.v1.CalculateEMIResponse\x12\\\n" +
	"\x11SubmitApplication\x12\".loans.v1.SubmitApplicationRequest\x1a#.loans.v1.SubmitApplicationResponse\x12Y\n" +
	"\x10ListApplications\x12!.loans.v1.ListApplicationsRequest\x1a\".loans.v1.ListApplicationsResponse\x12b\n" +
	"\x13ScheduleAppointment\x12$.loans.v1.ScheduleAppointmentRequest\x1a%.loans.v1.ScheduleAppointmentResponse\x12Y\n" +
	"\x10ListAppointments\x12!.loans.v1.ListAppointmentsRequest\x1a\".loans.v1.ListAppointmentsResponse\x12_\n" +
	"\x12ExportApplications\x12#.loans.v1.ExportApplicationsRequest\x1a$.loans.v1.ExportApplicationsResponse\x12J\n" +
	"\vGenerateNOC\x12\x1c.loans.v1.GenerateNOCRequest\x1a\x1d.loans.v1.GenerateNOCResponseB:Z8github.com/edulend/loanassist/gen/proto/loans/v1;loansv1b\x06proto3"

var (
	file_loans_v1_loans_proto_rawDescOnce sync.Once
	file_loans_v1_loans_proto_rawDescData []byte
)

func file_loans_v1_loans_proto_rawDescGZIP() []byte {
	file_loans_v1_loans_proto_rawDescOnce.Do(func() {
		file_loans_v1_loans_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_loans_v1_loans_proto_rawDesc), len(file_loans_v1_loans_proto_rawDesc)))
	})
	return file_loans_v1_loans_proto_rawDescData
}

var file_loans_v1_loans_proto_msgTypes = make([]protoimpl.MessageInfo, 32)
var file_loans_v1_loans_proto_goTypes = []any{
	(*RegisterRequest)(nil),             // 0: loans.v1.RegisterRequest
	(*RegisterResponse)(nil),            // 1: loans.v1.RegisterResponse
	(*LoginRequest)(nil),                // 2: loans.v1.LoginRequest
	(*LoginResponse)(nil),               // 3: loans.v1.LoginResponse
	(*UpdateProfileRequest)(nil),        // 4: loans.v1.UpdateProfileRequest
	(*UpdateProfileResponse)(nil),       // 5: loans.v1.UpdateProfileResponse
	(*User)(nil),                        // 6: loans.v1.User
	(*ProcessUploadRequest)(nil),        // 7: loans.v1.ProcessUploadRequest
	(*ProcessUploadResponse)(nil),       // 8: loans.v1.ProcessUploadResponse
	(*ListDocumentsRequest)(nil),        // 9: loans.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),       // 10: loans.v1.ListDocumentsResponse
	(*Document)(nil),                    // 11: loans.v1.Document
	(*RankLendersRequest)(nil),          // 12: loans.v1.RankLendersRequest
	(*RankLendersResponse)(nil),         // 13: loans.v1.RankLendersResponse
	(*RankedLender)(nil),                // 14: loans.v1.RankedLender
	(*CalculateEMIRequest)(nil),         // 15: loans.v1.CalculateEMIRequest
	(*CalculateEMIResponse)(nil),        // 16: loans.v1.CalculateEMIResponse
	(*SubmitApplicationRequest)(nil),    // 17: loans.v1.SubmitApplicationRequest
	(*SubmitApplicationResponse)(nil),   // 18: loans.v1.SubmitApplicationResponse
	(*ListApplicationsRequest)(nil),     // 19: loans.v1.ListApplicationsRequest
	(*ListApplicationsResponse)(nil),    // 20: loans.v1.ListApplicationsResponse
	(*Application)(nil),                 // 21: loans.v1.Application
	(*ScheduleAppointmentRequest)(nil),  // 22: loans.v1.ScheduleAppointmentRequest
	(*ScheduleAppointmentResponse)(nil), // 23: loans.v1.ScheduleAppointmentResponse
	(*ListAppointmentsRequest)(nil),     // 24: loans.v1.ListAppointmentsRequest
	(*ListAppointmentsResponse)(nil),    // 25: loans.v1.ListAppointmentsResponse
	(*Appointment)(nil),                 // 26: loans.v1.Appointment
	(*ExportApplicationsRequest)(nil),   // 27: loans.v1.ExportApplicationsRequest
	(*ExportApplicationsResponse)(nil),  // 28: loans.v1.ExportApplicationsResponse
	(*GenerateNOCRequest)(nil),          // 29: loans.v1.GenerateNOCRequest
	(*GenerateNOCResponse)(nil),         // 30: loans.v1.GenerateNOCResponse
	nil,                                 // 31: loans.v1.SubmitApplicationRequest.FilledFormFieldsEntry
}
var file_loans_v1_loans_proto_depIdxs = []int32{
	6,  // 0: loans.v1.RegisterResponse.user:type_name -> loans.v1.User
	6,  // 1: loans.v1.LoginResponse.user:type_name -> loans.v1.User
	6,  // 2: loans.v1.UpdateProfileResponse.user:type_name -> loans.v1.User
	11, // 3: loans.v1.ProcessUploadResponse.document:type_name -> loans.v1.Document
	11, // 4: loans.v1.ListDocumentsResponse.documents:type_name -> loans.v1.Document
	14, // 5: loans.v1.RankLendersResponse.lenders:type_name -> loans.v1.RankedLender
	31, // 6: loans.v1.SubmitApplicationRequest.filled_form_fields:type_name -> loans.v1.SubmitApplicationRequest.FilledFormFieldsEntry
	21, // 7: loans.v1.ListApplicationsResponse.applications:type_name -> loans.v1.Application
	26, // 8: loans.v1.ListAppointmentsResponse.appointments:type_name -> loans.v1.Appointment
	0,  // 9: loans.v1.AuthService.Register:input_type -> loans.v1.RegisterRequest
	2,  // 10: loans.v1.AuthService.Login:input_type -> loans.v1.LoginRequest
	4,  // 11: loans.v1.AuthService.UpdateProfile:input_type -> loans.v1.UpdateProfileRequest
	7,  // 12: loans.v1.DocumentsService.ProcessUpload:input_type -> loans.v1.ProcessUploadRequest
	9,  // 13: loans.v1.DocumentsService.ListDocuments:input_type -> loans.v1.ListDocumentsRequest
	12, // 14: loans.v1.RecommendationsService.RankLenders:input_type -> loans.v1.RankLendersRequest
	15, // 15: loans.v1.LoansService.CalculateEMI:input_type -> loans.v1.CalculateEMIRequest
	17, // 16: loans.v1.LoansService.SubmitApplication:input_type -> loans.v1.SubmitApplicationRequest
	19, // 17: loans.v1.LoansService.ListApplications:input_type -> loans.v1.ListApplicationsRequest
	22, // 18: loans.v1.LoansService.ScheduleAppointment:input_type -> loans.v1.ScheduleAppointmentRequest
	24, // 19: loans.v1.LoansService.ListAppointments:input_type -> loans.v1.ListAppointmentsRequest
	27, // 20: loans.v1.LoansService.ExportApplications:input_type -> loans.v1.ExportApplicationsRequest
	29, // 21: loans.v1.LoansService.GenerateNOC:input_type -> loans.v1.GenerateNOCRequest
	1,  // 22: loans.v1.AuthService.Register:output_type -> loans.v1.RegisterResponse
	3,  // 23: loans.v1.AuthService.Login:output_type -> loans.v1.LoginResponse
	5,  // 24: loans.v1.AuthService.UpdateProfile:output_type -> loans.v1.UpdateProfileResponse
	8,  // 25: loans.v1.DocumentsService.ProcessUpload:output_type -> loans.v1.ProcessUploadResponse
	10, // 26: loans.v1.DocumentsService.ListDocuments:output_type -> loans.v1.ListDocumentsResponse
	13, // 27: loans.v1.RecommendationsService.RankLenders:output_type -> loans.v1.RankLendersResponse
	16, // 28: loans.v1.LoansService.CalculateEMI:output_type -> loans.v1.CalculateEMIResponse
	18, // 29: loans.v1.LoansService.SubmitApplication:output_type -> loans.v1.SubmitApplicationResponse
	20, // 30: loans.v1.LoansService.ListApplications:output_type -> loans.v1.ListApplicationsResponse
	23, // 31: loans.v1.LoansService.ScheduleAppointment:output_type -> loans.v1.ScheduleAppointmentResponse
	25, // 32: loans.v1.LoansService.ListAppointments:output_type -> loans.v1.ListAppointmentsResponse
	28, // 33: loans.v1.LoansService.ExportApplications:output_type -> loans.v1.ExportApplicationsResponse
	30, // 34: loans.v1.LoansService.GenerateNOC:output_type -> loans.v1.GenerateNOCResponse
	22, // [22:35] is the sub-list for method output_type
	9,  // [9:22] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_loans_v1_loans_proto_init() }
func file_loans_v1_loans_proto_init() {
	if File_loans_v1_loans_proto != nil {
		return
	}
	file_loans_v1_loans_proto_msgTypes[4].OneofWrappers = []any{}
	file_loans_v1_loans_proto_msgTypes[12].OneofWrappers = []any{}
	file_loans_v1_loans_proto_msgTypes[18].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_loans_v1_loans_proto_rawDesc), len(file_loans_v1_loans_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   32,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_loans_v1_loans_proto_goTypes,
		DependencyIndexes: file_loans_v1_loans_proto_depIdxs,
		MessageInfos:      file_loans_v1_loans_proto_msgTypes,
	}.Build()
	File_loans_v1_loans_proto = out.File
	file_loans_v1_loans_proto_goTypes = nil
	file_loans_v1_loans_proto_depIdxs = nil
}
