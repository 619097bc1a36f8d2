// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoicer/v1/invoicer.proto

package invoicerv1

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

type Shop struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,4,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Shop) Reset() {
	*x = Shop{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Shop) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Shop) ProtoMessage() {}

func (x *Shop) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Shop.ProtoReflect.Descriptor instead.
func (*Shop) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{0}
}

func (x *Shop) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Shop) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Shop) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Shop) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sku           string                 `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,3,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	Quantity      int32                  `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	LineTotal     float64                `protobuf:"fixed64,5,opt,name=line_total,json=lineTotal,proto3" json:"line_total,omitempty"`
	Supplier      string                 `protobuf:"bytes,6,opt,name=supplier,proto3" json:"supplier,omitempty"`
	Category      string                 `protobuf:"bytes,7,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{1}
}

func (x *LineItem) GetSku() string {
	if x != nil {
		return x.Sku
	}
	return ""
}

func (x *LineItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *LineItem) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *LineItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *LineItem) GetLineTotal() float64 {
	if x != nil {
		return x.LineTotal
	}
	return 0
}

func (x *LineItem) GetSupplier() string {
	if x != nil {
		return x.Supplier
	}
	return ""
}

func (x *LineItem) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type ParseInvoiceTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ShopId        string                 `protobuf:"bytes,1,opt,name=shop_id,json=shopId,proto3" json:"shop_id,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseInvoiceTextRequest) Reset() {
	*x = ParseInvoiceTextRequest{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseInvoiceTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseInvoiceTextRequest) ProtoMessage() {}

func (x *ParseInvoiceTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseInvoiceTextRequest.ProtoReflect.Descriptor instead.
func (*ParseInvoiceTextRequest) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{2}
}

func (x *ParseInvoiceTextRequest) GetShopId() string {
	if x != nil {
		return x.ShopId
	}
	return ""
}

func (x *ParseInvoiceTextRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type ParseInvoiceFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ShopId        string                 `protobuf:"bytes,1,opt,name=shop_id,json=shopId,proto3" json:"shop_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseInvoiceFileRequest) Reset() {
	*x = ParseInvoiceFileRequest{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseInvoiceFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseInvoiceFileRequest) ProtoMessage() {}

func (x *ParseInvoiceFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseInvoiceFileRequest.ProtoReflect.Descriptor instead.
func (*ParseInvoiceFileRequest) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{3}
}

func (x *ParseInvoiceFileRequest) GetShopId() string {
	if x != nil {
		return x.ShopId
	}
	return ""
}

func (x *ParseInvoiceFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type ParseInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Supplier      string                 `protobuf:"bytes,1,opt,name=supplier,proto3" json:"supplier,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	TotalItems    int32                  `protobuf:"varint,3,opt,name=total_items,json=totalItems,proto3" json:"total_items,omitempty"`
	TotalValue    float64                `protobuf:"fixed64,4,opt,name=total_value,json=totalValue,proto3" json:"total_value,omitempty"`
	JobId         string                 `protobuf:"bytes,5,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseInvoiceResponse) Reset() {
	*x = ParseInvoiceResponse{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseInvoiceResponse) ProtoMessage() {}

func (x *ParseInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseInvoiceResponse.ProtoReflect.Descriptor instead.
func (*ParseInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{4}
}

func (x *ParseInvoiceResponse) GetSupplier() string {
	if x != nil {
		return x.Supplier
	}
	return ""
}

func (x *ParseInvoiceResponse) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *ParseInvoiceResponse) GetTotalItems() int32 {
	if x != nil {
		return x.TotalItems
	}
	return 0
}

func (x *ParseInvoiceResponse) GetTotalValue() float64 {
	if x != nil {
		return x.TotalValue
	}
	return 0
}

func (x *ParseInvoiceResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type BulkAddItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ShopId        string                 `protobuf:"bytes,1,opt,name=shop_id,json=shopId,proto3" json:"shop_id,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkAddItemsRequest) Reset() {
	*x = BulkAddItemsRequest{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkAddItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkAddItemsRequest) ProtoMessage() {}

func (x *BulkAddItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkAddItemsRequest.ProtoReflect.Descriptor instead.
func (*BulkAddItemsRequest) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{5}
}

func (x *BulkAddItemsRequest) GetShopId() string {
	if x != nil {
		return x.ShopId
	}
	return ""
}

func (x *BulkAddItemsRequest) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ItemResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sku           string                 `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	Action        string                 `protobuf:"bytes,2,opt,name=action,proto3" json:"action,omitempty"` // "added" | "updated" | "error"
	Quantity      int32                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	NewTotal      int32                  `protobuf:"varint,4,opt,name=new_total,json=newTotal,proto3" json:"new_total,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ItemResult) Reset() {
	*x = ItemResult{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ItemResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ItemResult) ProtoMessage() {}

func (x *ItemResult) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ItemResult.ProtoReflect.Descriptor instead.
func (*ItemResult) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{6}
}

func (x *ItemResult) GetSku() string {
	if x != nil {
		return x.Sku
	}
	return ""
}

func (x *ItemResult) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *ItemResult) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *ItemResult) GetNewTotal() int32 {
	if x != nil {
		return x.NewTotal
	}
	return 0
}

func (x *ItemResult) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type BulkAddItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*ItemResult          `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkAddItemsResponse) Reset() {
	*x = BulkAddItemsResponse{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkAddItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkAddItemsResponse) ProtoMessage() {}

func (x *BulkAddItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkAddItemsResponse.ProtoReflect.Descriptor instead.
func (*BulkAddItemsResponse) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{7}
}

func (x *BulkAddItemsResponse) GetResults() []*ItemResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type ExportInventoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ShopId        string                 `protobuf:"bytes,1,opt,name=shop_id,json=shopId,proto3" json:"shop_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInventoryRequest) Reset() {
	*x = ExportInventoryRequest{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInventoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInventoryRequest) ProtoMessage() {}

func (x *ExportInventoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInventoryRequest.ProtoReflect.Descriptor instead.
func (*ExportInventoryRequest) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{8}
}

func (x *ExportInventoryRequest) GetShopId() string {
	if x != nil {
		return x.ShopId
	}
	return ""
}

type ExportInventoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	RowCount      int32                  `protobuf:"varint,2,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInventoryResponse) Reset() {
	*x = ExportInventoryResponse{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInventoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInventoryResponse) ProtoMessage() {}

func (x *ExportInventoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInventoryResponse.ProtoReflect.Descriptor instead.
func (*ExportInventoryResponse) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{9}
}

func (x *ExportInventoryResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportInventoryResponse) GetRowCount() int32 {
	if x != nil {
		return x.RowCount
	}
	return 0
}

type CreateShopRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateShopRequest) Reset() {
	*x = CreateShopRequest{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateShopRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateShopRequest) ProtoMessage() {}

func (x *CreateShopRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateShopRequest.ProtoReflect.Descriptor instead.
func (*CreateShopRequest) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{10}
}

func (x *CreateShopRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateShopResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shop          *Shop                  `protobuf:"bytes,1,opt,name=shop,proto3" json:"shop,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateShopResponse) Reset() {
	*x = CreateShopResponse{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateShopResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateShopResponse) ProtoMessage() {}

func (x *CreateShopResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateShopResponse.ProtoReflect.Descriptor instead.
func (*CreateShopResponse) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{11}
}

func (x *CreateShopResponse) GetShop() *Shop {
	if x != nil {
		return x.Shop
	}
	return nil
}

type ListShopsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListShopsRequest) Reset() {
	*x = ListShopsRequest{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListShopsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListShopsRequest) ProtoMessage() {}

func (x *ListShopsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListShopsRequest.ProtoReflect.Descriptor instead.
func (*ListShopsRequest) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{12}
}

type ListShopsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shops         []*Shop                `protobuf:"bytes,1,rep,name=shops,proto3" json:"shops,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListShopsResponse) Reset() {
	*x = ListShopsResponse{}
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListShopsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListShopsResponse) ProtoMessage() {}

func (x *ListShopsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicer_v1_invoicer_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListShopsResponse.ProtoReflect.Descriptor instead.
func (*ListShopsResponse) Descriptor() ([]byte, []int) {
	return file_invoicer_v1_invoicer_proto_rawDescGZIP(), []int{13}
}

func (x *ListShopsResponse) GetShops() []*Shop {
	if x != nil {
		return x.Shops
	}
	return nil
}

var File_invoicer_v1_invoicer_proto protoreflect.FileDescriptor

const file_invoicer_v1_invoicer_proto_rawDesc = "" +
	"\n" +
	"\x1ainvoicer/v1/invoicer.proto\x12\vinvoicer.v1\"h\n" +
	"\x04Shop\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x04 \x01(\tR\tupdatedAt\"\xd0\x01\n" +
	"\bLineItem\x12\x10\n" +
	"\x03sku\x18\x01 \x01(\tR\x03sku\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\x01R\tunitPrice\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\x05R\bquantity\x12\x1d\n" +
	"\n" +
	"line_total\x18\x05 \x01(\x01R\tlineTotal\x12\x1a\n" +
	"\bsupplier\x18\x06 \x01(\tR\bsupplier\x12\x1a\n" +
	"\bcategory\x18\a \x01(\tR\bcategory\"F\n" +
	"\x17ParseInvoiceTextRequest\x12\x17\n" +
	"\ashop_id\x18\x01 \x01(\tR\x06shopId\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\"F\n" +
	"\x17ParseInvoiceFileRequest\x12\x17\n" +
	"\ashop_id\x18\x01 \x01(\tR\x06shopId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\xb8\x01\n" +
	"\x14ParseInvoiceResponse\x12\x1a\n" +
	"\bsupplier\x18\x01 \x01(\tR\bsupplier\x12+\n" +
	"\x05items\x18\x02 \x03(\v2\x15.invoicer.v1.LineItemR\x05items\x12\x1f\n" +
	"\vtotal_items\x18\x03 \x01(\x05R\n" +
	"totalItems\x12\x1f\n" +
	"\vtotal_value\x18\x04 \x01(\x01R\n" +
	"totalValue\x12\x15\n" +
	"\x06job_id\x18\x05 \x01(\tR\x05jobId\"[\n" +
	"\x13BulkAddItemsRequest\x12\x17\n" +
	"\ashop_id\x18\x01 \x01(\tR\x06shopId\x12+\n" +
	"\x05items\x18\x02 \x03(\v2\x15.invoicer.v1.LineItemR\x05items\"\x85\x01\n" +
	"\n" +
	"ItemResult\x12\x10\n" +
	"\x03sku\x18\x01 \x01(\tR\x03sku\x12\x16\n" +
	"\x06action\x18\x02 \x01(\tR\x06action\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x05R\bquantity\x12\x1b\n" +
	"\tnew_total\x18\x04 \x01(\x05R\bnewTotal\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\"I\n" +
	"\x14BulkAddItemsResponse\x121\n" +
	"\aresults\x18\x01 \x03(\v2\x17.invoicer.v1.ItemResultR\aresults\"1\n" +
	"\x16ExportInventoryRequest\x12\x17\n" +
	"\ashop_id\x18\x01 \x01(\tR\x06shopId\"J\n" +
	"\x17ExportInventoryResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1b\n" +
	"\trow_count\x18\x02 \x01(\x05R\browCount\"'\n" +
	"\x11CreateShopRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\";\n" +
	"\x12CreateShopResponse\x12%\n" +
	"\x04shop\x18\x01 \x01(\v2\x11.invoicer.v1.ShopR\x04shop\"\x12\n" +
	"\x10ListShopsRequest\"<\n" +
	"\x11ListShopsResponse\x12'\n" +
	"\x05shops\x18\x01 \x03(\v2\x11.invoicer.v1.ShopR\x05shops2\xfd\x02\n" +
	"\x0eInvoiceService\x12[\n" +
	"\x10ParseInvoiceText\x12$.invoicer.v1.ParseInvoiceTextRequest\x1a!.invoicer.v1.ParseInvoiceResponse\x12[\n" +
	"\x10ParseInvoiceFile\x12$.invoicer.v1.ParseInvoiceFileRequest\x1a!.invoicer.v1.ParseInvoiceResponse\x12S\n" +
	"\fBulkAddItems\x12 .invoicer.v1.BulkAddItemsRequest\x1a!.invoicer.v1.BulkAddItemsResponse\x12\\\n" +
	"\x0fExportInventory\x12#.invoicer.v1.ExportInventoryRequest\x1a$.invoicer.v1.ExportInventoryResponse2\xa8\x01\n" +
	"\vShopService\x12M\n" +
	"\n" +
	"CreateShop\x12\x1e.invoicer.v1.CreateShopRequest\x1a\x1f.invoicer.v1.CreateShopResponse\x12J\n" +
	"\tListShops\x12\x1d.invoicer.v1.ListShopsRequest\x1a\x1e.invoicer.v1.ListShopsResponseB?Z=github.com/lockshop/invoicer/gen/proto/invoicer/v1;invoicerv1b\x06proto3"

var (
	file_invoicer_v1_invoicer_proto_rawDescOnce sync.Once
	file_invoicer_v1_invoicer_proto_rawDescData []byte
)

func file_invoicer_v1_invoicer_proto_rawDescGZIP() []byte {
	file_invoicer_v1_invoicer_proto_rawDescOnce.Do(func() {
		file_invoicer_v1_invoicer_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoicer_v1_invoicer_proto_rawDesc), len(file_invoicer_v1_invoicer_proto_rawDesc)))
	})
	return file_invoicer_v1_invoicer_proto_rawDescData
}

var file_invoicer_v1_invoicer_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_invoicer_v1_invoicer_proto_goTypes = []any{
	(*Shop)(nil),                    // 0: invoicer.v1.Shop
	(*LineItem)(nil),                // 1: invoicer.v1.LineItem
	(*ParseInvoiceTextRequest)(nil), // 2: invoicer.v1.ParseInvoiceTextRequest
	(*ParseInvoiceFileRequest)(nil), // 3: invoicer.v1.ParseInvoiceFileRequest
	(*ParseInvoiceResponse)(nil),    // 4: invoicer.v1.ParseInvoiceResponse
	(*BulkAddItemsRequest)(nil),     // 5: invoicer.v1.BulkAddItemsRequest
	(*ItemResult)(nil),              // 6: invoicer.v1.ItemResult
	(*BulkAddItemsResponse)(nil),    // 7: invoicer.v1.BulkAddItemsResponse
	(*ExportInventoryRequest)(nil),  // 8: invoicer.v1.ExportInventoryRequest
	(*ExportInventoryResponse)(nil), // 9: invoicer.v1.ExportInventoryResponse
	(*CreateShopRequest)(nil),       // 10: invoicer.v1.CreateShopRequest
	(*CreateShopResponse)(nil),      // 11: invoicer.v1.CreateShopResponse
	(*ListShopsRequest)(nil),        // 12: invoicer.v1.ListShopsRequest
	(*ListShopsResponse)(nil),       // 13: invoicer.v1.ListShopsResponse
}
var file_invoicer_v1_invoicer_proto_depIdxs = []int32{
	1,  // 0: invoicer.v1.ParseInvoiceResponse.items:type_name -> invoicer.v1.LineItem
	1,  // 1: invoicer.v1.BulkAddItemsRequest.items:type_name -> invoicer.v1.LineItem
	6,  // 2: invoicer.v1.BulkAddItemsResponse.results:type_name -> invoicer.v1.ItemResult
	0,  // 3: invoicer.v1.CreateShopResponse.shop:type_name -> invoicer.v1.Shop
	0,  // 4: invoicer.v1.ListShopsResponse.shops:type_name -> invoicer.v1.Shop
	2,  // 5: invoicer.v1.InvoiceService.ParseInvoiceText:input_type -> invoicer.v1.ParseInvoiceTextRequest
	3,  // 6: invoicer.v1.InvoiceService.ParseInvoiceFile:input_type -> invoicer.v1.ParseInvoiceFileRequest
	5,  // 7: invoicer.v1.InvoiceService.BulkAddItems:input_type -> invoicer.v1.BulkAddItemsRequest
	8,  // 8: invoicer.v1.InvoiceService.ExportInventory:input_type -> invoicer.v1.ExportInventoryRequest
	10, // 9: invoicer.v1.ShopService.CreateShop:input_type -> invoicer.v1.CreateShopRequest
	12, // 10: invoicer.v1.ShopService.ListShops:input_type -> invoicer.v1.ListShopsRequest
	4,  // 11: invoicer.v1.InvoiceService.ParseInvoiceText:output_type -> invoicer.v1.ParseInvoiceResponse
	4,  // 12: invoicer.v1.InvoiceService.ParseInvoiceFile:output_type -> invoicer.v1.ParseInvoiceResponse
	7,  // 13: invoicer.v1.InvoiceService.BulkAddItems:output_type -> invoicer.v1.BulkAddItemsResponse
	9,  // 14: invoicer.v1.InvoiceService.ExportInventory:output_type -> invoicer.v1.ExportInventoryResponse
	11, // 15: invoicer.v1.ShopService.CreateShop:output_type -> invoicer.v1.CreateShopResponse
	13, // 16: invoicer.v1.ShopService.ListShops:output_type -> invoicer.v1.ListShopsResponse
	11, // [11:17] is the sub-list for method output_type
	5,  // [5:11] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_invoicer_v1_invoicer_proto_init() }
func file_invoicer_v1_invoicer_proto_init() {
	if File_invoicer_v1_invoicer_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoicer_v1_invoicer_proto_rawDesc), len(file_invoicer_v1_invoicer_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_invoicer_v1_invoicer_proto_goTypes,
		DependencyIndexes: file_invoicer_v1_invoicer_proto_depIdxs,
		MessageInfos:      file_invoicer_v1_invoicer_proto_msgTypes,
	}.Build()
	File_invoicer_v1_invoicer_proto = out.File
	file_invoicer_v1_invoicer_proto_goTypes = nil
	file_invoicer_v1_invoicer_proto_depIdxs = nil
}
