package server

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lockshop/invoicer/constants"
	invoicerpb "github.com/lockshop/invoicer/gen/proto/invoicer/v1"
	"github.com/lockshop/invoicer/internal/common"
	"github.com/lockshop/invoicer/internal/entity"
	"github.com/lockshop/invoicer/internal/export"
	"github.com/lockshop/invoicer/internal/extract"
	"github.com/lockshop/invoicer/internal/inventory"
	"github.com/lockshop/invoicer/internal/parser"
	"github.com/lockshop/invoicer/internal/repository"
	"github.com/lockshop/invoicer/internal/utils"
)

type InvoiceService struct {
	invoicerpb.UnimplementedInvoiceServiceServer
	parser    *parser.Parser
	extractor extract.TextExtractor
	inventory *inventory.Service
	exporter  *export.Service
	shops     repository.ShopRepository
	jobs      repository.ImportJobRepository
	logger    *slog.Logger
}

func NewInvoiceService(
	p *parser.Parser,
	ex extract.TextExtractor,
	inv *inventory.Service,
	exp *export.Service,
	shops repository.ShopRepository,
	jobs repository.ImportJobRepository,
	logger *slog.Logger,
) *InvoiceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceService{
		parser:    p,
		extractor: ex,
		inventory: inv,
		exporter:  exp,
		shops:     shops,
		jobs:      jobs,
		logger:    logger,
	}
}

func (s *InvoiceService) shopID(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("shop_id must be a UUID")
	}
	if exists, _ := s.shops.Exists(ctx, id); !exists {
		return uuid.Nil, common.InvalidArgumentError("shop not found")
	}
	return id, nil
}

// ParseInvoiceText parses already-extracted invoice text. Zero items is a
// legitimate result, not an error; the review UI owns the messaging.
func (s *InvoiceService) ParseInvoiceText(ctx context.Context, req *invoicerpb.ParseInvoiceTextRequest) (*invoicerpb.ParseInvoiceResponse, error) {
	shopID, err := s.shopID(ctx, req.GetShopId())
	if err != nil {
		return nil, err
	}
	text := req.GetText()
	if strings.TrimSpace(text) == "" {
		return nil, common.InvalidArgumentError("text is required")
	}
	return s.parseAndRecord(ctx, shopID, text, constants.TXT)
}

// ParseInvoiceFile extracts text from a PDF (or .txt) on local disk and
// parses it. Extraction failure is a hard error, unlike an empty parse.
func (s *InvoiceService) ParseInvoiceFile(ctx context.Context, req *invoicerpb.ParseInvoiceFileRequest) (*invoicerpb.ParseInvoiceResponse, error) {
	shopID, err := s.shopID(ctx, req.GetShopId())
	if err != nil {
		return nil, err
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, common.InvalidArgumentError("path is required")
	}

	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		return nil, common.InvalidArgumentError("unsupported file extension")
	}

	res, err := s.extractor.Extract(ctx, path)
	if err != nil {
		s.logger.Error("invoice extraction failed", "shop_id", shopID, "path", path, "error", err)
		if job, jerr := s.jobs.Start(ctx, shopID, format); jerr == nil {
			_ = s.jobs.FinishFailure(ctx, job.ID, err.Error())
		}
		if errors.Is(err, common.ErrExtractionFailed) {
			return nil, status.Errorf(codes.Internal, "extraction failed: %v", err)
		}
		return nil, common.InternalError("extraction failed")
	}
	return s.parseAndRecord(ctx, shopID, res.Text, format)
}

func (s *InvoiceService) parseAndRecord(ctx context.Context, shopID uuid.UUID, text, format string) (*invoicerpb.ParseInvoiceResponse, error) {
	result := s.parser.Parse(text)

	jobStatus := constants.JobStatusParsed
	if len(result.Items) == 0 {
		jobStatus = constants.JobStatusEmpty
	}

	var jobID string
	if job, err := s.jobs.Start(ctx, shopID, format); err == nil {
		jobID = job.ID.String()
		if err := s.jobs.FinishParsed(ctx, job.ID, result.Supplier.String(), string(jobStatus), len(result.Items), result.TotalValue()); err != nil {
			s.logger.Warn("import job update failed", "job_id", jobID, "error", err)
		}
	} else {
		// Parsing is still useful without the audit row.
		s.logger.Warn("import job create failed", "shop_id", shopID, "error", err)
	}

	items := make([]*invoicerpb.LineItem, len(result.Items))
	for i, it := range result.Items {
		items[i] = utils.ToPBLineItem(it)
	}
	return &invoicerpb.ParseInvoiceResponse{
		Supplier:   result.Supplier.String(),
		Items:      items,
		TotalItems: int32(len(result.Items)),
		TotalValue: result.TotalValue(),
		JobId:      jobID,
	}, nil
}

// BulkAddItems reconciles reviewed line items into inventory. Item outcomes
// are reported individually; only a malformed payload fails the call.
func (s *InvoiceService) BulkAddItems(ctx context.Context, req *invoicerpb.BulkAddItemsRequest) (*invoicerpb.BulkAddItemsResponse, error) {
	shopID, err := s.shopID(ctx, req.GetShopId())
	if err != nil {
		return nil, err
	}
	if len(req.GetItems()) == 0 {
		return nil, common.InvalidArgumentError("items are required")
	}

	items := make([]entity.LineItem, len(req.GetItems()))
	for i, it := range req.GetItems() {
		items[i] = utils.FromPBLineItem(it)
	}
	if err := inventory.ValidateItems(items); err != nil {
		return nil, common.InvalidArgumentErrorf("invalid items: %v", err)
	}

	results := s.inventory.BulkAdd(ctx, shopID, items)
	out := make([]*invoicerpb.ItemResult, len(results))
	for i, r := range results {
		out[i] = &invoicerpb.ItemResult{
			Sku:      r.SKU,
			Action:   r.Action,
			Quantity: int32(r.Quantity),
			NewTotal: int32(r.NewTotal),
			Error:    r.Error,
		}
	}
	return &invoicerpb.BulkAddItemsResponse{Results: out}, nil
}

// ExportInventory returns the shop's inventory as an XLSX workbook.
func (s *InvoiceService) ExportInventory(ctx context.Context, req *invoicerpb.ExportInventoryRequest) (*invoicerpb.ExportInventoryResponse, error) {
	shopID, err := s.shopID(ctx, req.GetShopId())
	if err != nil {
		return nil, err
	}
	data, rows, err := s.exporter.ExportInventoryXLSX(ctx, shopID)
	if err != nil {
		s.logger.Error("inventory export failed", "shop_id", shopID, "error", err)
		return nil, common.InternalError("export failed")
	}
	return &invoicerpb.ExportInventoryResponse{Xlsx: data, RowCount: int32(rows)}, nil
}
