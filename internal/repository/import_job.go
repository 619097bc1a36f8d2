package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lockshop/invoicer/constants"
	"github.com/lockshop/invoicer/gen/ent"
	"github.com/lockshop/invoicer/internal/entity"
	"github.com/lockshop/invoicer/internal/utils"
)

type ImportJobRepository interface {
	Start(ctx context.Context, shopID uuid.UUID, format string) (*entity.ImportJob, error)
	FinishParsed(ctx context.Context, jobID uuid.UUID, supplier, status string, itemCount int, totalValue float64) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type importJobRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewImportJobRepository(client *ent.Client, logger *slog.Logger) ImportJobRepository {
	return &importJobRepo{client: client, logger: logger}
}

func (r *importJobRepo) Start(ctx context.Context, shopID uuid.UUID, format string) (*entity.ImportJob, error) {
	job, err := r.client.ImportJob.Create().
		SetShopID(shopID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusParsed)).
		Save(ctx)
	if err != nil {
		r.logger.Error("import_job start failed", "shop_id", shopID, "error", err)
		return nil, err
	}
	r.logger.Info("import_job started", "job_id", job.ID, "shop_id", shopID, "format", format)
	return utils.ToImportJob(job), nil
}

func (r *importJobRepo) FinishParsed(ctx context.Context, jobID uuid.UUID, supplier, status string, itemCount int, totalValue float64) error {
	_, err := r.client.ImportJob.UpdateOneID(jobID).
		SetSupplier(supplier).
		SetStatus(status).
		SetItemCount(itemCount).
		SetTotalValue(totalValue).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("import_job finish failed", "job_id", jobID, "error", err)
	}
	return err
}

func (r *importJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.client.ImportJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusExtractFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("import_job failure update failed", "job_id", jobID, "error", err)
	}
	return err
}
