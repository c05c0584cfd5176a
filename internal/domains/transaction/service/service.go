package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"ehotel/config"
	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	rentingModel "ehotel/internal/domains/renting/model"
	rentingRepo "ehotel/internal/domains/renting/repository"
	"ehotel/internal/domains/transaction/model"
	"ehotel/internal/domains/transaction/model/dto"
	"ehotel/internal/domains/transaction/repository"
	"ehotel/internal/events"
	"ehotel/shared"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
)

type Transaction interface {
	Pay(ctx context.Context, rentingID int64, req dto.PayRequest) (dto.TransactionResponse, error)
	ListByRenting(ctx context.Context, rentingID int64) (dto.GetLedgerResponse, error)
}

type serviceImpl struct {
	repo        repository.Transaction
	rentingRepo rentingRepo.Renting
	db          *postgres.Connection
	cfg         *config.Config
	publisher   events.Publisher
	otel        otel.Otel
}

func New(
	repo repository.Transaction,
	rentingRepo rentingRepo.Renting,
	db *postgres.Connection,
	cfg *config.Config,
	publisher events.Publisher,
	otel otel.Otel,
) Transaction {
	return &serviceImpl{
		repo:        repo,
		rentingRepo: rentingRepo,
		db:          db,
		cfg:         cfg,
		publisher:   publisher,
		otel:        otel,
	}
}

// Pay appends a payment to the renting's ledger. The renting row is locked
// for the duration of the transaction, so two concurrent payments settle
// one after the other and the ledger can never exceed the room price.
func (s *serviceImpl) Pay(ctx context.Context, rentingID int64, req dto.PayRequest) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Pay")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback payment")
			}
		}
	}()

	detail, err := s.rentingRepo.GetForUpdateTx(ctx, tx, rentingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to lock renting")

		return res, fmt.Errorf("failed to lock renting: %w", err)
	}

	if detail.ID == 0 {
		return res, failure.NotFound("renting not found") // nolint:wrapcheck
	}

	remaining := detail.RemainingAmount()
	if req.Amount > remaining {
		return res, failure.Overpayment(remaining) // nolint:wrapcheck
	}

	payment := req.ToModel(detail.CustomerID, rentingID)

	id, err := s.repo.InsertReturningIDTx(ctx, tx, payment)
	if err != nil {
		log.Error().Err(err).Msg("failed to record payment")

		return res, fmt.Errorf("failed to record payment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit payment")

		return res, fmt.Errorf("failed to commit payment: %w", err)
	}

	payment.ID = id
	res.FromModel(payment, remaining-req.Amount)

	s.publisher.Publish(ctx, events.TypePaymentRecorded, res)

	return res, nil
}

func (s *serviceImpl) ListByRenting(ctx context.Context, rentingID int64) (res dto.GetLedgerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByRenting")
	defer scope.End()
	defer scope.TraceIfError(err)

	rentingExists, err := s.rentingRepo.Exist(ctx, shared.FilterByID(rentingID, rentingModel.FieldID, rentingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if renting exists")

		return res, fmt.Errorf("failed to check if renting exists: %w", err)
	}

	if !rentingExists {
		return res, failure.NotFound("renting not found") // nolint:wrapcheck
	}

	params := gDto.QueryParams{SortBy: model.FieldPaymentDate, SortDir: "asc"}

	models, err := s.repo.GetAll(ctx, params, shared.FilterByID(rentingID, model.FieldRentingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get transactions")

		return res, fmt.Errorf("failed to get transactions: %w", err)
	}

	res.FromModels(models)

	return res, nil
}
