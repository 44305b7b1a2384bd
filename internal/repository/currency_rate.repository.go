package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"courselab/internal/db/models/postgres/public/model"
	"courselab/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type CurrencyRateRepository interface {
	List() ([]model.CurrencyRate, error)
	Upsert(m model.CurrencyRate) error
}

type currencyRateRepositoryHandler struct {
	Db *sql.DB
}

func NewCurrencyRateRepository(db *sql.DB) CurrencyRateRepository {
	return currencyRateRepositoryHandler{Db: db}
}

func (h currencyRateRepositoryHandler) List() ([]model.CurrencyRate, error) {
	query := table.CurrencyRate.
		SELECT(table.CurrencyRate.AllColumns).
		ORDER_BY(table.CurrencyRate.CurrencyCode.ASC())

	out := []model.CurrencyRate{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list currency rates: %w", err)
	}

	return out, nil
}

func (h currencyRateRepositoryHandler) Upsert(m model.CurrencyRate) error {
	m.UpdatedAt = time.Now().UTC()

	query := table.CurrencyRate.
		INSERT(table.CurrencyRate.AllColumns).
		MODEL(m).
		ON_CONFLICT(table.CurrencyRate.CurrencyCode).
		DO_UPDATE(postgres.SET(
			table.CurrencyRate.RateToUsd.SET(postgres.Float(m.RateToUsd)),
			table.CurrencyRate.UpdatedAt.SET(postgres.TimestampT(m.UpdatedAt)),
		))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert currency rate %s: %w", m.CurrencyCode, err)
	}

	return nil
}
