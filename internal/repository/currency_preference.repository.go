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
	"github.com/google/uuid"
)

type CurrencyPreferenceRepository interface {
	Get(userAccountID uuid.UUID) (*model.CurrencyPreference, error)
	Set(userAccountID uuid.UUID, currencyCode string) (*model.CurrencyPreference, error)
}

type currencyPreferenceRepositoryHandler struct {
	Db *sql.DB
}

func NewCurrencyPreferenceRepository(db *sql.DB) CurrencyPreferenceRepository {
	return currencyPreferenceRepositoryHandler{Db: db}
}

func (h currencyPreferenceRepositoryHandler) Get(userAccountID uuid.UUID) (*model.CurrencyPreference, error) {
	query := table.CurrencyPreference.
		SELECT(table.CurrencyPreference.AllColumns).
		WHERE(table.CurrencyPreference.UserAccountID.EQ(postgres.UUID(userAccountID)))

	out := model.CurrencyPreference{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get currency preference: %w", err)
	}

	return &out, nil
}

func (h currencyPreferenceRepositoryHandler) Set(userAccountID uuid.UUID, currencyCode string) (*model.CurrencyPreference, error) {
	now := time.Now().UTC()
	m := model.CurrencyPreference{
		UserAccountID: userAccountID,
		CurrencyCode:  currencyCode,
		CreatedAt:     now,
		ModifiedAt:    now,
	}

	query := table.CurrencyPreference.
		INSERT(table.CurrencyPreference.AllColumns).
		MODEL(m).
		ON_CONFLICT(table.CurrencyPreference.UserAccountID).
		DO_UPDATE(postgres.SET(
			table.CurrencyPreference.CurrencyCode.SET(postgres.String(currencyCode)),
			table.CurrencyPreference.ModifiedAt.SET(postgres.TimestampT(now)),
		)).
		RETURNING(table.CurrencyPreference.AllColumns)

	out := model.CurrencyPreference{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to set currency preference: %w", err)
	}

	return &out, nil
}
