package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"courselab/internal/db/models/postgres/public/model"
	"courselab/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ExperimentVariantRepository interface {
	List(experimentID uuid.UUID) ([]model.ExperimentVariant, error)
	Get(experimentVariantID uuid.UUID) (*model.ExperimentVariant, error)
}

type experimentVariantRepositoryHandler struct {
	Db *sql.DB
}

func NewExperimentVariantRepository(db *sql.DB) ExperimentVariantRepository {
	return experimentVariantRepositoryHandler{Db: db}
}

// List returns the experiment's variants in creation order. The weighted
// selection walk depends on this order being stable.
func (h experimentVariantRepositoryHandler) List(experimentID uuid.UUID) ([]model.ExperimentVariant, error) {
	query := table.ExperimentVariant.
		SELECT(table.ExperimentVariant.AllColumns).
		WHERE(table.ExperimentVariant.ExperimentID.EQ(postgres.UUID(experimentID))).
		ORDER_BY(table.ExperimentVariant.CreatedAt.ASC())

	out := []model.ExperimentVariant{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list experiment variants: %w", err)
	}

	return out, nil
}

func (h experimentVariantRepositoryHandler) Get(experimentVariantID uuid.UUID) (*model.ExperimentVariant, error) {
	query := table.ExperimentVariant.
		SELECT(table.ExperimentVariant.AllColumns).
		WHERE(table.ExperimentVariant.ExperimentVariantID.EQ(postgres.UUID(experimentVariantID)))

	out := model.ExperimentVariant{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get experiment variant: %w", err)
	}

	return &out, nil
}
