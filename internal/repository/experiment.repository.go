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

type ExperimentRepository interface {
	Get(experimentID uuid.UUID) (*model.Experiment, error)
	List(ExperimentListFilter) ([]model.Experiment, error)
}

type experimentRepositoryHandler struct {
	Db *sql.DB
}

func NewExperimentRepository(db *sql.DB) ExperimentRepository {
	return experimentRepositoryHandler{Db: db}
}

// Get returns (nil, nil) when the experiment does not exist.
func (h experimentRepositoryHandler) Get(experimentID uuid.UUID) (*model.Experiment, error) {
	query := table.Experiment.
		SELECT(table.Experiment.AllColumns).
		WHERE(table.Experiment.ExperimentID.EQ(postgres.UUID(experimentID)))

	out := model.Experiment{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get experiment: %w", err)
	}

	return &out, nil
}

type ExperimentListFilter struct {
	Statuses []string
}

func (h experimentRepositoryHandler) List(filter ExperimentListFilter) ([]model.Experiment, error) {
	query := table.Experiment.
		SELECT(table.Experiment.AllColumns).
		ORDER_BY(table.Experiment.CreatedAt.DESC())

	if len(filter.Statuses) > 0 {
		statuses := []postgres.Expression{}
		for _, s := range filter.Statuses {
			statuses = append(statuses, postgres.String(s))
		}
		query = query.WHERE(table.Experiment.Status.IN(statuses...))
	}

	out := []model.Experiment{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list experiments: %w", err)
	}

	return out, nil
}
