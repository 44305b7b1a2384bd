package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"courselab/internal/db/models/postgres/public/model"
	"courselab/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/qrm"
)

type CoursePriceRepository interface {
	List() ([]model.CoursePrice, error)
}

type coursePriceRepositoryHandler struct {
	Db *sql.DB
}

func NewCoursePriceRepository(db *sql.DB) CoursePriceRepository {
	return coursePriceRepositoryHandler{Db: db}
}

func (h coursePriceRepositoryHandler) List() ([]model.CoursePrice, error) {
	query := table.CoursePrice.
		SELECT(table.CoursePrice.AllColumns).
		ORDER_BY(table.CoursePrice.CreatedAt.ASC())

	out := []model.CoursePrice{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list course prices: %w", err)
	}

	return out, nil
}
