package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"courselab/internal/db/models/postgres/public/model"
	"courselab/internal/db/models/postgres/public/table"
	"courselab/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const pqUniqueViolationCode = "23505"

type VariantAssignmentRepository interface {
	Get(experimentID uuid.UUID, identity domain.Identity) (*model.VariantAssignment, error)
	InsertIfAbsent(m model.VariantAssignment) (*model.VariantAssignment, error)
}

type variantAssignmentRepositoryHandler struct {
	Db *sql.DB
}

func NewVariantAssignmentRepository(db *sql.DB) VariantAssignmentRepository {
	return variantAssignmentRepositoryHandler{Db: db}
}

func identityClause(experimentID uuid.UUID, identity domain.Identity) postgres.BoolExpression {
	clause := table.VariantAssignment.ExperimentID.EQ(postgres.UUID(experimentID))
	if identity.UserID != nil {
		return clause.AND(table.VariantAssignment.UserAccountID.EQ(postgres.UUID(*identity.UserID)))
	}
	return clause.AND(table.VariantAssignment.AnonID.EQ(postgres.String(*identity.AnonID)))
}

// Get returns (nil, nil) when the identity has no assignment yet.
func (h variantAssignmentRepositoryHandler) Get(experimentID uuid.UUID, identity domain.Identity) (*model.VariantAssignment, error) {
	query := table.VariantAssignment.
		SELECT(table.VariantAssignment.AllColumns).
		WHERE(identityClause(experimentID, identity))

	out := model.VariantAssignment{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get variant assignment: %w", err)
	}

	return &out, nil
}

// InsertIfAbsent persists the assignment, relying on the unique index over
// (experiment_id, identity) to arbitrate concurrent first-time requests.
// When another request wins the insert race, the winning row is fetched and
// returned instead - the caller never sees the conflict.
func (h variantAssignmentRepositoryHandler) InsertIfAbsent(m model.VariantAssignment) (*model.VariantAssignment, error) {
	m.CreatedAt = time.Now().UTC()

	query := table.VariantAssignment.
		INSERT(table.VariantAssignment.MutableColumns).
		MODEL(m).
		RETURNING(table.VariantAssignment.AllColumns)

	out := model.VariantAssignment{}
	err := query.Query(h.Db, &out)
	if err == nil {
		return &out, nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pqUniqueViolationCode {
		return nil, fmt.Errorf("failed to insert variant assignment: %w", err)
	}

	winner, err := h.Get(m.ExperimentID, domain.Identity{UserID: m.UserAccountID, AnonID: m.AnonID})
	if err != nil {
		return nil, fmt.Errorf("failed to recover winning assignment after conflict: %w", err)
	}
	if winner == nil {
		// row vanished between conflict and re-read; assignments are never
		// deleted so this indicates a broken unique index
		return nil, fmt.Errorf("assignment conflict but no existing row for experiment %s", m.ExperimentID)
	}

	return winner, nil
}
