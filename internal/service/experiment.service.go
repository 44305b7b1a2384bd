package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"courselab/internal/db/models/postgres/public/model"
	"courselab/internal/domain"
	"courselab/internal/logger"
	"courselab/internal/repository"

	"github.com/google/uuid"
	"github.com/maja42/goval"
)

// RandSource supplies the uniform draws for the traffic gate and the
// weighted variant pick. Injected so tests can seed it.
type RandSource interface {
	Float64() float64
}

type mathRandSource struct{}

func (mathRandSource) Float64() float64 {
	return rand.Float64()
}

type AssignVariantResponse struct {
	Included   bool
	Assignment *model.VariantAssignment
	Variant    *model.ExperimentVariant
}

type ExperimentService interface {
	AssignVariant(ctx context.Context, experimentID uuid.UUID, identity domain.Identity, attributes domain.VisitorAttributes) (*AssignVariantResponse, error)
}

type experimentServiceHandler struct {
	ExperimentRepository repository.ExperimentRepository
	VariantRepository    repository.ExperimentVariantRepository
	AssignmentRepository repository.VariantAssignmentRepository
	Rand                 RandSource
}

func NewExperimentService(
	experimentRepository repository.ExperimentRepository,
	variantRepository repository.ExperimentVariantRepository,
	assignmentRepository repository.VariantAssignmentRepository,
) ExperimentService {
	return experimentServiceHandler{
		ExperimentRepository: experimentRepository,
		VariantRepository:    variantRepository,
		AssignmentRepository: assignmentRepository,
		Rand:                 mathRandSource{},
	}
}

// AssignVariant returns the visitor's variant for the experiment, creating
// an assignment on first contact. Repeat calls for the same identity return
// the persisted assignment without consuming randomness. Visitors excluded
// by the audience rule or the traffic gate get Included=false and no row -
// exclusion is deliberately not memoized so they are re-considered if the
// allocation is raised later.
func (h experimentServiceHandler) AssignVariant(
	ctx context.Context,
	experimentID uuid.UUID,
	identity domain.Identity,
	attributes domain.VisitorAttributes,
) (*AssignVariantResponse, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	experiment, err := h.ExperimentRepository.Get(experimentID)
	if err != nil {
		return nil, err
	}
	if experiment == nil {
		return nil, domain.ErrExperimentNotFound
	}
	if experiment.Status != domain.ExperimentStatusActive {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrExperimentNotActive, experiment.Status)
	}

	existing, err := h.AssignmentRepository.Get(experimentID, identity)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		variant, err := h.VariantRepository.Get(existing.ExperimentVariantID)
		if err != nil {
			return nil, err
		}
		return &AssignVariantResponse{
			Included:   true,
			Assignment: existing,
			Variant:    variant,
		}, nil
	}

	if !h.matchesAudience(ctx, experiment.AudienceRule, attributes) {
		return &AssignVariantResponse{Included: false}, nil
	}

	if h.Rand.Float64()*100 >= experiment.TrafficAllocation {
		return &AssignVariantResponse{Included: false}, nil
	}

	variants, err := h.VariantRepository.List(experimentID)
	if err != nil {
		return nil, err
	}
	totalWeight := 0.0
	for _, v := range variants {
		totalWeight += v.TrafficWeight
	}
	if len(variants) == 0 || totalWeight <= 0 {
		return nil, fmt.Errorf("%w: experiment %s", domain.ErrNoVariants, experimentID)
	}

	variant := pickWeightedVariant(variants, h.Rand.Float64()*totalWeight)
	if variant == nil {
		return nil, fmt.Errorf("%w: experiment %s", domain.ErrNoVariants, experimentID)
	}

	assignment, err := h.AssignmentRepository.InsertIfAbsent(model.VariantAssignment{
		ExperimentID:        experimentID,
		ExperimentVariantID: variant.ExperimentVariantID,
		UserAccountID:       identity.UserID,
		AnonID:              identity.AnonID,
	})
	if err != nil {
		return nil, err
	}

	// a concurrent request may have won the insert race with a different
	// variant; the persisted row is the source of truth
	if assignment.ExperimentVariantID != variant.ExperimentVariantID {
		for i := range variants {
			if variants[i].ExperimentVariantID == assignment.ExperimentVariantID {
				variant = &variants[i]
				break
			}
		}
	}

	return &AssignVariantResponse{
		Included:   true,
		Assignment: assignment,
		Variant:    variant,
	}, nil
}

// pickWeightedVariant walks variants in creation order, treating weights as
// relative proportions. draw must be uniform in [0, sum of weights).
func pickWeightedVariant(variants []model.ExperimentVariant, draw float64) *model.ExperimentVariant {
	remainder := draw
	for i := range variants {
		if variants[i].TrafficWeight <= 0 {
			continue
		}
		remainder -= variants[i].TrafficWeight
		if remainder <= 0 {
			return &variants[i]
		}
	}
	return nil
}

// matchesAudience evaluates the experiment's optional targeting rule against
// the visitor's attributes. A missing rule matches everyone. Evaluation
// failures and non-boolean results are logged and treated as non-matching -
// a bad rule must never fail the request.
func (h experimentServiceHandler) matchesAudience(ctx context.Context, rule *string, attributes domain.VisitorAttributes) bool {
	if rule == nil || strings.TrimSpace(*rule) == "" {
		return true
	}

	vars := map[string]interface{}(attributes)
	if vars == nil {
		vars = map[string]interface{}{}
	}

	eval := goval.NewEvaluator()
	result, err := eval.Evaluate(*rule, vars, nil)
	if err != nil {
		logger.FromContext(ctx).Warnf("audience rule evaluation failed: %v", err)
		return false
	}

	matched, ok := result.(bool)
	if !ok {
		logger.FromContext(ctx).Warnf("audience rule returned non-boolean result %T", result)
		return false
	}

	return matched
}
