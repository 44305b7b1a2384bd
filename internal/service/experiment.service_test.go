package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"courselab/internal/db/models/postgres/public/model"
	"courselab/internal/domain"
	mock_repository "courselab/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeAssignmentRepository implements the insert-if-absent contract the real
// repository gets from the db unique index, so engine tests don't need
// postgres.
type fakeAssignmentRepository struct {
	mu   sync.Mutex
	rows map[string]model.VariantAssignment
}

func newFakeAssignmentRepository() *fakeAssignmentRepository {
	return &fakeAssignmentRepository{rows: map[string]model.VariantAssignment{}}
}

func assignmentKey(experimentID uuid.UUID, userID *uuid.UUID, anonID *string) string {
	if userID != nil {
		return fmt.Sprintf("%s|user|%s", experimentID, userID)
	}
	return fmt.Sprintf("%s|anon|%s", experimentID, *anonID)
}

func (f *fakeAssignmentRepository) Get(experimentID uuid.UUID, identity domain.Identity) (*model.VariantAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[assignmentKey(experimentID, identity.UserID, identity.AnonID)]; ok {
		return &row, nil
	}
	return nil, nil
}

func (f *fakeAssignmentRepository) InsertIfAbsent(m model.VariantAssignment) (*model.VariantAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := assignmentKey(m.ExperimentID, m.UserAccountID, m.AnonID)
	if row, ok := f.rows[key]; ok {
		return &row, nil
	}
	m.VariantAssignmentID = uuid.New()
	m.CreatedAt = time.Now().UTC()
	f.rows[key] = m
	return &m, nil
}

func (f *fakeAssignmentRepository) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func activeExperiment(trafficAllocation float64) *model.Experiment {
	return &model.Experiment{
		ExperimentID:      uuid.New(),
		Name:              "checkout-cta",
		Status:            domain.ExperimentStatusActive,
		TrafficAllocation: trafficAllocation,
		CreatedAt:         time.Now().UTC(),
		ModifiedAt:        time.Now().UTC(),
	}
}

func twoVariants(experimentID uuid.UUID, controlWeight, treatmentWeight float64) []model.ExperimentVariant {
	return []model.ExperimentVariant{
		{
			ExperimentVariantID: uuid.New(),
			ExperimentID:        experimentID,
			Name:                "control",
			IsControl:           true,
			TrafficWeight:       controlWeight,
			CreatedAt:           time.Now().UTC(),
		},
		{
			ExperimentVariantID: uuid.New(),
			ExperimentID:        experimentID,
			Name:                "treatment",
			IsControl:           false,
			TrafficWeight:       treatmentWeight,
			CreatedAt:           time.Now().UTC().Add(time.Second),
		},
	}
}

func Test_experimentServiceHandler_AssignVariant(t *testing.T) {
	ctx := context.Background()

	t.Run("repeat calls return the persisted assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		experimentRepository := mock_repository.NewMockExperimentRepository(ctrl)
		variantRepository := mock_repository.NewMockExperimentVariantRepository(ctrl)
		assignmentRepository := newFakeAssignmentRepository()

		experiment := activeExperiment(100)
		variants := twoVariants(experiment.ExperimentID, 50, 50)

		experimentRepository.EXPECT().Get(experiment.ExperimentID).Return(experiment, nil).AnyTimes()
		variantRepository.EXPECT().List(experiment.ExperimentID).Return(variants, nil).AnyTimes()
		variantRepository.EXPECT().Get(gomock.Any()).DoAndReturn(func(id uuid.UUID) (*model.ExperimentVariant, error) {
			for i := range variants {
				if variants[i].ExperimentVariantID == id {
					return &variants[i], nil
				}
			}
			return nil, nil
		}).AnyTimes()

		handler := experimentServiceHandler{
			ExperimentRepository: experimentRepository,
			VariantRepository:    variantRepository,
			AssignmentRepository: assignmentRepository,
			Rand:                 rand.New(rand.NewSource(7)),
		}

		identity := domain.NewAnonIdentity("visitor-1")
		first, err := handler.AssignVariant(ctx, experiment.ExperimentID, identity, nil)
		require.NoError(t, err)
		require.True(t, first.Included)
		require.NotNil(t, first.Variant)

		for i := 0; i < 10; i++ {
			again, err := handler.AssignVariant(ctx, experiment.ExperimentID, identity, nil)
			require.NoError(t, err)
			require.True(t, again.Included)
			require.Equal(t, first.Variant.ExperimentVariantID, again.Variant.ExperimentVariantID)
			require.Equal(t, first.Assignment.VariantAssignmentID, again.Assignment.VariantAssignmentID)
		}
		require.Equal(t, 1, assignmentRepository.count())
	})

	t.Run("rejects malformed identities before any side effect", func(t *testing.T) {
		handler := experimentServiceHandler{}

		userID := uuid.New()
		anonID := "visitor-2"

		_, err := handler.AssignVariant(ctx, uuid.New(), domain.Identity{}, nil)
		require.ErrorIs(t, err, domain.ErrInvalidIdentity)

		_, err = handler.AssignVariant(ctx, uuid.New(), domain.Identity{UserID: &userID, AnonID: &anonID}, nil)
		require.ErrorIs(t, err, domain.ErrInvalidIdentity)
	})

	t.Run("unknown experiment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		experimentRepository := mock_repository.NewMockExperimentRepository(ctrl)
		experimentRepository.EXPECT().Get(gomock.Any()).Return(nil, nil)

		handler := experimentServiceHandler{ExperimentRepository: experimentRepository}

		_, err := handler.AssignVariant(ctx, uuid.New(), domain.NewAnonIdentity("visitor-3"), nil)
		require.ErrorIs(t, err, domain.ErrExperimentNotFound)
	})

	t.Run("paused experiment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		experimentRepository := mock_repository.NewMockExperimentRepository(ctrl)
		experiment := activeExperiment(100)
		experiment.Status = domain.ExperimentStatusPaused
		experimentRepository.EXPECT().Get(experiment.ExperimentID).Return(experiment, nil)

		handler := experimentServiceHandler{ExperimentRepository: experimentRepository}

		_, err := handler.AssignVariant(ctx, experiment.ExperimentID, domain.NewAnonIdentity("visitor-4"), nil)
		require.ErrorIs(t, err, domain.ErrExperimentNotActive)
	})

	t.Run("zero variants and zero total weight are config errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		experimentRepository := mock_repository.NewMockExperimentRepository(ctrl)
		variantRepository := mock_repository.NewMockExperimentVariantRepository(ctrl)
		experiment := activeExperiment(100)
		experimentRepository.EXPECT().Get(experiment.ExperimentID).Return(experiment, nil).Times(2)
		gomock.InOrder(
			variantRepository.EXPECT().List(experiment.ExperimentID).Return(nil, nil),
			variantRepository.EXPECT().List(experiment.ExperimentID).Return(twoVariants(experiment.ExperimentID, 0, 0), nil),
		)

		handler := experimentServiceHandler{
			ExperimentRepository: experimentRepository,
			VariantRepository:    variantRepository,
			AssignmentRepository: newFakeAssignmentRepository(),
			Rand:                 rand.New(rand.NewSource(7)),
		}

		_, err := handler.AssignVariant(ctx, experiment.ExperimentID, domain.NewAnonIdentity("visitor-5"), nil)
		require.ErrorIs(t, err, domain.ErrNoVariants)

		_, err = handler.AssignVariant(ctx, experiment.ExperimentID, domain.NewAnonIdentity("visitor-6"), nil)
		require.ErrorIs(t, err, domain.ErrNoVariants)
	})

	t.Run("excluded visitors get no assignment row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		experimentRepository := mock_repository.NewMockExperimentRepository(ctrl)
		variantRepository := mock_repository.NewMockExperimentVariantRepository(ctrl)
		assignmentRepository := newFakeAssignmentRepository()

		experiment := activeExperiment(0)
		experimentRepository.EXPECT().Get(experiment.ExperimentID).Return(experiment, nil).AnyTimes()

		handler := experimentServiceHandler{
			ExperimentRepository: experimentRepository,
			VariantRepository:    variantRepository,
			AssignmentRepository: assignmentRepository,
			Rand:                 rand.New(rand.NewSource(7)),
		}

		out, err := handler.AssignVariant(ctx, experiment.ExperimentID, domain.NewAnonIdentity("visitor-7"), nil)
		require.NoError(t, err)
		require.False(t, out.Included)
		require.Nil(t, out.Assignment)
		require.Equal(t, 0, assignmentRepository.count())
	})
}

func Test_AssignVariant_trafficAllocationConverges(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	experimentRepository := mock_repository.NewMockExperimentRepository(ctrl)
	variantRepository := mock_repository.NewMockExperimentVariantRepository(ctrl)
	assignmentRepository := newFakeAssignmentRepository()

	experiment := activeExperiment(30)
	variants := twoVariants(experiment.ExperimentID, 50, 50)
	experimentRepository.EXPECT().Get(experiment.ExperimentID).Return(experiment, nil).AnyTimes()
	variantRepository.EXPECT().List(experiment.ExperimentID).Return(variants, nil).AnyTimes()

	handler := experimentServiceHandler{
		ExperimentRepository: experimentRepository,
		VariantRepository:    variantRepository,
		AssignmentRepository: assignmentRepository,
		Rand:                 rand.New(rand.NewSource(42)),
	}

	const n = 5000
	includedCount := 0
	included := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out, err := handler.AssignVariant(ctx, experiment.ExperimentID, domain.NewAnonIdentity(fmt.Sprintf("visitor-%d", i)), nil)
		require.NoError(t, err)
		if out.Included {
			includedCount++
			included = append(included, 1)
		} else {
			included = append(included, 0)
		}
	}

	includedFraction, err := stats.Mean(included)
	require.NoError(t, err)
	require.InDelta(t, 0.30, includedFraction, 0.02)
	require.Equal(t, includedCount, assignmentRepository.count())
}

func Test_AssignVariant_weightedSelectionConverges(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	experimentRepository := mock_repository.NewMockExperimentRepository(ctrl)
	variantRepository := mock_repository.NewMockExperimentVariantRepository(ctrl)
	assignmentRepository := newFakeAssignmentRepository()

	experiment := activeExperiment(100)
	// weights are relative proportions, not percentages
	variants := twoVariants(experiment.ExperimentID, 1, 3)
	experimentRepository.EXPECT().Get(experiment.ExperimentID).Return(experiment, nil).AnyTimes()
	variantRepository.EXPECT().List(experiment.ExperimentID).Return(variants, nil).AnyTimes()

	handler := experimentServiceHandler{
		ExperimentRepository: experimentRepository,
		VariantRepository:    variantRepository,
		AssignmentRepository: assignmentRepository,
		Rand:                 rand.New(rand.NewSource(42)),
	}

	const n = 4000
	controlCount := 0
	for i := 0; i < n; i++ {
		out, err := handler.AssignVariant(ctx, experiment.ExperimentID, domain.NewAnonIdentity(fmt.Sprintf("visitor-%d", i)), nil)
		require.NoError(t, err)
		require.True(t, out.Included)
		if out.Variant.IsControl {
			controlCount++
		}
	}

	require.InDelta(t, 0.25, float64(controlCount)/float64(n), 0.025)
}

func Test_AssignVariant_concurrentFirstAssignment(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	experimentRepository := mock_repository.NewMockExperimentRepository(ctrl)
	variantRepository := mock_repository.NewMockExperimentVariantRepository(ctrl)
	assignmentRepository := newFakeAssignmentRepository()

	experiment := activeExperiment(100)
	variants := twoVariants(experiment.ExperimentID, 50, 50)
	experimentRepository.EXPECT().Get(experiment.ExperimentID).Return(experiment, nil).AnyTimes()
	variantRepository.EXPECT().List(experiment.ExperimentID).Return(variants, nil).AnyTimes()

	handler := experimentServiceHandler{
		ExperimentRepository: experimentRepository,
		VariantRepository:    variantRepository,
		AssignmentRepository: assignmentRepository,
		Rand:                 mathRandSource{},
	}

	identity := domain.NewAnonIdentity("racing-visitor")

	const callers = 8
	results := make([]*AssignVariantResponse, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := handler.AssignVariant(ctx, experiment.ExperimentID, identity, nil)
			require.NoError(t, err)
			results[i] = out
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, assignmentRepository.count())
	for _, out := range results {
		require.True(t, out.Included)
		require.Equal(t, results[0].Assignment.VariantAssignmentID, out.Assignment.VariantAssignmentID)
		require.Equal(t, results[0].Variant.ExperimentVariantID, out.Variant.ExperimentVariantID)
	}
}

func Test_AssignVariant_audienceRule(t *testing.T) {
	ctx := context.Background()

	newHandler := func(t *testing.T, rule string) (experimentServiceHandler, *model.Experiment, *fakeAssignmentRepository) {
		ctrl := gomock.NewController(t)
		experimentRepository := mock_repository.NewMockExperimentRepository(ctrl)
		variantRepository := mock_repository.NewMockExperimentVariantRepository(ctrl)
		assignmentRepository := newFakeAssignmentRepository()

		experiment := activeExperiment(100)
		experiment.AudienceRule = &rule
		variants := twoVariants(experiment.ExperimentID, 50, 50)
		experimentRepository.EXPECT().Get(experiment.ExperimentID).Return(experiment, nil).AnyTimes()
		variantRepository.EXPECT().List(experiment.ExperimentID).Return(variants, nil).AnyTimes()

		return experimentServiceHandler{
			ExperimentRepository: experimentRepository,
			VariantRepository:    variantRepository,
			AssignmentRepository: assignmentRepository,
			Rand:                 rand.New(rand.NewSource(7)),
		}, experiment, assignmentRepository
	}

	t.Run("matching visitors are considered", func(t *testing.T) {
		handler, experiment, _ := newHandler(t, `country == "US"`)
		out, err := handler.AssignVariant(ctx, experiment.ExperimentID, domain.NewAnonIdentity("visitor-us"), domain.VisitorAttributes{"country": "US"})
		require.NoError(t, err)
		require.True(t, out.Included)
	})

	t.Run("non-matching visitors are excluded without a row", func(t *testing.T) {
		handler, experiment, store := newHandler(t, `country == "US"`)
		out, err := handler.AssignVariant(ctx, experiment.ExperimentID, domain.NewAnonIdentity("visitor-de"), domain.VisitorAttributes{"country": "DE"})
		require.NoError(t, err)
		require.False(t, out.Included)
		require.Equal(t, 0, store.count())
	})

	t.Run("broken rules exclude instead of failing", func(t *testing.T) {
		handler, experiment, _ := newHandler(t, `country ==`)
		out, err := handler.AssignVariant(ctx, experiment.ExperimentID, domain.NewAnonIdentity("visitor-x"), nil)
		require.NoError(t, err)
		require.False(t, out.Included)
	})
}

func Test_pickWeightedVariant(t *testing.T) {
	experimentID := uuid.New()
	variants := twoVariants(experimentID, 30, 70)

	t.Run("draw inside first weight picks control", func(t *testing.T) {
		out := pickWeightedVariant(variants, 10)
		require.NotNil(t, out)
		require.True(t, out.IsControl)
	})

	t.Run("boundary draw moves to next variant", func(t *testing.T) {
		out := pickWeightedVariant(variants, 30.0001)
		require.NotNil(t, out)
		require.False(t, out.IsControl)
	})

	t.Run("zero-weight variants are never picked", func(t *testing.T) {
		weighted := twoVariants(experimentID, 0, 100)
		for draw := 0.0; draw < 100; draw += 9.7 {
			out := pickWeightedVariant(weighted, draw)
			require.NotNil(t, out)
			require.False(t, out.IsControl)
		}
	})
}
