package cmd

import (
	"courselab/api"
	"courselab/internal"
	"courselab/internal/repository"
	"courselab/internal/service"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	experimentRepository := repository.NewExperimentRepository(dbConn)
	experimentVariantRepository := repository.NewExperimentVariantRepository(dbConn)
	variantAssignmentRepository := repository.NewVariantAssignmentRepository(dbConn)
	currencyRateRepository := repository.NewCurrencyRateRepository(dbConn)
	currencyPreferenceRepository := repository.NewCurrencyPreferenceRepository(dbConn)
	coursePriceRepository := repository.NewCoursePriceRepository(dbConn)
	userAccountRepository := repository.NewUserAccountRepository(dbConn)

	experimentService := service.NewExperimentService(
		experimentRepository,
		experimentVariantRepository,
		variantAssignmentRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                           dbConn,
		ExperimentService:            experimentService,
		CurrencyRateRepository:       currencyRateRepository,
		CurrencyPreferenceRepository: currencyPreferenceRepository,
		CoursePriceRepository:        coursePriceRepository,
		UserAccountRepository:        userAccountRepository,
		ApiRequestRepository:         repository.ApiRequestRepositoryHandler{},
		JwtDecodeSecret:              secrets.Jwt,
	}

	return apiHandler, nil
}
