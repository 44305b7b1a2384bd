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

type UserDetails struct {
	Email     string
	FirstName *string
	LastName  *string
}

type UserAccountRepository interface {
	GetOrCreate(UserDetails) (*model.UserAccount, error)
}

type userAccountRepositoryHandler struct {
	DB *sql.DB
}

func NewUserAccountRepository(db *sql.DB) UserAccountRepository {
	return userAccountRepositoryHandler{
		DB: db,
	}
}

func (h userAccountRepositoryHandler) GetOrCreate(details UserDetails) (*model.UserAccount, error) {
	t := table.UserAccount

	getQuery := t.SELECT(t.AllColumns).WHERE(t.Email.EQ(postgres.String(details.Email)))
	out := model.UserAccount{}
	err := getQuery.Query(h.DB, &out)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to get user account: %w", err)
	} else if err == nil {
		return &out, nil
	}

	newModel := model.UserAccount{
		Email:     details.Email,
		FirstName: details.FirstName,
		LastName:  details.LastName,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	createQuery := t.INSERT(t.MutableColumns).MODEL(newModel).RETURNING(t.AllColumns)

	err = createQuery.Query(h.DB, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &out, nil
}
