package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globetrotter/api/internal/repository/dao"
	"github.com/globetrotter/api/internal/testutil"
)

func TestUserDAO_InsertAndFind(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	userDAO := dao.NewUserDAO(db)
	ctx := context.Background()

	created, err := userDAO.Insert(ctx, dao.User{
		Email:     "jane@example.com",
		Password:  "hashed",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := userDAO.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", byID.Email)

	byEmail, err := userDAO.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = userDAO.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, dao.ErrUserNotFound)
}

func TestUserDAO_Insert_DuplicateEmail(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	userDAO := dao.NewUserDAO(db)
	ctx := context.Background()

	_, err := userDAO.Insert(ctx, dao.User{
		Email:     "jane@example.com",
		Password:  "hashed",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)

	_, err = userDAO.Insert(ctx, dao.User{
		Email:     "jane@example.com",
		Password:  "hashed",
		FirstName: "Other",
		LastName:  "Jane",
	})
	assert.ErrorIs(t, err, dao.ErrUserEmailExists)
}

func TestUserDAO_Update(t *testing.T) {
	db := testutil.NewPostgresDB(t)
	userDAO := dao.NewUserDAO(db)
	ctx := context.Background()

	created, err := userDAO.Insert(ctx, dao.User{
		Email:     "jane@example.com",
		Password:  "hashed",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)

	err = userDAO.Update(ctx, created.ID, map[string]interface{}{
		"city":    "Lisbon",
		"country": "Portugal",
	})
	require.NoError(t, err)

	updated, err := userDAO.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", updated.City)
	assert.Equal(t, "Portugal", updated.Country)
	// Untouched fields survive.
	assert.Equal(t, "Jane", updated.FirstName)
}
