package inmem

import (
	"context"
	"testing"

	"github.com/corvidae/voxctl/server/dao"
	"github.com/stretchr/testify/assert"
)

func Test_InMemoryUsersRepository_CreateAndGet(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepository()

	created, err := repo.Create(ctx, dao.User{Username: "hermione", Role: dao.Normal})
	if !assert.NoError(err) {
		return
	}
	assert.NotEqual(created.ID.String(), "")
	assert.False(created.Created.IsZero())

	fetched, err := repo.GetByID(ctx, created.ID)
	if assert.NoError(err) {
		assert.Equal(created, fetched)
	}

	byName, err := repo.GetByUsername(ctx, "hermione")
	if assert.NoError(err) {
		assert.Equal(created, byName)
	}
}

func Test_InMemoryUsersRepository_Create_duplicateUsername(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepository()

	_, err := repo.Create(ctx, dao.User{Username: "hermione"})
	assert.NoError(err)

	_, err = repo.Create(ctx, dao.User{Username: "hermione"})
	assert.ErrorIs(err, dao.ErrConstraintViolation)
}

func Test_InMemoryUsersRepository_GetByID_notFound(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepository()

	_, err := repo.GetByID(ctx, mustRandomUUID(t))
	assert.ErrorIs(err, dao.ErrNotFound)
}

func Test_InMemoryUsersRepository_Update(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepository()

	created, err := repo.Create(ctx, dao.User{Username: "ron", Role: dao.Normal})
	if !assert.NoError(err) {
		return
	}

	created.Role = dao.Admin
	updated, err := repo.Update(ctx, created.ID, created)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(dao.Admin, updated.Role)

	fetched, err := repo.GetByID(ctx, created.ID)
	if assert.NoError(err) {
		assert.Equal(dao.Admin, fetched.Role)
	}
}

func Test_InMemoryUsersRepository_Delete(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepository()

	created, err := repo.Create(ctx, dao.User{Username: "ginny"})
	if !assert.NoError(err) {
		return
	}

	deleted, err := repo.Delete(ctx, created.ID)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(created.ID, deleted.ID)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)

	_, err = repo.GetByUsername(ctx, "ginny")
	assert.ErrorIs(err, dao.ErrNotFound)
}

func Test_InMemoryUsersRepository_GetAll_sortedByID(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepository()

	_, err := repo.Create(ctx, dao.User{Username: "harry"})
	assert.NoError(err)
	_, err = repo.Create(ctx, dao.User{Username: "hermione"})
	assert.NoError(err)

	all, err := repo.GetAll(ctx)
	if !assert.NoError(err) {
		return
	}
	assert.Len(all, 2)
	assert.True(all[0].ID.String() < all[1].ID.String())
}
