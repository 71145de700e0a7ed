package inmem

import (
	"context"
	"testing"

	"github.com/corvidae/voxctl/server/dao"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_InMemorySessionsRepository_CreateAndGet(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewSessionsRepository()
	userID := mustRandomUUID(t)

	created, err := repo.Create(ctx, dao.Session{UserID: userID, ModelDir: "/models/en"})
	if !assert.NoError(err) {
		return
	}
	assert.NotEqual(uuid.Nil, created.ID)
	assert.False(created.Created.IsZero())

	fetched, err := repo.GetByID(ctx, created.ID)
	if assert.NoError(err) {
		assert.Equal(created, fetched)
	}
}

func Test_InMemorySessionsRepository_GetAllByUser(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewSessionsRepository()
	userA := mustRandomUUID(t)
	userB := mustRandomUUID(t)

	a1, err := repo.Create(ctx, dao.Session{UserID: userA})
	assert.NoError(err)
	_, err = repo.Create(ctx, dao.Session{UserID: userB})
	assert.NoError(err)

	byUser, err := repo.GetAllByUser(ctx, userA)
	if !assert.NoError(err) {
		return
	}
	assert.Len(byUser, 1)
	assert.Equal(a1.ID, byUser[0].ID)
}

func Test_InMemorySessionsRepository_GetAllByUser_noSessions(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewSessionsRepository()

	_, err := repo.GetAllByUser(ctx, mustRandomUUID(t))
	assert.ErrorIs(err, dao.ErrNotFound)
}

func Test_InMemorySessionsRepository_Update_heldKeys(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewSessionsRepository()

	created, err := repo.Create(ctx, dao.Session{UserID: mustRandomUUID(t)})
	if !assert.NoError(err) {
		return
	}

	created.HeldKeys = []rune{'a', 'b'}
	updated, err := repo.Update(ctx, created.ID, created)
	if !assert.NoError(err) {
		return
	}
	assert.Equal([]rune{'a', 'b'}, updated.HeldKeys)

	fetched, err := repo.GetByID(ctx, created.ID)
	if assert.NoError(err) {
		assert.Equal([]rune{'a', 'b'}, fetched.HeldKeys)
	}
}

func Test_InMemorySessionsRepository_Delete(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewSessionsRepository()
	userID := mustRandomUUID(t)

	created, err := repo.Create(ctx, dao.Session{UserID: userID})
	if !assert.NoError(err) {
		return
	}

	_, err = repo.Delete(ctx, created.ID)
	if !assert.NoError(err) {
		return
	}

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)

	_, err = repo.GetAllByUser(ctx, userID)
	assert.ErrorIs(err, dao.ErrNotFound)
}
