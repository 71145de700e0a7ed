package inmem

import (
	"context"
	"testing"
	"time"

	"github.com/corvidae/voxctl/internal/grammar"
	"github.com/corvidae/voxctl/server/dao"
	"github.com/stretchr/testify/assert"
)

func Test_InMemoryRecognitionsRepository_Create_requiresKnownSession(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	seshRepo := NewSessionsRepository()
	repo := NewRecognitionsRepository(seshRepo)

	_, err := repo.Create(ctx, dao.Recognition{SessionID: mustRandomUUID(t), Input: "quit"})

	assert.ErrorIs(err, dao.ErrConstraintViolation)
}

func Test_InMemoryRecognitionsRepository_CreateAndGet(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	seshRepo := NewSessionsRepository()
	repo := NewRecognitionsRepository(seshRepo)

	sesh, err := seshRepo.Create(ctx, dao.Session{UserID: mustRandomUUID(t)})
	if !assert.NoError(err) {
		return
	}

	created, err := repo.Create(ctx, dao.Recognition{
		SessionID: sesh.ID,
		UserID:    sesh.UserID,
		Input:     "quit",
		Verdict:   grammar.Ok,
		Command:   "QUIT",
	})
	if !assert.NoError(err) {
		return
	}
	assert.False(created.Created.IsZero())

	fetched, err := repo.GetByID(ctx, created.ID)
	if assert.NoError(err) {
		assert.Equal(created, fetched)
	}
}

func Test_InMemoryRecognitionsRepository_GetAllBySession_timeWindow(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	seshRepo := NewSessionsRepository()
	repo := NewRecognitionsRepository(seshRepo)

	sesh, err := seshRepo.Create(ctx, dao.Session{UserID: mustRandomUUID(t)})
	if !assert.NoError(err) {
		return
	}

	_, err = repo.Create(ctx, dao.Recognition{SessionID: sesh.ID, Input: "quit", Verdict: grammar.Ok})
	if !assert.NoError(err) {
		return
	}

	future := time.Now().Add(time.Hour)
	all, err := repo.GetAllBySession(ctx, sesh.ID, &future, nil)
	if !assert.NoError(err) {
		return
	}
	assert.Empty(all)

	past := time.Now().Add(-time.Hour)
	all, err = repo.GetAllBySession(ctx, sesh.ID, &past, nil)
	if !assert.NoError(err) {
		return
	}
	assert.Len(all, 1)
}

func Test_InMemoryRecognitionsRepository_GetAllBySession_unknownSession(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewRecognitionsRepository(NewSessionsRepository())

	_, err := repo.GetAllBySession(ctx, mustRandomUUID(t), nil, nil)

	assert.ErrorIs(err, dao.ErrNotFound)
}

func Test_InMemoryRecognitionsRepository_GetAllByUser(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	seshRepo := NewSessionsRepository()
	repo := NewRecognitionsRepository(seshRepo)
	userID := mustRandomUUID(t)

	sesh, err := seshRepo.Create(ctx, dao.Session{UserID: userID})
	if !assert.NoError(err) {
		return
	}
	_, err = repo.Create(ctx, dao.Recognition{SessionID: sesh.ID, UserID: userID, Input: "help", Verdict: grammar.Ok})
	if !assert.NoError(err) {
		return
	}

	all, err := repo.GetAllByUser(ctx, userID, nil, nil)
	if !assert.NoError(err) {
		return
	}
	assert.Len(all, 1)
}

func Test_InMemoryRecognitionsRepository_Delete(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	seshRepo := NewSessionsRepository()
	repo := NewRecognitionsRepository(seshRepo)

	sesh, err := seshRepo.Create(ctx, dao.Session{UserID: mustRandomUUID(t)})
	if !assert.NoError(err) {
		return
	}
	created, err := repo.Create(ctx, dao.Recognition{SessionID: sesh.ID, Input: "quit"})
	if !assert.NoError(err) {
		return
	}

	_, err = repo.Delete(ctx, created.ID)
	if !assert.NoError(err) {
		return
	}

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)
}
