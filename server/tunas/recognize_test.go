package tunas

import (
	"context"
	"testing"

	"github.com/corvidae/voxctl/internal/grammar"
	"github.com/corvidae/voxctl/server/dao"
	"github.com/corvidae/voxctl/server/serr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func mustOpenSession(t *testing.T, svc Service, userID uuid.UUID) dao.Session {
	t.Helper()
	sesh, err := svc.OpenSession(context.Background(), userID, "/models/en")
	if err != nil {
		t.Fatalf("could not open session: %v", err)
	}
	return sesh
}

func Test_OpenSession(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()
	userID, err := uuid.NewRandom()
	if !assert.NoError(err) {
		return
	}

	sesh, err := svc.OpenSession(ctx, userID, "/models/en")
	if !assert.NoError(err) {
		return
	}
	assert.Equal(userID, sesh.UserID)
	assert.Equal("/models/en", sesh.ModelDir)
}

func Test_Recognize_completeCommand(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()
	userID, err := uuid.NewRandom()
	if !assert.NoError(err) {
		return
	}
	sesh := mustOpenSession(t, svc, userID)

	cmd, err := svc.Recognize(ctx, sesh.ID, userID, "quit")
	if !assert.NoError(err) {
		return
	}
	assert.Equal("QUIT", cmd.Name)

	all, err := svc.DB.Recognitions().GetAllBySession(ctx, sesh.ID, nil, nil)
	if !assert.NoError(err) {
		return
	}
	if assert.Len(all, 1) {
		assert.Equal(grammar.Ok, all[0].Verdict)
		assert.Equal("QUIT", all[0].Command)
		assert.Equal("quit", all[0].Input)
	}
}

func Test_Recognize_wrongInput(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()
	userID, err := uuid.NewRandom()
	if !assert.NoError(err) {
		return
	}
	sesh := mustOpenSession(t, svc, userID)

	_, err = svc.Recognize(ctx, sesh.ID, userID, "banana")
	assert.Error(err)

	all, err := svc.DB.Recognitions().GetAllBySession(ctx, sesh.ID, nil, nil)
	if !assert.NoError(err) {
		return
	}
	if assert.Len(all, 1) {
		assert.Equal(grammar.Wrong, all[0].Verdict)
		assert.Empty(all[0].Command)
	}
}

func Test_Recognize_incompleteInput(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()
	userID, err := uuid.NewRandom()
	if !assert.NoError(err) {
		return
	}
	sesh := mustOpenSession(t, svc, userID)

	_, err = svc.Recognize(ctx, sesh.ID, userID, "press")
	assert.Error(err)

	all, err := svc.DB.Recognitions().GetAllBySession(ctx, sesh.ID, nil, nil)
	if !assert.NoError(err) {
		return
	}
	if assert.Len(all, 1) {
		assert.Equal(grammar.Incomplete, all[0].Verdict)
	}
}

func Test_HeldKeys_roundTrip(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()
	userID, err := uuid.NewRandom()
	if !assert.NoError(err) {
		return
	}
	sesh := mustOpenSession(t, svc, userID)

	keys, err := svc.HeldKeys(ctx, sesh.ID)
	if !assert.NoError(err) {
		return
	}
	assert.Empty(keys)

	err = svc.SetHeldKeys(ctx, sesh.ID, []rune{'a', 'b'})
	if !assert.NoError(err) {
		return
	}

	keys, err = svc.HeldKeys(ctx, sesh.ID)
	if !assert.NoError(err) {
		return
	}
	assert.Equal([]rune{'a', 'b'}, keys)
}

func Test_HeldKeys_unknownSession(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	randID, err := uuid.NewRandom()
	if !assert.NoError(err) {
		return
	}

	_, err = svc.HeldKeys(ctx, randID)
	assert.ErrorIs(err, serr.ErrNotFound)
}

func Test_SetHeldKeys_unknownSession(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	randID, err := uuid.NewRandom()
	if !assert.NoError(err) {
		return
	}

	err = svc.SetHeldKeys(ctx, randID, []rune{'a'})
	assert.ErrorIs(err, serr.ErrNotFound)
}
