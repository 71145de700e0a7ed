package tunas

import (
	"context"
	"testing"

	"github.com/corvidae/voxctl/internal/command"
	"github.com/corvidae/voxctl/server/dao"
	"github.com/corvidae/voxctl/server/dao/inmem"
	"github.com/corvidae/voxctl/server/serr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestService() Service {
	return Service{DB: inmem.NewDatastore(), Commands: command.NewRegistry()}
}

func Test_Login_success(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.CreateUser(ctx, "hermione", "wingardium", "", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	user, err := svc.Login(ctx, "hermione", "wingardium")
	if !assert.NoError(err) {
		return
	}
	assert.Equal(created.ID, user.ID)
	assert.False(user.LastLoginTime.IsZero())
}

func Test_Login_unknownUsername(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Login(ctx, "nobody", "whatever")
	assert.ErrorIs(err, serr.ErrBadCredentials)
}

func Test_Login_wrongPassword(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateUser(ctx, "ron", "correct-horse", "", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	_, err = svc.Login(ctx, "ron", "wrong-password")
	assert.ErrorIs(err, serr.ErrBadCredentials)
}

func Test_Logout_success(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.CreateUser(ctx, "ginny", "bat-bogey", "", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	loggedOut, err := svc.Logout(ctx, created.ID)
	if !assert.NoError(err) {
		return
	}
	assert.False(loggedOut.LastLogoutTime.IsZero())
}

func Test_Logout_notFound(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	randID, err := uuid.NewRandom()
	if !assert.NoError(err) {
		return
	}

	_, err = svc.Logout(ctx, randID)
	assert.ErrorIs(err, serr.ErrNotFound)
}
