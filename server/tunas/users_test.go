package tunas

import (
	"context"
	"testing"

	"github.com/corvidae/voxctl/server/dao"
	"github.com/corvidae/voxctl/server/serr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateUser_success(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	user, err := svc.CreateUser(ctx, "luna", "radish-earrings", "luna@quibbler.example", dao.Normal)
	if !assert.NoError(err) {
		return
	}
	assert.Equal("luna", user.Username)
	assert.NotEqual("radish-earrings", user.Password)
	assert.NotNil(user.Email)
}

func Test_CreateUser_blankUsername(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateUser(ctx, "", "password", "", dao.Normal)
	assert.ErrorIs(err, serr.ErrBadArgument)
}

func Test_CreateUser_blankPassword(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateUser(ctx, "neville", "", "", dao.Normal)
	assert.ErrorIs(err, serr.ErrBadArgument)
}

func Test_CreateUser_invalidEmail(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateUser(ctx, "neville", "password", "not-an-email", dao.Normal)
	assert.ErrorIs(err, serr.ErrBadArgument)
}

func Test_CreateUser_duplicateUsername(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateUser(ctx, "draco", "password", "", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	_, err = svc.CreateUser(ctx, "draco", "another-password", "", dao.Normal)
	assert.ErrorIs(err, serr.ErrAlreadyExists)
}

func Test_GetUser_success(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.CreateUser(ctx, "cho", "password", "", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	fetched, err := svc.GetUser(ctx, created.ID.String())
	if !assert.NoError(err) {
		return
	}
	assert.Equal(created.ID, fetched.ID)
}

func Test_GetUser_invalidID(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.GetUser(ctx, "not-a-uuid")
	assert.ErrorIs(err, serr.ErrBadArgument)
}

func Test_GetUser_notFound(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	randID, err := uuid.NewRandom()
	if !assert.NoError(err) {
		return
	}

	_, err = svc.GetUser(ctx, randID.String())
	assert.ErrorIs(err, serr.ErrNotFound)
}

func Test_GetAllUsers(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateUser(ctx, "fred", "password", "", dao.Normal)
	assert.NoError(err)
	_, err = svc.CreateUser(ctx, "george", "password", "", dao.Normal)
	assert.NoError(err)

	all, err := svc.GetAllUsers(ctx)
	if !assert.NoError(err) {
		return
	}
	assert.Len(all, 2)
}

func Test_UpdateUser_success(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.CreateUser(ctx, "percy", "password", "", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	updated, err := svc.UpdateUser(ctx, created.ID.String(), created.ID.String(), "percy", "percy@ministry.example", dao.Admin)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(dao.Admin, updated.Role)
	assert.NotNil(updated.Email)
}

func Test_UpdateUser_blankUsername(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.CreateUser(ctx, "bill", "password", "", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	_, err = svc.UpdateUser(ctx, created.ID.String(), created.ID.String(), "", "", dao.Normal)
	assert.ErrorIs(err, serr.ErrBadArgument)
}

func Test_UpdateUser_duplicateUsername(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateUser(ctx, "charlie", "password", "", dao.Normal)
	if !assert.NoError(err) {
		return
	}
	second, err := svc.CreateUser(ctx, "dragon-tamer", "password", "", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	_, err = svc.UpdateUser(ctx, second.ID.String(), second.ID.String(), "charlie", "", dao.Normal)
	assert.ErrorIs(err, serr.ErrAlreadyExists)
}

func Test_UpdatePassword_success(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.CreateUser(ctx, "seamus", "old-password", "", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	_, err = svc.UpdatePassword(ctx, created.ID.String(), "new-password")
	if !assert.NoError(err) {
		return
	}

	_, err = svc.Login(ctx, "seamus", "new-password")
	assert.NoError(err)

	_, err = svc.Login(ctx, "seamus", "old-password")
	assert.ErrorIs(err, serr.ErrBadCredentials)
}

func Test_UpdatePassword_blank(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.CreateUser(ctx, "dean", "password", "", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	_, err = svc.UpdatePassword(ctx, created.ID.String(), "")
	assert.ErrorIs(err, serr.ErrBadArgument)
}

func Test_UpdatePassword_notFound(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	randID, err := uuid.NewRandom()
	if !assert.NoError(err) {
		return
	}

	_, err = svc.UpdatePassword(ctx, randID.String(), "new-password")
	assert.ErrorIs(err, serr.ErrNotFound)
}

func Test_DeleteUser_success(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.CreateUser(ctx, "lavender", "password", "", dao.Normal)
	if !assert.NoError(err) {
		return
	}

	_, err = svc.DeleteUser(ctx, created.ID.String())
	if !assert.NoError(err) {
		return
	}

	_, err = svc.GetUser(ctx, created.ID.String())
	assert.ErrorIs(err, serr.ErrNotFound)
}

func Test_DeleteUser_invalidID(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.DeleteUser(ctx, "not-a-uuid")
	assert.ErrorIs(err, serr.ErrBadArgument)
}
