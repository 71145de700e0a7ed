package inmem

import (
	"fmt"

	"github.com/corvidae/voxctl/server/dao"
)

type store struct {
	users  *InMemoryUsersRepository
	seshes *InMemorySessionsRepository
	recs   *InMemoryRecognitionsRepository
}

func NewDatastore() dao.Store {
	st := &store{
		users:  NewUsersRepository(),
		seshes: NewSessionsRepository(),
	}
	st.recs = NewRecognitionsRepository(st.seshes)
	return st
}

func (s *store) Users() dao.UserRepository {
	return s.users
}

func (s *store) Sessions() dao.SessionRepository {
	return s.seshes
}

func (s *store) Recognitions() dao.RecognitionRepository {
	return s.recs
}

func (s *store) Close() error {
	var err error
	var nextErr error

	nextErr = s.users.Close()
	if nextErr != err {
		if err != nil {
			err = fmt.Errorf("%s\nadditionally, %w", err, nextErr)
		} else {
			err = nextErr
		}
	}
	nextErr = s.seshes.Close()
	if nextErr != err {
		if err != nil {
			err = fmt.Errorf("%s\nadditionally, %w", err, nextErr)
		} else {
			err = nextErr
		}
	}
	nextErr = s.recs.Close()
	if nextErr != err {
		if err != nil {
			err = fmt.Errorf("%s\nadditionally, %w", err, nextErr)
		} else {
			err = nextErr
		}
	}

	return err
}
