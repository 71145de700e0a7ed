package inmem

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corvidae/voxctl/internal/util"
	"github.com/corvidae/voxctl/server/dao"
	"github.com/google/uuid"
)

// NewRecognitionsRepository creates a new Recognitions repo. If seshRepo is
// not provided, GetAllByUser() will always return nil.
func NewRecognitionsRepository(seshRepo dao.SessionRepository) *InMemoryRecognitionsRepository {
	return &InMemoryRecognitionsRepository{
		seshRepo:      seshRepo,
		recs:          make(map[uuid.UUID]dao.Recognition),
		bySeshIDIndex: make(map[uuid.UUID][]uuid.UUID),
	}
}

type InMemoryRecognitionsRepository struct {
	recs          map[uuid.UUID]dao.Recognition
	seshRepo      dao.SessionRepository
	bySeshIDIndex map[uuid.UUID][]uuid.UUID
}

func (imrr *InMemoryRecognitionsRepository) Close() error {
	return nil
}

func (imrr *InMemoryRecognitionsRepository) Create(ctx context.Context, r dao.Recognition) (dao.Recognition, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Recognition{}, fmt.Errorf("could not generate ID: %w", err)
	}

	r.ID = newUUID
	r.Created = time.Now()

	if imrr.seshRepo != nil {
		_, err := imrr.seshRepo.GetByID(ctx, r.SessionID)
		if err != nil {
			if errors.Is(err, dao.ErrNotFound) {
				return dao.Recognition{}, dao.ErrConstraintViolation
			}
			return dao.Recognition{}, err
		}
	}

	imrr.recs[r.ID] = r

	seshRecs := imrr.bySeshIDIndex[r.SessionID]
	seshRecs = append(seshRecs, r.ID)
	imrr.bySeshIDIndex[r.SessionID] = seshRecs

	return r, nil
}

func matchesWindow(created time.Time, notBefore, notAfter *time.Time) bool {
	if notBefore != nil && created.Before(*notBefore) {
		return false
	}
	if notAfter != nil && created.After(*notAfter) {
		return false
	}
	return true
}

func (imrr *InMemoryRecognitionsRepository) GetAll(ctx context.Context, notBefore, notAfter *time.Time) ([]dao.Recognition, error) {
	all := []dao.Recognition{}

	for k := range imrr.recs {
		if matchesWindow(imrr.recs[k].Created, notBefore, notAfter) {
			all = append(all, imrr.recs[k])
		}
	}

	all = util.SortBy(all, func(l, r dao.Recognition) bool {
		return l.ID.String() < r.ID.String()
	})

	return all, nil
}

func (imrr *InMemoryRecognitionsRepository) GetAllByUser(ctx context.Context, id uuid.UUID, notBefore, notAfter *time.Time) ([]dao.Recognition, error) {
	if imrr.seshRepo == nil {
		return nil, nil
	}

	userSessions, err := imrr.seshRepo.GetAllByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	allRecs := []dao.Recognition{}
	for _, sesh := range userSessions {
		seshRecs, err := imrr.GetAllBySession(ctx, sesh.ID, notBefore, notAfter)
		if err != nil && !errors.Is(err, dao.ErrNotFound) {
			return nil, err
		}
		allRecs = append(allRecs, seshRecs...)
	}

	return allRecs, nil
}

func (imrr *InMemoryRecognitionsRepository) GetAllBySession(ctx context.Context, id uuid.UUID, notBefore, notAfter *time.Time) ([]dao.Recognition, error) {
	bySesh := imrr.bySeshIDIndex[id]
	if len(bySesh) < 1 {
		return nil, dao.ErrNotFound
	}

	all := []dao.Recognition{}
	for i := range bySesh {
		r := imrr.recs[bySesh[i]]
		if matchesWindow(r.Created, notBefore, notAfter) {
			all = append(all, r)
		}
	}

	all = util.SortBy(all, func(l, r dao.Recognition) bool {
		return l.ID.String() < r.ID.String()
	})

	return all, nil
}

func (imrr *InMemoryRecognitionsRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.Recognition, error) {
	r, ok := imrr.recs[id]
	if !ok {
		return dao.Recognition{}, dao.ErrNotFound
	}

	return r, nil
}

func (imrr *InMemoryRecognitionsRepository) Delete(ctx context.Context, id uuid.UUID) (dao.Recognition, error) {
	r, ok := imrr.recs[id]
	if !ok {
		return dao.Recognition{}, dao.ErrNotFound
	}

	bySesh := imrr.bySeshIDIndex[r.SessionID]
	updated := util.SliceRemove(r.ID, bySesh)
	imrr.bySeshIDIndex[r.SessionID] = updated
	if len(updated) < 1 {
		delete(imrr.bySeshIDIndex, r.SessionID)
	}

	delete(imrr.recs, r.ID)

	return r, nil
}
