package tunas

import (
	"context"
	"errors"

	"github.com/corvidae/voxctl/internal/command"
	"github.com/corvidae/voxctl/internal/grammar"
	"github.com/corvidae/voxctl/server/dao"
	"github.com/corvidae/voxctl/server/serr"
	"github.com/google/uuid"
)

// OpenSession records the start of a new decoder session for the given user
// and returns the created Session.
func (svc Service) OpenSession(ctx context.Context, userID uuid.UUID, modelDir string) (dao.Session, error) {
	sesh, err := svc.DB.Sessions().Create(ctx, dao.Session{UserID: userID, ModelDir: modelDir})
	if err != nil {
		return dao.Session{}, serr.WrapDB("could not create session", err)
	}
	return sesh, nil
}

// Recognize dispatches a recognized transcript against the command grammar
// and logs the attempt, successful or not, to persistence. It returns the
// dispatched Command on a successful parse; on Incomplete or Wrong verdicts
// it returns the zero Command alongside a *grammar.ParseError.
func (svc Service) Recognize(ctx context.Context, sessionID, userID uuid.UUID, input string) (command.Command, error) {
	cmd, parseErr := svc.Commands.Parse(input)

	rec := dao.Recognition{
		SessionID: sessionID,
		UserID:    userID,
		Input:     input,
	}

	var perr *grammar.ParseError
	if parseErr == nil {
		rec.Verdict = grammar.Ok
		rec.Command = cmd.Name
	} else if errors.As(parseErr, &perr) {
		rec.Verdict = perr.Verdict
	} else {
		rec.Verdict = grammar.Wrong
	}

	if _, logErr := svc.DB.Recognitions().Create(ctx, rec); logErr != nil {
		return cmd, serr.WrapDB("could not log recognition attempt", logErr)
	}

	return cmd, parseErr
}

// HeldKeys returns the modifier keys currently marked as held down for the
// given session, as recorded by prior HOLD commands.
func (svc Service) HeldKeys(ctx context.Context, sessionID uuid.UUID) ([]rune, error) {
	sesh, err := svc.DB.Sessions().GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, serr.ErrNotFound
		}
		return nil, serr.WrapDB("could not retrieve session", err)
	}
	return sesh.HeldKeys, nil
}

// SetHeldKeys updates the set of modifier keys marked as held down for the
// given session.
func (svc Service) SetHeldKeys(ctx context.Context, sessionID uuid.UUID, keys []rune) error {
	sesh, err := svc.DB.Sessions().GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return serr.ErrNotFound
		}
		return serr.WrapDB("could not retrieve session", err)
	}

	sesh.HeldKeys = keys
	if _, err := svc.DB.Sessions().Update(ctx, sesh.ID, sesh); err != nil {
		return serr.WrapDB("could not update session", err)
	}
	return nil
}
