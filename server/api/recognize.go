package api

import (
	"errors"
	"net/http"

	"github.com/corvidae/voxctl/internal/grammar"
	"github.com/corvidae/voxctl/server/dao"
	"github.com/corvidae/voxctl/server/middle"
	"github.com/corvidae/voxctl/server/result"
	"github.com/corvidae/voxctl/server/serr"
)

// SessionCreateRequest is the body of a request to open a new decoder
// session.
type SessionCreateRequest struct {
	ModelDir string `json:"model_dir"`
}

// SessionModel is a decoder session as returned to a client.
type SessionModel struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	ModelDir string `json:"model_dir"`
	HeldKeys string `json:"held_keys"`
	Created  string `json:"created"`
}

// HeldKeysModel carries the set of modifier keys a session is currently
// holding down, as plain characters rather than keystroke events.
type HeldKeysModel struct {
	Keys string `json:"keys"`
}

// RecognitionRequest is the body of a request to dispatch a recognized
// transcript against the command grammar.
type RecognitionRequest struct {
	Input string `json:"input"`
}

// RecognitionModel is the result of dispatching a transcript, as returned to
// a client.
type RecognitionModel struct {
	Verdict string `json:"verdict"`
	Command string `json:"command,omitempty"`
}

// HTTPCreateSession returns a HandlerFunc that opens a new decoder session
// for the logged-in user.
func (api API) HTTPCreateSession() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epCreateSession)
}

func (api API) epCreateSession(req *http.Request) result.Result {
	user := req.Context().Value(middle.AuthUser).(dao.User)

	var createReq SessionCreateRequest
	if err := parseJSON(req, &createReq); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	sesh, err := api.Backend.OpenSession(req.Context(), user.ID, createReq.ModelDir)
	if err != nil {
		return result.InternalServerError("could not open session: " + err.Error())
	}

	resp := SessionModel{
		ID:       sesh.ID.String(),
		UserID:   sesh.UserID.String(),
		ModelDir: sesh.ModelDir,
		HeldKeys: string(sesh.HeldKeys),
		Created:  sesh.Created.Format("2006-01-02T15:04:05Z07:00"),
	}
	return result.Created(resp, "user '%s' opened session %s", user.Username, resp.ID)
}

// HTTPGetHeldKeys returns a HandlerFunc that retrieves the modifier keys
// currently held down for a session.
func (api API) HTTPGetHeldKeys() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epGetHeldKeys)
}

func (api API) epGetHeldKeys(req *http.Request) result.Result {
	id := requireIDParam(req)

	keys, err := api.Backend.HeldKeys(req.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		}
		return result.InternalServerError("could not get held keys: " + err.Error())
	}

	return result.OK(HeldKeysModel{Keys: string(keys)}, "session %s held keys retrieved", id)
}

// HTTPSetHeldKeys returns a HandlerFunc that replaces the modifier keys
// currently held down for a session.
func (api API) HTTPSetHeldKeys() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epSetHeldKeys)
}

func (api API) epSetHeldKeys(req *http.Request) result.Result {
	id := requireIDParam(req)

	var body HeldKeysModel
	if err := parseJSON(req, &body); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	if err := api.Backend.SetHeldKeys(req.Context(), id, []rune(body.Keys)); err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		}
		return result.InternalServerError("could not set held keys: " + err.Error())
	}

	return result.OK(body, "session %s held keys set", id)
}

// HTTPCreateRecognition returns a HandlerFunc that dispatches a recognized
// transcript against the command grammar for the given session.
func (api API) HTTPCreateRecognition() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epCreateRecognition)
}

func (api API) epCreateRecognition(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := req.Context().Value(middle.AuthUser).(dao.User)

	var recReq RecognitionRequest
	if err := parseJSON(req, &recReq); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	cmd, err := api.Backend.Recognize(req.Context(), id, user.ID, recReq.Input)

	resp := RecognitionModel{Command: cmd.Name}

	var perr *grammar.ParseError
	switch {
	case err == nil:
		resp.Verdict = "OK"
		return result.Created(resp, "user '%s' dispatched %q -> %s", user.Username, recReq.Input, cmd.Name)
	case errors.As(err, &perr):
		resp.Verdict = perr.Verdict.String()
		return result.OK(resp, "user '%s' recognition %q: %s", user.Username, recReq.Input, resp.Verdict)
	default:
		return result.InternalServerError("could not dispatch recognition: " + err.Error())
	}
}
