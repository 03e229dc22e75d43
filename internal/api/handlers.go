package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/meetlayout/pkg/buildinfo"
	"github.com/matzehuels/meetlayout/pkg/errors"
	"github.com/matzehuels/meetlayout/pkg/geom"
	"github.com/matzehuels/meetlayout/pkg/grid"
	"github.com/matzehuels/meetlayout/pkg/io"
	"github.com/matzehuels/meetlayout/pkg/layout"
	"github.com/matzehuels/meetlayout/pkg/session"
)

type healthResponse struct {
	Status   string         `json:"status"`
	Sessions int            `json:"sessions"`
	Build    buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Sessions: s.registry.Len(),
		Build:    buildinfo.Get(),
	})
}

// handleLayout computes one pass over the posted state. With ?reset=true
// the state first gets the session-start input of its device class.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	state, err := io.ReadState(http.MaxBytesReader(w, r.Body, maxBodyBytes), io.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if ok, _ := strconv.ParseBool(r.URL.Query().Get("reset")); ok {
		state = layout.Reset(state)
	}
	out, err := layout.Calculate(state, s.defaults)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type gridResponse struct {
	Spec       grid.Spec   `json:"spec"`
	Candidates []grid.Spec `json:"candidates,omitempty"`
}

// handleGrid packs the posted parameters. Gutter and aspect ratio default
// to the server constants when left out.
func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	p := grid.Params{Gutter: s.defaults.GridGutter, AspectRatio: s.defaults.GridAspectRatio}
	if err := decodeJSON(w, r, &p); err != nil {
		s.writeError(w, r, err)
		return
	}
	spec, err := grid.Pack(p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := gridResponse{Spec: spec}
	if ok, _ := strconv.ParseBool(r.URL.Query().Get("candidates")); ok {
		if resp.Candidates, err = grid.Candidates(p); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type createSessionRequest struct {
	Device  layout.DeviceClass `json:"device"`
	Width   float64            `json:"width"`
	Height  float64            `json:"height"`
	Cameras int                `json:"cameras"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := errors.ValidateCountAtMost(errors.ErrCodeInvalidInput, "cameras", req.Cameras, layout.MaxCameras); err != nil {
		s.writeError(w, r, err)
		return
	}
	sess, err := s.registry.Create(r.Context(), req.Device, geom.Size{Width: req.Width, Height: req.Height})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Cameras > 0 {
		if err := sess.SetCameras(req.Cameras); err != nil {
			_ = s.registry.Delete(sess.ID)
			s.writeError(w, r, err)
			return
		}
	}
	view, err := sess.Settle()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/sessions/"+sess.ID)
	writeJSON(w, http.StatusCreated, view)
}

type sessionSummary struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"createdAt"`
	LastUsed  time.Time          `json:"lastUsed"`
	Device    layout.DeviceClass `json:"device"`
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	list := s.registry.List()
	out := make([]sessionSummary, len(list))
	for i, sess := range list {
		out[i] = sessionSummary{
			ID:        sess.ID,
			CreatedAt: sess.CreatedAt,
			LastUsed:  sess.LastUsed(),
			Device:    sess.Store().State().DeviceClass,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return sess, true
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.View())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.registry.Delete(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePutState replaces the session state and answers with the settled
// view.
func (s *Server) handlePutState(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	state, err := io.ReadState(http.MaxBytesReader(w, r.Body, maxBodyBytes), io.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := sess.Replace(state); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeSettled(w, r, sess)
}

func (s *Server) handlePutStreams(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var streams []grid.Stream
	if err := decodeJSON(w, r, &streams); err != nil {
		s.writeError(w, r, err)
		return
	}
	sess.SetStreams(streams)
	s.writeSettled(w, r, sess)
}

// handleFocus toggles focus on a stream. Focus needs more than two
// streams and a known id; otherwise nothing changes and 409 is returned.
func (s *Server) handleFocus(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	stream := chi.URLParam(r, "stream")
	if !sess.Focus(stream) {
		writeJSON(w, http.StatusConflict, errorResponse{
			Code:    "FOCUS_UNAVAILABLE",
			Message: "stream " + strconv.Quote(stream) + " cannot be focused",
		})
		return
	}
	s.writeSettled(w, r, sess)
}

func (s *Server) writeSettled(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	view, err := sess.Settle()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	return nil
}
