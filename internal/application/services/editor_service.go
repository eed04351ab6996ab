package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/editor"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/security"
	"github.com/patrickmn/go-cache"
)

// EditorSession is one open edit dialog for a component.
type EditorSession struct {
	ID          string      `json:"id"`
	PageID      string      `json:"pageId"`
	ComponentID string      `json:"componentId"`
	Kind        blocks.Kind `json:"kind"`
	OpenedBy    string      `json:"openedBy,omitempty"`
	OpenedAt    time.Time   `json:"openedAt"`

	dialog *editor.Dialog
}

// Dialog exposes the session's state machine.
func (s *EditorSession) Dialog() *editor.Dialog { return s.dialog }

// SessionView is the client-facing snapshot of a session.
type SessionView struct {
	*EditorSession
	State  string          `json:"state"`
	Config json.RawMessage `json:"config"`
}

// EditorService holds editor sessions in a TTL store. A session that is not
// touched within the TTL expires, which discards its working copy exactly as
// Cancel would.
type EditorService struct {
	pages    *PageService
	uploads  *UploadService
	sessions *cache.Cache
	logger   *logging.ChanneledLogger
}

func NewEditorService(pages *PageService, uploads *UploadService, ttl time.Duration, logger *logging.ChanneledLogger) *EditorService {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &EditorService{
		pages:    pages,
		uploads:  uploads,
		sessions: cache.New(ttl, ttl/2),
		logger:   logger,
	}
}

func sessionKey(id string) string { return "session:" + id }

func componentKey(pageID, componentID string) string {
	return "component:" + pageID + ":" + componentID
}

// Open starts editing a component. If the component already has an open
// session, that session is returned instead.
func (s *EditorService) Open(ctx context.Context, pageID, componentID, openedBy string) (*EditorSession, error) {
	if id, ok := s.sessions.Get(componentKey(pageID, componentID)); ok {
		if sess, err := s.Get(id.(string)); err == nil && sess.dialog.State() != editor.Closed {
			s.touch(sess)
			return sess, nil
		}
	}

	_, component, err := s.pages.Component(ctx, pageID, componentID)
	if err != nil {
		return nil, err
	}
	cfg, err := component.Migrated()
	if err != nil {
		return nil, fmt.Errorf("component %s cannot be edited: %w", componentID, err)
	}

	dialog := editor.NewDialog(func(ctx context.Context, saved blocks.Config) error {
		raw, err := blocks.Encode(saved)
		if err != nil {
			return err
		}
		return s.pages.ReplaceComponentConfig(ctx, pageID, componentID, raw)
	})
	if err := dialog.Open(cfg); err != nil {
		return nil, err
	}

	sess := &EditorSession{
		ID:          strings.ToLower(security.GenerateULID()),
		PageID:      pageID,
		ComponentID: componentID,
		Kind:        cfg.Kind(),
		OpenedBy:    openedBy,
		OpenedAt:    time.Now().UTC(),
		dialog:      dialog,
	}
	s.touch(sess)
	s.logger.Editor().Info("Editor session opened", "sessionId", sess.ID, "pageId", pageID, "componentId", componentID, "kind", sess.Kind)
	return sess, nil
}

func (s *EditorService) touch(sess *EditorSession) {
	s.sessions.SetDefault(sessionKey(sess.ID), sess)
	s.sessions.SetDefault(componentKey(sess.PageID, sess.ComponentID), sess.ID)
}

func (s *EditorService) drop(sess *EditorSession) {
	s.sessions.Delete(sessionKey(sess.ID))
	s.sessions.Delete(componentKey(sess.PageID, sess.ComponentID))
}

func (s *EditorService) Get(id string) (*EditorSession, error) {
	v, ok := s.sessions.Get(sessionKey(id))
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	return v.(*EditorSession), nil
}

// View returns the session with its current working copy.
func (s *EditorService) View(id string) (*SessionView, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return s.view(sess)
}

func (s *EditorService) view(sess *EditorSession) (*SessionView, error) {
	working, err := sess.dialog.Working()
	if err != nil {
		return nil, err
	}
	raw, err := blocks.Encode(working)
	if err != nil {
		return nil, err
	}
	return &SessionView{EditorSession: sess, State: sess.dialog.State().String(), Config: raw}, nil
}

// Working returns the session's working config for preview rendering.
func (s *EditorService) Working(id string) (*EditorSession, blocks.Config, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := sess.dialog.Working()
	if err != nil {
		return nil, nil, err
	}
	return sess, cfg, nil
}

func (s *EditorService) Apply(id string, op editor.Operation) (*SessionView, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := sess.dialog.Apply(op); err != nil {
		s.logger.Editor().Debug("Editor operation rejected", "sessionId", id, "op", op.Op, "path", op.Path, "error", err.Error())
		return nil, err
	}
	s.touch(sess)
	return s.view(sess)
}

// Upload sends data to the image host and writes the resulting URL at path.
// On any failure the working copy is left as it was.
func (s *EditorService) Upload(ctx context.Context, id, path string, data []byte, filename string) (string, error) {
	sess, err := s.Get(id)
	if err != nil {
		return "", err
	}
	working, err := sess.dialog.Working()
	if err != nil {
		return "", err
	}
	rule, err := blocks.FieldRule(working, path)
	if err != nil {
		return "", err
	}
	if rule != "image" {
		return "", errors.WithDetails(blocks.ErrNotAnImage, "path", path)
	}
	if err := sess.dialog.BeginUpload(path); err != nil {
		return "", err
	}

	url, err := s.uploads.Upload(ctx, data, filename)
	if err != nil {
		sess.dialog.FailUpload(path)
		return "", err
	}
	if err := sess.dialog.CompleteUpload(path, url); err != nil {
		return "", err
	}
	s.touch(sess)
	s.logger.Editor().Info("Image uploaded into session", "sessionId", id, "path", path, "url", url)
	return url, nil
}

// Save validates and persists the working copy. The session ends on success
// and stays open on any failure.
func (s *EditorService) Save(ctx context.Context, id string) (json.RawMessage, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	cfg, err := sess.dialog.Save(ctx)
	if err != nil {
		s.logger.Editor().Warn("Editor save failed", "sessionId", id, "error", err.Error())
		return nil, err
	}
	s.drop(sess)

	raw, err := blocks.Encode(cfg)
	if err != nil {
		return nil, err
	}
	s.logger.Editor().Info("Editor session saved", "sessionId", id, "componentId", sess.ComponentID)
	return raw, nil
}

func (s *EditorService) Cancel(id string) error {
	sess, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := sess.dialog.Cancel(); err != nil {
		return err
	}
	s.drop(sess)
	s.logger.Editor().Info("Editor session cancelled", "sessionId", id)
	return nil
}

// Count returns the number of live sessions.
func (s *EditorService) Count() int {
	n := 0
	for k := range s.sessions.Items() {
		if strings.HasPrefix(k, "session:") {
			n++
		}
	}
	return n
}
