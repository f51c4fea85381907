package storage

import (
	"sync"

	"fakeshot/internal/image"
)

// Session is the per-chat selection the next render is built from.
type Session struct {
	ImageSource   string
	FontFamily    string
	FontSize      int
	ShowWatermark bool
	Processing    bool
}

type RenderStateStore struct {
	defaults Session
	sessions map[int64]*Session
	mu       sync.RWMutex
}

func NewRenderStateStore(defaults Session) *RenderStateStore {
	defaults.Processing = false
	return &RenderStateStore{
		defaults: defaults,
		sessions: make(map[int64]*Session),
	}
}

func (s *RenderStateStore) session(chatID int64) *Session {
	sess, ok := s.sessions[chatID]
	if !ok {
		d := s.defaults
		sess = &d
		s.sessions[chatID] = sess
	}
	return sess
}

// Get returns a copy of the chat's session, or the defaults.
func (s *RenderStateStore) Get(chatID int64) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[chatID]; ok {
		return *sess
	}
	return s.defaults
}

func (s *RenderStateStore) Update(chatID int64, fn func(*Session)) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(chatID)
	processing := sess.Processing
	fn(sess)
	sess.Processing = processing
	return *sess
}

func (s *RenderStateStore) SetImage(chatID int64, source string) {
	s.Update(chatID, func(sess *Session) { sess.ImageSource = source })
}

func (s *RenderStateStore) SetFontFamily(chatID int64, family string) {
	s.Update(chatID, func(sess *Session) { sess.FontFamily = family })
}

func (s *RenderStateStore) SetFontSize(chatID int64, size int) {
	s.Update(chatID, func(sess *Session) { sess.FontSize = size })
}

func (s *RenderStateStore) ToggleWatermark(chatID int64) bool {
	return s.Update(chatID, func(sess *Session) { sess.ShowWatermark = !sess.ShowWatermark }).ShowWatermark
}

// Request snapshots the session into an immutable render request.
func (s *RenderStateStore) Request(chatID int64, text string) image.RenderRequest {
	sess := s.Get(chatID)
	return image.RenderRequest{
		Text:          text,
		ImageSource:   sess.ImageSource,
		FontFamily:    sess.FontFamily,
		FontSize:      sess.FontSize,
		ShowWatermark: sess.ShowWatermark,
	}.Normalize()
}

func (s *RenderStateStore) TryStart(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(chatID)
	if sess.Processing {
		return false
	}

	sess.Processing = true
	return true
}

func (s *RenderStateStore) IsProcessing(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess, ok := s.sessions[chatID]; ok {
		return sess.Processing
	}
	return false
}

func (s *RenderStateStore) Finish(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[chatID]; ok {
		sess.Processing = false
	}
}

// Reset forgets everything selected in the chat.
func (s *RenderStateStore) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
