package services

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/techspace-club/community-backend/utils/logger"
)

const defaultAnnouncement = "No announcements yet."

// Announcement is the site-wide banner, persisted as {"text": ...}.
type Announcement struct {
	Text string `json:"text"`
}

// AnnouncementStore owns the single announcement value, mirroring it to its
// JSON file on every update.
type AnnouncementStore struct {
	mu      sync.Mutex
	path    string
	current Announcement
}

// NewAnnouncementStore loads the announcement file, writing the default
// when it is missing or carries no text.
func NewAnnouncementStore(path string) *AnnouncementStore {
	s := &AnnouncementStore{path: path, current: Announcement{Text: defaultAnnouncement}}
	s.load()
	return s
}

func (s *AnnouncementStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.save()
			return
		}
		logger.Errorf("failed to read %s: %v", s.path, err)
		return
	}

	var ann Announcement
	if err := json.Unmarshal(data, &ann); err != nil {
		logger.Warnf("%s is not valid, keeping default: %v", s.path, err)
		return
	}
	if ann.Text == "" {
		ann.Text = defaultAnnouncement
	}
	s.current = ann
}

func (s *AnnouncementStore) save() {
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		logger.Errorf("failed to marshal announcement: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		logger.Errorf("failed to write %s: %v", s.path, err)
	}
}

// Get returns the current announcement.
func (s *AnnouncementStore) Get() Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set replaces the announcement text and persists it. Empty-after-trim text
// is rejected and the prior value stays.
func (s *AnnouncementStore) Set(text string) (Announcement, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Announcement{}, &ValidationError{Message: "Announcement cannot be empty."}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Text = trimmed
	s.save()
	return s.current, nil
}
