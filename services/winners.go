package services

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/techspace-club/community-backend/models"
	"github.com/techspace-club/community-backend/utils/logger"
)

// WinnerStore owns the winner list. The in-memory slice is authoritative
// while the process runs; the JSON file is rewritten in full after every
// successful add. Nothing outside the store touches the slice.
type WinnerStore struct {
	mu      sync.Mutex
	path    string
	winners []models.Winner
}

// NewWinnerStore loads the winners file, creating it when missing so the
// file always exists after first run.
func NewWinnerStore(path string) *WinnerStore {
	s := &WinnerStore{path: path}
	s.load()
	return s
}

func (s *WinnerStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warnf("%s not found, starting with empty list", s.path)
			s.winners = []models.Winner{}
			s.save()
			return
		}
		logger.Errorf("failed to read %s: %v", s.path, err)
		s.winners = []models.Winner{}
		return
	}

	var winners []models.Winner
	if err := json.Unmarshal(data, &winners); err != nil {
		logger.Warnf("%s is not a winner array, resetting: %v", s.path, err)
		s.winners = []models.Winner{}
		return
	}
	s.winners = winners
	logger.Infof("Loaded %d winners from %s", len(winners), s.path)
}

// save rewrites the whole file. A failed write is logged and swallowed; the
// in-memory list stands and callers still see success.
func (s *WinnerStore) save() {
	data, err := json.MarshalIndent(s.winners, "", "  ")
	if err != nil {
		logger.Errorf("failed to marshal winners: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		logger.Errorf("failed to write %s: %v", s.path, err)
		return
	}
	logger.Debugf("%s updated, total winners: %d", s.path, len(s.winners))
}

// ListAll returns the full list in insertion order, certificate fields
// included. Admin use only.
func (s *WinnerStore) ListAll() []models.Winner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Winner(nil), s.winners...)
}

// ListPublic returns the list with certificate code and file stripped.
func (s *WinnerStore) ListPublic() []models.PublicWinner {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.PublicWinner, len(s.winners))
	for i, w := range s.winners {
		out[i] = w.Public()
	}
	return out
}

// Add validates the input, assigns the next id, generates a certificate
// code and appends the record. The file is rewritten before Add returns.
// On validation failure nothing is mutated.
func (s *WinnerStore) Add(in models.WinnerInput) (models.Winner, error) {
	workshopID := strings.TrimSpace(in.WorkshopID)
	workshopName := strings.TrimSpace(in.WorkshopName)
	position := strings.TrimSpace(string(in.Position))
	name := strings.TrimSpace(in.Name)
	regNo := strings.TrimSpace(in.RegNo)
	certFile := strings.TrimSpace(in.CertificateFile)

	if workshopID == "" || workshopName == "" || position == "" || name == "" || regNo == "" || certFile == "" {
		return models.Winner{}, &ValidationError{Message: "All fields are required."}
	}

	pos, err := strconv.Atoi(position)
	if err != nil || pos < 1 || pos > 3 {
		return models.Winner{}, &ValidationError{Message: "Position must be 1, 2 or 3."}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	winner := models.Winner{
		ID:              s.nextID(),
		WorkshopID:      workshopID,
		WorkshopName:    workshopName,
		Position:        pos,
		Name:            name,
		RegNo:           regNo,
		CertificateCode: GenerateCertificateCode(workshopID, regNo),
		CertificateFile: certFile,
	}
	s.winners = append(s.winners, winner)
	s.save()

	logger.Infof("Added winner id=%d workshop=%s position=%d", winner.ID, winner.WorkshopID, winner.Position)
	return winner, nil
}

// nextID is max existing id + 1, or 1 for an empty store. Ids are never
// reused. Caller holds the lock.
func (s *WinnerStore) nextID() int {
	max := 0
	for _, w := range s.winners {
		if w.ID > max {
			max = w.ID
		}
	}
	return max + 1
}
