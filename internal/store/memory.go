package store

import (
	"sort"
	"sync"
	"time"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
)

// MemoryStore is the in-memory reference implementation of every store
// interface. State lives for the process lifetime; internal maps are guarded
// by a single RWMutex. Per-farmer operation serialization is the service
// layer's job, the store only guarantees its own consistency.
type MemoryStore struct {
	mu sync.RWMutex

	records     map[string]map[string]models.DailyRecord // farmer -> date -> record
	ledger      map[string][]models.LedgerEntry          // farmer -> entries in insertion order
	boards      map[string]map[string][]models.TaskItem  // farmer -> date -> board
	completions map[string]map[string]map[string]bool    // farmer -> date -> task set
	progress    map[string]models.FarmerProgress
	farms       []models.Farm
	diseases    []models.Disease
	schemes     []models.Scheme
	statistics  []models.FarmStatistics
	chat        map[string][]models.ChatMessage
	farmers     map[string]models.Farmer // keyed by username
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:     make(map[string]map[string]models.DailyRecord),
		ledger:      make(map[string][]models.LedgerEntry),
		boards:      make(map[string]map[string][]models.TaskItem),
		completions: make(map[string]map[string]map[string]bool),
		progress:    make(map[string]models.FarmerProgress),
		chat:        make(map[string][]models.ChatMessage),
		farmers:     make(map[string]models.Farmer),
	}
}

// Bundle returns the store wired into every interface slot.
func (s *MemoryStore) Bundle() *Stores {
	return &Stores{
		Records:   s,
		Ledger:    s,
		Tasks:     s,
		Progress:  s,
		Farms:     s,
		Reference: s,
		Chat:      s,
		Farmers:   s,
	}
}

func (s *MemoryStore) UpsertDailyRecord(rec *models.DailyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate, ok := s.records[rec.FarmerID]
	if !ok {
		byDate = make(map[string]models.DailyRecord)
		s.records[rec.FarmerID] = byDate
	}
	stored := *rec
	stored.UpdatedAt = time.Now()
	byDate[rec.RecordDate] = stored
	return nil
}

func (s *MemoryStore) GetDailyRecord(farmerID, date string) (*models.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[farmerID][date]
	if !ok {
		return nil, nil
	}
	out := rec
	return &out, nil
}

func (s *MemoryStore) AddEntry(e *models.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *e
	stored.CreatedAt = time.Now()
	s.ledger[e.FarmerID] = append(s.ledger[e.FarmerID], stored)
	return nil
}

func (s *MemoryStore) GetEntry(farmerID, entryID string) (*models.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.ledger[farmerID] {
		if e.EntryID == entryID {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) UpdateEntry(e *models.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.ledger[e.FarmerID]
	for i := range entries {
		if entries[i].EntryID == e.EntryID {
			entries[i].EntryDate = e.EntryDate
			entries[i].Kind = e.Kind
			entries[i].Amount = e.Amount
			entries[i].Description = e.Description
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) DeleteEntry(farmerID, entryID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.ledger[farmerID]
	for i := range entries {
		if entries[i].EntryID == entryID {
			s.ledger[farmerID] = append(entries[:i:i], entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) ListEntries(farmerID string) ([]models.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.LedgerEntry, len(s.ledger[farmerID]))
	copy(entries, s.ledger[farmerID])
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EntryDate > entries[j].EntryDate
	})
	return entries, nil
}

func (s *MemoryStore) GetBoard(farmerID, date string) ([]models.TaskItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	board := s.boards[farmerID][date]
	out := make([]models.TaskItem, len(board))
	copy(out, board)
	return out, nil
}

func (s *MemoryStore) PutBoard(farmerID, date string, items []models.TaskItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate, ok := s.boards[farmerID]
	if !ok {
		byDate = make(map[string][]models.TaskItem)
		s.boards[farmerID] = byDate
	}
	if len(byDate[date]) > 0 {
		return nil // already seeded
	}
	board := make([]models.TaskItem, len(items))
	copy(board, items)
	byDate[date] = board
	return nil
}

func (s *MemoryStore) CompletedTaskIDs(farmerID, date string) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]bool)
	for taskID := range s.completions[farmerID][date] {
		out[taskID] = true
	}
	return out, nil
}

func (s *MemoryStore) MarkCompleted(c *models.TaskCompletion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDate, ok := s.completions[c.FarmerID]
	if !ok {
		byDate = make(map[string]map[string]bool)
		s.completions[c.FarmerID] = byDate
	}
	set, ok := byDate[c.BoardDate]
	if !ok {
		set = make(map[string]bool)
		byDate[c.BoardDate] = set
	}
	set[c.TaskID] = true
	return nil
}

func (s *MemoryStore) GetProgress(farmerID string) (*models.FarmerProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.progress[farmerID]
	if !ok {
		return nil, nil
	}
	out := p
	out.Badges = append([]string(nil), p.Badges...)
	return &out, nil
}

func (s *MemoryStore) SaveProgress(p *models.FarmerProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *p
	stored.Badges = append([]string(nil), p.Badges...)
	s.progress[p.FarmerID] = stored
	return nil
}

func (s *MemoryStore) ListFarms() ([]models.Farm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Farm, len(s.farms))
	copy(out, s.farms)
	return out, nil
}

func (s *MemoryStore) GetFarmByOwner(ownerID string) (*models.Farm, error) {
	if ownerID == "" {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.farms {
		if f.OwnerID == ownerID {
			out := f
			return &out, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CountFarms() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.farms)), nil
}

func (s *MemoryStore) SeedFarms(farms []models.Farm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.farms) > 0 {
		return nil
	}
	s.farms = make([]models.Farm, len(farms))
	copy(s.farms, farms)
	for i := range s.farms {
		s.farms[i].Position = i
	}
	return nil
}

func (s *MemoryStore) ListDiseases() ([]models.Disease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Disease, len(s.diseases))
	copy(out, s.diseases)
	return out, nil
}

func (s *MemoryStore) ListSchemes() ([]models.Scheme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Scheme, len(s.schemes))
	copy(out, s.schemes)
	return out, nil
}

func (s *MemoryStore) ListStatistics() ([]models.FarmStatistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FarmStatistics, len(s.statistics))
	copy(out, s.statistics)
	return out, nil
}

func (s *MemoryStore) SeedReference(diseases []models.Disease, schemes []models.Scheme, stats []models.FarmStatistics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.diseases) == 0 {
		s.diseases = append(s.diseases, diseases...)
	}
	if len(s.schemes) == 0 {
		s.schemes = append(s.schemes, schemes...)
	}
	if len(s.statistics) == 0 {
		s.statistics = append(s.statistics, stats...)
	}
	return nil
}

func (s *MemoryStore) AppendMessage(m *models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *m
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.chat[m.FarmerID] = append(s.chat[m.FarmerID], stored)
	return nil
}

func (s *MemoryStore) ListMessages(farmerID string) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ChatMessage, len(s.chat[farmerID]))
	copy(out, s.chat[farmerID])
	return out, nil
}

func (s *MemoryStore) GetFarmerByUsername(username string) (*models.Farmer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.farmers[username]
	if !ok {
		return nil, nil
	}
	out := f
	return &out, nil
}

func (s *MemoryStore) SaveFarmer(f *models.Farmer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.farmers[f.Username] = *f
	return nil
}
