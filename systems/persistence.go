package systems

import (
	"encoding/json"
	"fmt"
	"hash/crc32"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// itemStorage is the part of *gdata.Manager the high score store needs.
type itemStorage interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// highScoreRecord is what one slot holds. Sum covers Score and Seq.
type highScoreRecord struct {
	Score int    `json:"score"`
	Seq   uint64 `json:"seq"`
	Sum   uint32 `json:"sum"`
}

func (r highScoreRecord) checksum() uint32 {
	return crc32.ChecksumIEEE([]byte(fmt.Sprintf("%d:%d", r.Score, r.Seq)))
}

// HighScoreStore keeps the high score in two alternating gdata items. Each save writes
// the slot that does not hold the newest record, so an interrupted write can only damage
// that slot and the previous record still loads.
type HighScoreStore struct {
	items  itemStorage
	slots  [2]string
	legacy string

	seq  uint64 // sequence number of the newest valid record
	next int    // slot the next save writes
}

// OpenHighScoreStore opens the gdata storage for appName.
func OpenHighScoreStore(appName, key string) (*HighScoreStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data for %s: %w", appName, err)
	}
	return NewHighScoreStore(m, key), nil
}

// NewHighScoreStore creates a store over items. key names the pre-slot item holding a plain
// integer, which is still read; the slots are key_a and key_b.
func NewHighScoreStore(items itemStorage, key string) *HighScoreStore {
	return &HighScoreStore{
		items:  items,
		slots:  [2]string{key + "_a", key + "_b"},
		legacy: key,
	}
}

// Load returns the newest valid high score, or 0 when nothing valid is stored.
// Unreadable or corrupt slots are logged and skipped; Load never fails.
func (s *HighScoreStore) Load() int {
	best, bestSlot, found := highScoreRecord{}, -1, false

	for i, key := range s.slots {
		rec, ok := s.read(key)
		if !ok {
			continue
		}
		if !found || rec.Seq > best.Seq {
			best, bestSlot, found = rec, i, true
		}
	}

	if !found {
		if rec, ok := s.read(s.legacy); ok {
			best, found = rec, true
		}
	}
	if !found {
		return 0
	}

	s.seq = best.Seq
	s.next = 0
	if bestSlot == 0 {
		s.next = 1
	}
	return best.Score
}

// Save writes score as a new record. On failure the previous record is untouched and
// the next save retries the same slot.
func (s *HighScoreStore) Save(score int) error {
	rec := highScoreRecord{Score: score, Seq: s.seq + 1}
	rec.Sum = rec.checksum()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	if err := s.items.SaveItem(s.slots[s.next], data); err != nil {
		return fmt.Errorf("save high score to %s: %w", s.slots[s.next], err)
	}

	s.seq = rec.Seq
	s.next = 1 - s.next
	return nil
}

func (s *HighScoreStore) read(key string) (highScoreRecord, bool) {
	data, err := s.items.LoadItem(key)
	if err != nil {
		log.Warn("could not read high score", "item", key, "err", err)
		return highScoreRecord{}, false
	}
	if len(data) == 0 {
		return highScoreRecord{}, false
	}

	rec, ok := decodeHighScore(data)
	if !ok {
		log.Warn("ignoring corrupt high score", "item", key)
	}
	return rec, ok
}

// decodeHighScore accepts a checksummed JSON record or a bare non-negative integer.
func decodeHighScore(data []byte) (highScoreRecord, bool) {
	var rec highScoreRecord
	if err := json.Unmarshal(data, &rec); err == nil {
		if rec.Score < 0 || rec.Sum != rec.checksum() {
			return highScoreRecord{}, false
		}
		return rec, true
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return highScoreRecord{}, false
	}
	return highScoreRecord{Score: n}, true
}

// MemoryItems is an in-process itemStorage, used when the save directory is unavailable.
type MemoryItems map[string][]byte

func (m MemoryItems) LoadItem(itemKey string) ([]byte, error) {
	return m[itemKey], nil
}

func (m MemoryItems) SaveItem(itemKey string, data []byte) error {
	m[itemKey] = append([]byte(nil), data...)
	return nil
}
