package engine

import (
	"encoding/json"
	"fmt"
	"time"
)

// StorageKey is the key under which the whole state is persisted.
const StorageKey = "focusPlannerData.v1"

// DefaultTimezone is the fixed reference zone for day keys.
const DefaultTimezone = "Asia/Kolkata"

// DefaultState builds a fresh state with the roadmap anchored at now.
func DefaultState(now time.Time, loc *time.Location) *State {
	return &State{
		Profile:     Profile{Timezone: loc.String()},
		Preferences: DefaultPreferences(),
		Roadmap:     GenerateRoadmap(now, loc),
		Daily:       map[string]*DayRecord{},
		Stats:       GlobalStats{},
	}
}

// decodeState parses a stored or imported document without validating its shape.
func decodeState(data []byte) (*State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &st, nil
}

func (s *State) encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// clone returns a deep copy so a failed operation can be discarded.
func (s *State) clone() (*State, error) {
	data, err := s.encode()
	if err != nil {
		return nil, err
	}
	return decodeState(data)
}

// repairRoadmap regenerates a missing roadmap anchored at now and keeps
// everything else. It reports whether a repair happened.
func (s *State) repairRoadmap(now time.Time, loc *time.Location) bool {
	if s.Roadmap != nil && len(s.Roadmap.Weeks) > 0 {
		return false
	}
	s.Roadmap = GenerateRoadmap(now, loc)
	return true
}

// Day looks up a day record without creating it.
func (s *State) Day(dateKey string) (*DayRecord, bool) {
	d, ok := s.Daily[dateKey]
	return d, ok && d != nil
}

// EnsureDay returns the record for dateKey, creating an empty one on first
// access. It is the only way new keys enter Daily.
func (s *State) EnsureDay(dateKey string) *DayRecord {
	if s.Daily == nil {
		s.Daily = map[string]*DayRecord{}
	}
	d, ok := s.Daily[dateKey]
	if !ok || d == nil {
		d = &DayRecord{Tasks: []Task{}}
		s.Daily[dateKey] = d
	}
	return d
}

// DayPoints returns the points scored on dateKey, zero when the day is unknown.
func (s *State) DayPoints(dateKey string) int {
	if d, ok := s.Day(dateKey); ok {
		return d.Score.Points
	}
	return 0
}
