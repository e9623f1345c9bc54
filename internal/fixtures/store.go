// Package fixtures holds the widget inputs served by the preview server and
// the CLI: entity counts, permissions, a table schema and a list of test
// cases. Data comes from a JSON file or from the built-in sample.
package fixtures

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/matthewbaird/catalogview/internal/types"
)

//go:embed sample.json
var sample []byte

// Data is the on-disk fixture format.
type Data struct {
	EntityCounts types.EntitiesCount `json:"entityCounts"`
	Permissions  types.Permissions   `json:"permissions"`
	Table        *types.Table        `json:"table,omitempty"`
	TestCases    []types.TestCase    `json:"testCases"`
	PendingNode  *types.Node         `json:"pendingNode,omitempty"`
}

// Store serves fixture data. It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data Data
}

// NewStore returns a store holding data.
func NewStore(data Data) *Store {
	return &Store{data: data}
}

// Sample returns a store with the built-in sample data.
func Sample() *Store {
	var d Data
	if err := json.Unmarshal(sample, &d); err != nil {
		panic(fmt.Sprintf("fixtures: decoding sample.json: %v", err))
	}
	return NewStore(d)
}

// Load reads a fixture file. An empty path returns the sample.
func Load(path string) (*Store, error) {
	if path == "" {
		return Sample(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decoding fixtures %s: %w", path, err)
	}
	return NewStore(d), nil
}

func (s *Store) Counts() types.EntitiesCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.EntityCounts
}

func (s *Store) Permissions() types.Permissions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Permissions
}

// Table is the table shown by the schema widget, or nil.
func (s *Store) Table() *types.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Table
}

// PendingNode is the lineage node awaiting placement, if any.
func (s *Store) PendingNode() *types.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.PendingNode
}

// SetPendingNode records or clears (nil) the pending lineage node.
func (s *Store) SetPendingNode(n *types.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.PendingNode = n
}

// Page is a window over the test case list.
type Page struct {
	Limit  int
	Offset int
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

// normalize clamps the limit to (0, maxLimit] and the offset to >= 0.
func (p Page) normalize() Page {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// TestCases returns one page of test cases in stored order, with a paging
// block whose cursors are offsets.
func (s *Store) TestCases(p Page) ([]types.TestCase, types.Paging) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p = p.normalize()
	all := s.data.TestCases
	total := len(all)

	start := min(p.Offset, total)
	end := min(start+p.Limit, total)
	out := append([]types.TestCase(nil), all[start:end]...)

	paging := types.Paging{Total: total}
	if start > 0 {
		paging.Before = strconv.Itoa(max(start-p.Limit, 0))
	}
	if end < total {
		paging.After = strconv.Itoa(end)
	}
	return out, paging
}
