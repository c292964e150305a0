package memory

import (
	"context"
	"strings"
	"sync"
)

// GrantTable is the in-memory edit-capability side table: a set of
// (itemID, userID) pairs, each usable once. It implements both the issuer
// port of the suggestion engine and the consumer port of the workflow
// engine.
type GrantTable struct {
	mu     sync.Mutex
	grants map[string]struct{}
}

func NewGrantTable() *GrantTable {
	return &GrantTable{grants: make(map[string]struct{})}
}

func (g *GrantTable) IssueGrant(_ context.Context, itemID string, userID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.grants[grantKey(itemID, userID)] = struct{}{}
	return nil
}

// ConsumeGrant removes the grant when present; a grant admits exactly one
// edit.
func (g *GrantTable) ConsumeGrant(_ context.Context, itemID string, userID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := grantKey(itemID, userID)
	if _, exists := g.grants[key]; !exists {
		return false, nil
	}
	delete(g.grants, key)
	return true, nil
}

func grantKey(itemID, userID string) string {
	return strings.TrimSpace(itemID) + "/" + strings.TrimSpace(userID)
}
