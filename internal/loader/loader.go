// Package loader reads template and data documents from disk and
// keeps the last successfully loaded data around so previews survive
// a broken edit. The render engine never sees the cache; it receives
// plain immutable values per call.
package loader

import (
	"fmt"
	"sync"

	"github.com/billworks/receipt-render/pkg/data"
	"github.com/billworks/receipt-render/pkg/template"
)

// Loader loads templates and data contexts from files.
type Loader struct {
	mu       sync.RWMutex
	lastData data.Context
}

// New creates a loader with an empty cache.
func New() *Loader {
	return &Loader{}
}

// LoadTemplate loads and parses a template file (JSON or YAML).
func (l *Loader) LoadTemplate(path string) (*template.Template, error) {
	tpl, err := template.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return tpl, nil
}

// LoadData loads and parses a data file. On success the result
// replaces the cached context; on failure the cache is untouched and
// the previous data remains available through LastData.
func (l *Loader) LoadData(path string) (data.Context, error) {
	ctx, err := data.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	l.mu.Lock()
	l.lastData = ctx
	l.mu.Unlock()

	return ctx, nil
}

// LastData returns the most recently loaded data context, or an empty
// context when nothing has loaded yet.
func (l *Loader) LastData() data.Context {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.lastData == nil {
		return data.Context{}
	}
	return l.lastData
}
