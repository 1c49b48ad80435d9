// Package wmstest provee un WMSRepository en memoria con fixtures por entidad.
package wmstest

import (
	"context"
	"sync"

	"github.com/jhoicas/wms-gateway/internal/domain/entity"
	"github.com/jhoicas/wms-gateway/internal/domain/query"
	"github.com/jhoicas/wms-gateway/internal/domain/repository"
)

var _ repository.WMSRepository = (*Repo)(nil)

// Repo devuelve filas fijas por entidad y registra cada consulta recibida.
// Seguro para uso concurrente.
type Repo struct {
	mu      sync.Mutex
	rows    map[string][]entity.Row
	errs    map[string]error
	handler func(q query.Query) ([]entity.Row, error)
	calls   []query.Query
}

// New crea un repo sin fixtures: toda consulta devuelve vacío.
func New() *Repo {
	return &Repo{
		rows: make(map[string][]entity.Row),
		errs: make(map[string]error),
	}
}

// On fija las filas que devuelve la entidad.
func (r *Repo) On(entityName string, rows ...entity.Row) *Repo {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[entityName] = rows
	return r
}

// Fail hace que la entidad devuelva err.
func (r *Repo) Fail(entityName string, err error) *Repo {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs[entityName] = err
	return r
}

// Handle reemplaza los fixtures por una función; útil cuando la respuesta
// depende de los filtros.
func (r *Repo) Handle(fn func(q query.Query) ([]entity.Row, error)) *Repo {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handler = fn
	return r
}

// Fetch implementa repository.WMSRepository.
func (r *Repo) Fetch(_ context.Context, q query.Query) ([]entity.Row, error) {
	r.mu.Lock()
	r.calls = append(r.calls, q)
	handler := r.handler
	rows, err := r.rows[q.Entity], r.errs[q.Entity]
	r.mu.Unlock()

	if handler != nil {
		return handler(q)
	}
	if err != nil {
		return nil, err
	}
	out := make([]entity.Row, len(rows))
	copy(out, rows)
	return out, nil
}

// Calls consultas recibidas, en orden de llegada.
func (r *Repo) Calls() []query.Query {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]query.Query, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallsFor consultas recibidas para una entidad.
func (r *Repo) CallsFor(entityName string) []query.Query {
	var out []query.Query
	for _, q := range r.Calls() {
		if q.Entity == entityName {
			out = append(out, q)
		}
	}
	return out
}
