package notifications

import (
	"sort"
	"sync"
	"time"
)

// DefaultFeedCapacity acota el feed en memoria; se descartan las más viejas.
const DefaultFeedCapacity = 100

// IDSource genera ids efímeros: milisegundos del reloj inyectado, estrictamente crecientes.
type IDSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

type feedKey struct {
	src Source
	id  int64
}

// Feed es la lista local ordenada (más nueva primero) que mezcla recordatorios del
// scheduler con notificaciones persistidas. Nunca tiene dos entradas con el mismo (Source, ID).
type Feed struct {
	mu       sync.Mutex
	ids      *IDSource
	capacity int
	items    []Notification
	index    map[feedKey]struct{}
}

func NewFeed(ids *IDSource, capacity int) *Feed {
	if ids == nil {
		ids = NewIDSource(nil)
	}
	if capacity <= 0 {
		capacity = DefaultFeedCapacity
	}
	return &Feed{
		ids:      ids,
		capacity: capacity,
		index:    map[feedKey]struct{}{},
	}
}

// Push agrega una notificación efímera del scheduler con id nuevo. No se persiste.
func (f *Feed) Push(n Notification) Notification {
	n.ID = f.ids.Next()
	n.Source = SourceScheduler
	if n.Timestamp.IsZero() {
		n.Timestamp = time.UnixMilli(n.ID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.insert(n)
	f.sortAndTrim()
	return n
}

// Merge incorpora un lote persistido. Los ids ya presentes se actualizan (ej. read), no se duplican.
func (f *Feed) Merge(batch []Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, n := range batch {
		if n.Source == "" {
			n.Source = SourceAI
		}
		k := feedKey{src: n.Source, id: n.ID}
		if _, ok := f.index[k]; ok {
			f.replace(k, n)
			continue
		}
		f.insert(n)
	}
	f.sortAndTrim()
}

// Ack marca como leída la entrada (src, id). false si no está en el feed.
func (f *Feed) Ack(src Source, id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].Source == src && f.items[i].ID == id {
			f.items[i].Read = true
			return true
		}
	}
	return false
}

// Snapshot devuelve una copia, más nuevas primero.
func (f *Feed) Snapshot() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func (f *Feed) insert(n Notification) {
	f.items = append(f.items, n)
	f.index[feedKey{src: n.Source, id: n.ID}] = struct{}{}
}

func (f *Feed) replace(k feedKey, n Notification) {
	for i := range f.items {
		if f.items[i].Source == k.src && f.items[i].ID == k.id {
			// un ack local no se pierde si el lote todavía dice unread
			n.Read = n.Read || f.items[i].Read
			f.items[i] = n
			return
		}
	}
}

func (f *Feed) sortAndTrim() {
	sort.SliceStable(f.items, func(i, j int) bool {
		return f.items[i].Timestamp.After(f.items[j].Timestamp)
	})
	if len(f.items) <= f.capacity {
		return
	}
	for _, n := range f.items[f.capacity:] {
		delete(f.index, feedKey{src: n.Source, id: n.ID})
	}
	f.items = f.items[:f.capacity]
}
