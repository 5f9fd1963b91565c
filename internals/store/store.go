// file: internals/store/store.go
package store

import "sync"

// Record adalah kontrak minimum untuk entity yang disimpan di Store.
type Record interface {
	RecordID() string
}

// Store menyimpan sequence record in-memory, newest first untuk create.
// Semua mutasi bersifat total-replace: hitung sequence berikutnya, lalu
// ganti seluruhnya. Listener dipanggil sinkron setelah setiap mutasi.
type Store[T Record] struct {
	mu        sync.RWMutex
	records   []T
	listeners map[int]func([]T)
	nextID    int
}

// New membuat store baru dengan seed awal (boleh nil).
func New[T Record](seed []T) *Store[T] {
	s := &Store[T]{
		records:   make([]T, len(seed)),
		listeners: make(map[int]func([]T)),
	}
	copy(s.records, seed)
	return s
}

// Snapshot mengembalikan salinan sequence saat ini. Pembaca tidak pernah
// memegang slice internal, jadi derived view tetap pure.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Replace mengganti seluruh sequence lalu memanggil listener.
func (s *Store[T]) Replace(next []T) {
	s.mu.Lock()
	s.records = make([]T, len(next))
	copy(s.records, next)
	snapshot := make([]T, len(s.records))
	copy(snapshot, s.records)
	s.mu.Unlock()

	s.notify(snapshot)
}

// Dispatch menghitung sequence berikutnya dari yang sekarang, lalu Replace.
// fn menerima salinan, tidak boleh (dan tidak bisa) mengubah store langsung.
func (s *Store[T]) Dispatch(fn func(current []T) []T) {
	s.mu.Lock()
	current := make([]T, len(s.records))
	copy(current, s.records)
	next := fn(current)
	s.records = make([]T, len(next))
	copy(s.records, next)
	snapshot := make([]T, len(s.records))
	copy(snapshot, s.records)
	s.mu.Unlock()

	s.notify(snapshot)
}

// Subscribe mendaftarkan listener; return fungsi unsubscribe.
func (s *Store[T]) Subscribe(fn func([]T)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store[T]) notify(snapshot []T) {
	s.mu.RLock()
	fns := make([]func([]T), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// Get mencari record berdasarkan id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Find mencari record pertama yang lolos predicate.
func (s *Store[T]) Find(pred func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if pred(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Prepend menambahkan record baru di depan (newest first).
func (s *Store[T]) Prepend(rec T) {
	s.Dispatch(func(current []T) []T {
		next := make([]T, 0, len(current)+1)
		next = append(next, rec)
		next = append(next, current...)
		return next
	})
}

// Update mengganti record dengan id yang sama (full replace-by-id).
// Urutan dan jumlah record tidak berubah. Return false jika id tidak ada.
func (s *Store[T]) Update(id string, fn func(T) T) bool {
	found := false
	s.Dispatch(func(current []T) []T {
		for i, rec := range current {
			if rec.RecordID() == id {
				current[i] = fn(rec)
				found = true
				break
			}
		}
		return current
	})
	return found
}

// Delete menghapus record berdasarkan id. No-op kalau id tidak ada.
func (s *Store[T]) Delete(id string) bool {
	found := false
	s.Dispatch(func(current []T) []T {
		next := current[:0]
		for _, rec := range current {
			if rec.RecordID() == id {
				found = true
				continue
			}
			next = append(next, rec)
		}
		return next
	})
	return found
}
