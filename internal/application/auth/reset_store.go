package auth

import (
	"sync"
	"time"
)

// CodeStore almacén clave→código con expiración, para los códigos de
// recuperación de contraseña. La implementación en memoria sirve para un
// solo proceso; un despliegue multi-instancia necesita una implementación
// respaldada por un store compartido.
type CodeStore interface {
	Put(key, code string, ttl time.Duration)
	Get(key string) (string, bool)
	Delete(key string)
}

type codeEntry struct {
	code      string
	expiresAt time.Time
}

// MemoryCodeStore implementación en memoria protegida por mutex.
// La expiración se comprueba en la lectura; no hay goroutine de limpieza.
type MemoryCodeStore struct {
	mu    sync.Mutex
	items map[string]codeEntry
	now   func() time.Time // inyectable en tests
}

// NewMemoryCodeStore construye el store en memoria.
func NewMemoryCodeStore() *MemoryCodeStore {
	return &MemoryCodeStore{items: make(map[string]codeEntry), now: time.Now}
}

// Put guarda el código con su TTL, reemplazando cualquier código anterior.
func (s *MemoryCodeStore) Put(key, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = codeEntry{code: code, expiresAt: s.now().Add(ttl)}
}

// Get devuelve el código vigente para la clave; los expirados se eliminan.
func (s *MemoryCodeStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[key]
	if !ok {
		return "", false
	}
	if s.now().After(e.expiresAt) {
		delete(s.items, key)
		return "", false
	}
	return e.code, true
}

// Delete elimina el código de la clave.
func (s *MemoryCodeStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}
