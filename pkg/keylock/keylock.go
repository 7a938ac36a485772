package keylock

import "sync"

// KeyLock fornece exclusão mútua por chave. Escritas no documento de uma
// mesma loja são serializadas; documentos de lojas diferentes não se
// bloqueiam entre si.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New cria uma nova instância de KeyLock
func New() *KeyLock {
	return &KeyLock{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock adquire o lock da chave informada
func (k *KeyLock) Lock(key string) {
	k.mutexFor(key).Lock()
}

// Unlock libera o lock da chave informada
func (k *KeyLock) Unlock(key string) {
	k.mutexFor(key).Unlock()
}

// mutexFor retorna o mutex da chave, criando-o na primeira utilização.
// Os mutexes nunca são removidos; o número de chaves é limitado pelo
// número de lojas e coleções do sistema.
func (k *KeyLock) mutexFor(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
