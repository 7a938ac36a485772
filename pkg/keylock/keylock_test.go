package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyLockSerializesSameKey(t *testing.T) {
	kl := New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kl.Lock("app_state_loja1")
			counter++
			kl.Unlock("app_state_loja1")
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyLockIndependentKeys(t *testing.T) {
	kl := New()

	// Mantém o lock de uma chave e verifica que outra chave continua livre
	kl.Lock("app_state_loja1")
	defer kl.Unlock("app_state_loja1")

	done := make(chan struct{})
	go func() {
		kl.Lock("app_state_loja2")
		kl.Unlock("app_state_loja2")
		close(done)
	}()

	<-done
}

func TestKeyLockReusesMutex(t *testing.T) {
	kl := New()
	first := kl.mutexFor("k")
	second := kl.mutexFor("k")
	assert.Same(t, first, second)
}
