package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	cache "github.com/keymatch/matcher-cache"
	"github.com/keymatch/matcher-cache/janitor"
	"github.com/keymatch/matcher-cache/loader"
	"github.com/keymatch/matcher-cache/matcher"
)

// ================= BACKING STORE =================

type UserStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewUserStore() *UserStore {
	return &UserStore{data: map[string]string{
		"user:123": "Alice Johnson",
		"user:456": "Bob Smith",
	}}
}

func (s *UserStore) Load(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fmt.Println("STORE  → load:", key)
	return s.data[key], nil
}

// ================= METRICS =================

type Metrics struct {
	mu      sync.Mutex
	hits    int
	misses  int
	expired int
	loads   int
}

func (m *Metrics) Hit()    { m.mu.Lock(); m.hits++; m.mu.Unlock() }
func (m *Metrics) Miss()   { m.mu.Lock(); m.misses++; m.mu.Unlock() }
func (m *Metrics) Expire() { m.mu.Lock(); m.expired++; m.mu.Unlock() }
func (m *Metrics) Load()   { m.mu.Lock(); m.loads++; m.mu.Unlock() }

func (m *Metrics) Print() {
	fmt.Println("\n==================== METRICS ====================")
	fmt.Printf("HITS    : %d\n", m.hits)
	fmt.Printf("MISSES  : %d\n", m.misses)
	fmt.Printf("EXPIRED : %d\n", m.expired)
	fmt.Printf("LOADS   : %d\n", m.loads)
}

// ================= MAIN =================

func main() {
	ctx := context.Background()

	fmt.Println("\n==================== SYSTEM BOOT ====================")
	fmt.Println("DEFAULT TTL : 300s")
	fmt.Println("CAPACITY    : 3 keys (FIFO)")

	// ====================================================
	fmt.Println("\n==================== 1) INSERT + GET ====================")

	c := cache.WithMaxSize[string, string](300*time.Second, 3)
	c.Insert("user:alice", "Alice Johnson")
	c.Insert("user:bob", "Bob Smith")
	c.Insert("admin:charlie", "Charlie Admin")

	if ent, err := c.Get("user:alice"); err == nil {
		fmt.Printf("CACHE  → GET user:alice = %s (age %v)\n", ent.Value(), ent.Age().Round(time.Millisecond))
	}

	// ====================================================
	fmt.Println("\n==================== 2) MATCHERS ====================")

	for _, m := range c.GetAllByMatcher(matcher.NewPrefix("user:")) {
		fmt.Printf("CACHE  → prefix user: matched %s = %s\n", m.Key, m.Entry.Value())
	}

	if ent, err := c.GetByMatcher(matcher.MustRegex(`^admin:`)); err == nil {
		fmt.Println("CACHE  → regex ^admin: matched =", ent.Value())
	}

	// ====================================================
	fmt.Println("\n==================== 3) FIFO EVICTION ====================")

	c.Insert("user:dave", "Dave Jones") // capacity 3: evicts user:alice
	if _, err := c.Get("user:alice"); err != nil {
		fmt.Println("CACHE  → GET user:alice after eviction =", err)
	}

	// ====================================================
	fmt.Println("\n==================== 4) TTL EXPIRATION ====================")

	c.InsertWithTTL("session:42", "token", 500*time.Millisecond)
	time.Sleep(600 * time.Millisecond)

	if _, err := c.Get("session:42"); err != nil {
		fmt.Println("CACHE  → GET session:42 after TTL =", err)
	}
	if _, err := c.Get("session:42"); err != nil {
		fmt.Println("CACHE  → GET session:42 again     =", err)
	}

	// ====================================================
	fmt.Println("\n==================== 5) READ-THROUGH + SINGLEFLIGHT ====================")

	metrics := &Metrics{}
	rt := loader.NewReadThrough(
		cache.New[string, string](300*time.Second),
		NewUserStore(),
		metrics,
	)

	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			v, _ := rt.Get(ctx, "user:123")
			fmt.Printf("GOROUTINE-%d → GET user:123 = %v\n", id, v)
		}(i)
	}
	wg.Wait()

	v, _ := rt.Get(ctx, "user:123") // now a pure hit
	fmt.Println("CACHE  → GET user:123 =", v)

	// ====================================================
	fmt.Println("\n==================== 6) JANITOR ====================")

	rt.InsertWithTTL("temp:1", "a", 200*time.Millisecond)
	rt.InsertWithTTL("temp:2", "b", 200*time.Millisecond)

	j := janitor.New(rt, 100*time.Millisecond, nil)
	j.Run()
	time.Sleep(400 * time.Millisecond)
	j.Stop()

	fmt.Printf("CACHE  → stats after sweep = %+v\n", rt.Stats())

	// ====================================================
	metrics.Print()

	fmt.Println("\n==================== SHUTDOWN ====================")
	fmt.Println("SYSTEM → done")
}
