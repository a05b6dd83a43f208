package cache

import (
	"sync"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lettersinarow/config"
)

// The cache holds large objects that are expensive to build and that many
// solves share, such as dictionary indices. It is bounded by a fraction of
// system memory; the oldest entries are dropped first.

// Sizer is implemented by objects that can estimate their memory use.
// Objects that do not implement it count as zero bytes.
type Sizer interface {
	SizeEstimate() int64
}

type cache struct {
	sync.Mutex
	objects map[string]any
	sizes   map[string]int64
	order   []string
	total   int64
}

type loadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is our global object cache, of course.
var (
	GlobalObjectCache *cache
	createOnce        sync.Once
)

func budget(cfg *config.Config) int64 {
	frac := cfg.GetFloat64(config.ConfigCacheMemoryFraction)
	total := memory.TotalMemory()
	if frac <= 0 || total == 0 {
		return 0
	}
	return int64(frac * float64(total))
}

func (c *cache) load(cfg *config.Config, key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	var size int64
	if s, ok := obj.(Sizer); ok {
		size = s.SizeEstimate()
	}
	c.objects[key] = obj
	c.sizes[key] = size
	c.order = append(c.order, key)
	c.total += size
	c.evict(budget(cfg))
	return nil
}

// evict drops the oldest objects until the cache fits in max bytes. The
// newest object always stays. A max of zero means no limit.
func (c *cache) evict(max int64) {
	if max <= 0 {
		return
	}
	for c.total > max && len(c.order) > 1 {
		oldest := c.order[0]
		c.order = c.order[1:]
		c.total -= c.sizes[oldest]
		delete(c.objects, oldest)
		delete(c.sizes, oldest)
		log.Debug().Str("key", oldest).Int64("budget", max).Msg("evicted from cache")
	}
}

func (c *cache) get(cfg *config.Config, key string, loadFunc loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	if err := c.load(cfg, key, loadFunc); err != nil {
		return nil, err
	}
	return c.objects[key], nil
}

func (c *cache) len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.objects)
}

func newCache() *cache {
	return &cache{objects: make(map[string]any), sizes: make(map[string]int64)}
}

// CreateGlobalObjectCache creates the global cache. Only the first call
// does anything, so it is safe to call from several goroutines.
func CreateGlobalObjectCache() {
	createOnce.Do(func() {
		GlobalObjectCache = newCache()
	})
}

func Load(cfg *config.Config, name string, loadFunc loadFunc) (any, error) {
	CreateGlobalObjectCache()
	return GlobalObjectCache.get(cfg, name, loadFunc)
}
