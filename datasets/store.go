// SPDX-License-Identifier: GPL-3.0-only

package datasets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"dialcodes-server/commons"
	"dialcodes-server/commons/dialcode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

var ErrDatasetNotFound = errors.New("dataset not found")

// Bundle is a loaded dataset with its index. Bundles are immutable and
// shared between requests.
type Bundle struct {
	Name     string
	Dataset  *dialcode.Dataset
	Index    *dialcode.Index
	LoadedAt time.Time
}

// Store loads "<dir>/<name>.json" datasets on first use and keeps the most
// recently used ones in a bounded cache. It does not notice file changes on
// its own; see Invalidate and Watch.
type Store struct {
	dir   string
	cache *lru.Cache[string, *Bundle]
	group singleflight.Group

	// generations count invalidations per name. A load only caches its
	// result if the generation it started under is still current.
	mu          sync.Mutex
	epoch       uint64
	generations map[string]uint64

	// afterRead runs between reading a file and caching it when set.
	afterRead func(name string)
}

func NewStore(dir string, size int) (*Store, error) {
	cache, err := lru.New[string, *Bundle](size)
	if err != nil {
		return nil, fmt.Errorf("dataset cache: %w", err)
	}
	return &Store{dir: dir, cache: cache, generations: make(map[string]uint64)}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Load returns the named dataset, reading and indexing it on a cache miss.
// Concurrent misses for the same name share one read.
func (s *Store) Load(name string) (*Bundle, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
	}
	if b, ok := s.cache.Get(name); ok {
		return b, nil
	}

	gen := s.generation(name)
	v, err, _ := s.group.Do(name+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		b, err := s.read(name)
		if err != nil {
			return nil, err
		}
		if s.afterRead != nil {
			s.afterRead(name)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.epoch+s.generations[name] == gen {
			s.cache.Add(name, b)
		} else {
			commons.Logger.Debugf("Dataset %s changed while loading, not caching", name)
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Bundle), nil
}

func (s *Store) read(name string) (*Bundle, error) {
	path := filepath.Join(s.dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
		}
		return nil, fmt.Errorf("read dataset %s: %w", name, err)
	}

	ds, err := dialcode.ParseDataset(name, data)
	if err != nil {
		return nil, err
	}
	if ds.Skipped > 0 {
		commons.Logger.Warnf("Dataset %s: skipped %d malformed records", name, ds.Skipped)
	}

	idx := dialcode.BuildIndex(ds)
	commons.Logger.Debugf("Loaded dataset %s: %d entries, %d lookup keys", name, len(ds.Entries), idx.Len())
	return &Bundle{
		Name:     name,
		Dataset:  ds,
		Index:    idx,
		LoadedAt: time.Now(),
	}, nil
}

func (s *Store) generation(name string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch + s.generations[name]
}

// Invalidate drops a cached dataset so the next Load re-reads the file.
// A load of the same name that is still in flight will not cache its
// result.
func (s *Store) Invalidate(name string) {
	s.mu.Lock()
	s.generations[name]++
	removed := s.cache.Remove(name)
	s.mu.Unlock()
	if removed {
		commons.Logger.Infof("Dataset %s evicted from cache", name)
	}
}

func (s *Store) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.cache.Purge()
}

func (s *Store) Cached(name string) bool {
	return s.cache.Contains(name)
}

// validName accepts bare file stems only, so a request cannot reach files
// outside the data directory.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return filepath.Base(name) == name
}
