package mimekit

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Entry pairs a registry key with its descriptor
type Entry struct {
	Key        string
	Descriptor Descriptor
}

// sigKey identifies a signature by its length and xxhash digest
type sigKey struct {
	n   int
	sum uint64
}

// Registry is an ordered, read-only collection of descriptors.
// It always contains the Binary and Unknown sentinels. Registration order is
// significant: when several descriptors match, the earliest one wins.
// A Registry is safe for concurrent use.
type Registry struct {
	entries []Entry
	byKey   map[string]int
	byExt   map[string][]int
	bySig   map[sigKey][]int
	sigLens []int // distinct signature lengths, ascending
}

// NewRegistry builds a registry from entries in the given order.
// Keys are compared case-insensitively and must be unique. The sentinels are
// added under KeyBinary (first) and KeyUnknown (last) when not supplied.
// Stored extensions missing their leading dot are normalized.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)+2),
		byKey:   make(map[string]int, len(entries)+2),
		byExt:   make(map[string][]int),
		bySig:   make(map[sigKey][]int),
	}

	var hasBinary, hasUnknown bool
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		switch registryKey(e.Key) {
		case KeyBinary:
			hasBinary = true
		case KeyUnknown:
			hasUnknown = true
		}
	}

	if !hasBinary {
		r.add(Entry{Key: KeyBinary, Descriptor: Binary})
	}
	for _, e := range entries {
		key := strings.TrimSpace(e.Key)
		if _, exists := r.byKey[registryKey(key)]; exists {
			return nil, &EntryError{Key: key, Err: ErrDuplicateKey}
		}
		r.add(Entry{Key: key, Descriptor: normalizeExtensions(e.Descriptor)})
	}
	if !hasUnknown {
		r.add(Entry{Key: KeyUnknown, Descriptor: Unknown})
	}

	return r, nil
}

func validateEntry(e Entry) error {
	key := registryKey(e.Key)
	if key == "" {
		return &EntryError{Key: e.Key, Err: fmt.Errorf("%w: empty key", ErrInvalidEntry)}
	}
	if e.Descriptor.Name() == "" {
		return &EntryError{Key: e.Key, Err: fmt.Errorf("%w: empty name", ErrInvalidEntry)}
	}
	switch key {
	case KeyBinary:
		if !e.Descriptor.IsBinary() {
			return &EntryError{Key: e.Key, Err: fmt.Errorf("%w: reserved key", ErrInvalidEntry)}
		}
	case KeyUnknown:
		if !e.Descriptor.IsUnknown() {
			return &EntryError{Key: e.Key, Err: fmt.Errorf("%w: reserved key", ErrInvalidEntry)}
		}
	}
	return nil
}

// registryKey is the form keys are compared in: trimmed and lowercased
func registryKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// normalizeExtensions prefixes a dot onto extensions stored without one
func normalizeExtensions(d Descriptor) Descriptor {
	var exts []string
	for i, ext := range d.extensions {
		if strings.HasPrefix(ext, ".") {
			continue
		}
		if exts == nil {
			exts = slices.Clone(d.extensions)
		}
		exts[i] = "." + ext
	}
	if exts != nil {
		d.extensions = exts
	}
	return d
}

func (r *Registry) add(e Entry) {
	idx := len(r.entries)
	r.entries = append(r.entries, e)
	r.byKey[registryKey(e.Key)] = idx

	d := e.Descriptor
	for _, ext := range d.extensions {
		lower := strings.ToLower(ext)
		if !slices.Contains(r.byExt[lower], idx) {
			r.byExt[lower] = append(r.byExt[lower], idx)
		}
	}

	if n := len(d.signature); n > 0 {
		k := sigKey{n: n, sum: xxhash.Sum64(d.signature)}
		r.bySig[k] = append(r.bySig[k], idx)
		if !slices.Contains(r.sigLens, n) {
			r.sigLens = append(r.sigLens, n)
			slices.Sort(r.sigLens)
		}
	}
}

// matchSignature returns the indexes of all entries whose signature prefixes
// data, in registry order
func (r *Registry) matchSignature(data []byte) []int {
	var matches []int
	for _, n := range r.sigLens {
		if n > len(data) {
			break
		}
		for _, idx := range r.bySig[sigKey{n: n, sum: xxhash.Sum64(data[:n])}] {
			// digest collisions are possible, confirm byte for byte
			if r.entries[idx].Descriptor.MatchesSignature(data) {
				matches = append(matches, idx)
			}
		}
	}
	slices.Sort(matches)
	return matches
}

// matchExtension returns the indexes of all entries owning ext, in registry order
func (r *Registry) matchExtension(ext string) []int {
	return r.byExt[strings.ToLower(ext)]
}

func (r *Registry) at(idx int) Descriptor {
	return r.entries[idx].Descriptor
}

// Descriptors returns all descriptors in registry order
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Descriptor
	}
	return out
}

// Entries returns all entries in registry order
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Keys returns all registry keys in registry order
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key
	}
	return keys
}

// Lookup returns the descriptor registered under key, ignoring case and
// surrounding whitespace
func (r *Registry) Lookup(key string) (Descriptor, bool) {
	idx, ok := r.byKey[registryKey(key)]
	if !ok {
		return Descriptor{}, false
	}
	return r.entries[idx].Descriptor, true
}

// Len returns the number of registered descriptors, sentinels included
func (r *Registry) Len() int {
	return len(r.entries)
}

// Unknown returns the sentinel used when no information is available
func (r *Registry) Unknown() Descriptor {
	return Unknown
}

// Binary returns the sentinel used for unrecognized content
func (r *Registry) Binary() Descriptor {
	return Binary
}

// MaxSignatureLen returns the length of the longest registered signature.
// Reading this many leading bytes is enough for signature resolution.
func (r *Registry) MaxSignatureLen() int {
	if len(r.sigLens) == 0 {
		return 0
	}
	return r.sigLens[len(r.sigLens)-1]
}

// Extend returns a new registry holding the receiver's entries followed by
// entries. The receiver is not modified.
func (r *Registry) Extend(entries ...Entry) (*Registry, error) {
	combined := make([]Entry, 0, len(r.entries)+len(entries))
	for _, e := range r.entries {
		if registryKey(e.Key) == KeyUnknown {
			continue
		}
		combined = append(combined, e)
	}
	combined = append(combined, entries...)
	return NewRegistry(combined...)
}

// Without returns a new registry with the given keys removed.
// Sentinels cannot be removed; unknown keys are ignored.
func (r *Registry) Without(keys ...string) *Registry {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		k = registryKey(k)
		if k == KeyBinary || k == KeyUnknown {
			continue
		}
		drop[k] = true
	}

	kept := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if !drop[registryKey(e.Key)] {
			kept = append(kept, e)
		}
	}
	return mustRegistry(kept...)
}

func mustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic("mimekit: " + err.Error())
	}
	return r
}

// DefaultRegistry returns a new registry holding the built-in type table
func DefaultRegistry() *Registry {
	return mustRegistry(builtinEntries()...)
}

// Global default registry (lazy initialized)
var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// GetDefaultRegistry returns the global default registry
// Thread-safe, lazy initialization
func GetDefaultRegistry() *Registry {
	globalRegistryOnce.Do(func() {
		globalRegistry = DefaultRegistry()
	})
	return globalRegistry
}
