package style

import (
	"encoding/hex"
	"strconv"

	"github.com/zeebo/blake3"
)

// Registry is the deduplicating style table. Registration order decides
// which preferred name wins a collision, so callers must register in a
// deterministic traversal order; the pipeline uses depth-first document
// order.
type Registry struct {
	styles map[string]Properties
	byHash map[string]string // content hash -> winning name
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		styles: map[string]Properties{},
		byHash: map[string]string{},
	}
}

// Register stores the property set under the preferred name and returns the
// name the caller must use as its style reference. Identical content
// already registered under any name reuses that name; a preferred name
// taken by different content gets the first free numeric suffix. Empty
// property sets all share one registration.
func (r *Registry) Register(preferred string, props Properties) string {
	if preferred == "" {
		preferred = "style"
	}

	hash := contentHash(props)
	if name, ok := r.byHash[hash]; ok {
		return name
	}

	name := preferred
	for suffix := 2; ; suffix++ {
		if _, taken := r.styles[name]; !taken {
			break
		}
		name = preferred + "-" + strconv.Itoa(suffix)
	}

	r.styles[name] = props.Clone()
	r.byHash[hash] = name
	r.order = append(r.order, name)
	return name
}

// Get returns the property set registered under name.
func (r *Registry) Get(name string) (Properties, bool) {
	props, ok := r.styles[name]
	return props, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of distinct styles.
func (r *Registry) Len() int {
	return len(r.order)
}

// contentHash computes a stable hash of the sorted key/value pairs.
func contentHash(props Properties) string {
	h := blake3.New()
	for _, k := range props.SortedKeys() {
		h.Write([]byte(k))
		h.Write([]byte{0})
		h.Write([]byte(props[k]))
		h.Write([]byte{0xff})
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16])
}
