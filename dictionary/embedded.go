package dictionary

import "sync"

// embeddedRegistry is the "immutable static map from identifier to a byte
// slice" spec.md §9 describes: global state limited to this one read-mostly
// table, populated once at program start (typically from an embed.FS in a
// consuming binary) and never mutated by the analyzer itself.
var (
	embeddedMu       sync.RWMutex
	embeddedDicts    = map[string]map[string][]byte{}
)

// RegisterEmbedded installs a dictionary bundle under identifier name,
// addressable afterwards as embedded://name. files maps artifact file name
// (e.g. "dict.da") to its raw (possibly compressed) bytes, matching the
// on-disk layout of spec.md §6.
func RegisterEmbedded(name string, files map[string][]byte) {
	embeddedMu.Lock()
	defer embeddedMu.Unlock()
	embeddedDicts[name] = files
}

func lookupEmbedded(name string) (map[string][]byte, bool) {
	embeddedMu.RLock()
	defer embeddedMu.RUnlock()
	files, ok := embeddedDicts[name]
	return files, ok
}
