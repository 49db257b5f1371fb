package dtype

import "sync"

// Process-wide field-name and method-UID registries (spec §3.1, §5).
// Both are write-once-per-name, monotonically growing maps; a
// thread-safe implementation serializes inserts behind a single
// mutex, grounded on the teacher's content-addressed registry in
// internal/iface/builtin_freeze.go (a single frozen snapshot there;
// an append-only live registry here).

var fieldRegistryMu sync.Mutex
var fieldRegistryIDs = map[string]uint32{"$tag": 0}
var fieldRegistryNext uint32 = 1

// fieldID returns the process-wide id for a field name, assigning a
// fresh one on first use. "$tag" is reserved as id 0 for the
// synthetic variant-tag field (spec §3.1).
func fieldID(name string) uint32 {
	fieldRegistryMu.Lock()
	defer fieldRegistryMu.Unlock()
	if id, ok := fieldRegistryIDs[name]; ok {
		return id
	}
	id := fieldRegistryNext
	fieldRegistryNext++
	fieldRegistryIDs[name] = id
	return id
}

var methodRegistryMu sync.Mutex
var methodRegistryIDs = map[string]uint32{}
var methodRegistryNext uint32 = 1

// methodUID returns the process-wide id for a method's canonical
// serialized signature, assigning a fresh one on first use.
func methodUID(signature string) uint32 {
	methodRegistryMu.Lock()
	defer methodRegistryMu.Unlock()
	if id, ok := methodRegistryIDs[signature]; ok {
		return id
	}
	id := methodRegistryNext
	methodRegistryNext++
	methodRegistryIDs[signature] = id
	return id
}

// FieldRegistrySize reports how many distinct field names have been
// registered so far (test/debug helper).
func FieldRegistrySize() int {
	fieldRegistryMu.Lock()
	defer fieldRegistryMu.Unlock()
	return len(fieldRegistryIDs)
}

// MethodRegistrySize reports how many distinct method signatures have
// been registered so far (test/debug helper).
func MethodRegistrySize() int {
	methodRegistryMu.Lock()
	defer methodRegistryMu.Unlock()
	return len(methodRegistryIDs)
}
