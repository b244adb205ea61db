package text

import "sync"

// classifyMemo caches script lookups for non-ASCII code points. Entries are
// grouped into 256-rune blocks so a document drawing from a handful of
// Unicode blocks stays in a handful of small arrays instead of one large
// rune-keyed map.
var classifyMemo = newScriptMemo()

// scriptBlock stores script+1 per code point within one 256-rune block.
// Zero means not yet classified, which lets a fresh block be used directly.
type scriptBlock [256]uint8

type scriptMemo struct {
	mu     sync.RWMutex
	blocks map[rune]*scriptBlock
}

func newScriptMemo() *scriptMemo {
	return &scriptMemo{blocks: make(map[rune]*scriptBlock)}
}

func (m *scriptMemo) get(r rune) (Script, bool) {
	m.mu.RLock()
	var v uint8
	if b := m.blocks[r>>8]; b != nil {
		v = b[r&0xFF]
	}
	m.mu.RUnlock()
	if v == 0 {
		return ScriptUnknown, false
	}
	return Script(v - 1), true
}

func (m *scriptMemo) set(r rune, s Script) {
	m.mu.Lock()
	b := m.blocks[r>>8]
	if b == nil {
		b = new(scriptBlock)
		m.blocks[r>>8] = b
	}
	b[r&0xFF] = uint8(s) + 1
	m.mu.Unlock()
}
