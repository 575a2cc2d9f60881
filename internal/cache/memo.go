package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/paymig/paymig/internal/types"
)

// DefaultMemoSize bounds the in-memory findings memo.
const DefaultMemoSize = 2048

// Memo caches per-file findings keyed by content hash + language + scan mode,
// so files with identical content (or unchanged files re-scanned in one
// process) skip pattern execution. The language is part of the key because
// identical bytes produce different findings under different pattern sets.
// Safe for concurrent use.
type Memo struct {
	c *lru.Cache[string, []types.Finding]
}

func NewMemo(size int) *Memo {
	if size <= 0 {
		size = DefaultMemoSize
	}
	c, _ := lru.New[string, []types.Finding](size)
	return &Memo{c: c}
}

func memoKey(hash string, lang types.Language, mode types.ScanMode) string {
	return hash + ":" + string(lang) + ":" + string(mode)
}

// Get returns the cached findings for a content hash scanned as the given
// language and mode. The second return distinguishes "no findings" from
// "not cached".
func (m *Memo) Get(hash string, lang types.Language, mode types.ScanMode) ([]types.Finding, bool) {
	return m.c.Get(memoKey(hash, lang, mode))
}

func (m *Memo) Add(hash string, lang types.Language, mode types.ScanMode, findings []types.Finding) {
	m.c.Add(memoKey(hash, lang, mode), findings)
}
