package sat

// CRef is a stable, non-owning handle into a ClauseArena: the word offset of
// a clause's header. It remains valid for the lifetime of the arena that
// produced it, even across arena growth, because it is an index rather than
// a pointer.
type CRef uint32

// CRefNone is the sentinel CRef meaning "no clause" (e.g. no conflict).
const CRefNone CRef = 1<<32 - 1

// ClauseArena is a packed, append-only store of variable-length clause
// records. A clause occupies 1+size words: a header word holding the size,
// followed by size literal words. Clauses are never deleted or relocated
// within a solve; the arena is the sole owner of clause storage, and a CRef
// may only be dereferenced through Handler.
//
// Growth is handled by Go's append, which may reallocate the backing array.
// That is safe because CRefs are indices into ClauseArena.words, not
// pointers: a Handler view obtained before a later Append becomes stale and
// must be re-fetched. In this solver that is never an issue in practice,
// because Append only happens during clause ingestion, never while a
// Handler view is live during propagation.
type ClauseArena struct {
	words []Literal
}

// Append reserves 1+len(lits) words for a new clause, copies lits into it,
// and returns the offset of the header word (the clause's CRef).
func (a *ClauseArena) Append(lits []Literal) CRef {
	ref := CRef(len(a.words))
	a.words = append(a.words, Literal(len(lits)))
	a.words = append(a.words, lits...)
	return ref
}

// ClauseView is a mutable view of a clause's header and literal array,
// valid only until the next ClauseArena.Append.
type ClauseView struct {
	Lits []Literal
}

// Handler returns a view of the clause referenced by ref. Mutations through
// the returned Lits slice are written directly into the arena.
func (a *ClauseArena) Handler(ref CRef) ClauseView {
	size := int(a.words[ref])
	start := int(ref) + 1
	return ClauseView{Lits: a.words[start : start+size]}
}

// wordCount returns the number of words currently stored; it is
// exposed only for diagnostics/tests, not part of the solving contract.
func (a *ClauseArena) wordCount() int {
	return len(a.words)
}
