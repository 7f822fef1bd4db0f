package sat

// Propagate performs watched-literal unit propagation (BCP) starting from
// the trail's propagation queue head, enqueueing every literal it forces
// true and updating watch lists as it goes. It returns the CRef of a
// falsified clause if a conflict is found, or CRefNone if the queue drains
// cleanly.
//
// Note on aliasing safety: a watcher can only be migrated to the watch list
// of a *different* literal than the one currently being propagated: it
// moves to the list of lits[k].Opposite() for a replacement lits[k] that is
// not False, and the only literal whose opposite is l is l.Opposite(),
// which is False while l is being propagated. That means the
// in-place read/write compaction below never has to worry about a migration
// writing back into the very list it is compacting.
func (s *Solver) Propagate() CRef {
	for s.qhead < len(s.trail) {
		l := s.trail[s.qhead]
		s.qhead++
		s.stats.recordPropagation()

		nBin := s.watches.nBin[l]
		list := s.watches.lists[l]

		// Fast path: binary clauses need no clause-arena access at all,
		// since a size-2 clause never needs to look past its two watched
		// literals for a replacement.
		for bi := 0; bi < nBin; bi++ {
			blocker := list[bi].Blocker
			switch s.LitValue(blocker) {
			case Unknown:
				s.enqueue(blocker)
			case False:
				return list[bi].Ref
			}
		}

		i, j := nBin, nBin
		conflict := CRefNone
		for ; i < len(list); i++ {
			w := list[i]

			if s.LitValue(w.Blocker) == True {
				list[j] = w
				j++
				continue
			}

			view := s.arena.Handler(w.Ref)
			lits := view.Lits
			if lits[0] == l.Opposite() {
				lits[0], lits[1] = lits[1], lits[0]
			}

			first := lits[0]
			newW := Watcher{Ref: w.Ref, Blocker: first}

			if first != w.Blocker && s.LitValue(first) == True {
				list[j] = newW
				j++
				continue
			}

			migrated := false
			for k := 2; k < len(lits); k++ {
				if s.LitValue(lits[k]) != False {
					lits[1], lits[k] = lits[k], lits[1]
					lits[k] = l.Opposite()
					s.watches.attach(lits[1].Opposite(), newW, false)
					migrated = true
					break
				}
			}
			if migrated {
				continue
			}

			list[j] = newW
			j++

			if s.LitValue(first) == False {
				// Conflict: copy the remaining, not-yet-examined watchers
				// forward so the list stays well-formed, then bail out.
				for i++; i < len(list); i++ {
					list[j] = list[i]
					j++
				}
				conflict = w.Ref
				break
			}
			s.enqueue(first)
		}

		s.watches.lists[l] = list[:j]

		if conflict != CRefNone {
			s.qhead = len(s.trail)
			return conflict
		}
	}
	return CRefNone
}
