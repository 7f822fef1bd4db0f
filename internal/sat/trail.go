package sat

// enqueue assigns l's variable so that l becomes True, appends l to the
// trail, and removes the variable from the decision pool (I6). Precondition:
// l's variable is currently Unknown; violating it is a programming error,
// not an input-validation concern, so it panics rather than returning an
// error (§7: precondition violations are asserted internally).
func (s *Solver) enqueue(l Literal) {
	if s.assigns[l] != Unknown {
		panic("sat: enqueue of an already-assigned literal")
	}
	s.assigns[l] = True
	s.assigns[l.Opposite()] = False
	s.trail = append(s.trail, l)
	s.order.remove(l.Var())
}

// newDecision opens a new decision level and enqueues l as its decision
// literal.
func (s *Solver) newDecision(l Literal) {
	s.trailLim = append(s.trailLim, len(s.trail))
	s.enqueue(l)
}

// decisionLevel returns the number of decision levels currently open.
func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// lastDecision returns the decision literal that opened the current
// (deepest) decision level. Precondition: decisionLevel() > 0.
func (s *Solver) lastDecision() Literal {
	return s.trail[s.trailLim[len(s.trailLim)-1]]
}

// backtrackOneLevel undoes every assignment made since the current deepest
// decision level was opened, reinserting the corresponding variables into
// the decision pool, and closes that level.
func (s *Solver) backtrackOneLevel() {
	k := len(s.trailLim) - 1
	cut := s.trailLim[k]

	for i := len(s.trail) - 1; i >= cut; i-- {
		l := s.trail[i]
		s.assigns[l] = Unknown
		s.assigns[l.Opposite()] = Unknown
		s.order.reinsert(l.Var())
	}

	s.trail = s.trail[:cut]
	s.trailLim = s.trailLim[:k]
	s.qhead = cut
}
