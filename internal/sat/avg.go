package sat

// EMA is an exponential moving average. The teacher used this to smooth
// conflict-rate measurements feeding a restart schedule; restarts are out of
// scope for this skeleton, so here it instead smooths the
// propagations-per-decision ratio exposed through Stats, a cheap diagnostic
// that falls out of counters the search loop already maintains.
type EMA struct {
	decay float64
	value float64
	init  bool
}

// NewEMA returns an EMA with the given decay in (0, 1]; values closer to 1
// weight history more heavily than the latest sample.
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add folds x into the running average.
func (ema *EMA) Add(x float64) {
	if !ema.init {
		ema.init = true
		ema.value = x
		return
	}
	ema.value = ema.decay*ema.value + x*(1-ema.decay)
}

// Val returns the current average.
func (ema *EMA) Val() float64 {
	return ema.value
}
