// Package stats holds the trip-latency bookkeeping of a simulation run.
package stats

// Mean returns the arithmetic mean of samples, or 0 when there are none.
func Mean(samples []int) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0
	for _, s := range samples {
		sum += s
	}
	return float64(sum) / float64(len(samples))
}

// History is a fixed-capacity circular buffer. Pushing onto a full buffer evicts the oldest value.
type History struct {
	values    []float64
	nextIndex int
	count     int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{values: make([]float64, capacity)}
}

func (h *History) Push(v float64) {
	h.values[h.nextIndex] = v
	h.nextIndex = (h.nextIndex + 1) % len(h.values)
	if h.count < len(h.values) {
		h.count++
	}
}

// Values returns the buffered samples from oldest to newest.
func (h *History) Values() []float64 {
	out := make([]float64, 0, h.count)
	start := (h.nextIndex - h.count + len(h.values)) % len(h.values)
	for i := range h.count {
		out = append(out, h.values[(start+i)%len(h.values)])
	}
	return out
}

func (h *History) Len() int      { return h.count }
func (h *History) Capacity() int { return len(h.values) }

type Summary struct {
	Count int
	Mean  float64
	Min   int
	Max   int
}

func Summarize(samples []int) Summary {
	s := Summary{Count: len(samples), Mean: Mean(samples)}
	for i, v := range samples {
		if i == 0 || v < s.Min {
			s.Min = v
		}
		if i == 0 || v > s.Max {
			s.Max = v
		}
	}
	return s
}
