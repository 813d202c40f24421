package app

// History is a fixed-size ring of the readings a gauge received.
type History struct {
	buf   [][]float64
	pos   int
	count int
}

// NewHistory creates an empty history holding up to capacity readings.
func NewHistory(capacity int) *History {
	return &History{buf: make([][]float64, max(1, capacity))}
}

// Push records a reading. The slice is copied.
func (h *History) Push(values []float64) {
	h.buf[h.pos] = append([]float64(nil), values...)
	h.pos = (h.pos + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

// Input returns input i of every stored reading, oldest first. Readings
// too short to carry input i are skipped.
func (h *History) Input(i int) []float64 {
	var out []float64
	start := (h.pos - h.count + len(h.buf)) % len(h.buf)
	for n := 0; n < h.count; n++ {
		r := h.buf[(start+n)%len(h.buf)]
		if i < len(r) {
			out = append(out, r[i])
		}
	}
	return out
}

// Last returns the most recent reading.
func (h *History) Last() ([]float64, bool) {
	if h.count == 0 {
		return nil, false
	}
	return h.buf[(h.pos-1+len(h.buf))%len(h.buf)], true
}

// Len returns the number of stored readings.
func (h *History) Len() int {
	return h.count
}
