package rotxor

// Hasher is the streaming form of Fold. It implements hash.Hash and
// io.ByteWriter.
type Hasher struct {
	start byte
	state byte
}

func New() *Hasher {
	return NewWithState(InitialState)
}

func NewWithState(s byte) *Hasher {
	return &Hasher{start: s, state: s}
}

// WriteB folds a single byte into the state and returns the new state.
func (h *Hasher) WriteB(c byte) byte {
	h.state = Step(h.state, c)
	return h.state
}

func (h *Hasher) WriteByte(c byte) error {
	h.WriteB(c)
	return nil
}

func (h *Hasher) Write(p []byte) (int, error) {
	h.state = Fold(h.state, p)
	return len(p), nil
}

func (h *Hasher) Sum8() byte {
	return h.state
}

func (h *Hasher) Sum(b []byte) []byte {
	return append(b, h.state)
}

func (h *Hasher) Reset() {
	h.state = h.start
}

func (h *Hasher) Size() int { return 1 }

func (h *Hasher) BlockSize() int { return 1 }
