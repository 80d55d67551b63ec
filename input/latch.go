package input

// KeyLatch detects the frame on which a key goes down.
type KeyLatch struct {
	down bool
}

// Pressed records this frame's key state and reports true only when the key
// is down now and was up on the previous call.
func (l *KeyLatch) Pressed(down bool) bool {
	rising := down && !l.down
	l.down = down
	return rising
}

// Down reports the state recorded by the last call to Pressed.
func (l *KeyLatch) Down() bool {
	return l.down
}
