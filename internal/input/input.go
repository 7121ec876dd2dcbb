// Package input turns raw terminal bytes into per-tick round input.
package input

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/shieldroids/internal/round"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals report presses only, never releases.
const keyHoldDuration = 30 * time.Millisecond

// escapeTimeout is how long a trailing ESC or ESC [ waits for the rest of an
// arrow sequence before it counts as a bare ESC.
const escapeTimeout = 50 * time.Millisecond

// keyState tracks the last time each steering key was pressed.
type keyState struct {
	left     time.Time
	right    time.Time
	forward  time.Time
	backward time.Time
}

// Decoder parses key bytes and keeps the hold state between ticks.
// It is not safe for concurrent use.
type Decoder struct {
	state     keyState
	fire      int  // Fire presses since the last Input call
	restart   bool // Enter seen since the last Input call
	quit      bool // Latched once seen
	pending   []byte
	pendingAt time.Time
}

// NewDecoder returns a decoder with nothing held.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed parses buf, received at now. Arrow keys arrive as ESC [ A..D and may be
// split across calls; an incomplete sequence at the end of buf is held back.
func (d *Decoder) Feed(buf []byte, now time.Time) {
	if len(buf) == 0 {
		return
	}
	if len(d.pending) > 0 {
		buf = append(d.pending, buf...)
		d.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			d.applyByte(b, now)
			continue
		}

		rest := len(buf) - i
		if rest == 1 || (rest == 2 && buf[i+1] == '[') {
			d.pending = append([]byte(nil), buf[i:]...)
			d.pendingAt = now
			return
		}
		if buf[i+1] != '[' {
			d.applyByte(b, now)
			continue
		}

		switch buf[i+2] {
		case 'A':
			d.state.forward = now
		case 'B':
			d.state.backward = now
		case 'C':
			d.state.right = now
		case 'D':
			d.state.left = now
		}
		// Other CSI sequences are ignored.
		i += 2
	}
}

func (d *Decoder) applyByte(b byte, now time.Time) {
	switch b {
	case 'a', 'A', 'h', 'H':
		d.state.left = now
	case 'd', 'D', 'l', 'L':
		d.state.right = now
	case 'w', 'W', 'k', 'K':
		d.state.forward = now
	case 's', 'S', 'j', 'J':
		d.state.backward = now
	case ' ':
		d.fire++
	case '\n', '\r':
		d.restart = true
	case '\x1b', 'q', 'Q', '\x03':
		d.quit = true
	}
}

// Input builds the round input for a tick starting at now. Fire presses
// and restart are consumed; held keys stay down for keyHoldDuration.
// A held-back ESC older than escapeTimeout is resolved as a bare ESC first.
func (d *Decoder) Input(now time.Time) round.Input {
	if len(d.pending) > 0 && now.Sub(d.pendingAt) >= escapeTimeout {
		for _, b := range d.pending {
			d.applyByte(b, d.pendingAt)
		}
		d.pending = nil
	}

	in := round.Input{
		Fire:    d.fire,
		Restart: d.restart,
		Quit:    d.quit,
	}
	in.Left = now.Sub(d.state.left) < keyHoldDuration
	in.Right = now.Sub(d.state.right) < keyHoldDuration
	in.Forward = now.Sub(d.state.forward) < keyHoldDuration
	in.Backward = now.Sub(d.state.backward) < keyHoldDuration

	d.fire = 0
	d.restart = false
	return in
}

// Stream delivers input bytes via a channel and decodes them once per tick.
type Stream struct {
	ch     chan byte
	closed bool
	dec    *Decoder
	buf    []byte
	last   time.Time // When the last byte arrived
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine ends when r returns an error.
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch:  make(chan byte, 128),
		dec: NewDecoder(),
	}
	br := bufio.NewReader(r)
	go func() {
		defer close(s.ch)
		for {
			b, err := br.ReadByte()
			if err != nil {
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Read drains all available bytes without blocking and returns the input for
// this tick. A closed reader counts as quit.
func (s *Stream) Read(now time.Time) round.Input {
	s.buf = s.buf[:0]

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			s.buf = append(s.buf, b)
		default:
			break drain
		}
	}

	if len(s.buf) > 0 {
		s.last = now
	}
	s.dec.Feed(s.buf, now)
	in := s.dec.Input(now)
	if s.closed {
		in.Quit = true
	}
	return in
}

// LastActivity returns when input last arrived, or the zero time if it never did.
func (s *Stream) LastActivity() time.Time {
	return s.last
}
