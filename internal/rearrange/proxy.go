package rearrange

import "SeatShuffler/internal/board"

// Proxy size and offset follow the finger: the proxy is centred on the touch
// point.
const (
	ProxySize   = 80
	proxyOffset = ProxySize / 2
)

// Proxy is the floating copy of the source cell that follows a touch drag.
// Native drags get a ghost image from the platform and need none.
type Proxy struct {
	Number int        `json:"number"`
	Rect   board.Rect `json:"rect"`
}

func newProxy(number int, at board.Point) *Proxy {
	p := &Proxy{Number: number}
	p.moveTo(at)
	return p
}

func (p *Proxy) moveTo(at board.Point) {
	p.Rect = board.Rect{
		X:      at.X - proxyOffset,
		Y:      at.Y - proxyOffset,
		Width:  ProxySize,
		Height: ProxySize,
	}
}

// trackProxy creates or moves the proxy of a live touch gesture.
func (e *Engine) trackProxy(at board.Point) {
	s := e.session
	if s == nil || s.modality != ModalityTouch {
		return
	}
	if s.proxy == nil {
		s.proxy = newProxy(s.source.Number(), at)
		return
	}
	s.proxy.moveTo(at)
}
