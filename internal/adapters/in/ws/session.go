package ws

import (
	"sync"

	"golang.org/x/net/websocket"
)

// session is one connected websocket client. Outbound frames go through
// a buffered channel so a slow reader never blocks Publish; when the
// buffer is full the frame is dropped.
type session struct {
	conn *websocket.Conn
	out  chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

func newSession(conn *websocket.Conn) *session {
	return &session{
		conn: conn,
		out:  make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}
}

// send queues a frame, dropping it when the session buffer is full or
// the session is closed.
func (s *session) send(frame []byte) {
	select {
	case <-s.done:
	case s.out <- frame:
	default:
	}
}

func (s *session) writeLoop() {
	for {
		select {
		case <-s.done:
			return
		case frame := <-s.out:
			if err := websocket.Message.Send(s.conn, string(frame)); err != nil {
				s.close()
				return
			}
		}
	}
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}
