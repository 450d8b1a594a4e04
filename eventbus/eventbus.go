// Package eventbus publishes round.Event entries to NATS subscribers.
// Grounded on the teacher's NatsWorker (core/infrastructure/message/
// node/nats_worker.go): a buffered channel drained by one goroutine that
// marshals and sends, stripped of its service-to-service routing
// (ServicePacket/Route/PushUser) since the rules engine has exactly one
// kind of payload to publish — spec.md's event stream is fire-and-forget
// to whatever transport is listening, nothing is retained by the core.
package eventbus

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"riichi/log"
	"riichi/mahjong/round"
)

// Publisher pumps round events onto a NATS subject asynchronously so the
// round controller's own goroutine never blocks on network I/O.
type Publisher struct {
	nc      *nats.Conn
	subject string
	outbox  chan round.Event
	done    chan struct{}
}

// Envelope is the wire shape published for each event.
type Envelope struct {
	Kind    round.EventKind `json:"kind"`
	Seat    int             `json:"seat"`
	Tile    int             `json:"tile_kind"`
	Payload interface{}     `json:"payload,omitempty"`
}

// Connect dials url and starts the publish pump for subject.
func Connect(url, subject string) (*Publisher, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	p := &Publisher{
		nc:      nc,
		subject: subject,
		outbox:  make(chan round.Event, 1024),
		done:    make(chan struct{}),
	}
	go p.pump()
	return p, nil
}

func (p *Publisher) pump() {
	for {
		select {
		case ev, ok := <-p.outbox:
			if !ok {
				return
			}
			raw, err := json.Marshal(Envelope{
				Kind:    ev.Kind,
				Seat:    ev.Seat,
				Tile:    int(ev.Tile.Kind),
				Payload: ev.Payload,
			})
			if err != nil {
				log.Warn("eventbus: marshal failed for event kind %d: %v", ev.Kind, err)
				continue
			}
			if err := p.nc.Publish(p.subject, raw); err != nil {
				log.Error("eventbus: publish failed: %v", err)
			}
		case <-p.done:
			return
		}
	}
}

// Publish enqueues ev for delivery. Publish never blocks on the network;
// a full outbox drops the event with a log line rather than stall the
// round controller.
func (p *Publisher) Publish(ev round.Event) {
	select {
	case p.outbox <- ev:
	default:
		log.Warn("eventbus: outbox full, dropping event kind %d", ev.Kind)
	}
}

// Close stops the publish pump and closes the NATS connection; events
// still queued in the outbox are not published.
func (p *Publisher) Close() {
	close(p.done)
	p.nc.Close()
}
