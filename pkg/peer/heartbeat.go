package peer

import "time"

// startHeartbeat begins emitting a Ping on heartbeatInterval until
// stopHeartbeat is called. Pong handling lives in handleIncoming; it never
// reaches the application.
func (p *Peer) startHeartbeat() {
	p.mu.Lock()
	if p.heartbeatStop != nil {
		p.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	p.heartbeatStop = stop
	interval := p.heartbeatInterval
	p.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				_ = p.writeFrame(p.newPing())
			}
		}
	}()
}

func (p *Peer) stopHeartbeat() {
	p.mu.Lock()
	stop := p.heartbeatStop
	p.heartbeatStop = nil
	p.mu.Unlock()
	if stop != nil {
		close(stop)
	}
}
