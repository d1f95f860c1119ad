package services

// Broadcaster pushes a typed message to every connected pool client.
type Broadcaster interface {
	Broadcast(messageType string, payload interface{})
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, interface{}) {}

func broadcasterOrNop(b Broadcaster) Broadcaster {
	if b == nil {
		return nopBroadcaster{}
	}
	return b
}
