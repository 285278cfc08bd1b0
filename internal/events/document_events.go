package events

// DocumentVersionCreatedEvent - после коммита новой версии документа.
type DocumentVersionCreatedEvent struct {
	DocumentID      uint64
	VersionID       uint64
	VersionNo       int
	ParentVersionID uint64
	SessionID       string
	ActorID         uint64
	Resolved        int
	Unresolved      []string
}

// Name - реализуем интерфейс eventbus.Event
func (e DocumentVersionCreatedEvent) Name() string {
	return "document.version.created"
}
