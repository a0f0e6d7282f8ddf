package chatclient

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTypingTTL is how long a typing indicator stays visible without a refresh.
const DefaultTypingTTL = 2 * time.Second

// View is the merged local picture of one conversation. Every producer (optimistic send,
// socket, poll) goes through the same merge keyed by server id, with the client correlation
// id bridging optimistic entries to their server copies.
type View struct {
	mu sync.Mutex

	conversationID string
	selfID         string

	entries []*Entry
	byID    map[string]*Entry
	byLocal map[string]*Entry

	typing    map[string]time.Time
	typingTTL time.Duration
	status    *StatusChange

	now func() time.Time
}

func NewView(conversationID, selfID string) *View {
	return &View{
		conversationID: conversationID,
		selfID:         selfID,
		byID:           make(map[string]*Entry),
		byLocal:        make(map[string]*Entry),
		typing:         make(map[string]time.Time),
		typingTTL:      DefaultTypingTTL,
		now:            time.Now,
	}
}

func (v *View) ConversationID() string {
	return v.conversationID
}

// AddPending appends an optimistic entry with a fresh temporary id.
func (v *View) AddPending(content string) Entry {
	v.mu.Lock()
	defer v.mu.Unlock()

	localID := "tmp-" + uuid.NewString()
	clientMsgID := localID

	e := &Entry{
		Message: Message{
			ConversationID: v.conversationID,
			SenderID:       v.selfID,
			Content:        content,
			ClientMsgID:    &clientMsgID,
			CreatedAt:      v.now(),
		},
		LocalID: localID,
		State:   StatePending,
	}
	v.entries = append(v.entries, e)
	v.byLocal[localID] = e

	return *e
}

// Confirm swaps the optimistic entry for the acknowledged server copy. When the socket echo
// already landed, the entry is folded into it instead of producing a second line.
func (v *View) Confirm(localID string, msg Message) {
	v.mu.Lock()
	defer v.mu.Unlock()

	e, ok := v.byLocal[localID]
	if !ok {
		v.mergeLocked(msg)
		v.sortLocked()
		return
	}

	if existing, ok := v.byID[msg.ID]; ok && existing != e {
		v.removeLocked(e)
		existing.LocalID = localID
		v.byLocal[localID] = existing
		if msg.Read {
			existing.Read = true
		}
		return
	}

	v.confirmLocked(e, msg)
	v.sortLocked()
}

// Fail marks a pending entry as failed. Nothing is retried automatically.
func (v *View) Fail(localID string, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if e, ok := v.byLocal[localID]; ok && e.State == StatePending {
		e.State = StateFailed
		e.Err = err
	}
}

// Retry flips a failed entry back to pending and returns it for resending. The local id is
// kept, so a send that actually reached the server is deduplicated there.
func (v *View) Retry(localID string) (Entry, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	e, ok := v.byLocal[localID]
	if !ok || e.State != StateFailed {
		return Entry{}, false
	}

	e.State = StatePending
	e.Err = nil
	return *e, true
}

// Merge folds server messages into the view and reports whether anything visible changed.
// Merging the same message any number of times leaves one entry.
func (v *View) Merge(msgs ...Message) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	changed := false
	for _, msg := range msgs {
		if v.mergeLocked(msg) {
			changed = true
		}
	}
	if changed {
		v.sortLocked()
	}
	return changed
}

// ApplyEvent merges a socket event. Events for other conversations are ignored.
func (v *View) ApplyEvent(event Event) bool {
	if event.ConversationID != v.conversationID {
		return false
	}

	switch event.Type {
	case EventMessage:
		if event.Message != nil {
			return v.Merge(*event.Message)
		}
	case EventRead:
		if event.Read != nil {
			return v.ApplyRead(*event.Read)
		}
	case EventTyping:
		if event.Typing != nil {
			return v.SetTyping(event.Typing.UserID, event.Typing.IsTyping)
		}
	case EventStatus:
		if event.Status != nil {
			v.mu.Lock()
			status := *event.Status
			v.status = &status
			v.mu.Unlock()
			return true
		}
	}
	return false
}

// ApplyRead marks everything up to the receipt's seq that the reader did not send as read.
func (v *View) ApplyRead(receipt ReadReceipt) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	changed := false
	for _, e := range v.entries {
		if e.ID == "" || e.Read || e.Seq > receipt.UpToSeq || e.SenderID == receipt.ReaderID {
			continue
		}
		e.Read = true
		changed = true
	}
	return changed
}

func (v *View) SetTyping(userID string, isTyping bool) bool {
	if userID == v.selfID {
		return false
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !isTyping {
		_, ok := v.typing[userID]
		delete(v.typing, userID)
		return ok
	}
	v.typing[userID] = v.now().Add(v.typingTTL)
	return true
}

// Typing lists the users whose indicator has not expired.
func (v *View) Typing() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	users := make([]string, 0, len(v.typing))
	for userID, expires := range v.typing {
		if !now.Before(expires) {
			delete(v.typing, userID)
			continue
		}
		users = append(users, userID)
	}
	sort.Strings(users)
	return users
}

func (v *View) Status() *StatusChange {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.status == nil {
		return nil
	}
	status := *v.status
	return &status
}

// Entries returns a snapshot in display order: confirmed by seq, then local entries in the
// order they were sent.
func (v *View) Entries() []Entry {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]Entry, len(v.entries))
	for i, e := range v.entries {
		out[i] = *e
	}
	return out
}

func (v *View) Entry(localID string) (Entry, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	e, ok := v.byLocal[localID]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

func (v *View) mergeLocked(msg Message) bool {
	if msg.ID == "" || (msg.ConversationID != "" && msg.ConversationID != v.conversationID) {
		return false
	}

	if e, ok := v.byID[msg.ID]; ok {
		if msg.Read && !e.Read {
			e.Read = true
			return true
		}
		return false
	}

	if msg.ClientMsgID != nil && msg.SenderID == v.selfID {
		if e, ok := v.byLocal[*msg.ClientMsgID]; ok {
			v.confirmLocked(e, msg)
			return true
		}
	}

	e := &Entry{Message: msg, State: StateConfirmed}
	v.entries = append(v.entries, e)
	v.byID[msg.ID] = e
	return true
}

func (v *View) confirmLocked(e *Entry, msg Message) {
	read := e.Read || msg.Read
	e.Message = msg
	e.Read = read
	e.State = StateConfirmed
	e.Err = nil
	v.byID[msg.ID] = e
}

func (v *View) removeLocked(target *Entry) {
	for i, e := range v.entries {
		if e == target {
			v.entries = append(v.entries[:i], v.entries[i+1:]...)
			return
		}
	}
}

func (v *View) sortLocked() {
	sort.SliceStable(v.entries, func(i, j int) bool {
		a, b := v.entries[i], v.entries[j]
		switch {
		case a.ID != "" && b.ID != "":
			return a.Seq < b.Seq
		case a.ID != "":
			return true
		}
		return false
	})
}
