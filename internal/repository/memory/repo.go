// Package memory is an in-process store with the same contract as the postgres repository.
// A transaction works on its own copy of the state that replaces the committed one on
// success, so readers only ever see committed data. Writers are serialized, which suits
// development and tests, not production volumes.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/conversation-service/internal/model"
)

type txKey struct{}

type state struct {
	conversations map[string]model.Conversation
	byRoutingKey  map[string]string
	participants  map[string][]string
	messages      map[string][]model.Message
	bookings      map[string]model.BookingParticipants
	lastMessageAt map[string]time.Time
}

type Repository struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	st   state
	now  func() time.Time
}

func New() *Repository {
	return &Repository{
		st: state{
			conversations: make(map[string]model.Conversation),
			byRoutingKey:  make(map[string]string),
			participants:  make(map[string][]string),
			messages:      make(map[string][]model.Message),
			bookings:      make(map[string]model.BookingParticipants),
			lastMessageAt: make(map[string]time.Time),
		},
		now: time.Now,
	}
}

func (r *Repository) Close() {}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*state); ok {
		return cb(ctx)
	}

	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.mu.RLock()
	working := r.st.clone()
	r.mu.RUnlock()

	if err := cb(context.WithValue(ctx, txKey{}, &working)); err != nil {
		return err
	}

	r.mu.Lock()
	r.st = working
	r.mu.Unlock()
	return nil
}

func (r *Repository) EnsureDirectConversation(ctx context.Context, routingKey string, participantIDs []string) (*model.Conversation, error) {
	st, done := r.write(ctx)
	defer done()

	if id, ok := st.byRoutingKey[routingKey]; ok {
		return st.conversation(id), nil
	}

	now := r.now()
	conv := model.Conversation{
		ID:         uuid.New().String(),
		Kind:       model.KindDirect,
		RoutingKey: routingKey,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	st.conversations[conv.ID] = conv
	st.byRoutingKey[routingKey] = conv.ID
	for _, userID := range participantIDs {
		st.addParticipant(conv.ID, userID)
	}

	return st.conversation(conv.ID), nil
}

func (r *Repository) CreateTicket(ctx context.Context, requesterID string, ticket model.Ticket) (*model.Conversation, error) {
	st, done := r.write(ctx)
	defer done()

	now := r.now()
	id := uuid.New().String()
	requester := requesterID
	conv := model.Conversation{
		ID:          id,
		Kind:        model.KindTicket,
		RoutingKey:  id,
		Subject:     ticket.Subject,
		RequesterID: &requester,
		Status:      model.StatusOpen,
		Priority:    ticket.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	st.conversations[id] = conv
	st.byRoutingKey[id] = id
	st.addParticipant(id, requesterID)

	return st.conversation(id), nil
}

func (r *Repository) GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error) {
	st, done := r.read(ctx)
	defer done()

	if _, ok := st.conversations[conversationID]; !ok {
		return nil, model.ErrNotFound
	}
	return st.conversation(conversationID), nil
}

// LockConversation has nothing extra to lock: writers are already serialized.
func (r *Repository) LockConversation(ctx context.Context, conversationID string) (*model.Conversation, error) {
	return r.GetConversation(ctx, conversationID)
}

func (r *Repository) AddParticipant(ctx context.Context, conversationID, userID string) error {
	st, done := r.write(ctx)
	defer done()

	if _, ok := st.conversations[conversationID]; !ok {
		return model.ErrNotFound
	}
	st.addParticipant(conversationID, userID)
	return nil
}

func (r *Repository) AppendMessage(ctx context.Context, msg model.NewMessage) (*model.Message, error) {
	st, done := r.write(ctx)
	defer done()

	conv, ok := st.conversations[msg.ConversationID]
	if !ok {
		return nil, model.ErrNotFound
	}

	createdAt := r.now()
	if last, ok := st.lastMessageAt[conv.ID]; ok && createdAt.Before(last) {
		createdAt = last
	}

	conv.LastSeq++
	conv.UpdatedAt = createdAt
	st.conversations[conv.ID] = conv
	st.lastMessageAt[conv.ID] = createdAt

	stored := model.Message{
		ID:             msg.ID,
		ConversationID: conv.ID,
		SenderID:       msg.SenderID,
		Seq:            conv.LastSeq,
		Content:        msg.Content,
		CreatedAt:      createdAt,
	}
	if msg.ClientMsgID != "" {
		clientMsgID := msg.ClientMsgID
		stored.ClientMsgID = &clientMsgID
	}
	st.messages[conv.ID] = append(st.messages[conv.ID], stored)

	return &stored, nil
}

func (r *Repository) FindMessageByClientID(ctx context.Context, conversationID, senderID, clientMsgID string) (*model.Message, error) {
	st, done := r.read(ctx)
	defer done()

	for _, msg := range st.messages[conversationID] {
		if msg.SenderID == senderID && msg.ClientMsgID != nil && *msg.ClientMsgID == clientMsgID {
			found := msg
			return &found, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *Repository) GetMessage(ctx context.Context, conversationID, messageID string) (*model.Message, error) {
	st, done := r.read(ctx)
	defer done()

	for _, msg := range st.messages[conversationID] {
		if msg.ID == messageID {
			found := msg
			return &found, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *Repository) ListMessages(ctx context.Context, conversationID string, afterSeq int64) (model.MessageList, error) {
	st, done := r.read(ctx)
	defer done()

	if _, ok := st.conversations[conversationID]; !ok {
		return nil, model.ErrNotFound
	}

	messages := make(model.MessageList, 0, len(st.messages[conversationID]))
	for _, msg := range st.messages[conversationID] {
		if msg.Seq > afterSeq {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}

func (r *Repository) MarkRead(ctx context.Context, conversationID, readerID string) (model.ReadResult, error) {
	st, done := r.write(ctx)
	defer done()

	if _, ok := st.conversations[conversationID]; !ok {
		return model.ReadResult{}, model.ErrNotFound
	}

	var res model.ReadResult
	messages := st.messages[conversationID]
	for i := range messages {
		if messages[i].SenderID == readerID || messages[i].Read {
			continue
		}
		messages[i].Read = true
		res.Count++
		if messages[i].Seq > res.UpToSeq {
			res.UpToSeq = messages[i].Seq
		}
	}
	return res, nil
}

func (r *Repository) ClaimTicket(ctx context.Context, conversationID, agentID string) (bool, error) {
	st, done := r.write(ctx)
	defer done()

	conv, ok := st.conversations[conversationID]
	if !ok {
		return false, model.ErrNotFound
	}
	if conv.AssigneeID != nil {
		return false, nil
	}

	assignee := agentID
	conv.AssigneeID = &assignee
	conv.UpdatedAt = r.now()
	st.conversations[conversationID] = conv
	st.addParticipant(conversationID, agentID)
	return true, nil
}

func (r *Repository) SetAssignee(ctx context.Context, conversationID, agentID string) error {
	st, done := r.write(ctx)
	defer done()

	conv, ok := st.conversations[conversationID]
	if !ok {
		return model.ErrNotFound
	}

	assignee := agentID
	conv.AssigneeID = &assignee
	conv.UpdatedAt = r.now()
	st.conversations[conversationID] = conv
	st.addParticipant(conversationID, agentID)
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, conversationID string, from, to model.TicketStatus) (bool, error) {
	st, done := r.write(ctx)
	defer done()

	conv, ok := st.conversations[conversationID]
	if !ok {
		return false, model.ErrNotFound
	}
	if conv.Status != from {
		return false, nil
	}

	conv.Status = to
	conv.UpdatedAt = r.now()
	st.conversations[conversationID] = conv
	return true, nil
}

func (r *Repository) ListConversations(ctx context.Context, userID string) (model.ConversationPreviewList, error) {
	st, done := r.read(ctx)
	defer done()

	previews := model.ConversationPreviewList{}
	for id, members := range st.participants {
		if !contains(members, userID) {
			continue
		}

		preview := model.ConversationPreview{Conversation: *st.conversation(id)}
		messages := st.messages[id]
		if len(messages) > 0 {
			last := messages[len(messages)-1]
			content, at := last.Content, last.CreatedAt
			preview.LastMessageContent = &content
			preview.LastMessageAt = &at
		}
		for _, msg := range messages {
			if msg.SenderID != userID && !msg.Read {
				preview.UnreadCount++
			}
		}
		previews = append(previews, preview)
	}

	sort.Slice(previews, func(i, j int) bool {
		return previews[i].UpdatedAt.After(previews[j].UpdatedAt)
	})
	return previews, nil
}

func (r *Repository) ListTickets(ctx context.Context, filter model.TicketFilter) ([]model.Conversation, error) {
	st, done := r.read(ctx)
	defer done()

	tickets := []model.Conversation{}
	for id, conv := range st.conversations {
		if !conv.IsTicket() {
			continue
		}
		if filter.Status != nil && conv.Status != *filter.Status {
			continue
		}
		if filter.Unassigned && conv.AssigneeID != nil {
			continue
		}
		if filter.RequesterID != "" && !conv.IsRequester(filter.RequesterID) {
			continue
		}
		tickets = append(tickets, *st.conversation(id))
	}

	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.Before(tickets[j].CreatedAt)
	})
	return tickets, nil
}

func (r *Repository) GetBooking(ctx context.Context, bookingID string) (*model.BookingParticipants, error) {
	st, done := r.read(ctx)
	defer done()

	booking, ok := st.bookings[bookingID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &booking, nil
}

func (r *Repository) UpsertBooking(ctx context.Context, booking model.BookingParticipants) error {
	st, done := r.write(ctx)
	defer done()

	st.bookings[booking.BookingID] = booking
	return nil
}

// read returns the state visible to ctx: the transaction's working copy, or the committed
// state under the read lock.
func (r *Repository) read(ctx context.Context) (*state, func()) {
	if working, ok := ctx.Value(txKey{}).(*state); ok {
		return working, func() {}
	}
	r.mu.RLock()
	return &r.st, r.mu.RUnlock
}

// write is read for mutations. Outside a transaction the write goes straight to the
// committed state, after any running transaction has finished.
func (r *Repository) write(ctx context.Context) (*state, func()) {
	if working, ok := ctx.Value(txKey{}).(*state); ok {
		return working, func() {}
	}
	r.txMu.Lock()
	r.mu.Lock()
	return &r.st, func() {
		r.mu.Unlock()
		r.txMu.Unlock()
	}
}

// conversation returns a copy with participants attached.
func (s *state) conversation(id string) *model.Conversation {
	conv := s.conversations[id]
	conv.ParticipantIDs = append([]string(nil), s.participants[id]...)
	return &conv
}

func (s *state) addParticipant(conversationID, userID string) {
	if contains(s.participants[conversationID], userID) {
		return
	}
	s.participants[conversationID] = append(s.participants[conversationID], userID)
}

func (s *state) clone() state {
	c := state{
		conversations: make(map[string]model.Conversation, len(s.conversations)),
		byRoutingKey:  make(map[string]string, len(s.byRoutingKey)),
		participants:  make(map[string][]string, len(s.participants)),
		messages:      make(map[string][]model.Message, len(s.messages)),
		bookings:      make(map[string]model.BookingParticipants, len(s.bookings)),
		lastMessageAt: make(map[string]time.Time, len(s.lastMessageAt)),
	}
	for k, v := range s.conversations {
		c.conversations[k] = v
	}
	for k, v := range s.byRoutingKey {
		c.byRoutingKey[k] = v
	}
	for k, v := range s.participants {
		c.participants[k] = append([]string(nil), v...)
	}
	for k, v := range s.messages {
		c.messages[k] = append([]model.Message(nil), v...)
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.lastMessageAt {
		c.lastMessageAt[k] = v
	}
	return c
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
