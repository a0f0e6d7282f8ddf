package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/s21platform/conversation-service/internal/config"
	"github.com/s21platform/conversation-service/internal/model"
)

type txKey struct{}

type querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// Chk returns the transaction bound to ctx, or the pool when there is none.
func (r *Repository) Chk(ctx context.Context) querier {
	if t, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return t
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return cb(ctx)
	}

	t, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, txKey{}, t)); err != nil {
		if rbErr := t.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := t.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}
	return nil
}

var conversationColumns = []string{
	"c.id",
	"c.kind",
	"c.routing_key",
	"c.subject",
	"c.requester_id",
	"c.status",
	"c.assignee_id",
	"c.priority",
	"c.last_seq",
	"c.created_at",
	"c.updated_at",
}

var messageColumns = []string{
	"id",
	"conversation_id",
	"sender_id",
	"seq",
	"content",
	"client_msg_id",
	"read",
	"created_at",
}

func (r *Repository) EnsureDirectConversation(ctx context.Context, routingKey string, participantIDs []string) (*model.Conversation, error) {
	var conv *model.Conversation
	err := r.WithTx(ctx, func(ctx context.Context) error {
		// a concurrent insert of the same key blocks here until the other side commits,
		// so the participants below are always visible once the row is
		query, args, err := sq.Insert("conversations").
			Columns("id", "kind", "routing_key").
			Values(uuid.New().String(), model.KindDirect, routingKey).
			Suffix("ON CONFLICT (routing_key) DO NOTHING RETURNING id").
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		var id string
		err = r.Chk(ctx).GetContext(ctx, &id, query, args...)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return fmt.Errorf("failed to insert conversation: %v", err)
		default:
			for _, userID := range participantIDs {
				if err := r.AddParticipant(ctx, id, userID); err != nil {
					return err
				}
			}
		}

		conv, err = r.getConversation(ctx, sq.Eq{"c.routing_key": routingKey}, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	return conv, nil
}

func (r *Repository) CreateTicket(ctx context.Context, requesterID string, ticket model.Ticket) (*model.Conversation, error) {
	id := uuid.New().String()

	query, args, err := sq.Insert("conversations").
		Columns("id", "kind", "routing_key", "subject", "requester_id", "status", "priority").
		Values(id, model.KindTicket, id, ticket.Subject, requesterID, model.StatusOpen, ticket.Priority).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.WithTx(ctx, func(ctx context.Context) error {
		if _, err := r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert ticket: %v", err)
		}
		return r.AddParticipant(ctx, id, requesterID)
	})
	if err != nil {
		return nil, err
	}

	return r.GetConversation(ctx, id)
}

func (r *Repository) GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error) {
	return r.getConversation(ctx, sq.Eq{"c.id": conversationID}, false)
}

// LockConversation takes the row lock every append and status change queues on.
func (r *Repository) LockConversation(ctx context.Context, conversationID string) (*model.Conversation, error) {
	return r.getConversation(ctx, sq.Eq{"c.id": conversationID}, true)
}

func (r *Repository) getConversation(ctx context.Context, where sq.Sqlizer, forUpdate bool) (*model.Conversation, error) {
	builder := sq.Select(conversationColumns...).
		From("conversations c").
		Where(where).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conv model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conv, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %v", err)
	}

	members, err := r.participants(ctx, []string{conv.ID})
	if err != nil {
		return nil, err
	}
	conv.ParticipantIDs = members[conv.ID]

	return &conv, nil
}

func (r *Repository) participants(ctx context.Context, conversationIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return result, nil
	}

	query, args, err := sq.Select("conversation_id", "user_id").
		From("participants").
		Where("conversation_id = ANY(?)", pq.Array(conversationIDs)).
		OrderBy("joined_at", "user_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []model.Participant
	if err := r.Chk(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get participants: %v", err)
	}

	for _, row := range rows {
		result[row.ConversationID] = append(result[row.ConversationID], row.UserID)
	}
	return result, nil
}

func (r *Repository) AddParticipant(ctx context.Context, conversationID, userID string) error {
	query, args, err := sq.Insert("participants").
		Columns("conversation_id", "user_id").
		Values(conversationID, userID).
		Suffix("ON CONFLICT (conversation_id, user_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return err
}

// AppendMessage reserves the next seq on the conversation row and stores the message with a
// timestamp that never goes below the previous one. Call it inside WithTx after LockConversation.
func (r *Repository) AppendMessage(ctx context.Context, msg model.NewMessage) (*model.Message, error) {
	query, args, err := sq.Update("conversations").
		Set("last_seq", sq.Expr("last_seq + 1")).
		Set("last_message_at", sq.Expr("GREATEST(clock_timestamp(), last_message_at)")).
		Set("updated_at", sq.Expr("GREATEST(clock_timestamp(), last_message_at)")).
		Where(sq.Eq{"id": msg.ConversationID}).
		Suffix("RETURNING last_seq, last_message_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var slot struct {
		Seq       int64     `db:"last_seq"`
		CreatedAt time.Time `db:"last_message_at"`
	}
	err = r.Chk(ctx).GetContext(ctx, &slot, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reserve seq: %v", err)
	}

	var clientMsgID *string
	if msg.ClientMsgID != "" {
		clientMsgID = &msg.ClientMsgID
	}

	query, args, err = sq.Insert("messages").
		Columns("id", "conversation_id", "sender_id", "seq", "content", "client_msg_id", "created_at").
		Values(msg.ID, msg.ConversationID, msg.SenderID, slot.Seq, msg.Content, clientMsgID, slot.CreatedAt).
		Suffix("RETURNING " + strings.Join(messageColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stored model.Message
	if err := r.Chk(ctx).GetContext(ctx, &stored, query, args...); err != nil {
		return nil, fmt.Errorf("failed to save message: %v", err)
	}

	return &stored, nil
}

func (r *Repository) FindMessageByClientID(ctx context.Context, conversationID, senderID, clientMsgID string) (*model.Message, error) {
	return r.getMessage(ctx, sq.Eq{
		"conversation_id": conversationID,
		"sender_id":       senderID,
		"client_msg_id":   clientMsgID,
	})
}

func (r *Repository) GetMessage(ctx context.Context, conversationID, messageID string) (*model.Message, error) {
	return r.getMessage(ctx, sq.Eq{
		"conversation_id": conversationID,
		"id":              messageID,
	})
}

func (r *Repository) getMessage(ctx context.Context, where sq.Eq) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var msg model.Message
	err = r.Chk(ctx).GetContext(ctx, &msg, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %v", err)
	}

	return &msg, nil
}

func (r *Repository) ListMessages(ctx context.Context, conversationID string, afterSeq int64) (model.MessageList, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		Where(sq.Gt{"seq": afterSeq}).
		OrderBy("seq").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.MessageList{}
	if err := r.Chk(ctx).SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list messages: %v", err)
	}

	return messages, nil
}

// MarkRead flips every unread message from other senders in one statement.
func (r *Repository) MarkRead(ctx context.Context, conversationID, readerID string) (model.ReadResult, error) {
	query, args, err := sq.Update("messages").
		Set("read", true).
		Where(sq.Eq{"conversation_id": conversationID, "read": false}).
		Where(sq.NotEq{"sender_id": readerID}).
		Suffix("RETURNING seq").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.ReadResult{}, fmt.Errorf("failed to build sql query: %v", err)
	}

	var seqs []int64
	if err := r.Chk(ctx).SelectContext(ctx, &seqs, query, args...); err != nil {
		return model.ReadResult{}, fmt.Errorf("failed to mark messages read: %v", err)
	}

	res := model.ReadResult{Count: int64(len(seqs))}
	for _, seq := range seqs {
		if seq > res.UpToSeq {
			res.UpToSeq = seq
		}
	}
	return res, nil
}

// ClaimTicket assigns agentID only while the ticket has no assignee.
func (r *Repository) ClaimTicket(ctx context.Context, conversationID, agentID string) (bool, error) {
	query, args, err := sq.Update("conversations").
		Set("assignee_id", agentID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": conversationID, "assignee_id": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	claimed, err := r.execAffected(ctx, query, args...)
	if err != nil || !claimed {
		return false, err
	}

	return true, r.AddParticipant(ctx, conversationID, agentID)
}

func (r *Repository) SetAssignee(ctx context.Context, conversationID, agentID string) error {
	query, args, err := sq.Update("conversations").
		Set("assignee_id", agentID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	updated, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return err
	}
	if !updated {
		return model.ErrNotFound
	}

	return r.AddParticipant(ctx, conversationID, agentID)
}

// UpdateStatus moves the ticket to `to` only if it is still in `from`.
func (r *Repository) UpdateStatus(ctx context.Context, conversationID string, from, to model.TicketStatus) (bool, error) {
	query, args, err := sq.Update("conversations").
		Set("status", to).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": conversationID, "status": from}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execAffected(ctx, query, args...)
}

func (r *Repository) execAffected(ctx context.Context, query string, args ...interface{}) (bool, error) {
	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %v", err)
	}
	return affected > 0, nil
}

func (r *Repository) ListConversations(ctx context.Context, userID string) (model.ConversationPreviewList, error) {
	query, args, err := sq.Select(conversationColumns...).
		Column("lm.content AS last_message_content").
		Column("lm.created_at AS last_message_at").
		Column("(SELECT COUNT(*) FROM messages u WHERE u.conversation_id = c.id AND u.sender_id <> ? AND NOT u.read) AS unread_count", userID).
		From("conversations c").
		Join("participants p ON p.conversation_id = c.id").
		LeftJoin("LATERAL (SELECT content, created_at FROM messages m WHERE m.conversation_id = c.id ORDER BY m.seq DESC LIMIT 1) lm ON TRUE").
		Where(sq.Eq{"p.user_id": userID}).
		OrderBy("c.updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	previews := model.ConversationPreviewList{}
	if err := r.Chk(ctx).SelectContext(ctx, &previews, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get conversations: %v", err)
	}

	ids := make([]string, 0, len(previews))
	for _, p := range previews {
		ids = append(ids, p.ID)
	}
	members, err := r.participants(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range previews {
		previews[i].ParticipantIDs = members[previews[i].ID]
	}

	return previews, nil
}

func (r *Repository) ListTickets(ctx context.Context, filter model.TicketFilter) ([]model.Conversation, error) {
	builder := sq.Select(conversationColumns...).
		From("conversations c").
		Where(sq.Eq{"c.kind": model.KindTicket}).
		OrderBy("c.created_at").
		PlaceholderFormat(sq.Dollar)

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"c.status": *filter.Status})
	}
	if filter.Unassigned {
		builder = builder.Where(sq.Eq{"c.assignee_id": nil})
	}
	if filter.RequesterID != "" {
		builder = builder.Where(sq.Eq{"c.requester_id": filter.RequesterID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	tickets := []model.Conversation{}
	if err := r.Chk(ctx).SelectContext(ctx, &tickets, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get tickets: %v", err)
	}

	ids := make([]string, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID)
	}
	members, err := r.participants(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		tickets[i].ParticipantIDs = members[tickets[i].ID]
	}

	return tickets, nil
}

func (r *Repository) GetBooking(ctx context.Context, bookingID string) (*model.BookingParticipants, error) {
	query, args, err := sq.Select("booking_id", "driver_id", "passenger_id").
		From("bookings").
		Where(sq.Eq{"booking_id": bookingID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var booking model.BookingParticipants
	err = r.Chk(ctx).GetContext(ctx, &booking, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %v", err)
	}

	return &booking, nil
}

func (r *Repository) UpsertBooking(ctx context.Context, booking model.BookingParticipants) error {
	query, args, err := sq.Insert("bookings").
		Columns("booking_id", "driver_id", "passenger_id").
		Values(booking.BookingID, booking.DriverID, booking.PassengerID).
		Suffix("ON CONFLICT (booking_id) DO UPDATE SET driver_id = EXCLUDED.driver_id, passenger_id = EXCLUDED.passenger_id, updated_at = NOW()").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return err
}
