package notification

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/repo"
	entpref "github.com/appointease/appointease_backend/internal/repo/emailnotification"
	entnotif "github.com/appointease/appointease_backend/internal/repo/notification"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	UserID        uuid.UUID
	Type          EventType
	Title         string
	Message       string
	AppointmentID *uuid.UUID
	Metadata      map[string]any
}

type UpdatePrefsRequest struct {
	AppointmentCreated   bool
	AppointmentUpdated   bool
	AppointmentCanceled  bool
	AppointmentReminder  bool
	AppointmentConfirmed bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Notification, error)
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, notifID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// ResolvePrefs returns the user's email preference row, creating it
	// with all flags enabled on first access.
	ResolvePrefs(ctx context.Context, userID uuid.UUID) (*repo.EmailNotification, error)
	UpdatePrefs(ctx context.Context, userID uuid.UUID, req UpdatePrefsRequest) (*repo.EmailNotification, error)

	// ShouldNotifyByEmail reports whether the user has the given event's
	// email flag enabled. Preference resolution failures fail open: the
	// default is opted-in, so a broken prefs read never suppresses mail.
	ShouldNotifyByEmail(ctx context.Context, userID uuid.UUID, evt EventType) (bool, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	db    *repo.Client
	prefs prefsStore
}

func New(db *repo.Client) Service {
	return &notificationService{db: db, prefs: entPrefsStore{db: db}}
}

// prefsStore is the persistence seam for the preference resolver.
type prefsStore interface {
	prefsByUser(ctx context.Context, userID uuid.UUID) (*repo.EmailNotification, error)
	createDefaultPrefs(ctx context.Context, userID uuid.UUID) (*repo.EmailNotification, error)
}

type entPrefsStore struct {
	db *repo.Client
}

func (s entPrefsStore) prefsByUser(ctx context.Context, userID uuid.UUID) (*repo.EmailNotification, error) {
	return s.db.EmailNotification.Query().
		Where(entpref.UserID(userID)).
		Only(ctx)
}

func (s entPrefsStore) createDefaultPrefs(ctx context.Context, userID uuid.UUID) (*repo.EmailNotification, error) {
	return s.db.EmailNotification.Create().
		SetUserID(userID).
		Save(ctx)
}

func (s *notificationService) Create(ctx context.Context, req CreateRequest) (*repo.Notification, error) {
	if !KnownEvent(req.Type) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, req.Type)
	}

	c := s.db.Notification.Create().
		SetUserID(req.UserID).
		SetType(string(req.Type)).
		SetTitle(req.Title).
		SetMessage(req.Message)

	if req.AppointmentID != nil {
		c = c.SetAppointmentID(*req.AppointmentID)
	}
	if req.Metadata != nil {
		c = c.SetMetadata(req.Metadata)
	}

	n, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.Notification.Query().
		Where(entnotif.UserID(userID))

	if unreadOnly {
		q = q.Where(entnotif.IsRead(false))
	}

	notifs, err := q.
		Order(entnotif.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifs, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.db.Notification.Query().
		Where(entnotif.UserID(userID), entnotif.IsRead(false)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notifID, userID uuid.UUID) error {
	n, err := s.db.Notification.Query().
		Where(entnotif.ID(notifID), entnotif.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get notification: %w", err)
	}

	return s.db.Notification.UpdateOne(n).
		SetIsRead(true).
		Exec(ctx)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.db.Notification.Update().
		Where(entnotif.UserID(userID), entnotif.IsRead(false)).
		SetIsRead(true).
		Exec(ctx)
}

func (s *notificationService) ResolvePrefs(ctx context.Context, userID uuid.UUID) (*repo.EmailNotification, error) {
	pref, err := s.prefs.prefsByUser(ctx, userID)
	if err == nil {
		return pref, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get email prefs: %w", err)
	}

	// First access: persist the all-enabled defaults.
	pref, cErr := s.prefs.createDefaultPrefs(ctx, userID)
	if cErr == nil {
		return pref, nil
	}
	if !repo.IsConstraintError(cErr) {
		return nil, fmt.Errorf("create email prefs: %w", cErr)
	}

	// Lost the insert race to a concurrent resolver; the row exists now.
	pref, err = s.prefs.prefsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get email prefs after conflict: %w", err)
	}
	return pref, nil
}

func (s *notificationService) UpdatePrefs(ctx context.Context, userID uuid.UUID, req UpdatePrefsRequest) (*repo.EmailNotification, error) {
	existing, err := s.ResolvePrefs(ctx, userID)
	if err != nil {
		return nil, err
	}

	pref, err := s.db.EmailNotification.UpdateOne(existing).
		SetAppointmentCreated(req.AppointmentCreated).
		SetAppointmentUpdated(req.AppointmentUpdated).
		SetAppointmentCanceled(req.AppointmentCanceled).
		SetAppointmentReminder(req.AppointmentReminder).
		SetAppointmentConfirmed(req.AppointmentConfirmed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update email prefs: %w", err)
	}
	return pref, nil
}

func (s *notificationService) ShouldNotifyByEmail(ctx context.Context, userID uuid.UUID, evt EventType) (bool, error) {
	spec, ok := eventRegistry[evt]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownEvent, evt)
	}

	pref, err := s.ResolvePrefs(ctx, userID)
	if err != nil {
		// Fail open: defaults are opted-in.
		return true, nil
	}
	return spec.prefFlag(pref), nil
}
