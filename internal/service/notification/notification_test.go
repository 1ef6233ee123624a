package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/appointease/appointease_backend/internal/repo"
)

// fakePrefsStore keeps preference rows in memory. hideFirstQuery makes the
// first lookup miss even when the row exists, reproducing the window where
// a concurrent resolver inserts between the miss and our insert.
type fakePrefsStore struct {
	rows           map[uuid.UUID]*repo.EmailNotification
	queryErr       error
	createErr      error
	hideFirstQuery bool

	queries int
	creates int
}

func newFakePrefsStore() *fakePrefsStore {
	return &fakePrefsStore{rows: map[uuid.UUID]*repo.EmailNotification{}}
}

func (f *fakePrefsStore) prefsByUser(_ context.Context, userID uuid.UUID) (*repo.EmailNotification, error) {
	f.queries++
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.hideFirstQuery && f.queries == 1 {
		return nil, &repo.NotFoundError{}
	}
	if row, ok := f.rows[userID]; ok {
		return row, nil
	}
	return nil, &repo.NotFoundError{}
}

func (f *fakePrefsStore) createDefaultPrefs(_ context.Context, userID uuid.UUID) (*repo.EmailNotification, error) {
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	row := defaultPrefsRow(userID)
	f.rows[userID] = row
	return row, nil
}

func defaultPrefsRow(userID uuid.UUID) *repo.EmailNotification {
	return &repo.EmailNotification{
		UserID:               userID,
		AppointmentCreated:   true,
		AppointmentUpdated:   true,
		AppointmentCanceled:  true,
		AppointmentReminder:  true,
		AppointmentConfirmed: true,
	}
}

func prefsService(store prefsStore) *notificationService {
	return &notificationService{prefs: store}
}

func TestResolvePrefs_LazyCreate(t *testing.T) {
	store := newFakePrefsStore()
	svc := prefsService(store)
	uid := uuid.New()

	pref, err := svc.ResolvePrefs(context.Background(), uid)
	if err != nil {
		t.Fatalf("ResolvePrefs: %v", err)
	}
	if pref.UserID != uid {
		t.Errorf("user id = %s, want %s", pref.UserID, uid)
	}
	for name, flag := range map[string]bool{
		"created":   pref.AppointmentCreated,
		"updated":   pref.AppointmentUpdated,
		"canceled":  pref.AppointmentCanceled,
		"reminder":  pref.AppointmentReminder,
		"confirmed": pref.AppointmentConfirmed,
	} {
		if !flag {
			t.Errorf("default %s flag should be enabled", name)
		}
	}
	if store.creates != 1 {
		t.Errorf("creates = %d, want 1", store.creates)
	}

	// Second access finds the row, never inserts again.
	if _, err := svc.ResolvePrefs(context.Background(), uid); err != nil {
		t.Fatalf("second ResolvePrefs: %v", err)
	}
	if store.creates != 1 {
		t.Errorf("creates after second resolve = %d, want 1", store.creates)
	}
}

func TestResolvePrefs_ConflictRefetch(t *testing.T) {
	store := newFakePrefsStore()
	uid := uuid.New()
	store.rows[uid] = defaultPrefsRow(uid)
	store.hideFirstQuery = true
	store.createErr = &repo.ConstraintError{}
	svc := prefsService(store)

	pref, err := svc.ResolvePrefs(context.Background(), uid)
	if err != nil {
		t.Fatalf("ResolvePrefs after conflict: %v", err)
	}
	if pref.UserID != uid {
		t.Errorf("user id = %s, want %s", pref.UserID, uid)
	}
	if store.queries != 2 {
		t.Errorf("queries = %d, want miss then re-fetch", store.queries)
	}
}

func TestResolvePrefs_CreateFailure(t *testing.T) {
	store := newFakePrefsStore()
	store.createErr = errors.New("conn refused")
	svc := prefsService(store)

	if _, err := svc.ResolvePrefs(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error on non-constraint create failure")
	}
}

func TestShouldNotifyByEmail_FailOpen(t *testing.T) {
	store := newFakePrefsStore()
	store.queryErr = errors.New("conn refused")
	svc := prefsService(store)

	allowed, err := svc.ShouldNotifyByEmail(context.Background(), uuid.New(), EventAppointmentReminder)
	if err != nil {
		t.Fatalf("ShouldNotifyByEmail: %v", err)
	}
	if !allowed {
		t.Error("resolution failure must fail open to opted-in")
	}
}

func TestShouldNotifyByEmail_UnknownEvent(t *testing.T) {
	store := newFakePrefsStore()
	svc := prefsService(store)

	_, err := svc.ShouldNotifyByEmail(context.Background(), uuid.New(), EventType("payment_received"))
	if !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("err = %v, want ErrUnknownEvent", err)
	}
	if store.queries != 0 {
		t.Errorf("store queried %d times for an unknown event, want 0", store.queries)
	}
}

func TestShouldNotifyByEmail_RespectsFlag(t *testing.T) {
	store := newFakePrefsStore()
	uid := uuid.New()
	row := defaultPrefsRow(uid)
	row.AppointmentReminder = false
	store.rows[uid] = row
	svc := prefsService(store)

	allowed, err := svc.ShouldNotifyByEmail(context.Background(), uid, EventAppointmentReminder)
	if err != nil {
		t.Fatalf("ShouldNotifyByEmail: %v", err)
	}
	if allowed {
		t.Error("disabled reminder flag should suppress the email")
	}

	allowed, err = svc.ShouldNotifyByEmail(context.Background(), uid, EventAppointmentCreated)
	if err != nil {
		t.Fatalf("ShouldNotifyByEmail: %v", err)
	}
	if !allowed {
		t.Error("created flag still enabled, email should be allowed")
	}
}
