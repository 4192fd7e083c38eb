package notification

import (
	"context"
	"testing"
	"time"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollow_KeepsID(t *testing.T) {
	svc := NewNotificationService(sse.NewHub(4))

	loading := svc.New(notification.LevelLoading, "Saving...")
	require.NotEmpty(t, loading.ID)

	done := svc.Follow(loading, notification.LevelSuccess, "Saved")
	assert.Equal(t, loading.ID, done.ID)
	assert.Equal(t, notification.LevelSuccess, done.Level)

	other := svc.New(notification.LevelInfo, "x")
	assert.NotEqual(t, loading.ID, other.ID)
}

func TestNotify_ReachesOwnSessionOnly(t *testing.T) {
	svc := NewNotificationService(sse.NewHub(4))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	admin := session.NewAdmin()
	worker := session.NewWorker(session.Profile{ID: 5}, false)

	adminCh, stopAdmin, err := svc.Subscribe(ctx, admin)
	require.NoError(t, err)
	defer stopAdmin()
	workerCh, stopWorker, err := svc.Subscribe(ctx, worker)
	require.NoError(t, err)
	defer stopWorker()

	n := svc.New(notification.LevelSuccess, "Worker added")
	svc.Notify(ctx, admin, n)

	select {
	case got := <-adminCh:
		assert.Equal(t, n.ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("admin did not receive the notice")
	}

	select {
	case got := <-workerCh:
		t.Fatalf("worker received %v", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribe_RequiresSession(t *testing.T) {
	svc := NewNotificationService(sse.NewHub(4))
	_, _, err := svc.Subscribe(context.Background(), nil)
	assert.ErrorIs(t, err, notification.ErrNoSubscriberKey)
}

func TestSubscribe_StopClosesChannel(t *testing.T) {
	hub := sse.NewHub(4)
	svc := NewNotificationService(hub)

	ch, stop, err := svc.Subscribe(context.Background(), session.NewAdmin())
	require.NoError(t, err)
	assert.Equal(t, 1, hub.SubscriberCount("admin"))

	stop()
	stop()
	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, hub.SubscriberCount("admin"))
}
