package session

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachly/mobile/core"
	logsvc "github.com/coachly/mobile/services/logger"
	"github.com/coachly/mobile/storage/kvstore"
	inmemstore "github.com/coachly/mobile/storage/kvstore/inmem"
)

type recordingRouter struct {
	routes []string
}

func (r *recordingRouter) Replace(route string) {
	r.routes = append(r.routes, route)
}

var errStorageDown = errors.New("storage down")

// failingStore fails writes to one key, to simulate a device-storage
// failure between the two session writes.
type failingStore struct {
	kvstore.Store
	failSetKey string
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if key == s.failSetKey {
		return errStorageDown
	}
	return s.Store.Set(ctx, key, value)
}

func testUser() User {
	return User{ID: "u1", Name: "Ann Lee", Email: "ann@x.com", Phone: "0123456789", Role: RoleStudent}
}

func TestStoreLoginThenRestore(t *testing.T) {
	ctx := context.Background()
	kv := inmemstore.New()
	router := &recordingRouter{}
	store := NewStore(kv, router, logsvc.NewNop())

	require.NoError(t, store.Login(ctx, "tok-1", testUser()))

	sess := store.Current()
	assert.True(t, sess.Authenticated())
	assert.Equal(t, []string{RouteTabs}, router.routes)

	// simulated app restart: a fresh store over the same device storage
	router2 := &recordingRouter{}
	store2 := NewStore(kv, router2, logsvc.NewNop())
	assert.True(t, store2.Restore(ctx))

	restored := store2.Current()
	assert.True(t, restored.Authenticated())
	assert.Equal(t, sess.Token, restored.Token)
	assert.Equal(t, *sess.User, *restored.User)
	assert.Equal(t, RoleStudent, restored.User.Role)
	assert.Equal(t, []string{RouteTabs}, router2.routes)
}

func TestStoreRestoreFailSafe(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		seed func(kv kvstore.Store)
	}{
		{name: "nothing persisted", seed: func(kv kvstore.Store) {}},
		{name: "token only", seed: func(kv kvstore.Store) {
			_ = kv.Set(ctx, kvstore.KeyToken, "tok-1")
		}},
		{name: "user only", seed: func(kv kvstore.Store) {
			_ = kv.Set(ctx, kvstore.KeyUser, `{"id":"u1","role":"student"}`)
		}},
		{name: "unreadable user record", seed: func(kv kvstore.Store) {
			_ = kv.Set(ctx, kvstore.KeyToken, "tok-1")
			_ = kv.Set(ctx, kvstore.KeyUser, "{not json")
		}},
		{name: "unknown role", seed: func(kv kvstore.Store) {
			_ = kv.Set(ctx, kvstore.KeyToken, "tok-1")
			_ = kv.Set(ctx, kvstore.KeyUser, `{"id":"u1","role":"admin"}`)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := inmemstore.New()
			tt.seed(kv)
			router := &recordingRouter{}
			store := NewStore(kv, router, logsvc.NewNop())

			assert.False(t, store.Restore(ctx))
			assert.False(t, store.Current().Authenticated())
			assert.Empty(t, router.routes)
		})
	}
}

func TestStoreLoginRollsBackOnPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	kv := inmemstore.New()
	router := &recordingRouter{}
	store := NewStore(&failingStore{Store: kv, failSetKey: kvstore.KeyToken}, router, logsvc.NewNop())

	err := store.Login(ctx, "tok-1", testUser())
	require.Error(t, err)
	assert.True(t, core.IsKind(err, core.KindPersistence))

	// the staged user write was rolled back and the store is untouched
	_, getErr := kv.Get(ctx, kvstore.KeyUser)
	assert.True(t, errors.Is(getErr, kvstore.ErrKeyNotFound))
	assert.False(t, store.Current().Authenticated())
	assert.Empty(t, router.routes)
}

func TestStoreLoginRejectsBadPayload(t *testing.T) {
	ctx := context.Background()
	store := NewStore(inmemstore.New(), &recordingRouter{}, logsvc.NewNop())

	err := store.Login(ctx, "", testUser())
	assert.True(t, errors.Is(err, ErrMissingToken))

	usr := testUser()
	usr.Role = "admin"
	err = store.Login(ctx, "tok-1", usr)
	assert.True(t, errors.Is(err, ErrUnknownRole))

	assert.False(t, store.Current().Authenticated())
}

func TestStoreLoginCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	kv := inmemstore.New()
	router := &recordingRouter{}
	store := NewStore(kv, router, logsvc.NewNop())

	err := store.Login(ctx, "tok-1", testUser())
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, store.Current().Authenticated())
	assert.Empty(t, router.routes)
}

func TestStoreLogout(t *testing.T) {
	ctx := context.Background()
	kv := inmemstore.New()
	router := &recordingRouter{}
	store := NewStore(kv, router, logsvc.NewNop())

	require.NoError(t, store.Login(ctx, "tok-1", testUser()))
	require.NoError(t, store.Logout(ctx))

	assert.False(t, store.Current().Authenticated())
	assert.Equal(t, []string{RouteTabs, RouteLogin}, router.routes)

	// simulated restart after logout stays unauthenticated
	store2 := NewStore(kv, &recordingRouter{}, logsvc.NewNop())
	assert.False(t, store2.Restore(ctx))
}

func TestStoreCurrentReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore(inmemstore.New(), &recordingRouter{}, logsvc.NewNop())
	require.NoError(t, store.Login(ctx, "tok-1", testUser()))

	sess := store.Current()
	sess.User.Name = "mutated"
	assert.Equal(t, "Ann Lee", store.Current().User.Name)
}
