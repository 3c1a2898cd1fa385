package app

import (
	"context"

	"github.com/coachly/mobile/core"
	"github.com/coachly/mobile/core/account"
	"github.com/coachly/mobile/core/session"
	"github.com/coachly/mobile/core/student"
	"github.com/coachly/mobile/core/theme"
	"github.com/coachly/mobile/services/rest"
	"github.com/coachly/mobile/storage/kvstore"
	inmemstore "github.com/coachly/mobile/storage/kvstore/inmem"
	sqlitestore "github.com/coachly/mobile/storage/kvstore/sqlite"
)

// App is the composition root: every long-lived state container is built
// here once at process start and handed to its consumers explicitly. No
// package holds ambient state.
type App struct {
	Config    *core.Config
	Logger    core.Logger
	Storage   kvstore.Store
	REST      *rest.Client
	Session   *session.Store
	Theme     *theme.Manager
	Directory *student.Directory
}

// New wires an App over the given store and router.
func New(conf *core.Config, logger core.Logger, kv kvstore.Store, router session.Router) *App {
	client := rest.NewClient(conf, kv, logger)
	return &App{
		Config:    conf,
		Logger:    logger,
		Storage:   kv,
		REST:      client,
		Session:   session.NewStore(kv, router, logger),
		Theme:     theme.NewManager(kv, logger),
		Directory: student.NewDirectory(client, logger),
	}
}

// Open builds an App backed by the configured device store: the SQLite
// file when a storage path is set, in-memory otherwise.
func Open(conf *core.Config, logger core.Logger, router session.Router) (*App, error) {
	var kv kvstore.Store
	if conf.StoragePath != "" {
		store, err := sqlitestore.Open(conf.StoragePath)
		if err != nil {
			return nil, err
		}
		kv = store
	} else {
		kv = inmemstore.New()
	}
	return New(conf, logger, kv, router), nil
}

// Bootstrap restores persisted state at process start: theme first, then
// the saved session (which redirects to the main surface when present).
func (a *App) Bootstrap(ctx context.Context) {
	a.Theme.Load(ctx)
	a.Session.Restore(ctx)
}

// Close releases the device store.
func (a *App) Close() error {
	return a.Storage.Close()
}

// SignIn validates the login form, authenticates against the backend and
// opens the session. Validation errors never reach the network.
func (a *App) SignIn(ctx context.Context, form account.LoginForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	payload, err := a.REST.Login(ctx, form)
	if err != nil {
		return err
	}
	return a.Session.Login(ctx, payload.Token, payload.User())
}

// SignUp validates the registration form, creates the account and logs
// the new user straight in, as the registration screen does.
func (a *App) SignUp(ctx context.Context, form account.RegisterForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	payload, err := a.REST.Register(ctx, form)
	if err != nil {
		return err
	}
	return a.Session.Login(ctx, payload.Token, payload.User())
}

// SignOut closes the session and returns to the login screen.
func (a *App) SignOut(ctx context.Context) error {
	return a.Session.Logout(ctx)
}
