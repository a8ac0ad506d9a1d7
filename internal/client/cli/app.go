package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/adminclient/internal/client/client"
	"github.com/dmitrijs2005/adminclient/internal/client/config"
	"github.com/dmitrijs2005/adminclient/internal/client/profile"
	"github.com/dmitrijs2005/adminclient/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/adminclient/internal/client/services"
	"github.com/dmitrijs2005/adminclient/internal/client/session"
	"github.com/dmitrijs2005/adminclient/internal/common"
	"github.com/dmitrijs2005/adminclient/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	session  *session.Store
	profile  *profile.Store
	auth     services.AuthService
	users    *services.UserService
	projects *services.ProjectService

	reader *bufio.Reader
	out    io.Writer

	mu    sync.Mutex
	route string
}

var (
	_ client.Navigator = (*App)(nil)
	_ client.Notifier  = (*App)(nil)
)

// NewApp opens local storage, restores any saved session and builds the API
// client and services around it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sess := session.NewStore(metadata.NewSQLiteRepository(db), log)
	prof := profile.NewStore()
	prof.Bind(sess)
	if err := sess.Restore(ctx); err != nil {
		log.Warn(ctx, "could not restore session", "error", err)
	}

	a := &App{
		config:  c,
		log:     log,
		db:      db,
		session: sess,
		profile: prof,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	api, err := client.New(c.APIBaseURL, sess,
		client.WithTimeout(c.RequestTimeout),
		client.WithNavigator(a),
		client.WithNotifier(a),
		client.WithLogger(log),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a.wire(api)
	return a, nil
}

// wire builds the services on top of api.
func (a *App) wire(api client.Client) {
	a.auth = services.NewAuthService(api, a.session, a.log)
	a.users = services.NewUserService(api)
	a.projects = services.NewProjectService(api)
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	printlnFn("Welcome to the admin CLI (type 'help' for commands)")
	if !a.isLoggedIn() {
		a.Navigate(ctx, common.LoginRoute)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close(ctx context.Context) {
	if a.auth != nil {
		if err := a.auth.Close(ctx); err != nil {
			a.log.Warn(ctx, "closing api client", "error", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "closing database", "error", err)
		}
	}
}

// Navigate records route; the REPL acts on it before the next prompt.
func (a *App) Navigate(_ context.Context, route string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.route = route
}

// Notify prints message to the user.
func (a *App) Notify(_ context.Context, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintln(a.out, message)
}

// takeRoute returns and clears the pending route.
func (a *App) takeRoute() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	r := a.route
	a.route = ""
	return r
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	name := a.profile.Profile().UserName
	if name == "" {
		return "(logged in)"
	}
	return fmt.Sprintf("(%s)", name)
}
