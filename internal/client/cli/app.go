package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/lawlink/internal/client/chat"
	"github.com/dmitrijs2005/lawlink/internal/client/client"
	"github.com/dmitrijs2005/lawlink/internal/client/config"
	"github.com/dmitrijs2005/lawlink/internal/client/dashboard"
	"github.com/dmitrijs2005/lawlink/internal/client/forms"
	"github.com/dmitrijs2005/lawlink/internal/client/localdb"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
	"github.com/dmitrijs2005/lawlink/internal/client/search"
	"github.com/dmitrijs2005/lawlink/internal/client/session"
	"github.com/dmitrijs2005/lawlink/internal/cryptox"
	"github.com/dmitrijs2005/lawlink/internal/filex"
	"github.com/dmitrijs2005/lawlink/internal/logging"
)

type App struct {
	cfg        *config.Config
	api        *client.HTTPClient
	uploader   client.DocumentUploader
	session    *session.Manager
	repos      *localdb.Repositories
	validator  *forms.Validator
	dashboards *dashboard.Aggregator
	lawyers    *search.Engine
	logger     logging.Logger

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	// runChat drives the chat screen; replaced in tests.
	runChat func(ctx context.Context, vm *chat.ViewModel, selected models.ID) error
}

// NewApp opens the local database and device key and builds the gateway.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	for _, p := range []string{cfg.DatabasePath, cfg.KeyPath} {
		if err := filex.EnsureParentDir(p); err != nil {
			return nil, err
		}
	}

	repos, err := localdb.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	key, err := cryptox.LoadOrCreateKey(cfg.KeyPath)
	if err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("error loading device key: %w", err)
	}

	api := client.New(cfg.ServerBaseURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRateLimit(cfg.RateLimit),
		client.WithLogger(logger),
	)
	sess := session.NewManager(api, repos, key, logger)
	api.SetTokenSource(sess)

	var uploader client.DocumentUploader = api
	if cfg.UploadMode == config.UploadModeS3 {
		s3c, err := client.NewS3Client(ctx, client.S3Settings{
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
		if err != nil {
			_ = repos.Close()
			return nil, err
		}
		uploader = client.NewS3Uploader(api, s3c, cfg.S3Bucket)
	}

	return newApp(cfg, api, uploader, sess, repos, logger, os.Stdin, os.Stdout), nil
}

func newApp(cfg *config.Config, api *client.HTTPClient, uploader client.DocumentUploader, sess *session.Manager,
	repos *localdb.Repositories, logger logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		cfg:        cfg,
		api:        api,
		uploader:   uploader,
		session:    sess,
		repos:      repos,
		validator:  forms.NewValidator(time.Now),
		dashboards: dashboard.New(logger),
		lawyers:    search.NewEngine(nil),
		logger:     logger,
		reader:     bufio.NewReader(in),
		out:        out,
		now:        time.Now,
	}
	a.runChat = a.runChatProgram
	return a
}

// Run starts the REPL and blocks until the user quits or ctx ends.
func (a *App) Run(ctx context.Context) {
	defer a.repos.Close()

	a.println("Welcome to LawLink (type 'help' for commands)")
	if s := a.currentSession(ctx); s != nil {
		a.printf("Signed in as %s (%s)\n", s.UserID, s.Role)
	}
	runREPL(ctx, a, a.reader)
}

// currentSession logs and swallows storage errors; the REPL treats them as
// being logged out.
func (a *App) currentSession(ctx context.Context) *models.Session {
	s, err := a.session.Current(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to read session", "error", err)
		return nil
	}
	return s
}

func (a *App) status(ctx context.Context) string {
	s := a.currentSession(ctx)
	if s == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", s.Role, s.UserID)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// requireRole prints a hint and returns nil unless the user is logged in
// with one of roles (any role when none are given).
func (a *App) requireRole(ctx context.Context, roles ...models.Role) *models.Session {
	s := a.currentSession(ctx)
	if s == nil {
		a.println("Please log in first.")
		return nil
	}
	if len(roles) == 0 {
		return s
	}
	for _, r := range roles {
		if s.Role == r {
			return s
		}
	}
	a.printf("This command is available to %s accounts only.\n", roles[0])
	return nil
}
