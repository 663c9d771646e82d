package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/qaflow/qaflow/app/gate"
	"github.com/qaflow/qaflow/app/metrics"
	"github.com/qaflow/qaflow/app/server"
	"github.com/qaflow/qaflow/app/store"
	"github.com/qaflow/qaflow/app/token"
	"github.com/qaflow/qaflow/app/tracing"
)

// ServerCmd implements the server subcommand
type ServerCmd struct {
	DB string `short:"d" long:"db" env:"QAFLOW_DB" default:"qaflow.db" description:"database URL (sqlite file or postgres://...)"`

	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"60s" description:"keep-alive idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"10s" description:"graceful shutdown timeout"`
	} `group:"server" namespace:"server" env-namespace:"QAFLOW_SERVER"`

	Auth struct {
		Secret   string        `long:"secret" env:"SECRET" description:"session cookie signing key, at least 16 characters"`
		LoginTTL time.Duration `long:"login-ttl" env:"LOGIN_TTL" default:"24h" description:"login session TTL"`
	} `group:"auth" namespace:"auth" env-namespace:"QAFLOW_AUTH"`

	Gate struct {
		Config string `long:"config" env:"CONFIG" description:"yaml file with access gate route classification"`
	} `group:"gate" namespace:"gate" env-namespace:"QAFLOW_GATE"`

	Tracing struct {
		Endpoint   string  `long:"endpoint" env:"ENDPOINT" description:"OTLP/HTTP collector URL, tracing disabled if empty"`
		SampleRate float64 `long:"sample-rate" env:"SAMPLE_RATE" default:"1" description:"fraction of traces sampled, 0..1"`
	} `group:"tracing" namespace:"tracing" env-namespace:"QAFLOW_TRACING"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	gateCfg, err := s.gateConfig()
	if err != nil {
		return err
	}

	shutdownTracing, err := tracing.Setup(ctx, tracing.Options{
		Endpoint:    s.Tracing.Endpoint,
		SampleRate:  s.Tracing.SampleRate,
		ServiceName: "qaflow",
		Version:     revision,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("[WARN] %v", err)
		}
	}()

	log.Printf("[INFO] starting qaflow server on %s", s.Server.Address)

	st, err := store.New(ctx, s.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	srv, err := server.New(st, metrics.New(), s.serverConfig(gateCfg))
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func (s *ServerCmd) serverConfig(gateCfg gate.Config) server.Config {
	return server.Config{
		Address:         s.Server.Address,
		ReadTimeout:     s.Server.ReadTimeout,
		WriteTimeout:    s.Server.WriteTimeout,
		IdleTimeout:     s.Server.IdleTimeout,
		ShutdownTimeout: s.Server.ShutdownTimeout,
		Version:         revision,
		Secret:          s.Auth.Secret,
		LoginTTL:        s.Auth.LoginTTL,
		Gate:            gateCfg,
	}
}

func (s *ServerCmd) gateConfig() (gate.Config, error) {
	if s.Gate.Config == "" {
		return gate.DefaultConfig(), nil
	}
	cfg, err := gate.LoadConfig(s.Gate.Config)
	if err != nil {
		return gate.Config{}, fmt.Errorf("failed to load gate config: %w", err)
	}
	log.Printf("[INFO] gate routes loaded from %s", s.Gate.Config)
	return cfg, nil
}

// token command actions
const (
	tokenShow       = "show"
	tokenRegenerate = "regenerate"
	tokenRevoke     = "revoke"
)

// TokenCmd implements the token subcommand, an operator tool for a user's api token
type TokenCmd struct {
	DB     string `short:"d" long:"db" env:"QAFLOW_DB" default:"qaflow.db" description:"database URL (sqlite file or postgres://...)"`
	Email  string `long:"email" required:"true" description:"email of the token owner"`
	Action string `long:"action" choice:"show" choice:"regenerate" choice:"revoke" default:"show" description:"what to do with the token"`
	Debug  bool   `long:"dbg" env:"DEBUG" description:"debug mode"`

	out io.Writer
}

// Execute runs the token command
func (t *TokenCmd) Execute(_ []string) error {
	setupLogs(t.Debug)
	if t.out == nil {
		t.out = os.Stdout
	}
	return t.run(context.Background())
}

func (t *TokenCmd) run(ctx context.Context) error {
	st, err := store.New(ctx, t.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	user, err := st.UserByEmail(ctx, t.Email)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("user %q not found", t.Email)
	}
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	svc := token.NewService(st)
	switch strings.ToLower(t.Action) {
	case tokenShow, "":
		value, err := svc.GetOrIssue(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}
		fmt.Fprintln(t.out, value)
	case tokenRegenerate:
		value, err := svc.Regenerate(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("failed to regenerate token: %w", err)
		}
		log.Printf("[INFO] token regenerated for %s", user.Email)
		fmt.Fprintln(t.out, value)
	case tokenRevoke:
		if err := svc.Revoke(ctx, user.ID); err != nil {
			if errors.Is(err, token.ErrNoToken) {
				return fmt.Errorf("user %q has no token", t.Email)
			}
			return fmt.Errorf("failed to revoke token: %w", err)
		}
		fmt.Fprintf(t.out, "token revoked for %s\n", user.Email)
	default:
		return fmt.Errorf("unknown action %q", t.Action)
	}
	return nil
}
