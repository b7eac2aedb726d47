package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/bnema/multicart-cli/internal/adapters/render/banner"
	"github.com/bnema/multicart-cli/internal/adapters/render/cartview"
	tomlrepo "github.com/bnema/multicart-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/multicart-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/multicart-cli/internal/adapters/secrets/file"
	"github.com/bnema/multicart-cli/internal/adapters/storefront"
	"github.com/bnema/multicart-cli/internal/application"
	"github.com/bnema/multicart-cli/internal/config"
	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/bnema/multicart-cli/internal/logging"
	"github.com/bnema/multicart-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const configFileEnv = "MCART_CONFIG"

type app struct {
	config       config.Config
	logger       *zap.Logger
	logLevel     zap.AtomicLevel
	catalog      *application.CatalogService
	catalogPath  string
	secretStore  ports.SecretStore
	httpClient   *http.Client
	cartRenderer func(domain.CartSnapshot) (string, error)
}

func wireApp() (*app, error) {
	v := viper.New()
	if path := os.Getenv(configFileEnv); path != "" {
		v.SetConfigFile(path)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, level, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire catalog repository: %w", err)
	}

	secretStore, err := newSecretStore(cfg.Secrets, logger)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	return &app{
		config:       cfg,
		logger:       logger,
		logLevel:     level,
		catalog:      application.NewCatalogService(repo),
		catalogPath:  repo.Path(),
		secretStore:  secretStore,
		httpClient:   http.DefaultClient,
		cartRenderer: cartview.Render,
	}, nil
}

func newSecretStore(cfg config.SecretsConfig, logger *zap.Logger) (ports.SecretStore, error) {
	switch cfg.Backend {
	case "", config.SecretsBackendPass:
		return chainstore.NewPassFirstWithFileFallback(cfg.Dir, logger)
	case config.SecretsBackendFile:
		return filestore.NewStore(cfg.Dir), nil
	default:
		return nil, fmt.Errorf("unsupported secrets backend %q", cfg.Backend)
	}
}

func (a *app) sessionKey() (string, error) {
	if a.config.Storefront.BaseURL == "" {
		return "", fmt.Errorf("%s is required", config.KeyBaseURL)
	}

	parsed, err := url.Parse(a.config.Storefront.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", config.KeyBaseURL, err)
	}

	return domain.SessionSecretKey(parsed.Host)
}

// cartSession is one storefront session: the transport bound to the stored
// session credential, the banner presenter and the reconciler on top.
type cartSession struct {
	service   *application.CartService
	presenter *banner.Presenter
	client    *storefront.Client
	secretKey string
	token     string
}

func (a *app) openCartSession(ctx context.Context) (*cartSession, error) {
	if err := a.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	key, err := a.sessionKey()
	if err != nil {
		return nil, err
	}

	token, err := a.secretStore.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			return nil, fmt.Errorf("load session credential: %w", err)
		}
		a.logger.Debug("no stored session credential, starting anonymous session", zap.String("key", key))
		token = ""
	}

	client, err := storefront.NewClient(storefront.Config{
		BaseURL:           a.config.Storefront.BaseURL,
		RequestTimeout:    a.config.Storefront.RequestTimeout,
		UserAgent:         a.config.Storefront.UserAgent,
		SessionCookieName: a.config.Storefront.SessionCookieName,
		SessionToken:      token,
	}, a.httpClient, a.logger)
	if err != nil {
		return nil, fmt.Errorf("wire storefront client: %w", err)
	}

	presenter := banner.NewPresenter(banner.WithDuration(a.config.Banner.Duration))
	service := application.NewCartService(client, presenter,
		application.WithLogger(a.logger),
		application.WithDeleteConcurrency(a.config.Storefront.DeleteConcurrency),
	)

	return &cartSession{
		service:   service,
		presenter: presenter,
		client:    client,
		secretKey: key,
		token:     token,
	}, nil
}

// close stops the banner timer and remembers a session cookie the storefront
// issued during the run so the next invocation reuses the same cart.
func (a *app) closeCartSession(ctx context.Context, session *cartSession) {
	session.presenter.Close()

	issued := session.client.SessionToken()
	if issued == "" || issued == session.token {
		return
	}

	if err := a.secretStore.Put(ctx, session.secretKey, issued); err != nil {
		a.logger.Warn("persist session credential failed", zap.String("key", session.secretKey), zap.Error(err))
		return
	}
	a.logger.Debug("session credential updated", zap.String("key", session.secretKey))
}
