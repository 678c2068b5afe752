package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/text/language"

	accounthandler "cobalt/internal/account/handler"
	accountmodels "cobalt/internal/account/models"
	accountservice "cobalt/internal/account/service"
	accountstore "cobalt/internal/account/store"
	"cobalt/internal/audit"
	careresourcehandler "cobalt/internal/careresource/handler"
	careresourceservice "cobalt/internal/careresource/service"
	careresourcestore "cobalt/internal/careresource/store"
	contenthandler "cobalt/internal/content/handler"
	contentservice "cobalt/internal/content/service"
	contentstore "cobalt/internal/content/store"
	"cobalt/internal/format"
	institutionhandler "cobalt/internal/institution/handler"
	institutionservice "cobalt/internal/institution/service"
	institutionstore "cobalt/internal/institution/store"
	jwttoken "cobalt/internal/jwt_token"
	"cobalt/internal/l10n"
	patientorderhandler "cobalt/internal/patientorder/handler"
	patientorderservice "cobalt/internal/patientorder/service"
	patientorderstore "cobalt/internal/patientorder/store"
	"cobalt/internal/platform/config"
	"cobalt/internal/platform/database"
	"cobalt/internal/platform/health"
	"cobalt/internal/platform/kafka/producer"
	"cobalt/internal/platform/metrics"
	"cobalt/internal/platform/redis"
	"cobalt/internal/platform/storage"
	"cobalt/internal/platform/tracer"
	schedulinghandler "cobalt/internal/scheduling/handler"
	schedulingservice "cobalt/internal/scheduling/service"
	schedulingstore "cobalt/internal/scheduling/store"
	screeninghandler "cobalt/internal/screening/handler"
	screeningservice "cobalt/internal/screening/service"
	screeningstore "cobalt/internal/screening/store"
	"cobalt/internal/seeder"
	studyhandler "cobalt/internal/study/handler"
	studyservice "cobalt/internal/study/service"
	studystore "cobalt/internal/study/store"
	"cobalt/migrations"
	"cobalt/pkg/platform/middleware/auth"
	"cobalt/pkg/platform/middleware/device"
	"cobalt/pkg/platform/middleware/locale"
	"cobalt/pkg/platform/middleware/metadata"
	"cobalt/pkg/platform/middleware/request"
	"cobalt/pkg/validation"
)

const (
	viewerTokenTTL   = time.Hour
	auditBufferSize  = 1024
	accountCacheName = "account"
)

// infra holds the optional backing services. Nil fields mean "not configured".
type infra struct {
	db       *database.Pool
	redis    *redis.Client
	producer *producer.Producer
}

func (i *infra) Close() error {
	var errs []error
	if i.producer != nil {
		errs = append(errs, i.producer.Close())
	}
	if i.redis != nil {
		errs = append(errs, i.redis.Close())
	}
	errs = append(errs, i.db.Close())
	return errors.Join(errs...)
}

func connectInfra(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*infra, error) {
	in := &infra{}
	var err error

	if in.db, err = database.New(cfg.Database); err != nil {
		return nil, err
	}
	if in.db != nil {
		if err := in.db.Migrate(ctx, migrations.FS); err != nil {
			_ = in.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.InfoContext(ctx, "postgres connected")
	}

	if in.redis, err = redis.New(cfg.Redis); err != nil {
		_ = in.Close()
		return nil, err
	}
	if in.redis != nil {
		logger.InfoContext(ctx, "redis connected")
	}

	if in.producer, err = producer.New(cfg.Kafka, logger); err != nil {
		_ = in.Close()
		return nil, err
	}
	if in.producer != nil {
		logger.InfoContext(ctx, "kafka audit sink enabled", "topic", cfg.Kafka.AuditTopic)
	}
	return in, nil
}

// app is the fully wired HTTP surface.
type app struct {
	router    http.Handler
	publisher *audit.Publisher
	tokens    *jwttoken.JWTService
}

// accountStores is the account persistence the service and seeder share.
type accountStores interface {
	accountstore.AccountStore
	accountservice.AddressStore
	accountservice.AccountSourceStore
}

type institutionStores interface {
	institutionservice.InstitutionStore
	institutionservice.AlertStore
	institutionservice.BlurbStore
	institutionservice.ResourceGroupStore
	accountservice.InstitutionReader
}

func buildApp(ctx context.Context, cfg *config.Config, in *infra, reg prometheus.Registerer, logger *slog.Logger) (*app, error) {
	m := metrics.New(reg)
	tr := tracer.NewOTel()

	bundle, err := l10n.NewBundle()
	if err != nil {
		return nil, fmt.Errorf("load message catalogs: %w", err)
	}
	formatters := format.NewFactory(bundle, format.WithObserver(m))

	var auditStore audit.Store
	switch {
	case in.producer != nil:
		auditStore = audit.NewKafkaStore(in.producer, cfg.Kafka.AuditTopic)
	case in.db != nil:
		auditStore = audit.NewPostgresStore(in.db.DB())
	default:
		auditStore = audit.NewInMemoryStore()
	}
	publisher := audit.NewPublisher(auditStore,
		audit.WithAsyncBuffer(auditBufferSize),
		audit.WithPublisherLogger(logger),
	)

	presigner, err := storage.NewUploadManager(cfg.Uploads)
	if err != nil {
		return nil, fmt.Errorf("configure uploads: %w", err)
	}
	tokens := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, viewerTokenTTL)

	var (
		accounts     accountStores
		institutions institutionStores
	)
	memAccounts := accountstore.NewInMemory()
	memInstitutions := institutionstore.NewInMemory()
	if in.db != nil {
		accounts = accountstore.NewPostgres(in.db.DB())
		institutions = institutionstore.NewPostgres(in.db.DB())
	} else {
		accounts = memAccounts
		institutions = memInstitutions
	}
	var accountReader accountservice.AccountStore = accounts
	if in.redis != nil {
		ttl := cfg.Redis.CacheTTL
		if ttl <= 0 {
			ttl = accountstore.DefaultAccountCacheTTL
		}
		cache := redis.NewViewCache[accountmodels.Account](in.redis, accountCacheName, ttl, logger)
		accountReader = accountstore.NewCached(accounts, cache, m)
	}

	contents := contentstore.NewInMemory()
	scheduling := schedulingstore.NewInMemory()
	screenings := screeningstore.NewInMemory()
	orders := patientorderstore.NewInMemory()
	studies := studystore.NewInMemory()
	resources := careresourcestore.NewInMemory()

	if in.db == nil {
		seed := seeder.New(seeder.Stores{
			Institutions:  memInstitutions,
			Accounts:      memAccounts,
			Studies:       studies,
			CareResources: resources,
			PatientOrders: orders,
		}, logger)
		if err := seed.SeedAll(ctx); err != nil {
			return nil, err
		}
	}

	accountSvc := accountservice.New(accountReader, accounts, accounts, accountstore.NewClientDevices(), institutions,
		accountservice.WithLogger(logger),
		accountservice.WithMetrics(m),
		accountservice.WithTracer(tr),
		accountservice.WithAuditPublisher(publisher),
		accountservice.WithEnvironment(cfg.Environment),
	)
	institutionSvc := institutionservice.New(institutions, institutions, institutions, institutions,
		institutionservice.WithLogger(logger),
		institutionservice.WithMetrics(m),
		institutionservice.WithTracer(tr),
	)
	contentSvc := contentservice.New(contents, contents, contents,
		contentservice.WithLogger(logger),
		contentservice.WithMetrics(m),
		contentservice.WithTracer(tr),
	)
	schedulingSvc := schedulingservice.New(scheduling, scheduling, scheduling, accountSvc,
		schedulingservice.WithLogger(logger),
		schedulingservice.WithMetrics(m),
		schedulingservice.WithTracer(tr),
	)
	screeningSvc := screeningservice.New(screenings, screenings, screenings, accounts, tokens, cfg.Environment,
		screeningservice.WithLogger(logger),
		screeningservice.WithMetrics(m),
		screeningservice.WithTracer(tr),
	)
	patientOrderSvc := patientorderservice.New(orders, orders, accountSvc,
		patientorderservice.WithLogger(logger),
		patientorderservice.WithMetrics(m),
		patientorderservice.WithTracer(tr),
		patientorderservice.WithAuditPublisher(publisher),
	)
	studySvc := studyservice.New(studies, studies, studies, presigner,
		studyservice.WithLogger(logger),
		studyservice.WithMetrics(m),
		studyservice.WithTracer(tr),
		studyservice.WithAuditPublisher(publisher),
	)
	careResourceSvc := careresourceservice.New(resources, resources,
		careresourceservice.WithLogger(logger),
		careresourceservice.WithMetrics(m),
		careresourceservice.WithTracer(tr),
	)

	meta, err := metadata.New(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("configure trusted proxies: %w", err)
	}
	// The negotiator falls back to the first supported tag.
	supported := []language.Tag{cfg.Locale.Default}
	for _, tag := range cfg.Locale.Supported {
		if !slices.Contains(supported, tag) {
			supported = append(supported, tag)
		}
	}
	negotiator := locale.New(supported, cfg.Locale.TimeZone)

	healthHandler := health.New(cfg.Environment)
	if in.db != nil {
		healthHandler.RegisterCheck("postgres", in.db.Health)
	}
	if in.redis != nil {
		healthHandler.RegisterCheck("redis", in.redis.Health)
	}
	if in.producer != nil {
		healthHandler.RegisterCheck("kafka", in.producer.Health)
	}

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(request.Recovery(logger))
	r.Use(meta.Handler)
	r.Use(request.Logger(logger))
	r.Use(request.Latency(m))
	r.Use(request.Timeout(cfg.Server.RequestTimeout))
	r.Use(device.Middleware)
	r.Use(negotiator.Handler)
	r.Use(auth.Authenticate(tokens, logger))

	healthHandler.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(request.ContentTypeJSON)
		r.Use(request.BodyLimit(validation.MaxBodySize))
		accounthandler.New(accountSvc, formatters, logger).Register(r)
		institutionhandler.New(institutionSvc, formatters, logger).Register(r)
		contenthandler.New(contentSvc, formatters, logger).Register(r)
		schedulinghandler.New(schedulingSvc, formatters, logger).Register(r)
		screeninghandler.New(screeningSvc, formatters, logger).Register(r)
		patientorderhandler.New(patientOrderSvc, formatters, logger).Register(r)
		studyhandler.New(studySvc, formatters, logger).Register(r)
		careresourcehandler.New(careResourceSvc, formatters, logger).Register(r)
	})

	return &app{router: r, publisher: publisher, tokens: tokens}, nil
}
