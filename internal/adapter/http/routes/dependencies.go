package routes

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"insurance_xpto/internal/adapter/http/handlers"
	"insurance_xpto/internal/adapter/http/middleware"
	"insurance_xpto/internal/adapter/persistence/cache"
	repository2 "insurance_xpto/internal/adapter/persistence/repository"
	"insurance_xpto/internal/infrastructure/database"
	"insurance_xpto/internal/infrastructure/events"
	"insurance_xpto/internal/infrastructure/ids"
	"insurance_xpto/internal/infrastructure/observability"
	"insurance_xpto/internal/infrastructure/payments"
	"insurance_xpto/internal/infrastructure/security"
	"insurance_xpto/internal/infrastructure/seed"
	"insurance_xpto/internal/infrastructure/storage"
	"insurance_xpto/internal/reporting"
	"insurance_xpto/internal/usecase"
	"insurance_xpto/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const denylistPurgeInterval = 15 * time.Minute

type config struct {
	JWTSecret          string
	JWTTTL             time.Duration
	DenylistBackend    string
	RedisURL           string
	DocumentsBucket    string
	S3Endpoint         string
	MercadoPagoToken   string
	KafkaBrokers       []string
	KafkaTopic         string
	OTLPEndpoint       string
	SeedFile           string
	LoginRateLimitRPS  float64
	PolicyNumberPrefix string
	SnowflakeNode      int64
}

func configFromEnv() config {
	ttl, err := time.ParseDuration(getenvDefault("JWT_TTL", "24h"))
	if err != nil {
		log.Printf("[config] invalid JWT_TTL, using 24h err=%v", err)
		ttl = 24 * time.Hour
	}
	rps, err := strconv.ParseFloat(getenvDefault("LOGIN_RATE_LIMIT_RPS", "1"), 64)
	if err != nil || rps <= 0 {
		rps = 1
	}
	node, err := strconv.ParseInt(getenvDefault("SNOWFLAKE_NODE", "1"), 10, 64)
	if err != nil {
		node = 1
	}

	var brokers []string
	for _, b := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return config{
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTTTL:             ttl,
		DenylistBackend:    strings.ToLower(getenvDefault("TOKEN_DENYLIST_BACKEND", "postgres")),
		RedisURL:           getenvDefault("REDIS_URL", "localhost:6379"),
		DocumentsBucket:    os.Getenv("DOCUMENTS_BUCKET"),
		S3Endpoint:         os.Getenv("S3_ENDPOINT"),
		MercadoPagoToken:   os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		KafkaBrokers:       brokers,
		KafkaTopic:         getenvDefault("KAFKA_TOPIC", "insurance.events"),
		OTLPEndpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		SeedFile:           os.Getenv("SEED_FILE"),
		LoginRateLimitRPS:  rps,
		PolicyNumberPrefix: getenvDefault("POLICY_NUMBER_PREFIX", usecase.DefaultPolicyNumberPrefix),
		SnowflakeNode:      node,
	}
}

type dependencies struct {
	handlers Handlers
	gate     Gate
	closers  []func(context.Context)
}

func (d *dependencies) close(ctx context.Context) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i](ctx)
	}
}

func buildDependencies(ctx context.Context, cfg config) (*dependencies, error) {
	deps := &dependencies{}

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName:  "insurance-service",
		OTLPEndpoint: cfg.OTLPEndpoint,
		Insecure:     true,
		SampleRate:   1,
	})
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, func(ctx context.Context) {
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("[observability] shutdown failed err=%v", err)
		}
	})

	db, err := database.ConnectPostgres(ctx, database.PostgresConfigFromEnv())
	if err != nil {
		return nil, err
	}
	if err := repository2.AutoMigrate(ctx, db); err != nil {
		return nil, err
	}

	users := repository2.NewUserGormRepository(db)
	customers := repository2.NewCustomerGormRepository(db)
	agents := repository2.NewAgentGormRepository(db)
	insuranceTypes := repository2.NewInsuranceTypeGormRepository(db)
	coverages := repository2.NewCoverageGormRepository(db)
	offers := repository2.NewOfferGormRepository(db)
	policies := repository2.NewPolicyGormRepository(db)
	paymentRepo := repository2.NewPaymentGormRepository(db)
	claims := repository2.NewClaimGormRepository(db)
	documents := repository2.NewDocumentGormRepository(db)
	tx := repository2.NewGormTransactor(db)

	denylist, err := buildDenylist(ctx, cfg, db, deps)
	if err != nil {
		return nil, err
	}

	tokens, err := security.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	authz, err := security.NewAuthorizer()
	if err != nil {
		return nil, err
	}

	var publisher interfaces.IEventPublisher = events.LogPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, err
		}
		publisher = kp
		deps.closers = append(deps.closers, func(context.Context) { _ = kp.Close() })
		log.Printf("[events] kafka publisher brokers=%s topic=%s", strings.Join(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	var documentStore interfaces.IDocumentStorage
	if cfg.DocumentsBucket != "" {
		awsCfg, err := database.NewAWSConfigFromEnv(ctx)
		if err != nil {
			return nil, err
		}
		store, err := storage.NewS3DocumentStore(awsCfg, storage.S3Config{Bucket: cfg.DocumentsBucket, Endpoint: cfg.S3Endpoint})
		if err != nil {
			return nil, err
		}
		documentStore = store
	} else {
		log.Printf("[document] archive disabled (no DOCUMENTS_BUCKET)")
	}

	renderer, err := reporting.NewDefaultRenderer()
	if err != nil {
		return nil, err
	}
	txIDs, err := ids.NewTransactionIDs(cfg.SnowflakeNode)
	if err != nil {
		return nil, err
	}

	authUseCase := usecase.NewAuthUseCase(users, customers, agents, tx, tokens, security.NewBcryptHasher(0), denylist)
	catalogUseCase := usecase.NewCatalogUseCase(insuranceTypes, coverages)
	offerUseCase := usecase.NewOfferUseCase(offers, customers, insuranceTypes, coverages, tx, publisher)
	issuanceUseCase := usecase.NewPolicyIssuanceUseCase(
		offers, policies, paymentRepo, insuranceTypes, tx, gateway, publisher,
		usecase.NewRandomPolicyNumberGenerator(cfg.PolicyNumberPrefix),
		txIDs.Next,
	)
	policyUseCase := usecase.NewPolicyUseCase(policies, offers, paymentRepo, tx)
	claimUseCase := usecase.NewClaimUseCase(claims, policies, offers, tx, publisher)
	documentUseCase := usecase.NewDocumentUseCase(usecase.DocumentDeps{
		Policies:       policies,
		Offers:         offers,
		Payments:       paymentRepo,
		Customers:      customers,
		Agents:         agents,
		InsuranceTypes: insuranceTypes,
		Coverages:      coverages,
		Documents:      documents,
	}, renderer, documentStore)

	seedFile, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	if err := seed.Apply(ctx, seedFile, authUseCase, catalogUseCase); err != nil {
		return nil, err
	}

	deps.handlers = Handlers{
		Auth:     handlers.NewAuthHandler(authUseCase),
		Catalog:  handlers.NewCatalogHandler(catalogUseCase),
		Offer:    handlers.NewOfferHandler(offerUseCase, issuanceUseCase),
		Policy:   handlers.NewPolicyHandler(policyUseCase),
		Claim:    handlers.NewClaimHandler(claimUseCase),
		Document: handlers.NewDocumentHandler(documentUseCase),
	}
	deps.gate = Gate{
		Authenticator: authUseCase,
		Authorizer:    authz,
		LoginLimiter:  middleware.NewIPRateLimiter(cfg.LoginRateLimitRPS, 5),
	}
	return deps, nil
}

// buildDenylist picks the revoked-token store. The postgres table is purged
// in the background; redis and dynamodb expire entries on their own.
func buildDenylist(ctx context.Context, cfg config, db *gorm.DB, deps *dependencies) (interfaces.ITokenDenylist, error) {
	switch cfg.DenylistBackend {
	case "redis":
		client, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, func(context.Context) { _ = client.Close() })
		log.Printf("[auth] token denylist backend=redis")
		return cache.NewRedisTokenDenylist(client), nil
	case "dynamodb":
		log.Printf("[auth] token denylist backend=dynamodb")
		return repository2.NewTokenDenylistDynamoRepository(database.ConnectDynamoDB(ctx)), nil
	case "postgres", "":
		repo := repository2.NewTokenDenylistGormRepository(db)
		purgeCtx, cancel := context.WithCancel(context.Background())
		deps.closers = append(deps.closers, func(context.Context) { cancel() })
		go purgeDenylist(purgeCtx, repo)
		log.Printf("[auth] token denylist backend=postgres")
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown TOKEN_DENYLIST_BACKEND %q", cfg.DenylistBackend)
	}
}

func purgeDenylist(ctx context.Context, repo *repository2.TokenDenylistGormRepository) {
	ticker := time.NewTicker(denylistPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.PurgeExpired(ctx)
			if err != nil {
				log.Printf("[auth][denylist] purge failed err=%v", err)
				continue
			}
			if n > 0 {
				log.Printf("[auth][denylist] purged expired tokens count=%d", n)
			}
		}
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
