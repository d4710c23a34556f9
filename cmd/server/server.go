package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-toolkit/events"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
	"github.com/KirkDiggler/rpg-compendium/internal/auth"
	"github.com/KirkDiggler/rpg-compendium/internal/clients/external"
	"github.com/KirkDiggler/rpg-compendium/internal/config"
	compendiumevents "github.com/KirkDiggler/rpg-compendium/internal/events"
	dicehandler "github.com/KirkDiggler/rpg-compendium/internal/handlers/api/v1alpha1"
	compendiumhandler "github.com/KirkDiggler/rpg-compendium/internal/handlers/compendium/v1alpha1"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-compendium/internal/redis"
	dicesession "github.com/KirkDiggler/rpg-compendium/internal/repositories/dice_session"
	magicitemrepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/magic_item"
	monsterrepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/monster"
	"github.com/KirkDiggler/rpg-compendium/internal/repositories/preferences"
	profilerepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/profile"
	"github.com/KirkDiggler/rpg-compendium/internal/telemetry"
)

const serviceName = "rpg-compendium"

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the compendium gRPC server. Configuration is read from
COMPENDIUM_* environment variables; --port overrides COMPENDIUM_GRPC_PORT.`,
	RunE: runServer,
}

var grpcPort int

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}

	logger := telemetry.InitLogger(telemetry.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: serviceName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupTracing(ctx, telemetry.TracingConfig{
		ServiceName: serviceName,
		Endpoint:    cfg.OTELEndpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("failed to flush traces", "error", err)
		}
	}()

	redisClient, err := redis.Connect(ctx, cfg.Redis.Addrs, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cfg, redisClient, logger)
	if err != nil {
		_ = redisClient.Close()
		return err
	}
	defer a.close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := a.server.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")
		a.shutdown(30 * time.Second)
		return nil
	case err := <-errChan:
		return err
	}
}

// app is a fully wired server and the resources it owns
type app struct {
	server  *grpc.Server
	health  *health.Server
	logger  *slog.Logger
	closers []func() error
}

// newApp wires repositories, orchestrators and handlers onto a new grpc
// server. The app takes ownership of redisClient.
func newApp(ctx context.Context, cfg *config.Config, redisClient redis.Client, logger *slog.Logger) (*app, error) {
	a := &app{logger: logger}
	a.closers = append(a.closers, redisClient.Close)

	fail := func(err error) (*app, error) {
		a.close()
		return nil, err
	}

	clk := clock.New()

	monsterRepo, err := monsterrepo.NewRedis(&monsterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fail(err)
	}
	magicItemRepo, err := magicitemrepo.NewRedis(&magicitemrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fail(err)
	}
	profileRepo, err := profilerepo.NewRedis(&profilerepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fail(err)
	}
	diceSessionRepo, err := dicesession.NewRedisRepository(&dicesession.Config{Client: redisClient, Clock: clk})
	if err != nil {
		return fail(err)
	}
	preferenceStore, err := preferences.OpenSQLite(ctx, &preferences.SQLiteConfig{
		Path:  cfg.Preferences.Path,
		Clock: clk,
	})
	if err != nil {
		return fail(err)
	}
	a.closers = append(a.closers, preferenceStore.Close)

	externalClient, err := external.New(&external.Config{
		BaseURL:     cfg.SRD.BaseURL,
		HTTPTimeout: cfg.SRD.HTTPTimeout,
		CacheTTL:    cfg.SRD.CacheTTL,
	})
	if err != nil {
		return fail(err)
	}

	bus := events.NewBus()
	compendiumevents.SubscribeLogger(bus)
	publisher, err := compendiumevents.NewBusPublisher(&compendiumevents.BusPublisherConfig{Bus: bus})
	if err != nil {
		return fail(err)
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: diceSessionRepo,
		IDGenerator:     idgen.NewUUID(idgen.PrefixRoll),
		AllowedSides:    cfg.AllowedDiceSides,
		SessionTTL:      cfg.DiceSessionTTL,
	})
	if err != nil {
		return fail(err)
	}
	compendiumService, err := compendium.NewOrchestrator(&compendium.Config{
		MonsterRepo:    monsterRepo,
		MagicItemRepo:  magicItemRepo,
		ProfileRepo:    profileRepo,
		PreferenceRepo: preferenceStore,
		ExternalClient: externalClient,
		Publisher:      publisher,
		MonsterIDGen:   idgen.NewUUID(idgen.PrefixMonster),
		MagicItemIDGen: idgen.NewUUID(idgen.PrefixMagicItem),
		Clock:          clk,
	})
	if err != nil {
		return fail(err)
	}

	diceHandler, err := dicehandler.NewDiceHandler(&dicehandler.DiceHandlerConfig{DiceService: diceService})
	if err != nil {
		return fail(fmt.Errorf("failed to create dice handler: %w", err))
	}
	compendiumHandler, err := compendiumhandler.NewHandler(&compendiumhandler.HandlerConfig{
		CompendiumService: compendiumService,
	})
	if err != nil {
		return fail(fmt.Errorf("failed to create compendium handler: %w", err))
	}

	validator, err := auth.NewValidator(&auth.Config{
		Secret:   []byte(cfg.Auth.Secret),
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
		TokenTTL: cfg.Auth.TokenTTL,
		Clock:    clk,
	})
	if err != nil {
		return fail(err)
	}

	a.server = grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(telemetry.InterceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(a.recoverPanic)),
			auth.UnaryServerInterceptor(validator, anonymousPolicy(cfg.Auth.AllowAnonymousReads)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(telemetry.InterceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(a.recoverPanic)),
			auth.StreamServerInterceptor(validator, anonymousPolicy(cfg.Auth.AllowAnonymousReads)),
		),
	)

	apiv1alpha1.RegisterDiceServiceServer(a.server, diceHandler)
	compendiumhandler.RegisterCompendiumServiceServer(a.server, compendiumHandler)

	a.health = health.NewServer()
	grpc_health_v1.RegisterHealthServer(a.server, a.health)
	a.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	a.health.SetServingStatus(compendiumhandler.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	a.health.SetServingStatus(apiv1alpha1.DiceService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(a.server)

	return a, nil
}

// anonymousPolicy lets unauthenticated callers read the compendium and
// roll dice when anonymous reads are enabled
func anonymousPolicy(allowReads bool) auth.AnonymousPolicy {
	if !allowReads {
		return auth.DenyAnonymous
	}
	methods := append(compendiumhandler.ReadOnlyMethods(),
		apiv1alpha1.DiceService_RollDice_FullMethodName,
		apiv1alpha1.DiceService_GetRollSession_FullMethodName,
		apiv1alpha1.DiceService_ClearRollSession_FullMethodName,
	)
	return auth.AllowMethods(methods...)
}

func (a *app) recoverPanic(ctx context.Context, p any) error {
	a.logger.ErrorContext(ctx, "recovered from panic", "panic", p)
	return status.Error(codes.Internal, "internal error")
}

// shutdown drains in-flight calls, forcing a stop after the timeout
func (a *app) shutdown(timeout time.Duration) {
	a.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		a.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(timeout):
		a.logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		a.server.Stop()
		<-stopped
	case <-stopped:
		a.logger.Info("server stopped gracefully")
	}
}

// close releases storage in reverse order of acquisition
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("failed to close resource", "error", err)
		}
	}
	a.closers = nil
}
