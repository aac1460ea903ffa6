package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilhamhanifan/maze-solver/api"
	api_i "github.com/ilhamhanifan/maze-solver/api/i"
	"github.com/ilhamhanifan/maze-solver/api/identity"
	mazeapi "github.com/ilhamhanifan/maze-solver/api/maze"
	"github.com/ilhamhanifan/maze-solver/config"
	"github.com/ilhamhanifan/maze-solver/infrastruture/cache"
	"github.com/ilhamhanifan/maze-solver/infrastruture/repo"
	"github.com/ilhamhanifan/maze-solver/infrastruture/token"
	logger "github.com/ilhamhanifan/maze-solver/log"
	"github.com/ilhamhanifan/maze-solver/service"
	"github.com/ilhamhanifan/maze-solver/service/i"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 30 * time.Second

// Dependencies wired by serve.
var (
	appLogger      *logger.Logger
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       *repo.MazeRepo
	mazeCache      i.MazeCache
	jwtTokenizer   i.Tokenizer
	mazeService    i.MazeGenerator
	mazeController api_i.Controller
	router         *api.Router
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Run the maze HTTP API",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func init() {
	mainCommand.AddCommand(commandServe)
}

// newLogger creates a component logger at the configured level or exits.
func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	if err := l.SetLevel(config.Envs.LogLevel); err != nil {
		l.Warn(fmt.Sprintf("Unknown LOG_LEVEL %q, using info", config.Envs.LogLevel))
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initMazeRepo(ctx context.Context) {
	mazeRepo = repo.NewMazeRepo(mongoClient, config.Envs.DBName, "mazes")
	if err := mazeRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Warn(fmt.Sprintf("Creating maze indexes: %v", err))
	}
	appLogger.Info("Maze repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeCache() {
	var err error
	mazeCache, err = cache.NewRedisMazeCache(redisClient, config.Envs.CacheTTLSeconds, newLogger("CACHE", config.ColorBlue))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze cache initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(service.MazeServiceOptions{
		Repo:         mazeRepo,
		Cache:        mazeCache,
		Logger:       newLogger("MAZE", config.ColorCyan),
		MaxDimension: config.Envs.MaxMazeDimension,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		GinMode:                 config.Envs.GinMode,
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(jwtTokenizer, identity.ScopeWriteMazes),
	})
	appLogger.Info("Router initialized")
}

func serve() {
	config.Load()
	appLogger = newLogger("APP", config.ColorGreen)
	defer func() {
		_ = appLogger.Sync()
	}()

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), connectTimeout)
	defer cancelConnect()

	initMongo(connectCtx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initMazeRepo(connectCtx)

	initRedis(connectCtx)
	defer redisClient.Close()
	initMazeCache()

	initJWTTokenizer()
	initMazeService()
	initMazeController()
	initRouter()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger.Info(fmt.Sprintf("Listening on %s:%d", config.Envs.HostIP, config.Envs.RESTPort))
	if err := router.Run(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Running server: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Server stopped")
}
