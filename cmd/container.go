package main

import (
	"context"
	"os"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/siftworks/talentsift/insight/insightapi"
	"github.com/siftworks/talentsift/insight/insightsrv"
	"github.com/siftworks/talentsift/internal/ai/embeddings"
	"github.com/siftworks/talentsift/pkg/logx"
	"github.com/siftworks/talentsift/screening/screeningapi"
	"github.com/siftworks/talentsift/screening/screeningsrv"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	Redis    *redis.Client
	Embedder embeddings.Embedder

	// Domain Services
	ScreeningService *screeningsrv.Service
	InsightStore     *insightsrv.Store
	InsightService   *insightsrv.Service

	// API Handlers
	ScreeningHandlers *screeningapi.ScreeningHandlers
	InsightHandlers   *insightapi.InsightHandlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// .env is a development convenience; absence is not an error
	if err := godotenv.Load(); err == nil {
		logx.Debug("Loaded environment from .env")
	}

	logx.SetLevel(logx.ParseLevel(os.Getenv("LOG_LEVEL")))

	// Optional Redis for the embedding vector cache
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASS"),
			DB:       0,
		})
		if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
			logx.Warnf("Failed to connect to Redis, embedding cache disabled: %v", err)
			c.Redis = nil
		}
	}

	c.Embedder = c.buildEmbedder()
	if c.Redis != nil {
		c.Embedder = embeddings.NewCachedEmbedder(c.Embedder, c.Redis, 0)
	}
}

// buildEmbedder picks the embedding backend. OpenAI needs a key; the local
// hashing embedder needs nothing and is the default.
func (c *Container) buildEmbedder() embeddings.Embedder {
	provider := strings.ToLower(os.Getenv("EMBEDDINGS_PROVIDER"))
	apiKey := os.Getenv("OPENAI_API_KEY")

	if provider == "openai" {
		if apiKey == "" {
			logx.Warn("EMBEDDINGS_PROVIDER=openai but OPENAI_API_KEY is not set, using local embedder")
			return embeddings.NewLocalEmbedder()
		}
		logx.Info("Using OpenAI embeddings")
		return embeddings.NewOpenAIEmbedder(apiKey)
	}

	logx.Info("Using local hashing embeddings")
	return embeddings.NewLocalEmbedder()
}

func (c *Container) initServices() {
	ranker := screeningsrv.NewRanker(c.Embedder)
	c.ScreeningService = screeningsrv.NewService(ranker)

	c.InsightStore = insightsrv.NewStore()
	c.InsightService = insightsrv.NewService(c.InsightStore)

	c.ScreeningHandlers = screeningapi.NewScreeningHandlers(c.ScreeningService)
	c.InsightHandlers = insightapi.NewInsightHandlers(c.InsightService)
}

// Close releases infrastructure connections
func (c *Container) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
