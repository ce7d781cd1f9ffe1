package embeddings

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/siftworks/talentsift/pkg/logx"
)

const defaultCacheTTL = time.Hour

// CachedEmbedder is a read-through Redis cache in front of another Embedder.
// Keys are hashes of model+text so only derived vectors are ever stored,
// never the source text. Redis failures fall through to the inner embedder.
type CachedEmbedder struct {
	inner  Embedder
	client *redis.Client
	ttl    time.Duration
}

// NewCachedEmbedder wraps inner with a Redis vector cache
func NewCachedEmbedder(inner Embedder, client *redis.Client, ttl time.Duration) *CachedEmbedder {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedEmbedder{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

// Model implements Embedder
func (c *CachedEmbedder) Model() string {
	return c.inner.Model()
}

// Embed implements Embedder
func (c *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch implements Embedder
func (c *CachedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	missing := make([]string, 0, len(texts))
	missingIdx := make([]int, 0, len(texts))

	for i, text := range texts {
		if vector, ok := c.lookup(ctx, text); ok {
			vectors[i] = vector
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	fresh, err := c.inner.EmbedBatch(ctx, missing)
	if err != nil {
		return nil, err
	}

	for j, vector := range fresh {
		vectors[missingIdx[j]] = vector
		c.store(ctx, missing[j], vector)
	}

	return vectors, nil
}

func (c *CachedEmbedder) key(text string) string {
	sum := sha256.Sum256([]byte(c.inner.Model() + "\x00" + text))
	return "emb:" + hex.EncodeToString(sum[:])
}

func (c *CachedEmbedder) lookup(ctx context.Context, text string) ([]float32, bool) {
	data, err := c.client.Get(ctx, c.key(text)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logx.Debugf("embedding cache get failed: %v", err)
		}
		return nil, false
	}

	var vector []float32
	if err := json.Unmarshal(data, &vector); err != nil {
		logx.Debugf("embedding cache entry corrupt: %v", err)
		return nil, false
	}

	return vector, true
}

func (c *CachedEmbedder) store(ctx context.Context, text string, vector []float32) {
	data, err := json.Marshal(vector)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, c.key(text), data, c.ttl).Err(); err != nil {
		logx.Debugf("embedding cache set failed: %v", err)
	}
}

var _ Embedder = (*CachedEmbedder)(nil)
