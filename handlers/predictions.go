package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"campaign-prediction-api/models"
	"campaign-prediction-api/services"
	"campaign-prediction-api/store"

	"github.com/gin-gonic/gin"
)

const (
	historyCachePrefix = "predictions:recent:"
	historyCacheTTL    = 30 * time.Second

	// Redis channel carrying newly stored predictions for the live feed.
	PredictionsChannel = "campaign:predictions"
)

// HistoryCache is the slice of the cache service the prediction handlers
// need. Satisfied by *services.CacheService.
type HistoryCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Publish(ctx context.Context, channel string, message interface{}) error
}

type PredictionsHandler struct {
	store *store.PredictionStore
	cache HistoryCache
}

func NewPredictionsHandler(s *store.PredictionStore, cache HistoryCache) *PredictionsHandler {
	return &PredictionsHandler{store: s, cache: cache}
}

type CreatePredictionRequest struct {
	Caption                string  `json:"caption"`
	Content                string  `json:"content"`
	Platform               string  `json:"platform"`
	PostDate               string  `json:"post_date"`
	PostTime               string  `json:"post_time"`
	Followers              int64   `json:"followers"`
	AdBoost                bool    `json:"ad_boost"`
	PredLikes              float64 `json:"pred_likes"`
	PredComments           float64 `json:"pred_comments"`
	PredShares             float64 `json:"pred_shares"`
	PredClicks             float64 `json:"pred_clicks"`
	PredTimingQualityScore float64 `json:"pred_timing_quality_score"`
}

type HistoryResponse struct {
	Data  []models.Prediction `json:"data"`
	Count int                 `json:"count"`
}

func (h *PredictionsHandler) CreatePrediction(c *gin.Context) {
	var req CreatePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		services.PredictionsFailed.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.store.Create(c.Request.Context(), store.CreateParams{
		Caption:                req.Caption,
		Content:                req.Content,
		Platform:               req.Platform,
		PostDate:               req.PostDate,
		PostTime:               req.PostTime,
		Followers:              req.Followers,
		AdBoost:                req.AdBoost,
		PredLikes:              req.PredLikes,
		PredComments:           req.PredComments,
		PredShares:             req.PredShares,
		PredClicks:             req.PredClicks,
		PredTimingQualityScore: req.PredTimingQualityScore,
	})
	if err != nil {
		services.PredictionsFailed.Inc()
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		return
	}

	services.PredictionsCreated.Inc()

	// Cached history pages are stale now. Invalidate before acknowledging
	// the write, so a client that creates then immediately lists sees its
	// own record. The live feed gets the record over pub/sub.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	h.cache.DeleteByPrefix(ctx, historyCachePrefix)
	h.cache.Publish(ctx, PredictionsChannel, created)

	c.JSON(http.StatusCreated, created)
}

func (h *PredictionsHandler) GetHistory(c *gin.Context) {
	services.HistoryRequests.Inc()
	limit, err := ParseLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cacheKey := fmt.Sprintf("%s%d", historyCachePrefix, limit)

	var cached HistoryResponse
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached.Data != nil {
		services.HistoryCacheHits.Inc()
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := h.store.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		return
	}

	resp := HistoryResponse{Data: rows, Count: len(rows)}
	// Cache synchronously: an async set could land after a concurrent
	// create's invalidation and pin a stale page for the full TTL.
	h.cache.Set(c.Request.Context(), cacheKey, resp, historyCacheTTL)

	c.JSON(http.StatusOK, resp)
}
