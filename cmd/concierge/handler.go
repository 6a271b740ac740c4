package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/dileep-u-k/hotel-concierge/internal/agent"
	"github.com/dileep-u-k/hotel-concierge/internal/api"
	"github.com/dileep-u-k/hotel-concierge/internal/cache"
	versionpkg "github.com/dileep-u-k/hotel-concierge/internal/version"

	"github.com/gin-gonic/gin"
)

// QueryHandler serves POST /api/v1/query: cache check, one processed query,
// cache fill.
type QueryHandler struct {
	processor *agent.Processor
	cache     *cache.ResponseCache
	modelID   string
}

func NewQueryHandler(processor *agent.Processor, responseCache *cache.ResponseCache, modelID string) *QueryHandler {
	return &QueryHandler{
		processor: processor,
		cache:     responseCache,
		modelID:   modelID,
	}
}

func (h *QueryHandler) HandleQuery(c *gin.Context) {
	startTime := time.Now()
	var req api.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	log.Printf("--- New Query: '%.60s' ---", req.Query)

	cacheKey := versionpkg.GenerateVersionedCacheKey("concierge", req.Query)
	if cachedVal, found := h.cache.Check(c.Request.Context(), cacheKey); found {
		var cachedResp api.QueryResponse
		if json.Unmarshal([]byte(cachedVal), &cachedResp) == nil {
			log.Println("✅ Cache HIT")
			cachedResp.LatencyMS = time.Since(startTime).Milliseconds()
			cachedResp.CacheStatus = "HIT"
			c.JSON(http.StatusOK, cachedResp)
			return
		}
	}

	result, err := h.processor.Process(c.Request.Context(), req.Query)
	if err != nil {
		// The remote collaborator failed for this one query; report it and
		// move on, the process and catalog state are untouched.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := api.QueryResponse{
		Answer:      result.FinalText,
		ToolResults: result.ToolResults,
		ModelUsed:   h.modelID,
		Usage:       result.Usage,
		LatencyMS:   time.Since(startTime).Milliseconds(),
		CacheStatus: "MISS",
	}

	if respBytes, err := json.Marshal(resp); err != nil {
		log.Printf("WARNING: Failed to marshal response for caching: %v", err)
	} else {
		h.cache.Set(c.Request.Context(), cacheKey, string(respBytes))
	}

	c.JSON(http.StatusOK, resp)
}
