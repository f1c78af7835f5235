package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/meridianadvisory/partner-portal/internal/entity"
)

// IntakeHandler recebe demandas do fluxo de intake do site (chat/voz).
// O endpoint é público, então tem rate limit por IP.
type IntakeHandler struct {
	requirementRepo entity.RequirementRepositoryInterface
	rateLimiter     *RateLimiter
}

func NewIntakeHandler(requirementRepo entity.RequirementRepositoryInterface) *IntakeHandler {
	return &IntakeHandler{
		requirementRepo: requirementRepo,
		rateLimiter:     NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

type CaptureRequirementRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	Channel string `json:"channel,omitempty"` // chat (default) | voice
}

type CaptureRequirementResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *IntakeHandler) CaptureRequirement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeIntakeResponse(w, http.StatusTooManyRequests, CaptureRequirementResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var req CaptureRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIntakeResponse(w, http.StatusBadRequest, CaptureRequirementResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	if req.Email == "" {
		writeIntakeResponse(w, http.StatusBadRequest, CaptureRequirementResponse{
			Success: false,
			Message: "Email is required",
		})
		return
	}
	if req.Message == "" {
		writeIntakeResponse(w, http.StatusBadRequest, CaptureRequirementResponse{
			Success: false,
			Message: "Message is required",
		})
		return
	}

	requirement := entity.NewRequirement(req.Email, req.Name, req.Phone, req.Message, req.Channel)

	if err := h.requirementRepo.Create(ctx, requirement); err != nil {
		writeIntakeResponse(w, http.StatusInternalServerError, CaptureRequirementResponse{
			Success: false,
			Message: "Failed to capture requirement",
		})
		return
	}

	writeIntakeResponse(w, http.StatusOK, CaptureRequirementResponse{
		Success: true,
		ID:      requirement.ID,
	})
}

func writeIntakeResponse(w http.ResponseWriter, status int, resp CaptureRequirementResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func getClientIP(r *http.Request) string {

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
