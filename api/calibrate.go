package api

import (
	"database/sql"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/banachtech/binomial/bdt"
	db "github.com/banachtech/binomial/db/sqlc"
	"github.com/banachtech/binomial/lattice"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var (
	limitersMu sync.Mutex
	limiters   = make(map[string]*rate.Limiter)
)

// getCalibrateLimiter returns the per-user limiter, creating it on first
// use. Calibration is the expensive route, so one request per second with
// burst 2.
func getCalibrateLimiter(prefix string) *rate.Limiter {
	limitersMu.Lock()
	defer limitersMu.Unlock()

	limiter, ok := limiters[prefix]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Second), 2)
		limiters[prefix] = limiter
	}
	return limiter
}

type calibrateRequest struct {
	Curve    []float64 `json:"curve" binding:"required"`
	B        float64   `json:"b"`
	Guess    []float64 `json:"guess"`
	Tol      float64   `json:"tolerance"`
	MaxIter  int       `json:"max_iterations" binding:"min=0"`
	Restarts int       `json:"restarts" binding:"min=0"`
}

func (server *Server) calibrate(c *gin.Context) {
	prefix, exists := c.Get("prefix")
	if !exists {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "msg": "Authentication Error"})
		return
	}

	limiter := getCalibrateLimiter(prefix.(string))
	if !limiter.Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"status": http.StatusTooManyRequests, "msg": "Too Many Requests"})
		return
	}

	var req calibrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var opts []bdt.Option
	if req.Guess != nil {
		opts = append(opts, bdt.WithInitialGuess(req.Guess))
	}
	if req.Tol > 0 {
		opts = append(opts, bdt.WithTolerance(req.Tol))
	}
	if req.MaxIter > 0 {
		opts = append(opts, bdt.WithMaxIterations(req.MaxIter))
	}
	if req.Restarts > 0 {
		opts = append(opts, bdt.WithRestarts(req.Restarts))
	}

	out, err := bdt.Calibrate(req.Curve, req.B, opts...)
	status := http.StatusOK
	if err != nil {
		if !errors.Is(err, lattice.ErrCalibrationNonConvergence) {
			c.AbortWithStatusJSON(errorStatus(err), errorResponse(err))
			return
		}
		// A budget-limited run still carries a usable terminal state; it is
		// stored with converged=false.
		status = http.StatusUnprocessableEntity
	}

	arg := db.CreateCalibrationParams{
		Date:      time.Now().Format(db.Layout),
		B:         req.B,
		Drifts:    out.Drifts,
		Curve:     req.Curve,
		Fitted:    out.Fitted,
		Sse:       out.SSE,
		Converged: out.Converged,
	}

	row, err := server.store.RecordCalibration(c, arg)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(status, gin.H{
		"id":          row.ID,
		"date":        row.Date,
		"drifts":      out.Drifts,
		"fitted":      out.Fitted,
		"sse":         out.SSE,
		"converged":   out.Converged,
		"evaluations": out.Evaluations,
	})
}

func (server *Server) latestCalibration(c *gin.Context) {
	row, err := server.store.GetLatestCalibration(c)
	if err != nil {
		if err == sql.ErrNoRows {
			c.AbortWithStatusJSON(http.StatusNotFound, errorResponse(err))
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, row)
}
