package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/banachtech/binomial/bsm"
	"github.com/banachtech/binomial/lattice"
	"github.com/banachtech/binomial/pricer"
	"github.com/gin-gonic/gin"
)

// errorStatus maps the pricing error taxonomy to HTTP statuses. Anything
// outside the taxonomy is a server fault.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, lattice.ErrCalibrationNonConvergence):
		return http.StatusUnprocessableEntity
	case errors.Is(err, lattice.ErrInvalidArgument),
		errors.Is(err, lattice.ErrDegenerateLattice),
		errors.Is(err, lattice.ErrNumericalDegeneracy):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type optionRequest struct {
	Steps  int     `json:"steps" binding:"required,min=1"`
	Rate   float64 `json:"rate"`
	Spot   float64 `json:"spot" binding:"required"`
	Strike float64 `json:"strike" binding:"required"`
	Up     float64 `json:"up" binding:"required"`
	Down   float64 `json:"down" binding:"required"`
	Type   string  `json:"type" binding:"required"`
	Style  string  `json:"style" binding:"required"`
}

func (server *Server) option(c *gin.Context) {
	var req optionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	p, err := pricer.Option(req.Steps, req.Rate, req.Spot, req.Strike, req.Up, req.Down,
		pricer.OptionType(req.Type), pricer.ExerciseStyle(req.Style))
	if err != nil {
		c.AbortWithStatusJSON(errorStatus(err), errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": req, "price": p})
}

type swapRequest struct {
	Notional    float64 `json:"notional" binding:"required"`
	FixedRate   float64 `json:"fixed_rate" binding:"required"`
	InitialRate float64 `json:"initial_rate" binding:"required"`
	Periods     int     `json:"periods" binding:"required,min=1"`
	Up          float64 `json:"up" binding:"required"`
	Down        float64 `json:"down" binding:"required"`
}

func (server *Server) swap(c *gin.Context) {
	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	p, err := pricer.Swap(req.Notional, req.FixedRate, req.InitialRate, req.Periods, req.Up, req.Down)
	if err != nil {
		c.AbortWithStatusJSON(errorStatus(err), errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": req, "price": p})
}

type swaptionRequest struct {
	Strike      float64 `json:"strike"`
	FixedRate   float64 `json:"fixed_rate" binding:"required"`
	InitialRate float64 `json:"initial_rate" binding:"required"`
	Expiry      int     `json:"expiry" binding:"min=0"`
	Periods     int     `json:"periods" binding:"required,min=1"`
	Up          float64 `json:"up" binding:"required"`
	Down        float64 `json:"down" binding:"required"`
}

func (server *Server) swaption(c *gin.Context) {
	var req swaptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	p, err := pricer.Swaption(req.Strike, req.FixedRate, req.InitialRate, req.Expiry, req.Periods, req.Up, req.Down)
	if err != nil {
		c.AbortWithStatusJSON(errorStatus(err), errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": req, "price": p})
}

type bsmRequest struct {
	Spot     float64 `json:"spot" binding:"required"`
	Strike   float64 `json:"strike" binding:"required"`
	Maturity float64 `json:"maturity" binding:"required"`
	Rate     float64 `json:"rate"`
	Sigma    float64 `json:"sigma" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Method   string  `json:"method"`
	Samples  int     `json:"samples" binding:"min=0"`
}

const defaultMCSamples = 100000

func (server *Server) bsm(c *gin.Context) {
	var req bsmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	typ := pricer.OptionType(req.Type)

	switch req.Method {
	case "":
		p, err := bsm.Price(req.Spot, req.Strike, req.Maturity, req.Rate, req.Sigma, typ)
		if err != nil {
			c.AbortWithStatusJSON(errorStatus(err), errorResponse(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"contract": req, "price": p})
	case "mc":
		iters := req.Samples
		if iters == 0 {
			iters = defaultMCSamples
		}

		p, se, err := bsm.MC(req.Spot, req.Strike, req.Maturity, req.Rate, req.Sigma, typ, iters)
		if err != nil {
			c.AbortWithStatusJSON(errorStatus(err), errorResponse(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"contract": req, "price": p, "std_error": se})
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(fmt.Errorf("unsupported pricing method: %s", req.Method)))
	}
}
