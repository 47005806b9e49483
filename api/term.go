package api

import (
	"net/http"

	"github.com/banachtech/binomial/chart"
	"github.com/banachtech/binomial/lattice"
	"github.com/gin-gonic/gin"
)

type termStructureRequest struct {
	InitialRate float64 `json:"initial_rate" binding:"required"`
	Periods     int     `json:"periods" binding:"required,min=1"`
	Up          float64 `json:"up" binding:"required"`
	Down        float64 `json:"down" binding:"required"`
}

func (server *Server) termStructure(c *gin.Context) {
	var req termStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	prices, spots, err := lattice.TermStructure(req.InitialRate, req.Periods, req.Up, req.Down)
	if err != nil {
		c.AbortWithStatusJSON(errorStatus(err), errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": req, "zcb_prices": prices, "spot_rates": spots})
}

func (server *Server) termStructurePlot(c *gin.Context) {
	var req termStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	_, spots, err := lattice.TermStructure(req.InitialRate, req.Periods, req.Up, req.Down)
	if err != nil {
		c.AbortWithStatusJSON(errorStatus(err), errorResponse(err))
		return
	}

	p, err := chart.TermStructure(spots, "Term Structure")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	img, err := chart.PNG(p)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}
