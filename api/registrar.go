package api

import (
	"fmt"
	"net/http"
	"time"

	db "github.com/banachtech/binomial/db/sqlc"
	"github.com/banachtech/binomial/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// register issues a fresh API key and persists the bcrypt hash. The clear
// key is returned exactly once.
func (server *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	prefix, token, err := util.GenerateToken()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	apiKey := fmt.Sprintf("%s.%s", prefix, token)

	hashed, err := bcrypt.GenerateFromPassword([]byte(apiKey), 14)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	now := time.Now()
	arg := db.CreateUserParams{
		EmailAddress: req.Email,
		Prefix:       prefix,
		Token:        string(hashed),
		GeneratedAt:  now.Format(Layout2),
		ExpiredAt:    now.AddDate(0, 6, 0).Format(Layout2),
	}

	user, err := server.store.CreateUser(c, arg)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":      user.EmailAddress,
		"api_key":    apiKey,
		"expired_at": user.ExpiredAt,
		"msg":        "store the api key safely, it is shown only once",
	})
}
