package handler

import (
	"net/http"

	"devtools/backend/internal/model"
	"devtools/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	passwordLength = 16
	tokenLength    = 32
	defaultUUIDs   = 5
)

func PasswordHandler(c *gin.Context) {
	var req model.CharsetRequest
	if !bind(c, &req) {
		return
	}
	length, opts := service.CharsetFromRequest(req, passwordLength)
	c.JSON(http.StatusOK, model.PasswordResponse{Password: service.GeneratePassword(rng, length, opts)})
}

func TokenHandler(c *gin.Context) {
	var req model.CharsetRequest
	if !bind(c, &req) {
		return
	}
	length, opts := service.CharsetFromRequest(req, tokenLength)
	c.JSON(http.StatusOK, model.TokenResponse{Token: service.GenerateToken(rng, length, opts)})
}

func UuidHandler(c *gin.Context) {
	var req model.UuidRequest
	if !bind(c, &req) {
		return
	}
	count := defaultUUIDs
	if req.Count != nil {
		count = *req.Count
	}
	hyphens := req.Hyphens == nil || *req.Hyphens

	ids, err := service.GenerateUUIDs(count, hyphens, req.Uppercase)
	if err != nil {
		log.Error().Err(err).Msg("uuid generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.UuidResponse{UUIDs: ids})
}

func CreditCardHandler(c *gin.Context) {
	var req model.CreditCardRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, model.CreditCardResponse{
		Cards: service.GenerateCreditCards(rng, req.Count, req.Issuer, clock.Now()),
	})
}

func FakeUserHandler(c *gin.Context) {
	var req model.FakeUserRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, model.FakeUserResponse{Users: service.GenerateFakeUsers(rng, req.Count, req.Locale)})
}
