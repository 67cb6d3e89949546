package handler

import (
	"net/http"

	"devtools/backend/internal/model"
	"devtools/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func Base64Handler(c *gin.Context) {
	var req model.Base64Request
	if !bind(c, &req) {
		return
	}
	result := service.ProcessBase64(req.Text, req.Action)
	toolError("base64", req.Action != "encode" && result == "Invalid Base64 input")
	c.JSON(http.StatusOK, model.GenericResponse{Result: result})
}

func Md5Handler(c *gin.Context) {
	var req model.Md5Request
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, service.CalculateMD5(req.Text))
}

func UrlHandler(c *gin.Context) {
	var req model.UrlRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, service.ProcessURL(req.Input))
}

func JwtHandler(c *gin.Context) {
	var req model.JwtRequest
	if !bind(c, &req) {
		return
	}
	resp := service.ParseJWT(req.Token)
	toolError("jwt", resp.Error != nil)
	c.JSON(http.StatusOK, resp)
}

func DateHandler(c *gin.Context) {
	var req model.DateRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, service.ParseDate(req.Input, clock.Now()))
}

func ColorHandler(c *gin.Context) {
	var req model.ColorRequest
	if !bind(c, &req) {
		return
	}
	resp := service.ConvertColor(req.Input)
	toolError("color", !resp.Valid)
	c.JSON(http.StatusOK, resp)
}

func QrHandler(c *gin.Context) {
	var req model.QrRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, model.QrResponse{SVG: service.GenerateQR(req.Text)})
}

func UnitHandler(c *gin.Context) {
	var req model.UnitRequest
	if !bind(c, &req) {
		return
	}
	value, _ := req.Value.Float()
	c.JSON(http.StatusOK, service.ConvertUnit(value, req.Type, req.From, req.To))
}
