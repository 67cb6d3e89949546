package handler

import (
	"net/http"

	"devtools/backend/internal/model"
	"devtools/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func SubnetHandler(c *gin.Context) {
	var req model.SubnetRequest
	if !bind(c, &req) {
		return
	}
	resp := service.CalculateSubnet(req.IP, req.CIDR.String())
	toolError("subnet", !resp.Valid)
	c.JSON(http.StatusOK, resp)
}

func CronHandler(c *gin.Context) {
	var req model.CronRequest
	if !bind(c, &req) {
		return
	}
	resp := service.CheckCron(req.Cron, clock.Now())
	toolError("cron", !resp.Valid)
	c.JSON(http.StatusOK, resp)
}

// WhoamiHandler takes no body; it answers both GET and POST.
func WhoamiHandler(c *gin.Context) {
	c.JSON(http.StatusOK, service.Whoami(c.ClientIP(), c.Request.Header))
}
