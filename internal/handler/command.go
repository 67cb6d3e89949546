package handler

import (
	"net/http"

	"devtools/backend/internal/model"
	"devtools/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// commandHandler binds a request of type T and replies {"command": build(req)}.
func commandHandler[T any](build func(T) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req T
		if !bind(c, &req) {
			return
		}
		c.JSON(http.StatusOK, model.CommandResponse{Command: build(req)})
	}
}

var (
	TarHandler       = commandHandler(service.BuildTar)
	PsHandler        = commandHandler(service.BuildPs)
	TcpdumpHandler   = commandHandler(service.BuildTcpdump)
	GitHandler       = commandHandler(service.BuildGit)
	StraceHandler    = commandHandler(service.BuildStrace)
	IostatHandler    = commandHandler(service.BuildIostat)
	NiceHandler      = commandHandler(service.BuildNice)
	LsHandler        = commandHandler(service.BuildLs)
	FirewallHandler  = commandHandler(service.BuildFirewall)
	SystemctlHandler = commandHandler(service.BuildSystemctl)
	FindHandler      = commandHandler(service.BuildFind)
	AwkHandler       = commandHandler(service.BuildAwk)
	SedHandler       = commandHandler(service.BuildSed)
)

func ChmodHandler(c *gin.Context) {
	var req model.ChmodRequest
	if !bind(c, &req) {
		return
	}
	resp := service.BuildChmod(req)
	toolError("chmod", !resp.Valid)
	c.JSON(http.StatusOK, resp)
}

func GitCmdHandler(c *gin.Context) {
	var req model.GitCmdRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, service.BuildGitRecipe(req))
}

func RsyncHandler(c *gin.Context) {
	var req model.RsyncRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, service.BuildRsync(req))
}

func CurlHandler(c *gin.Context) {
	var req model.CurlRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, service.BuildCurl(req))
}

func DockerfileHandler(c *gin.Context) {
	var req model.DockerfileRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, model.GenericResponse{Result: service.BuildDockerfile(req)})
}

func NginxHandler(c *gin.Context) {
	var req model.NginxRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, model.GenericResponse{Result: service.BuildNginx(req)})
}
