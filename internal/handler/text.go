package handler

import (
	"net/http"

	"devtools/backend/internal/model"
	"devtools/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func SqlHandler(c *gin.Context) {
	var req model.SqlRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, model.GenericResponse{Result: service.FormatSQL(req.SQL)})
}

func DiffHandler(c *gin.Context) {
	var req model.DiffRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, service.ComputeDiff(req.Old, req.New))
}

func RegexHandler(c *gin.Context) {
	var req model.RegexRequest
	if !bind(c, &req) {
		return
	}
	resp := service.MatchRegex(req.Pattern, req.Text, req.Replace)
	toolError("regex", resp.Error != nil)
	c.JSON(http.StatusOK, resp)
}

func RegexGenHandler(c *gin.Context) {
	var req model.RegexGenRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, service.CommonRegex(req.Key))
}

func RegexBuildHandler(c *gin.Context) {
	var req model.RegexBuildRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, service.BuildRegex(req))
}

func JsonHandler(c *gin.Context) {
	var req model.JsonRequest
	if !bind(c, &req) {
		return
	}
	resp := service.ProcessJSON(req.Input)
	toolError("json", resp.Error != nil)
	c.JSON(http.StatusOK, resp)
}

func EscapeHandler(c *gin.Context) {
	var req model.EscapeRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, model.GenericResponse{Result: service.ProcessEscape(req.Text, req.Mode)})
}

func CaseHandler(c *gin.Context) {
	var req model.CaseRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, model.GenericResponse{Result: service.ConvertCase(req.Text, req.Mode)})
}

func JsEncHandler(c *gin.Context) {
	var req model.JsEncRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, model.GenericResponse{Result: service.ObfuscateJS(req.JS, req.Mode)})
}

func YamlToTomlHandler(c *gin.Context) {
	var req model.YamlRequest
	if !bind(c, &req) {
		return
	}
	out, err := service.YamlToToml(req.Yaml)
	c.JSON(http.StatusOK, convertResponse("yaml-to-toml", out, err))
}

func TomlToYamlHandler(c *gin.Context) {
	var req model.TomlRequest
	if !bind(c, &req) {
		return
	}
	out, err := service.TomlToYaml(req.Toml)
	c.JSON(http.StatusOK, convertResponse("toml-to-yaml", out, err))
}

func convertResponse(tool, out string, err error) model.ConvertResponse {
	if err != nil {
		recordToolError(tool)
		msg := err.Error()
		return model.ConvertResponse{Error: &msg}
	}
	return model.ConvertResponse{Result: out}
}

func LoremHandler(c *gin.Context) {
	var req model.LoremRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, model.GenericResponse{Result: service.GenerateLorem(rng, req.Count, req.Mode)})
}
