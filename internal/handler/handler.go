package handler

import (
	_ "embed"
	"net/http"
	"time"

	"devtools/backend/internal/observability"
	"devtools/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

//go:embed static/index.html
var indexHTML []byte

// Package level dependencies, overridable in tests.
var (
	clock     clockwork.Clock    = clockwork.NewRealClock()
	rng       service.RandSource = service.NewRand()
	startedAt                    = time.Now()

	recordToolError = observability.RecordToolError
)

type route struct {
	name    string
	handler gin.HandlerFunc
}

var tools = []route{
	// text and code
	{"sql", SqlHandler},
	{"diff", DiffHandler},
	{"regex", RegexHandler},
	{"regex-gen", RegexGenHandler},
	{"regex-build", RegexBuildHandler},
	{"json", JsonHandler},
	{"escape", EscapeHandler},
	{"case", CaseHandler},
	{"js-enc", JsEncHandler},
	{"yaml-to-toml", YamlToTomlHandler},
	{"toml-to-yaml", TomlToYamlHandler},
	{"lorem", LoremHandler},

	// encoding, hashing, time
	{"base64", Base64Handler},
	{"md5", Md5Handler},
	{"hash", Md5Handler},
	{"url", UrlHandler},
	{"jwt", JwtHandler},
	{"date", DateHandler},
	{"color", ColorHandler},
	{"qrcode", QrHandler},
	{"unit-convert", UnitHandler},

	// network
	{"subnet", SubnetHandler},
	{"cron", CronHandler},
	{"whoami", WhoamiHandler},

	// generators
	{"password", PasswordHandler},
	{"token", TokenHandler},
	{"uuid", UuidHandler},
	{"credit-card", CreditCardHandler},
	{"fake-user", FakeUserHandler},

	// command and config builders
	{"chmod", ChmodHandler},
	{"tar", TarHandler},
	{"ps", PsHandler},
	{"tcpdump", TcpdumpHandler},
	{"git", GitHandler},
	{"git-cmd", GitCmdHandler},
	{"strace", StraceHandler},
	{"iostat", IostatHandler},
	{"nice", NiceHandler},
	{"ls", LsHandler},
	{"firewall", FirewallHandler},
	{"systemctl", SystemctlHandler},
	{"find", FindHandler},
	{"rsync", RsyncHandler},
	{"awk", AwkHandler},
	{"sed", SedHandler},
	{"curl", CurlHandler},
	{"dockerfile", DockerfileHandler},
	{"nginx", NginxHandler},
}

// Register mounts every tool under both /api/<name> and /<name>, plus the
// homepage, ping and health endpoints.
func Register(r gin.IRouter) {
	r.GET("/", Home)
	r.GET("/health", Health)

	api := r.Group("/api")
	api.GET("/ping", Ping)
	for _, t := range tools {
		api.POST("/"+t.name, t.handler)
		r.POST("/"+t.name, t.handler)
	}
	api.GET("/whoami", WhoamiHandler)
	r.GET("/whoami", WhoamiHandler)
}

func Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func Ping(c *gin.Context) {
	c.String(http.StatusOK, "Pong")
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": clock.Since(startedAt).Round(time.Second).String(),
		"tools":  len(tools),
	})
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return false
	}
	return true
}

func toolError(tool string, failed bool) {
	if failed {
		recordToolError(tool)
	}
}
