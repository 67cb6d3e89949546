package service

import (
	"testing"

	"devtools/backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildDockerfile(t *testing.T) {
	t.Run("single stage at the root", func(t *testing.T) {
		out := BuildDockerfile(model.DockerfileRequest{DockerfileStage: model.DockerfileStage{
			Image:   "node:20",
			Workdir: "/app",
			Copy:    ". .",
			Run:     "npm ci\n\nnpm run build",
			Expose:  "80, 443",
			Cmd:     `["node", "server.js"]`,
		}})
		assert.Equal(t, "FROM node:20\n"+
			"WORKDIR /app\n"+
			"COPY . .\n"+
			"RUN npm ci\n"+
			"RUN npm run build\n"+
			"EXPOSE 80\n"+
			"EXPOSE 443\n"+
			`CMD ["node", "server.js"]`+"\n", out)
	})

	t.Run("multi stage", func(t *testing.T) {
		out := BuildDockerfile(model.DockerfileRequest{Stages: []model.DockerfileStage{
			{Image: "golang:1.24", As: "build", Run: "go build -o /bin/app"},
			{Image: "alpine", Copy: "--from=build /bin/app /app", Entrypoint: `["/app"]`},
		}})
		assert.Equal(t, "FROM golang:1.24 AS build\n"+
			"RUN go build -o /bin/app\n"+
			"\n# Stage 2\n"+
			"FROM alpine\n"+
			"COPY --from=build /bin/app /app\n"+
			`ENTRYPOINT ["/app"]`+"\n", out)
	})

	t.Run("empty stage is scratch", func(t *testing.T) {
		assert.Equal(t, "FROM scratch\n", BuildDockerfile(model.DockerfileRequest{}))
	})
}

func TestBuildNginx(t *testing.T) {
	t.Run("static defaults", func(t *testing.T) {
		out := BuildNginx(model.NginxRequest{})
		assert.Equal(t, "server {\n"+
			"    listen 80;\n"+
			"    server_name example.com;\n\n"+
			"    access_log /var/log/nginx/example.com.access.log;\n"+
			"    error_log /var/log/nginx/example.com.error.log;\n\n"+
			"    root /var/www/html;\n"+
			"    index index.html index.htm;\n\n"+
			"    location / {\n"+
			"        try_files $uri $uri/ =404;\n"+
			"    }\n"+
			"}\n", out)
	})

	t.Run("https upstream websocket", func(t *testing.T) {
		out := BuildNginx(model.NginxRequest{
			Domain:           "api.example.org",
			Upstream:         "10.0.0.1:8080\n10.0.0.2:8080",
			HTTPS:            true,
			ForceHTTPS:       true,
			Websocket:        true,
			ProxyReadTimeout: "60s",
			Gzip:             true,
		})
		assert.Contains(t, out, "upstream api_example_org_backend {\n    server 10.0.0.1:8080;\n    server 10.0.0.2:8080;\n}\n")
		assert.Contains(t, out, "return 301 https://$host$request_uri;")
		assert.Contains(t, out, "listen 443 ssl http2;")
		assert.Contains(t, out, "ssl_certificate /etc/nginx/ssl/api.example.org.crt;")
		assert.Contains(t, out, "proxy_pass http://api_example_org_backend;")
		assert.Contains(t, out, `proxy_set_header Connection "upgrade";`)
		assert.Contains(t, out, "proxy_read_timeout 60s;")
		assert.Contains(t, out, "gzip on;")
		assert.NotContains(t, out, "listen 80;\n    server_name api.example.org;\n\n")
	})

	t.Run("proxy with numeric port and extra locations", func(t *testing.T) {
		out := BuildNginx(model.NginxRequest{
			Port:  "8080",
			Proxy: "http://127.0.0.1:3000",
			Locations: []model.NginxLocation{
				{Path: "/static/", Root: "/srv"},
				{Path: "/app/", SPA: true},
				{Path: ""},
			},
		})
		assert.Contains(t, out, "listen 8080;")
		assert.Contains(t, out, "proxy_pass http://127.0.0.1:3000;")
		assert.Contains(t, out, "    location /static/ {\n        root /srv;\n        try_files $uri $uri/ =404;\n    }\n")
		assert.Contains(t, out, "    location /app/ {\n        try_files $uri $uri/ /index.html;\n    }\n")
		assert.NotContains(t, out, "root /var/www/html;")
	})
}
