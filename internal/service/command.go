package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"devtools/backend/helper"
	"devtools/backend/internal/model"
)

func BuildChmod(req model.ChmodRequest) model.ChmodResponse {
	if len(req.Octal) != 3 || strings.IndexFunc(req.Octal, func(r rune) bool { return r < '0' || r > '7' }) >= 0 {
		return model.ChmodResponse{Valid: false, Command: "Invalid"}
	}
	return model.ChmodResponse{
		Valid:   true,
		Command: fmt.Sprintf("chmod %s %s", req.Octal, helper.Or(req.File, "filename")),
	}
}

var tarArchiveNames = map[string]string{
	"gzip":  "archive.tar.gz",
	"bzip2": "archive.tar.bz2",
	"xz":    "archive.tar.xz",
}

func BuildTar(req model.TarRequest) string {
	var b strings.Builder
	b.WriteString("tar -")
	switch req.Op {
	case "extract":
		b.WriteByte('x')
	case "list":
		b.WriteByte('t')
	default:
		b.WriteByte('c')
	}
	switch req.Comp {
	case "gzip":
		b.WriteByte('z')
	case "bzip2":
		b.WriteByte('j')
	case "xz":
		b.WriteByte('J')
	}
	if req.Verbose {
		b.WriteByte('v')
	}
	b.WriteString("f ")

	archive := helper.Or(req.Archive, "archive.tar")
	if strings.TrimSpace(req.Archive) == "" {
		if name, ok := tarArchiveNames[req.Comp]; ok {
			archive = name
		}
	}
	b.WriteString(helper.DoubleQuote(archive))

	if files := strings.TrimSpace(req.Files); files != "" {
		if req.Op == "extract" {
			b.WriteString(" -C " + helper.DoubleQuote(files))
		} else {
			b.WriteString(" " + files)
		}
	}
	return b.String()
}

func BuildPs(req model.PsRequest) string {
	cmd := "ps"
	if req.Format == "ef" {
		cmd += " -ef"
		if req.Tree {
			cmd += " --forest"
		}
		if req.Wide {
			cmd += "ww"
		}
		if req.Threads {
			cmd += "L"
		}
	} else {
		cmd += " aux"
		if req.Wide {
			cmd += "ww"
		}
		if req.Threads {
			cmd += "L"
		}
		if req.Tree {
			cmd += "f"
		}
	}
	if user := strings.TrimSpace(req.User); user != "" {
		cmd += " -u " + user
	}
	if pid := strings.TrimSpace(req.PID); pid != "" {
		cmd += " -p " + pid
	}
	if req.Sort != "" && req.Sort != "none" {
		cmd += " --sort=" + req.Sort
	}
	if filter := strings.TrimSpace(req.Filter); filter != "" {
		cmd += " | grep " + helper.DoubleQuote(filter)
	}
	return cmd
}

func BuildTcpdump(req model.TcpdumpRequest) string {
	cmd := "tcpdump"
	if v := strings.TrimSpace(req.Interface); v != "" {
		cmd += " -i " + v
	}
	if v := strings.TrimSpace(req.Protocol); v != "" && v != "all" {
		cmd += " " + v
	}
	if v := strings.TrimSpace(req.Host); v != "" {
		cmd += " host " + v
	}
	if v := strings.TrimSpace(req.Port); v != "" {
		cmd += " port " + v
	}
	if req.Verbose {
		cmd += " -v"
	}
	if req.ASCII {
		cmd += " -A"
	}
	if req.Hex {
		cmd += " -X"
	}
	if v := strings.TrimSpace(req.WriteFile); v != "" {
		cmd += " -w " + v
	}
	if v := strings.TrimSpace(req.Count); v != "" {
		cmd += " -c " + v
	}
	return cmd
}

func BuildGit(req model.GitRequest) string {
	target := strings.TrimSpace(req.Target)
	remote := strings.TrimSpace(req.Remote)
	branch := strings.TrimSpace(req.Branch)

	args := []string{"git", req.Cmd}
	add := func(cond bool, a ...string) {
		if cond {
			args = append(args, a...)
		}
	}
	remoteBranch := func() {
		add(remote != "", remote)
		add(remote != "" && branch != "", branch)
	}

	switch req.Cmd {
	case "init", "clone", "merge":
		add(target != "", target)
	case "add":
		if req.OptAll {
			args = append(args, "-A")
		} else {
			add(target != "", target)
		}
	case "commit":
		add(req.OptAll, "-a")
		add(req.OptAmend, "--amend")
		if msg := strings.TrimSpace(req.Msg); msg != "" {
			args = append(args, "-m", helper.DoubleQuote(msg))
		}
	case "push":
		add(req.OptForce, "--force")
		add(req.OptTags, "--tags")
		remoteBranch()
	case "pull":
		add(req.OptRebase, "--rebase")
		remoteBranch()
	case "checkout":
		add(req.OptNewBranch, "-b")
		add(target != "", target)
	case "log":
		add(req.OptOneline, "--oneline")
		add(req.OptGraph, "--graph")
	case "reset":
		add(req.OptHard, "--hard")
		add(target != "", target)
	case "remote":
		add(remote != "", "add", remote)
		add(remote != "" && target != "", target)
	}
	return strings.Join(args, " ")
}

func BuildGitRecipe(req model.GitCmdRequest) model.GitCmdResponse {
	switch req.Action {
	case "undo_commit":
		return model.GitCmdResponse{
			Command:     "git reset --soft HEAD~1",
			Description: "Undo the last commit but keep its changes staged (soft reset)",
		}
	case "undo_changes":
		return model.GitCmdResponse{
			Command:     "git checkout .",
			Description: "Discard every working tree change (uncommitted work is lost)",
		}
	case "log_graph":
		return model.GitCmdResponse{
			Command:     "git log --graph --oneline --decorate --all",
			Description: "Show the commit history as a graph",
		}
	case "tag":
		tag := helper.Or(req.Tag, "v1.0.0")
		return model.GitCmdResponse{
			Command:     fmt.Sprintf(`git tag -a %s -m "%s" && git push origin %s`, tag, helper.Or(req.Msg, "Release version"), tag),
			Description: "Create and push an annotated tag",
		}
	case "branch_delete":
		branch := helper.Or(req.Branch, "feature/old")
		return model.GitCmdResponse{
			Command:     fmt.Sprintf("git branch -d %s && git push origin --delete %s", branch, branch),
			Description: "Delete a branch locally and on the remote",
		}
	case "stash":
		return model.GitCmdResponse{
			Command:     "git stash && git pull && git stash pop",
			Description: "Stash local changes, pull, then restore them",
		}
	}
	return model.GitCmdResponse{Command: "git help"}
}

func BuildStrace(req model.StraceRequest) string {
	cmd := "strace"
	if req.Follow {
		cmd += " -f"
	}
	if req.Summary {
		cmd += " -c"
	}
	if req.Timestamp {
		cmd += " -tt"
	}
	if v := strings.TrimSpace(req.StringLimit); v != "" {
		cmd += " -s " + v
	}
	if v := strings.TrimSpace(req.OutputFile); v != "" {
		cmd += " -o " + helper.DoubleQuote(v)
	}
	if v := strings.TrimSpace(req.Filter); v != "" {
		cmd += " -e " + helper.DoubleQuote(v)
	}
	if v := strings.TrimSpace(req.Target); v != "" {
		cmd += " "
		if req.IsPID {
			cmd += "-p "
		}
		cmd += v
	}
	return cmd
}

func BuildIostat(req model.IostatRequest) string {
	cmd := "iostat"
	if req.Human {
		cmd += " -h"
	}
	if req.Extended {
		cmd += " -x"
	}
	if req.Timestamp {
		cmd += " -t"
	}
	if req.Unit == "k" || req.Unit == "m" {
		cmd += " -" + req.Unit
	}
	if req.Partitions {
		cmd += " -p"
	}
	if v := strings.TrimSpace(req.Device); v != "" {
		cmd += " " + v
	}
	if interval := strings.TrimSpace(req.Interval); interval != "" {
		cmd += " " + interval
		if count := strings.TrimSpace(req.Count); count != "" {
			cmd += " " + count
		}
	}
	return cmd
}

// BuildNice renders nice or renice with the priority clamped to -20..19.
func BuildNice(req model.NiceRequest) string {
	prio := strconv.Itoa(clamp(req.Priority, -20, 19))
	if req.Mode == "renice" {
		cmd := "renice -n " + prio
		switch req.TargetType {
		case "group":
			cmd += " -g"
		case "user":
			cmd += " -u"
		default:
			cmd += " -p"
		}
		if v := strings.TrimSpace(req.Target); v != "" {
			cmd += " " + v
		}
		return cmd
	}
	cmd := "nice -n " + prio
	if v := strings.TrimSpace(req.Command); v != "" {
		cmd += " " + v
	}
	return cmd
}

func BuildLs(req model.LsRequest) string {
	cmd := "ls"
	if req.Color {
		cmd += " --color=auto"
	}
	flags := []struct {
		on bool
		c  byte
	}{
		{req.All, 'a'}, {req.Long, 'l'}, {req.Human, 'h'}, {req.Time, 't'},
		{req.Reverse, 'r'}, {req.Recursive, 'R'}, {req.Inode, 'i'}, {req.Directory, 'd'},
	}
	var shorts []byte
	for _, f := range flags {
		if f.on {
			shorts = append(shorts, f.c)
		}
	}
	if len(shorts) > 0 {
		cmd += " -" + string(shorts)
	}
	if v := strings.TrimSpace(req.Path); v != "" {
		cmd += " " + v
	}
	return cmd
}

func BuildFirewall(req model.FirewallRequest) string {
	if req.Op == "reload" {
		return "firewall-cmd --reload"
	}
	cmd := "firewall-cmd"
	if req.Permanent {
		cmd += " --permanent"
	}
	if v := strings.TrimSpace(req.Zone); v != "" {
		cmd += " --zone=" + v
	}
	kind := "service"
	if req.TargetType == "port" {
		kind = "port"
	}
	switch req.Op {
	case "add", "remove":
		cmd += fmt.Sprintf(" --%s-%s=%s", req.Op, kind, strings.TrimSpace(req.Target))
	case "list":
		cmd += " --list-all"
	}
	return cmd
}

func BuildSystemctl(req model.SystemctlRequest) string {
	cmd := "systemctl"
	if req.UserMode {
		cmd += " --user"
	} else if req.Global {
		cmd += " --global"
	}
	if strings.TrimSpace(req.Operation) != "" {
		cmd += " " + req.Operation
	}
	if req.Force {
		cmd += " --force"
	}
	switch req.Operation {
	case "enable", "disable", "mask":
		if req.Now {
			cmd += " --now"
		}
	}
	if v := strings.TrimSpace(req.Service); v != "" && req.Operation != "daemon-reload" {
		cmd += " " + v
	}
	return cmd
}

func BuildFind(req model.FindRequest) string {
	cmd := "find"
	if v := strings.TrimSpace(req.Path); v != "" {
		cmd += " " + helper.DoubleQuote(v)
	} else {
		cmd += " ."
	}
	if v := strings.TrimSpace(req.Name); v != "" {
		flag := "-name"
		if req.IName {
			flag = "-iname"
		}
		cmd += " " + flag + " " + helper.DoubleQuote(v)
	}
	if v := strings.TrimSpace(req.TargetType); v != "" && v != "all" {
		cmd += " -type " + v
	}
	if req.Empty {
		cmd += " -empty"
	} else if v := strings.TrimSpace(req.Size); v != "" {
		cmd += " -size " + v
	}
	if v := strings.TrimSpace(req.Mtime); v != "" {
		cmd += " -mtime " + v
	}
	if v := strings.TrimSpace(req.Exec); v != "" {
		cmd += " -exec " + v + ` {} \;`
	}
	return cmd
}

// BuildRsync returns the rsync command and, when a host is set, a matching
// ssh_config stanza.
func BuildRsync(req model.RsyncRequest) model.RsyncResponse {
	host := strings.TrimSpace(req.Host)
	user := strings.TrimSpace(req.User)
	port := strings.TrimSpace(req.Port)
	remotePath := strings.TrimSpace(req.RemotePath)
	customPort := port != "" && port != "22"

	cmd := "rsync"
	var shorts []byte
	for _, f := range []struct {
		on bool
		c  byte
	}{{req.Archive, 'a'}, {req.Compress, 'z'}, {req.Verbose, 'v'}, {req.DryRun, 'n'}, {req.Progress, 'P'}} {
		if f.on {
			shorts = append(shorts, f.c)
		}
	}
	if len(shorts) > 0 {
		cmd += " -" + string(shorts)
	}
	if req.Delete {
		cmd += " --delete"
	}
	if customPort {
		cmd += fmt.Sprintf(" -e 'ssh -p %s'", port)
	} else if req.SSH {
		cmd += " -e ssh"
	}
	if v := strings.TrimSpace(req.Exclude); v != "" {
		cmd += " --exclude='" + helper.SingleQuote(v) + "'"
	}
	if v := strings.TrimSpace(req.Source); v != "" {
		cmd += " " + helper.DoubleQuote(v)
	} else {
		cmd += " /source/path"
	}

	dest := helper.Or(remotePath, "/dest/path")
	if host != "" {
		dest = host + ":" + remotePath
		if user != "" {
			dest = user + "@" + dest
		}
	}
	cmd += ` "` + dest + `"`

	var cfg strings.Builder
	if host != "" {
		fmt.Fprintf(&cfg, "Host %s\n    HostName %s\n", host, host)
		if user != "" {
			fmt.Fprintf(&cfg, "    User %s\n", user)
		}
		if customPort {
			fmt.Fprintf(&cfg, "    Port %s\n", port)
		}
	}
	return model.RsyncResponse{Command: cmd, SSHConfig: cfg.String()}
}

// BuildAwk renders an awk one-liner. Each name=value in Variable becomes a
// -v flag; assignments with an invalid awk name are dropped.
func BuildAwk(req model.AwkRequest) string {
	cmd := "awk"
	if req.Separator != "" && req.Separator != "space" {
		cmd += " -F '" + helper.SingleQuote(req.Separator) + "'"
	}
	for _, assign := range strings.Fields(req.Variable) {
		if name, _, ok := strings.Cut(assign, "="); ok && helper.IsValidIdentifier(name) {
			cmd += " -v " + assign
		}
	}
	cmd += " '" + helper.SingleQuote(helper.Or(req.Code, "{print $0}")) + "'"
	if v := strings.TrimSpace(req.File); v != "" {
		cmd += " " + helper.DoubleQuote(v)
	}
	return cmd
}

func BuildSed(req model.SedRequest) string {
	cmd := "sed"
	if req.Inplace {
		cmd += " -i"
	}
	var script string
	switch req.Operation {
	case "substitute":
		script = fmt.Sprintf("s/%s/%s/%s",
			strings.ReplaceAll(req.Pattern, "/", `\/`),
			strings.ReplaceAll(req.Replacement, "/", `\/`),
			req.Flags)
	case "delete":
		script = req.Pattern + "d"
	case "insert":
		script = req.Pattern + `i\ ` + req.Replacement
	case "append":
		script = req.Pattern + `a\ ` + req.Replacement
	}
	cmd += " '" + script + "'"
	if v := strings.TrimSpace(req.File); v != "" {
		cmd += " " + v
	}
	return cmd
}

// BuildCurl renders the request as a curl command and an equivalent Python
// requests snippet. Headers may be an object or a string holding a JSON
// object; they are emitted in key order.
func BuildCurl(req model.CurlRequest) model.CurlResponse {
	method := strings.ToUpper(helper.Or(req.Method, "GET"))
	url := helper.Or(req.URL, "http://localhost:8080")

	var cmd, py strings.Builder
	fmt.Fprintf(&cmd, "curl -X %s '%s'", method, helper.SingleQuote(url))
	fmt.Fprintf(&py, "import requests\n\nurl = \"%s\"\n", url)

	headers := curlHeaders(req.Headers)
	if len(headers) > 0 {
		keys := make([]string, 0, len(headers))
		for k := range headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		py.WriteString("\nheaders = {\n")
		for _, k := range keys {
			fmt.Fprintf(&cmd, " \\\n  -H '%s: %s'", k, headers[k])
			fmt.Fprintf(&py, "  '%s': '%s',\n", k, headers[k])
		}
		py.WriteString("}\n")
	}

	hasPayload := false
	if method == "POST" || method == "PUT" || method == "PATCH" {
		if body, isJSON := curlBody(req.Body); body != "" {
			hasPayload = true
			pyBody := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(body)
			fmt.Fprintf(&py, "\npayload = \"%s\"\n", pyBody)
			if isJSON {
				cmd.WriteString(" \\\n  -H 'Content-Type: application/json'")
			}
			fmt.Fprintf(&cmd, " \\\n  -d '%s'", helper.SingleQuote(body))
		}
	}

	fmt.Fprintf(&py, "\nresponse = requests.request(\"%s\", url", method)
	if len(headers) > 0 {
		py.WriteString(", headers=headers")
	}
	if hasPayload {
		py.WriteString(", data=payload")
	}
	py.WriteString(")\n\nprint(response.text)")

	return model.CurlResponse{Command: cmd.String(), Python: py.String()}
}

func curlHeaders(v any) map[string]string {
	var raw map[string]any
	switch h := v.(type) {
	case map[string]any:
		raw = h
	case string:
		if err := json.Unmarshal([]byte(h), &raw); err != nil {
			return nil
		}
	default:
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, val := range raw {
		if s, ok := val.(string); ok {
			out[k] = s
		} else {
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}

// curlBody flattens the body to a string and reports whether it is JSON.
func curlBody(v any) (string, bool) {
	switch b := v.(type) {
	case nil:
		return "", false
	case string:
		return b, json.Valid([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return "", false
		}
		return string(data), true
	}
}
