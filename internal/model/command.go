package model

type ChmodRequest struct {
	Octal string `json:"octal"`
	File  string `json:"file"`
}

type ChmodResponse struct {
	Valid   bool   `json:"valid"`
	Command string `json:"command"`
}

type TarRequest struct {
	Op      string `json:"op"`   // create, extract, list
	Comp    string `json:"comp"` // gzip, bzip2, xz
	Verbose bool   `json:"verbose"`
	Archive string `json:"archive"`
	Files   string `json:"files"`
}

type PsRequest struct {
	Format  string `json:"format"` // aux or ef
	Sort    string `json:"sort"`
	Tree    bool   `json:"tree"`
	Filter  string `json:"filter"`
	Wide    bool   `json:"wide"`
	Threads bool   `json:"threads"`
	User    string `json:"user"`
	PID     string `json:"pid"`
}

type TcpdumpRequest struct {
	Interface string `json:"interface"`
	Protocol  string `json:"protocol"`
	Host      string `json:"host"`
	Port      string `json:"port"`
	Verbose   bool   `json:"verbose"`
	ASCII     bool   `json:"ascii"`
	Hex       bool   `json:"hex"`
	WriteFile string `json:"write_file"`
	Count     string `json:"count"`
}

type GitRequest struct {
	Cmd          string `json:"cmd"`
	Target       string `json:"target"`
	Msg          string `json:"msg"`
	Remote       string `json:"remote"`
	Branch       string `json:"branch"`
	OptForce     bool   `json:"opt_force"`
	OptRebase    bool   `json:"opt_rebase"`
	OptAll       bool   `json:"opt_all"`
	OptAmend     bool   `json:"opt_amend"`
	OptHard      bool   `json:"opt_hard"`
	OptNewBranch bool   `json:"opt_new_branch"`
	OptTags      bool   `json:"opt_tags"`
	OptOneline   bool   `json:"opt_oneline"`
	OptGraph     bool   `json:"opt_graph"`
}

type GitCmdRequest struct {
	Action string `json:"action"`
	Tag    string `json:"tag"`
	Msg    string `json:"msg"`
	Branch string `json:"branch"`
}

type GitCmdResponse struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

type StraceRequest struct {
	Target      string `json:"target"`
	IsPID       bool   `json:"is_pid"`
	Follow      bool   `json:"follow"`
	Summary     bool   `json:"summary"`
	OutputFile  string `json:"output_file"`
	Filter      string `json:"filter"`
	StringLimit string `json:"string_limit"`
	Timestamp   bool   `json:"timestamp"`
}

type IostatRequest struct {
	Interval   string `json:"interval"`
	Count      string `json:"count"`
	Human      bool   `json:"human"`
	Extended   bool   `json:"extended"`
	Unit       string `json:"unit"` // k or m
	Partitions bool   `json:"partitions"`
	Timestamp  bool   `json:"timestamp"`
	Device     string `json:"device"`
}

type NiceRequest struct {
	Mode       string `json:"mode"` // nice or renice
	Priority   int    `json:"priority"`
	Command    string `json:"command"`
	TargetType string `json:"target_type"` // pid, group, user
	Target     string `json:"target"`
}

type LsRequest struct {
	Path      string `json:"path"`
	All       bool   `json:"all"`
	Long      bool   `json:"long"`
	Human     bool   `json:"human"`
	Time      bool   `json:"time"`
	Reverse   bool   `json:"reverse"`
	Recursive bool   `json:"recursive"`
	Inode     bool   `json:"inode"`
	Directory bool   `json:"directory"`
	Color     bool   `json:"color"`
}

type FirewallRequest struct {
	Op         string `json:"op"` // add, remove, list, reload
	Zone       string `json:"zone"`
	TargetType string `json:"target_type"` // port or service
	Target     string `json:"target"`
	Permanent  bool   `json:"permanent"`
}

type SystemctlRequest struct {
	Operation string `json:"operation"`
	Service   string `json:"service"`
	UserMode  bool   `json:"user_mode"`
	Now       bool   `json:"now"`
	Force     bool   `json:"force"`
	Global    bool   `json:"global"`
}

type FindRequest struct {
	Path       string `json:"path"`
	Name       string `json:"name"`
	IName      bool   `json:"iname"`
	TargetType string `json:"target_type"`
	Size       string `json:"size"`
	Mtime      string `json:"mtime"`
	Empty      bool   `json:"empty"`
	Exec       string `json:"exec"`
}

type RsyncRequest struct {
	Source     string `json:"source"`
	User       string `json:"user"`
	Host       string `json:"host"`
	Port       string `json:"port"`
	RemotePath string `json:"remote_path"`
	Archive    bool   `json:"archive"`
	Compress   bool   `json:"compress"`
	Verbose    bool   `json:"verbose"`
	Delete     bool   `json:"delete"`
	DryRun     bool   `json:"dry_run"`
	Progress   bool   `json:"progress"`
	SSH        bool   `json:"ssh"`
	Exclude    string `json:"exclude"`
}

type RsyncResponse struct {
	Command   string `json:"command"`
	SSHConfig string `json:"ssh_config"`
}

type AwkRequest struct {
	Separator string `json:"separator"`
	Variable  string `json:"variable"`
	Code      string `json:"code"`
	File      string `json:"file"`
}

type SedRequest struct {
	Operation   string `json:"operation"` // substitute, delete, insert, append
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
	Flags       string `json:"flags"`
	Inplace     bool   `json:"inplace"`
	File        string `json:"file"`
}

type CurlRequest struct {
	Method  string `json:"method"`
	URL     string `json:"url"`
	Headers any    `json:"headers"` // JSON object or a string holding one
	Body    any    `json:"body"`    // string or JSON value
}

type CurlResponse struct {
	Command string `json:"command"`
	Python  string `json:"python"`
}
