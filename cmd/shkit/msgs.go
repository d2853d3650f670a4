package shkit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Terminal toolkit for shell scripts"
	MsgRenderShort     = "Print text with {code} markup rendered"
	MsgErrorShort      = "Print rendered text to stderr"
	MsgDieShort        = "Print rendered text to stderr and exit 1"
	MsgHeaderShort     = "Print a ==> section header"
	MsgRunShort        = "Run a command with indented, colored output"
	MsgIndentShort     = "Indent stdin by four spaces"
	MsgLockShort       = "Make sure only one instance of a script runs"
	MsgPlatformShort   = "Print the platform label, e.g. linux-64"
	MsgCodesShort      = "List format codes and what they resolve to"
	MsgAskShort        = "Ask a question and print the answer"
	MsgConfirmShort    = "Ask a yes/no question, exit 0 for yes"
	MsgQuoteShort      = "Shell-quote arguments into one line"
	MsgSnippetShort    = "Print shell functions that wrap shkit"
	MsgConfigShort     = "Inspect shkit configuration"
	MsgConfigShowShort = "Print the effective configuration as TOML"
	MsgConfigInitShort = "Print a commented configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgVersionFormat = "shkit version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigSource  = "# loaded from %s\n"
	MsgLockAcquired  = "lock %s held by pid %d"

	// Error messages
	MsgErrRun      = "{red}%s:{clear} %v"
	MsgErrConfig   = "failed to load configuration: %w"
	MsgErrPlatform = "failed to render platform: %w"
	MsgErrCodes    = "failed to render codes: %w"
	MsgErrPID      = "invalid --pid %d"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor   = "Color mode: auto, always or never"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/shkit/config.toml)"
	MsgFlagOutput  = "Output format: term, text, json or yaml"
	MsgFlagHarness = "Terminal harness: auto, pty or direct"
	MsgFlagPID     = "Pid to record (default: the calling process)"
	MsgFlagName    = "Program name used in the lock-held message"
	MsgFlagStrict  = "Claim the record with an exclusive create"
	MsgFlagDefault = "Answer used when the reply is empty"
	MsgFlagYes     = "Default to yes"
	MsgFlagShell   = "Shell to generate for: sh, bash, zsh or fish (default from $SHELL)"
	MsgFlagPrefix  = "Prefix for the generated function names"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/lock-long.txt
	msgLockLongRaw string
	MsgLockLong    = strings.TrimSpace(msgLockLongRaw)

	//go:embed msgs/lock-example.txt
	msgLockExampleRaw string
	MsgLockExample    = strings.TrimRight(msgLockExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/snippet-long.txt
	msgSnippetLongRaw string
	MsgSnippetLong    = strings.TrimSpace(msgSnippetLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
