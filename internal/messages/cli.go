package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name and argument synopsis.
	RootUse = "phd-launch <propolis-server-cmd>"
	// RootShort is the short description for the root command.
	RootShort = "Prepare a scratch directory and launch the PHD test runner"
	// RootLong is the long description for the root command.
	RootLong = "phd-launch ensures the PHD scratch directory exists, then invokes\n" +
		"phd-runner under pfexec with the standard quickstart argument set.\n" +
		"All test orchestration is delegated to phd-runner; phd-launch exits\n" +
		"with whatever code the runner returns."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// Flag help text.
	FlagScratchDir       = "Scratch directory used for runner temp and artifact data"
	FlagRunner           = "PHD runner binary to invoke"
	FlagPfexec           = "Privilege escalation wrapper (empty to invoke the runner directly)"
	FlagArtifactTomlPath = "Path to the artifact manifest passed to the runner"
	FlagDryRun           = "Print the composed runner command line without invoking it"
)

// Config messages for loading the launcher config file.
const (
	ConfigReadFileFmt         = "read config %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "config %s has unrecognized keys: %w"
)

// Scratch messages for scratch directory preparation.
const (
	ScratchConflictFmt = "%s: %w; move it aside and re-run"
	ScratchCreateFmt   = "create scratch directory %s: %w"
	ScratchInspectFmt  = "inspect scratch path %s: %w"
	ScratchSystemNil   = "scratch: system is required"
	ScratchPathEmpty   = "scratch: path is required"
)

// Launch messages for runner invocation.
const (
	LaunchStartFailedFmt = "start %s: %w"
	LaunchRunnerRequired = "launch: runner binary is required"
	LaunchSystemNil      = "launch: system is required"
)
