package config

// Defaults reproduce the standard PHD quickstart contract.
const (
	// DefaultScratchDir is the well-known scratch location shared across runs.
	DefaultScratchDir = "/tmp/propolis-phd"
	// DefaultRunner is the PHD runner binary name, resolved via PATH.
	DefaultRunner = "phd-runner"
	// DefaultPfexec is the privilege escalation wrapper the runner is invoked under.
	DefaultPfexec = "pfexec"
	// DefaultArtifactTomlPath is the artifact manifest path, relative to the
	// launcher's working directory. The launcher does not check that it exists;
	// the runner owns that validation.
	DefaultArtifactTomlPath = "./artifacts.toml"
)

// FileName is the optional launcher config file, looked up in the working
// directory first and then in the user's home directory.
const FileName = ".phd-launch.toml"

// Config holds the launcher settings. Pfexec is a pointer so an explicit
// empty string in the file ("invoke the runner directly") is distinguishable
// from the key being absent.
type Config struct {
	ScratchDir       string  `toml:"scratch-dir"`
	Runner           string  `toml:"runner"`
	Pfexec           *string `toml:"pfexec"`
	ArtifactTomlPath string  `toml:"artifact-toml-path"`
}

// Settings is a fully resolved Config with every default applied.
type Settings struct {
	ScratchDir       string
	Runner           string
	Pfexec           string
	ArtifactTomlPath string
}

// DefaultSettings returns the quickstart defaults.
func DefaultSettings() Settings {
	return Settings{
		ScratchDir:       DefaultScratchDir,
		Runner:           DefaultRunner,
		Pfexec:           DefaultPfexec,
		ArtifactTomlPath: DefaultArtifactTomlPath,
	}
}

// Resolve applies defaults to any field the config file left unset.
func (c Config) Resolve() Settings {
	out := DefaultSettings()
	if c.ScratchDir != "" {
		out.ScratchDir = c.ScratchDir
	}
	if c.Runner != "" {
		out.Runner = c.Runner
	}
	if c.Pfexec != nil {
		out.Pfexec = *c.Pfexec
	}
	if c.ArtifactTomlPath != "" {
		out.ArtifactTomlPath = c.ArtifactTomlPath
	}
	return out
}
