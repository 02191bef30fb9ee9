package config

const SourceFileExt = ".nano"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".nano"}

// ConfigFileName is looked up in the working directory, then in the
// user's home directory.
const ConfigFileName = "nano.yaml"

// Defaults applied when no nano.yaml is found or a field is omitted.
const (
	DefaultMaxEvalDepth = 10000
	DefaultPrompt       = ">> "
	DefaultHistoryFile  = ".nano_history.db"
	DefaultColorMode    = "auto"
)

// Prelude binding names
const (
	HeadFuncName = "head"
	TailFuncName = "tail"
)
