package cfg

type Cfg struct {
	// Dataset files
	InputFile   string
	OutputFile  string
	ProfileFile string

	// Logging
	LogFormat string
	Debug     bool

	Version string
}
