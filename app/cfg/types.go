package cfg

type Cfg struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Pipeline configuration
	SourcesFile    string
	ClassifierURL  string
	ModelPath      string
	VectorizerPath string

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}

// UseLocalModel reports whether both local classifier artifacts are
// configured; otherwise the remote HTTP backend is used.
func (c *Cfg) UseLocalModel() bool {
	return c.ModelPath != "" && c.VectorizerPath != ""
}
