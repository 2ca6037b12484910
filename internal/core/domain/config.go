package domain

// DefaultSearchLevels is how many parent directories are searched when nothing is configured.
const DefaultSearchLevels = 2

// Config is the merged user configuration.
type Config struct {
	// Ignore lists runner names that detectors must skip.
	Ignore []string
	// Levels is the number of parent directories to search.
	Levels int
	// Verbose enables debug logging.
	Verbose bool
	// Quiet suppresses everything but errors.
	Quiet bool
	// ShowTiming prints the elapsed time after a dispatched command.
	ShowTiming bool
	// Aliases maps short names to script names.
	Aliases map[string]string
	// Sources lists the config files that contributed, in merge order.
	Sources []string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Levels:  DefaultSearchLevels,
		Aliases: map[string]string{},
	}
}

// ResolveAlias returns the script name an alias points to, or name itself.
func (c *Config) ResolveAlias(name string) string {
	if c == nil {
		return name
	}
	if target, ok := c.Aliases[name]; ok && target != "" {
		return target
	}
	return name
}
