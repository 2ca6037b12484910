package config

// Configfile is the structure of both the global config.yaml and the project .devrun.yaml.
// Pointer fields distinguish "unset" from the zero value so that later files only
// override what they actually mention.
type Configfile struct {
	Ignore     []string          `yaml:"ignore"`
	Levels     *int              `yaml:"levels"`
	Verbose    *bool             `yaml:"verbose"`
	Quiet      *bool             `yaml:"quiet"`
	ShowTiming *bool             `yaml:"show_timing"`
	Aliases    map[string]string `yaml:"aliases"`
}
