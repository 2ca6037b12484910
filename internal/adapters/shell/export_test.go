package shell

// ParseVersion exports parseVersion for testing.
var ParseVersion = parseVersion
