package config

const (
	// AppID prefixes the environment variables and names the debug log.
	AppID = "jsb"
)
