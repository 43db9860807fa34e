package consts

const (
	ApplicationName    = "Startup Hub Server"
	ApplicationVersion = "v1.0.0"
)
