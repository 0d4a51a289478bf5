package config

const (
	BackendFile = "file"
	BackendNATS = "nats"
)

type Config struct {
	DataDir  string `flag:"data-dir"`
	Backend  string `flag:"backend"`
	NATSURL  string `flag:"nats-url"`
	LogLevel string `flag:"log-level"`
}
