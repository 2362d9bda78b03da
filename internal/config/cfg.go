package config

import "github.com/kelseyhightower/envconfig"

type Server struct {
	Address     string `envconfig:"CLIMA_SERVER_ADDRESS" default:":8080"`
	ReadTimeout int    `envconfig:"CLIMA_SERVER_TIMEOUT" default:"10"`
}

type Upstream struct {
	ArchiveURL  string `envconfig:"CLIMA_ARCHIVE_URL" default:"https://archive-api.open-meteo.com/v1/archive"`
	GeoapifyURL string `envconfig:"CLIMA_GEOAPIFY_URL" default:"https://api.geoapify.com/v1/geocode/search"`
	GeoapifyKey string `envconfig:"GEOAPIFY_KEY"`

	// TimeoutSeconds bounds every upstream HTTP call.
	TimeoutSeconds int `envconfig:"CLIMA_UPSTREAM_TIMEOUT" default:"15"`
}

type Redis struct {
	Host string `envconfig:"REDIS_HOST" default:"localhost"`
	Port string `envconfig:"REDIS_PORT" default:"6379"`

	// Enabled switches the history store between redis and process memory.
	Enabled bool `envconfig:"REDIS_ENABLED" default:"false"`

	// LiveTimeHours is the session history TTL.
	LiveTimeHours int `envconfig:"REDIS_LIVE_TIME" default:"24"`
}

type Sweep struct {
	// Spec is the cron schedule of the nightly ranking sweep. Empty disables it.
	Spec string `envconfig:"CLIMA_SWEEP_CRON" default:"0 6 * * *"`
}

type Config struct {
	Server   Server
	Upstream Upstream
	Redis    Redis
	Sweep    Sweep

	LogsPath        string `envconfig:"CLIMA_LOGS_PATH" default:"./log/historial-clima.log"`
	RequestLogsPath string `envconfig:"CLIMA_REQUEST_LOGS_PATH" default:"./log/upstream-requests.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
