package structures

type CliFlags struct {
	ConfigPath string
	DBPath     string
	Addr       string
	DebugMode  bool
}

type Server struct {
	Addr string `yaml:"addr" validate:"required"`
}

type StoreConfig struct {
	Driver string `yaml:"driver" validate:"required|in:sqlite3,postgres"`
	DSN    string `yaml:"dsn" validate:"required"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode"`
	Dir   string `yaml:"dir"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
	TTL     int  `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Store     StoreConfig   `yaml:"store"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}
