package config

import (
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "MCQ_APP"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Static  StaticConfig  `mapstructure:"static"`
	Exam    ExamConfig    `mapstructure:"exam"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Log     LogConfig     `mapstructure:"log"`
	Gin     GinConfig     `mapstructure:"gin"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxUploadMB     int64         `mapstructure:"max_upload_mb"`
}

type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

type ExamConfig struct {
	Title string `mapstructure:"title"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

func (s ServerConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":5000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.max_upload_mb", 32)
	v.SetDefault("storage.data_dir", ".")
	v.SetDefault("static.dir", "./dist")
	v.SetDefault("exam.title", "Generated Exam")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("gin.mode", "release")
}

// New builds a viper instance reading config.yaml from ./config or the
// working directory, overridden by MCQ_APP_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads the config file if there is one. found is false when only
// defaults and environment variables apply. When the file exists but cannot
// be read, cfg still holds the defaults so the caller can log the error.
func Load(v *viper.Viper) (cfg Config, found bool, err error) {
	found = true
	if readErr := v.ReadInConfig(); readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			cfg, _ = Decode(v)
			return cfg, false, errors.Wrap(readErr, "failed to read config file")
		}
		found = false
	}
	cfg, err = Decode(v)
	return cfg, found, err
}

func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	cfg.CORS.AllowedOrigins = trimAll(cfg.CORS.AllowedOrigins)
	return cfg, nil
}

// Watch calls onChange with the re-decoded config whenever the file changes.
func Watch(v *viper.Viper, onChange func(Config, fsnotify.Event), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := Decode(v)
		if err != nil {
			onError(err)
			return
		}
		onChange(cfg, e)
	})
	v.WatchConfig()
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
