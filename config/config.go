// Initializing application configuration from config.yaml and environment
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	OpenAIKeyEnv   = "OPENAI_API_KEY"
	TogetherKeyEnv = "TOGETHER_API_KEY"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	App    AppConfig    `mapstructure:"app"`
	OpenAI OpenAIConfig `mapstructure:"openai"`
	Image  ImageConfig  `mapstructure:"image"`
	Words  WordsConfig  `mapstructure:"words"`
	Events EventsConfig `mapstructure:"events"`
	Web    WebConfig    `mapstructure:"web"`
}

type ServerConfig struct {
	AppVersion   string `mapstructure:"app_version"`
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Timeout      time.Duration
	Idle_timeout time.Duration
	Env          string `mapstructure:"env"`
	Mode         string `mapstructure:"mode"`
	LogLevel     string `mapstructure:"log_level"`
}

type AppConfig struct {
	WordsPerRound int `mapstructure:"words_per_round"`
	// responses smaller than this are sent uncompressed
	GzipMinLength int `mapstructure:"gzip_min_length"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

type ImageConfig struct {
	APIKey        string   `mapstructure:"api_key"`
	BaseURL       string   `mapstructure:"base_url"`
	Model         string   `mapstructure:"model"`
	Width         int      `mapstructure:"width"`
	Height        int      `mapstructure:"height"`
	Steps         int      `mapstructure:"steps"`
	Styles        []string `mapstructure:"styles"`
	VerifyPayload bool     `mapstructure:"verify_payload"`
}

// WordsConfig overrides the built-in word pool when Pool is not empty.
type WordsConfig struct {
	Pool []string `mapstructure:"pool"`
}

type EventsConfig struct {
	Driver   string         `mapstructure:"driver"` // log, kafka, rabbitmq, redis
	Timeout  time.Duration  `mapstructure:"timeout"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type RabbitMQConfig struct {
	URL   string `mapstructure:"url"`
	Queue string `mapstructure:"queue"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`

	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type WebConfig struct {
	TemplatesDir string `mapstructure:"templates_dir"`
	StaticDir    string `mapstructure:"static_dir"`
}

// LoadConfig reads config.yaml from the given directories (./config by default).
// A missing file is not an error: defaults and environment still apply.
func LoadConfig(paths ...string) (*viper.Viper, error) {

	viperInstance := viper.New()

	if len(paths) == 0 {
		paths = []string{"./config"}
	}
	for _, p := range paths {
		viperInstance.AddConfigPath(p)
	}
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	setDefaults(viperInstance)

	// secrets never live in the yaml file
	if err := viperInstance.BindEnv("openai.api_key", OpenAIKeyEnv); err != nil {
		return nil, err
	}
	if err := viperInstance.BindEnv("image.api_key", TogetherKeyEnv); err != nil {
		return nil, err
	}

	err := viperInstance.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return &c, nil
}

// MissingCredentials lists the environment variables whose secrets are empty.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.OpenAI.APIKey == "" {
		missing = append(missing, OpenAIKeyEnv)
	}
	if c.Image.APIKey == "" {
		missing = append(missing, TogetherKeyEnv)
	}
	return missing
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.timeout", 2*time.Minute)
	v.SetDefault("server.idle_timeout", time.Minute)
	v.SetDefault("server.env", "development")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.log_level", "info")

	v.SetDefault("app.words_per_round", 20)
	v.SetDefault("app.gzip_min_length", 1000)

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o")
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("openai.max_tokens", 150)

	v.SetDefault("image.api_key", "")
	v.SetDefault("image.base_url", "https://api.together.xyz/v1")
	v.SetDefault("image.model", "black-forest-labs/FLUX.1-schnell")
	v.SetDefault("image.width", 800)
	v.SetDefault("image.height", 608)
	v.SetDefault("image.steps", 4)
	v.SetDefault("image.verify_payload", true)

	v.SetDefault("events.driver", "log")
	v.SetDefault("events.timeout", 5*time.Second)
	v.SetDefault("events.kafka.topic", "word-blender.events")
	v.SetDefault("events.rabbitmq.queue", "word_blender_events")
	v.SetDefault("events.redis.channel", "word-blender:events")
	v.SetDefault("events.redis.dial_timeout", 5*time.Second)
	v.SetDefault("events.redis.write_timeout", 3*time.Second)

	v.SetDefault("web.templates_dir", "./web/templates")
	v.SetDefault("web.static_dir", "./web/static")
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
