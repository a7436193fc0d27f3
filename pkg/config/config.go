// Package config는 viper 기반으로 서비스 설정 파일과 환경 변수를 읽어옵니다.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 설정 값 조회 인터페이스
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	IsSet(key string) bool
}

type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string          { return c.v.GetString(key) }
func (c *viperConfig) GetInt(key string) int                { return c.v.GetInt(key) }
func (c *viperConfig) GetBool(key string) bool              { return c.v.GetBool(key) }
func (c *viperConfig) GetFloat64(key string) float64        { return c.v.GetFloat64(key) }
func (c *viperConfig) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }
func (c *viperConfig) GetStringSlice(key string) []string   { return c.v.GetStringSlice(key) }
func (c *viperConfig) IsSet(key string) bool                { return c.v.IsSet(key) }

const (
	configDir  = "configs"
	defaultEnv = "dev"
)

// Option Load 동작을 조정합니다.
type Option func(v *viper.Viper)

// WithDefaults 설정 파일에 없는 키의 기본값을 등록합니다.
func WithDefaults(defaults map[string]interface{}) Option {
	return func(v *viper.Viper) {
		for k, val := range defaults {
			v.SetDefault(k, val)
		}
	}
}

// Load는 configs/{APP_ENV}/{serviceName}.yaml을 읽고, 없으면 configs/example 에서 찾습니다.
// 환경 변수는 {SERVICENAME}_ 접두사로 덮어쓸 수 있습니다 (예: COMMUNITY_DATABASE_HOST).
func Load(serviceName string, opts ...Option) (Config, error) {
	// .env 파일은 없어도 됩니다
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(serviceName)
	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, opt := range opts {
		opt(v)
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = defaultEnv
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join(configDir, env)
	}
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		v.AddConfigPath(filepath.Join(configDir, "example"))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("설정 파일 로드 실패 (%s): %w", serviceName, err)
		}
	}

	return &viperConfig{v: v}, nil
}

// FromMap 맵으로부터 설정을 생성합니다. 테스트에서 사용합니다.
func FromMap(values map[string]interface{}) Config {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return &viperConfig{v: v}
}
