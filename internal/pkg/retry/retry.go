package retry

import (
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

type Config struct {
	// fixed 或者 exponential
	Type               string                    `yaml:"type"`
	FixedInterval      *FixedIntervalConfig      `yaml:"fixedInterval"`
	ExponentialBackoff *ExponentialBackoffConfig `yaml:"exponentialBackoff"`
}

type ExponentialBackoffConfig struct {
	InitialInterval time.Duration `yaml:"initialInterval"`
	MaxInterval     time.Duration `yaml:"maxInterval"`
	MaxRetries      int32         `yaml:"maxRetries"`
}

type FixedIntervalConfig struct {
	Interval   time.Duration `yaml:"interval"`
	MaxRetries int32         `yaml:"maxRetries"`
}

// DefaultConfig 等待依赖启动时用的指数退避
func DefaultConfig() Config {
	return Config{
		Type: "exponential",
		ExponentialBackoff: &ExponentialBackoffConfig{
			InitialInterval: time.Second,
			MaxInterval:     10 * time.Second,
			MaxRetries:      10,
		},
	}
}

// NewRetry 没有配置类型的时候使用 DefaultConfig
func NewRetry(cfg Config) (retry.Strategy, error) {
	switch cfg.Type {
	case "":
		return NewRetry(DefaultConfig())
	case "fixed":
		if cfg.FixedInterval == nil {
			return nil, fmt.Errorf("缺少 fixedInterval 配置")
		}
		return retry.NewFixedIntervalRetryStrategy(cfg.FixedInterval.Interval, cfg.FixedInterval.MaxRetries)
	case "exponential":
		if cfg.ExponentialBackoff == nil {
			return nil, fmt.Errorf("缺少 exponentialBackoff 配置")
		}
		return retry.NewExponentialBackoffRetryStrategy(cfg.ExponentialBackoff.InitialInterval,
			cfg.ExponentialBackoff.MaxInterval, cfg.ExponentialBackoff.MaxRetries)
	default:
		return nil, fmt.Errorf("unknown retry type: %s", cfg.Type)
	}
}
