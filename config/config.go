// Package config provides configuration management for the Asiapay merchant service.
// Configuration can be loaded from YAML files and overridden by environment variables.
package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"sync"
)

// Config holds all configuration for the Asiapay merchant service.
// Values can be set via YAML configuration file or environment variables.
// Environment variables take precedence over YAML values.
type Config struct {
	IsDebug        bool `yaml:"is_debug" env:"DEBUG" env-default:"false"`
	DisablePayment bool `yaml:"disable_payment" env:"DISABLE_PAYMENT" env-default:"false"`
	Listen         struct {
		BindIP   string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port     string `yaml:"port" env:"PORT" env-default:"5200"`
		TLS      bool   `yaml:"tls_enabled" env:"TLS_ENABLED" env-default:"false"`
		CertFile string `yaml:"cert_file" env:"TLS_CERT_FILE" env-default:""`
		KeyFile  string `yaml:"key_file" env:"TLS_KEY_FILE" env-default:""`
	} `yaml:"listen"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:"admin"`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:"pass"`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"asiapay"`
	} `yaml:"mongo"`
	Merchant struct {
		Id         string `yaml:"id" env:"MERCHANT_ID" env-default:""`
		Secret     string `yaml:"secret" env:"MERCHANT_SECRET" env-default:""`
		PaymentUrl string `yaml:"payment_url" env:"MERCHANT_PAYMENT_URL" env-default:"https://test.pesopay.com/b2cDemo/eng/payment/payForm.jsp"`
		Currency   string `yaml:"currency" env:"MERCHANT_CURRENCY" env-default:"PHP"`
		Lang       string `yaml:"lang" env:"MERCHANT_LANG" env-default:"E"`
		PayMethod  string `yaml:"pay_method" env:"MERCHANT_PAY_METHOD" env-default:"ALL"`
		PayType    string `yaml:"pay_type" env:"MERCHANT_PAY_TYPE" env-default:"N"`
		SuccessUrl string `yaml:"success_url" env:"MERCHANT_SUCCESS_URL" env-default:""`
		CancelUrl  string `yaml:"cancel_url" env:"MERCHANT_CANCEL_URL" env-default:""`
		FailUrl    string `yaml:"fail_url" env:"MERCHANT_FAIL_URL" env-default:""`
	} `yaml:"merchant"`
}

var instance *Config
var once sync.Once

// GetConfig loads configuration from the specified YAML file path.
// Configuration values can be overridden by environment variables.
// This function uses a singleton pattern and only loads the config once.
//
// Example:
//
//	cfg, err := config.GetConfig("config.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func GetConfig(path string) (*Config, error) {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("load config: %w; %s", err, desc)
			instance = nil
		}
	})
	return instance, err
}

// Default returns a configuration filled from environment variables and
// struct defaults only, without reading a file.
func Default() (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return conf, nil
}
