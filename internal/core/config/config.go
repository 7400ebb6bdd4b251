package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// RedisURL is the connection URL of the persistent store.
	RedisURL string `mapstructure:"REDIS_URL" required:"true"`

	// CatalogURL optionally points to a remote product feed (JSON array).
	// When empty, the built-in catalog is served.
	CatalogURL string `mapstructure:"CATALOG_URL"`

	// Merchant holds the merchant contact and identity configuration.
	Merchant MerchantConfig `mapstructure:",squash"`

	// Shipping holds the shipping fee configuration.
	Shipping ShippingConfig `mapstructure:",squash"`
}

// MerchantConfig holds the merchant identity used in order hand-off.
// Phone and Email default to unconfigured placeholders; the dispatcher
// refuses to attempt delivery until they are replaced.
type MerchantConfig struct {
	// StoreName appears in order texts and invoices.
	StoreName string `mapstructure:"MERCHANT_STORE_NAME" default:"AN Enterprises"`
	// Phone is the WhatsApp contact number, e.g. +919876543210.
	Phone string `mapstructure:"MERCHANT_PHONE" default:"+91XXXXXXXXXX"`
	// Email is the merchant order inbox.
	Email string `mapstructure:"MERCHANT_EMAIL" default:"merchant@example.com"`
	// UPIID is the UPI payment address shown for prepaid orders.
	UPIID string `mapstructure:"MERCHANT_UPI_ID" default:"yourupi@bank"`
	// OrderPrefix is the fixed merchant code in generated order ids.
	OrderPrefix string `mapstructure:"ORDER_ID_PREFIX" default:"ANE"`
}

// ShippingConfig holds the flat shipping fee rules for the checkout formula.
type ShippingConfig struct {
	// FreeAbove is the subtotal above which (strictly) shipping is free.
	FreeAbove int `mapstructure:"SHIPPING_FREE_ABOVE" default:"1000"`
	// FlatRate is the shipping fee charged at or below the threshold.
	FlatRate int `mapstructure:"SHIPPING_FLAT_RATE" default:"50"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
