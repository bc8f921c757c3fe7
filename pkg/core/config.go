package core

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ProductionURL is the Korbit REST API host.
const ProductionURL = "https://api.korbit.co.kr"

// Credentials holds API authentication credentials.
type Credentials struct {
	// APIKey is sent in the X-KAPI-KEY header.
	APIKey string `json:"api_key" validate:"required"`
	// SecretKey is only used as the HMAC key and is never transmitted.
	SecretKey string `json:"secret_key" validate:"required"`
}

// String returns the credentials with the key masked and the secret omitted.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey:%s}", MaskKey(c.APIKey))
}

// MaskKey hides all but the first and last four characters of key.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// Config contains the options for a Korbit client.
type Config struct {
	BaseURL     string       `json:"base_url" validate:"required,url"`
	Credentials *Credentials `json:"credentials,omitempty" validate:"required"`
}

// DefaultConfig returns a Config pointing at the production API with the given credentials.
func DefaultConfig(creds *Credentials) *Config {
	return &Config{
		BaseURL:     ProductionURL,
		Credentials: creds,
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	if c.Credentials == nil {
		return ErrNoCredentials
	}
	return validate.Struct(c)
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithBaseURL overrides the API host and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}
