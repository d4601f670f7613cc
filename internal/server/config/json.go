package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/critterkeep/internal/flagx"
	"github.com/dmitrijs2005/critterkeep/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON config
// files. Interval fields use timex.Duration, which accepts both string
// values such as "1h" and integer nanoseconds. After unmarshalling, the
// fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	BcryptCost                  int            `json:"bcrypt_cost"`
	CatalogBaseURL              string         `json:"catalog_base_url"`
	CatalogRequestTimeout       timex.Duration `json:"catalog_request_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c/-config flags; when
// neither is set, nothing is loaded. Only fields present in the file
// override the current values. An unreadable or invalid file panics, since
// a requested config file that cannot be applied is a startup error.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Std()
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.CatalogBaseURL != "" {
		config.CatalogBaseURL = c.CatalogBaseURL
	}
	if c.CatalogRequestTimeout != 0 {
		config.CatalogRequestTimeout = c.CatalogRequestTimeout.Std()
	}
}
