// Package config loads application configuration from YAML files, .env
// files, and environment variables using viper and godotenv.
//
// # Usage
//
//	var cfg AppConfig
//	err := config.Load("llmrest", &cfg,
//	    config.WithConfigFile("config.yml"),
//	)
//
// Precedence: config file values, then .env, then process environment.
// Structs implementing ApplyDefaults()/Validate() have them invoked after
// unmarshalling.
package config
