// Package config provides configuration loading for applications built
// on the REST client.
//
// It uses Viper to load configuration from a YAML file, a .env file, and
// environment variables. Environment variables override file values
// using the upper-cased application name as prefix with
// underscore-separated keys (e.g. PLACEHOLDER_BASE_URL).
package config
