// Package constants holds string values shared between config and wiring code.
package constants

const (
	// EnvDevelop is the env name used on developer machines.
	EnvDevelop = "develop"

	// PubSubProviderLocal pushes events straight to the worker over HTTP.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// GeocoderProviderYandex is the Yandex Geocoder HTTP API.
	GeocoderProviderYandex = "yandex"

	// RoleManager is the token role allowed to read order matches.
	RoleManager = "manager"
)
