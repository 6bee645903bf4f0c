// Package constants holds identifiers shared across layers.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events over HTTP to a local endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
	// PubSubProviderSQS publishes events to Amazon SQS.
	PubSubProviderSQS = "sqs"

	// StorageDriverPostgres stores data in PostgreSQL.
	StorageDriverPostgres = "postgres"
	// StorageDriverMemory keeps data in process memory.
	StorageDriverMemory = "memory"

	// QRPayloadTypeProduct marks a scanner payload that points at a product.
	QRPayloadTypeProduct = "product"
)
