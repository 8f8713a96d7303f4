package config

import "time"

// ClientNode holds network settings used by the client transport layer.
type ClientNode struct {
	// URL is the chain node base URL.
	URL string
	// RequestTimeout is the default timeout for outbound node requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// BalanceRefreshInterval defines how often the balance worker should run.
	BalanceRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Node contains client transport settings.
	Node ClientNode
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Node: Node{
			URL:            "http://localhost:8000",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "agwallet.db"},
		},
		Workers: Workers{
			BalanceRefreshInterval: time.Minute,
		},
	}
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration: defaults first, environment on top, flags last.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		build()
	if err != nil {
		return nil, err
	}

	return &ClientConfig{
		Node: ClientNode{
			URL:            cfg.Node.URL,
			RequestTimeout: cfg.Node.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			BalanceRefreshInterval: cfg.Workers.BalanceRefreshInterval,
		},
	}, nil
}
