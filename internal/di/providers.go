package di

import (
	"github.com/pbaille/blueprint/internal/providers"
	"github.com/pbaille/blueprint/internal/store"
	"github.com/pbaille/blueprint/internal/structures"
	"github.com/pbaille/blueprint/internal/submission"
	"github.com/prometheus/client_golang/prometheus"
)

// Runtime is what the one-shot CLI commands need
type Runtime struct {
	Conf    *structures.Config
	Logger  providers.Logger
	Store   store.Store
	Service *submission.Service
}

func provideLogger(conf *structures.Config) (providers.Logger, func(), error) {
	logger, err := providers.NewLogProvider(conf)
	if err != nil {
		return nil, nil, err
	}
	return logger, logger.Close, nil
}

func provideRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}

func provideStore(conf *structures.Config, logger providers.Logger) (store.Store, func(), error) {
	st, err := store.Open(conf)
	if err != nil {
		return nil, nil, err
	}
	logger.Debugf(providers.TypeStore, "store opened (%s)", conf.Store.Driver)
	return st, func() {
		if err := st.Close(); err != nil {
			logger.Errorf(providers.TypeStore, "close store: %v", err)
		}
	}, nil
}

func provideReader(st store.Store) store.Reader {
	return st
}
