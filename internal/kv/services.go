package kv

import (
	"contentplan/internal/config"
	"contentplan/internal/core"

	"github.com/zhulik/pal"
)

func Provide(backend string) pal.ServiceDef {
	if backend == config.BackendNATS {
		return pal.ProvideList(
			pal.Provide[core.KeyValueStore](&NATS{}),
		)
	}
	return pal.ProvideList(
		pal.Provide[core.KeyValueStore](&File{}),
	)
}
