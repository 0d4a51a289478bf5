package planner

import (
	"contentplan/internal/core"

	"github.com/zhulik/pal"
)

func Provide() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide[core.PostStore](&Store{}),
	)
}
