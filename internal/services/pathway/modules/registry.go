// Package modules lists the route modules of the theme service.
package modules

import (
	module "github.com/louisbranch/pathway/internal/services/pathway/module"
	"github.com/louisbranch/pathway/internal/services/pathway/modules/admin"
	"github.com/louisbranch/pathway/internal/services/pathway/modules/ajax"
	"github.com/louisbranch/pathway/internal/services/pathway/modules/site"
)

// Default returns the modules mounted by the theme service.
func Default() []module.Module {
	return []module.Module{
		site.New(),
		ajax.New(),
		admin.New(),
	}
}
