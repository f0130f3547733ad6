package app

import (
	"github.com/specialistvlad/lazyframe/internal/handlers"
	"github.com/specialistvlad/lazyframe/modules/arithmetic"
	"github.com/specialistvlad/lazyframe/modules/cumulative"
	"github.com/specialistvlad/lazyframe/modules/scalar"
)

// coreModules is the definitive list of all modules that are compiled into
// the lazyframe binary.
var coreModules = []handlers.Module{
	&arithmetic.Module{},
	&scalar.Module{},
	&cumulative.Module{},
}
