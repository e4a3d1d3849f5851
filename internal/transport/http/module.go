package http

import (
	"go.uber.org/fx"

	categorytransport "github.com/mondaymerch/merch-api/internal/transport/http/category"
	producttransport "github.com/mondaymerch/merch-api/internal/transport/http/product"
	systemtransport "github.com/mondaymerch/merch-api/internal/transport/http/system"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	producttransport.Module,
	categorytransport.Module,
	systemtransport.Module,
)
