package app

import (
	"go.uber.org/fx"

	"github.com/mondaymerch/merch-api/internal/config"
	"github.com/mondaymerch/merch-api/internal/database"
	"github.com/mondaymerch/merch-api/internal/logger"
	"github.com/mondaymerch/merch-api/internal/observability"
	repositorycategory "github.com/mondaymerch/merch-api/internal/repository/category"
	repositoryproduct "github.com/mondaymerch/merch-api/internal/repository/product"
	httpserver "github.com/mondaymerch/merch-api/internal/server/http"
	servicecategory "github.com/mondaymerch/merch-api/internal/service/category"
	serviceproduct "github.com/mondaymerch/merch-api/internal/service/product"
	transporthttp "github.com/mondaymerch/merch-api/internal/transport/http"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	database.Module,
	logger.Module,
	observability.Module,
	repositoryproduct.Module,
	repositorycategory.Module,
	serviceproduct.Module,
	servicecategory.Module,
)

// HTTP wires the HTTP transport on top of the core modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	transporthttp.Module,
)

// Module is the default application wiring (HTTP only).
var Module = HTTP
