package main

import (
	"go.uber.org/fx"

	"github.com/mondaymerch/merch-api/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
