package main

import (
	"go.uber.org/fx"

	"github.com/sanverite/screener-stub/internal/api"
	"github.com/sanverite/screener-stub/internal/app"
	"github.com/sanverite/screener-stub/internal/config"
)

func main() {
	fx.New(app.Options(api.Minimal, config.NewEnv(nil))).Run()
}
