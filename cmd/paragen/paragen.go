package main

import (
	"context"
	"net/http"
	"os"

	"github.com/Densaugeo/paragen/internal/pkg/application/scenegen"
	"github.com/Densaugeo/paragen/internal/pkg/infrastructure/router"
	"github.com/Densaugeo/paragen/internal/pkg/presentation/api"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const appName string = "paragen"

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	servicePort := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")
	scenesPath := env.GetVariableOrDefault(ctx, "SCENES_PATH", "/opt/paragen/config/scenes.yaml")
	authzPath := env.GetVariableOrDefault(ctx, "AUTHZ_PATH", "/opt/paragen/config/authz.rego")

	scenesFile, err := os.Open(scenesPath)
	if err != nil {
		log.Error("failed to open scene configuration", "path", scenesPath, "err", err.Error())
		os.Exit(1)
	}

	cfg, err := scenegen.LoadConfiguration(scenesFile)
	scenesFile.Close()
	if err != nil {
		log.Error("failed to load scene configuration", "err", err.Error())
		os.Exit(1)
	}

	app, err := scenegen.New(ctx, cfg)
	if err != nil {
		log.Error("failed to assemble scenes", "err", err.Error())
		os.Exit(1)
	}

	policies, err := os.Open(authzPath)
	if err != nil {
		log.Error("failed to open authz policies", "path", authzPath, "err", err.Error())
		os.Exit(1)
	}
	defer policies.Close()

	r := router.New(appName)

	if err := api.RegisterHandlers(ctx, r, policies, app); err != nil {
		log.Error("failed to register handlers", "err", err.Error())
		os.Exit(1)
	}

	log.Info("starting to listen for connections", "port", servicePort)

	err = http.ListenAndServe(":"+servicePort, otelhttp.NewHandler(r, appName))
	if err != nil {
		log.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}
