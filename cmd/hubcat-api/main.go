// @title         Hubcat API
// @version       0.1.0
// @description   JSON endpoints over the Hubble Source Catalog REST API

package main

import (
	"context"

	"hubcat/internal/platform/config"
	"hubcat/internal/platform/logger"
	phttp "hubcat/internal/platform/net/http"

	"hubcat/internal/adapters/catalog/cutout"
	"hubcat/internal/adapters/catalog/hsc"
	"hubcat/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	hscCfg := root.Prefix("HSC_")     // catalog endpoint under HSC_*
	cutCfg := root.Prefix("CUTOUT_")  // fitscut endpoint under CUTOUT_*
	casCfg := root.Prefix("CASJOBS_") // batch-query credentials, read once

	// bring up logging early
	l := logger.Get()

	// CasJobs credentials are optional and only passed on to batch
	// submissions; log presence, never the values
	casUser := casCfg.MayString("USERID", "")
	casPw := casCfg.MayString("PW", "")
	l.Debug().Bool("casjobs_credentials", casUser != "" && casPw != "").Msg("startup config loaded")

	catalog := hsc.NewClient(hsc.Options{
		BaseURL:   hscCfg.MayString("BASE_URL", hsc.DefaultBaseURL),
		UserAgent: hscCfg.MayString("USER_AGENT", ""),
		Timeout:   hscCfg.MayDuration("TIMEOUT", 0),
	})
	cutouts := cutout.New(cutout.Options{
		BaseURL:   cutCfg.MayString("BASE_URL", cutout.DefaultBaseURL),
		UserAgent: cutCfg.MayString("USER_AGENT", ""),
		Timeout:   cutCfg.MayDuration("TIMEOUT", 0),
	})

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Catalog:        catalog,
			Cutouts:        cutouts,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
