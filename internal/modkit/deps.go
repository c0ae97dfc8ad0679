// Package modkit provides module wiring and core deps
package modkit

import (
	"hubcat/internal/adapters/catalog/cutout"
	"hubcat/internal/adapters/catalog/hsc"
	"hubcat/internal/platform/config"
	"hubcat/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Catalog *hsc.Client
	Cutouts *cutout.Client
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional clients
func (d Deps) ZeroOK() bool { return true }
