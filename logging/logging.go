// Package logging builds the service's zap logger.
package logging

import (
	"strings"

	"go.uber.org/zap"
)

// New returns a sugared logger configured for the given mode. Anything other
// than production gets the development config.
func New(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
