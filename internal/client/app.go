// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/service"
	"github.com/MKhiriev/go-music-upload/models"
)

// ErrUploadsFailed is returned by [App.Run] when at least one archive was
// not uploaded.
var ErrUploadsFailed = errors.New("some archives failed to upload")

// UploadUI runs a batch of uploads and reports their outcomes.
type UploadUI interface {
	UploadFlow(ctx context.Context, paths []string) ([]models.FileUploadOutcome, error)
}

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       UploadUI
	files    []string

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UploadUI, files []string, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	if len(files) == 0 {
		return nil, errors.New("client: no files to upload")
	}

	return &App{services: services, ui: ui, files: files, logger: logger}, nil
}

// Run checks that the server answers, uploads every configured archive and
// returns [ErrUploadsFailed] if any of them failed.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	version, err := a.services.UploadService.ServerVersion(ctx)
	if err != nil {
		return fmt.Errorf("server is unavailable: %w", err)
	}
	a.logger.Info().Str("server_version", version).Int("files", len(a.files)).Msg("starting uploads")

	outcomes, err := a.ui.UploadFlow(ctx, a.files)
	if err != nil {
		return err
	}

	var failed int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			a.logger.Warn().Err(o.Err).Str("path", o.Path).Msg("archive was not uploaded")
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrUploadsFailed, failed, len(outcomes))
	}

	return nil
}
