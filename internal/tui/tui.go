// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/service"
	"github.com/MKhiriev/go-music-upload/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	options []tea.ProgramOption
	logger  *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger, options ...tea.ProgramOption) (*TUI, error) {
	if services == nil || services.UploadService == nil {
		return nil, errors.New("tui: upload service is required")
	}

	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		options:   options,
		logger:    logger,
	}, nil
}

// UploadFlow uploads paths while showing progress and returns the outcomes
// in the order of paths. Quitting with ctrl+c cancels the uploads still in
// flight and returns [ErrUserQuit] together with what finished so far.
func (t *TUI) UploadFlow(ctx context.Context, paths []string) ([]models.FileUploadOutcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(newUploadModel(paths, t.buildInfo), t.options...)

	done := make(chan []models.FileUploadOutcome, 1)
	go func() {
		outcomes := t.services.UploadService.UploadFiles(ctx, paths, func(o models.FileUploadOutcome) {
			program.Send(fileUploadedMsg{outcome: o})
		})
		done <- outcomes
		program.Send(uploadsDoneMsg{outcomes: outcomes})
	}()

	finalModel, err := program.Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(uploadModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		cancel()
		outcomes := <-done
		t.logger.Warn().Int("files", len(paths)).Msg("upload cancelled by user")
		return outcomes, ErrUserQuit
	}

	return <-done, nil
}
