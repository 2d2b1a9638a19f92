// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/mock"
	"github.com/MKhiriev/go-music-upload/internal/service"
	"github.com/MKhiriev/go-music-upload/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	outcomes []models.FileUploadOutcome
	err      error
	paths    []string
}

func (f *fakeUI) UploadFlow(_ context.Context, paths []string) ([]models.FileUploadOutcome, error) {
	f.paths = paths
	return f.outcomes, f.err
}

func newTestApp(t *testing.T, ui UploadUI, files ...string) (*App, *mock.MockClientUploadService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uploads := mock.NewMockClientUploadService(ctrl)

	app, err := NewApp(&service.ClientServices{UploadService: uploads}, ui, files, logger.Nop())
	require.NoError(t, err)
	return app, uploads
}

func TestApp_Run_AllUploaded(t *testing.T) {
	ui := &fakeUI{outcomes: []models.FileUploadOutcome{{Path: "a.zip"}, {Path: "b.zip"}}}
	app, uploads := newTestApp(t, ui, "a.zip", "b.zip")
	uploads.EXPECT().ServerVersion(gomock.Any()).Return("1.0.0", nil)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, []string{"a.zip", "b.zip"}, ui.paths)
}

func TestApp_Run_SomeFailed(t *testing.T) {
	ui := &fakeUI{outcomes: []models.FileUploadOutcome{
		{Path: "a.zip"},
		{Path: "b.zip", Err: service.ErrInvalidContainer},
	}}
	app, uploads := newTestApp(t, ui, "a.zip", "b.zip")
	uploads.EXPECT().ServerVersion(gomock.Any()).Return("1.0.0", nil)

	err := app.run(context.Background())

	assert.ErrorIs(t, err, ErrUploadsFailed)
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestApp_Run_ServerUnavailable(t *testing.T) {
	ui := &fakeUI{}
	app, uploads := newTestApp(t, ui, "a.zip")
	boom := errors.New("connection refused")
	uploads.EXPECT().ServerVersion(gomock.Any()).Return("", boom)

	err := app.run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, ui.paths)
}

func TestApp_Run_UIError(t *testing.T) {
	quit := errors.New("user quit")
	app, uploads := newTestApp(t, &fakeUI{err: quit}, "a.zip")
	uploads.EXPECT().ServerVersion(gomock.Any()).Return("1.0.0", nil)

	assert.ErrorIs(t, app.run(context.Background()), quit)
}

func TestNewApp_Validation(t *testing.T) {
	services := &service.ClientServices{}

	_, err := NewApp(nil, &fakeUI{}, []string{"a.zip"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(services, nil, []string{"a.zip"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(services, &fakeUI{}, nil, logger.Nop())
	assert.Error(t, err)
}
