// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-music-upload/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const maxNameWidth = 40

// uploadModel tracks a batch of uploads:
// 1) spins while archives are in flight
// 2) records each finished archive in completion order
// 3) quits once the batch is done or on ctrl+c
type uploadModel struct {
	spinner  spinner.Model
	progress progress.Model

	paths    []string
	finished []models.FileUploadOutcome
	outcomes []models.FileUploadOutcome
	done     bool

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

func newUploadModel(paths []string, buildInfo models.AppBuildInfo) uploadModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle

	p := progress.New(progress.WithDefaultGradient())
	p.Width = 40

	return uploadModel{
		spinner:   s,
		progress:  p,
		paths:     paths,
		buildInfo: buildInfo,
	}
}

func (m uploadModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m uploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.forceQuit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.info):
			m.showBuildInfo = !m.showBuildInfo
		case key.Matches(msg, keys.esc):
			m.showBuildInfo = false
		case key.Matches(msg, keys.quit):
			if m.done {
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case fileUploadedMsg:
		m.finished = append(m.finished, msg.outcome)
		return m, nil

	case uploadsDoneMsg:
		m.done = true
		m.outcomes = msg.outcomes
		return m, tea.Quit

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m uploadModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder

	list := m.finished
	if m.done {
		list = m.outcomes
		b.WriteString(summaryLine(list))
	} else {
		b.WriteString(fmt.Sprintf("%s uploading %d of %d archives\n",
			m.spinner.View(), len(m.finished), len(m.paths)))
		b.WriteString(m.progress.ViewAs(m.percent()))
	}
	b.WriteString("\n\n")

	for _, o := range list {
		b.WriteString(outcomeLine(o))
		b.WriteString("\n")
	}

	return renderPage("MUSIC UPLOAD", b.String(), "v: about")
}

func (m uploadModel) percent() float64 {
	if len(m.paths) == 0 {
		return 1
	}
	return float64(len(m.finished)) / float64(len(m.paths))
}

func outcomeLine(o models.FileUploadOutcome) string {
	name := fitText(filepath.Base(o.Path), maxNameWidth)
	if o.Err != nil {
		return errorStyle.Render("✗ "+name) + "  " + humanizeError(o.Err)
	}
	return successStyle.Render("✓ "+name) + fmt.Sprintf("  %d written, %d skipped",
		len(o.Result.Written), len(o.Result.Skipped))
}

func summaryLine(outcomes []models.FileUploadOutcome) string {
	var failed, written int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			continue
		}
		written += len(o.Result.Written)
	}
	return fmt.Sprintf("%d archives uploaded, %d failed, %d tracks written",
		len(outcomes)-failed, failed, written)
}
