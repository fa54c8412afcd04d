package controller

import (
	"context"
	"testing"

	"kitchenctl/internal/config"
	"kitchenctl/internal/kitchen"
	"kitchenctl/internal/tui/model"
	"kitchenctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppModel(t *testing.T) {
	m := &model.Model{Width: 80, Height: 24}
	app := NewAppModel(m)

	assert.Equal(t, m, app.model)
}

func TestAppModel_Init(t *testing.T) {
	m := newTestModel(t)
	assert.Nil(t, NewAppModel(m).Init())

	m.LogChannel = make(chan logging.LogEntry)
	assert.NotNil(t, NewAppModel(m).Init())
}

func TestAppModel_UpdateAndView(t *testing.T) {
	app := NewAppModel(newTestModel(t))

	updated, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)
	updatedApp, ok := updated.(AppModel)
	require.True(t, ok)
	assert.Equal(t, 100, updatedApp.model.Width)

	assert.Contains(t, updatedApp.View(), "THE NINE TAILS KITCHEN")
}

func TestNewProgram(t *testing.T) {
	p, err := NewProgram(context.Background(), config.GetDefaultConfig(), model.Options{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, p)

	cfg := config.GetDefaultConfig()
	cfg.Fixtures.Orders = append(cfg.Fixtures.Orders, kitchen.Order{ID: 1, Item: "Dup", Status: kitchen.OrderPending})
	p, err = NewProgram(context.Background(), cfg, model.Options{}, nil)
	assert.Error(t, err)
	assert.Nil(t, p)
}
