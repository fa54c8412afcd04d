package dashboard

import (
	"time"

	"kitchenctl/internal/kitchen"

	"github.com/google/uuid"
)

// Section identifies one of the top-level dashboard views.
type Section string

const (
	SectionDashboard Section = "Dashboard"
	SectionOrders    Section = "Orders"
	SectionInventory Section = "Inventory"
	SectionMenu      Section = "Menu"
	SectionAnalytics Section = "Analytics"
	SectionEmployees Section = "Employees"
	SectionChat      Section = "Chat"
	SectionSettings  Section = "Settings"
)

// Sections returns the navigation entries in sidebar order.
func Sections() []Section {
	return []Section{
		SectionDashboard,
		SectionOrders,
		SectionInventory,
		SectionMenu,
		SectionAnalytics,
		SectionEmployees,
		SectionChat,
		SectionSettings,
	}
}

// Known reports whether s is one of the navigation sections.
func (s Section) Known() bool {
	for _, known := range Sections() {
		if s == known {
			return true
		}
	}
	return false
}

const (
	DefaultOperator            = "Admin"
	DefaultNotificationTimeout = 3000 * time.Millisecond
	DefaultLowStockThreshold   = 20
	ChatSentMessage            = "Message sent!"
)

// State is the complete dashboard state. It is treated as a value: Reduce
// never writes through the slices of the State it is given.
type State struct {
	Section   Section
	Orders    []kitchen.Order
	Inventory []kitchen.InventoryItem
	Menu      []kitchen.MenuItem
	Analytics []kitchen.AnalyticsPoint
	Employees []kitchen.Employee
	Chat      []kitchen.ChatMessage

	// ChatDraft is the pending, unsent chat input.
	ChatDraft string
	DarkMode  bool
	Operator  string

	Notification *Notification
}

// Options configures the initial State.
type Options struct {
	Section  Section
	DarkMode bool
	Operator string
}

// New builds the initial state from fixtures.
func New(f kitchen.Fixtures, opts Options) State {
	section := opts.Section
	if section == "" {
		section = SectionDashboard
	}
	operator := opts.Operator
	if operator == "" {
		operator = DefaultOperator
	}
	return State{
		Section:   section,
		Orders:    f.Orders,
		Inventory: f.Inventory,
		Menu:      f.Menu,
		Analytics: f.Analytics,
		Employees: f.Employees,
		DarkMode:  opts.DarkMode,
		Operator:  operator,
	}
}

// TotalSales is the sum over the analytics series.
func (s State) TotalSales() int {
	return kitchen.TotalSales(s.Analytics)
}

// Env carries the non-deterministic inputs of the reducer.
type Env struct {
	NewID               func() uuid.UUID
	Now                 func() time.Time
	NotificationTimeout time.Duration
}

// DefaultEnv uses random UUIDs, the wall clock and the standard timeout.
func DefaultEnv() Env {
	return Env{
		NewID:               uuid.New,
		Now:                 time.Now,
		NotificationTimeout: DefaultNotificationTimeout,
	}
}

func (e Env) newID() uuid.UUID {
	if e.NewID == nil {
		return uuid.New()
	}
	return e.NewID()
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e Env) timeout() time.Duration {
	if e.NotificationTimeout <= 0 {
		return DefaultNotificationTimeout
	}
	return e.NotificationTimeout
}
