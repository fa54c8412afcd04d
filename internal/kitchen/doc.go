// Package kitchen defines the restaurant records shown by the dashboard:
// orders, inventory, menu items, monthly sales, employees and chat messages.
//
// All initial data comes from DefaultFixtures, optionally overlaid with
// collections from the configuration file via Merge. Validate enforces the
// per-collection identifier uniqueness the dashboard relies on when it looks
// records up by id.
package kitchen
