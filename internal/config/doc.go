// Package config provides configuration management for kitchenctl.
//
// Configuration is loaded from multiple YAML sources and merged in order,
// with later sources overriding earlier ones:
//
//  1. Default configuration (built into the binary)
//  2. User configuration (~/.config/kitchenctl/config.yaml)
//  3. Project configuration (./.kitchenctl/config.yaml)
//  4. An explicit file passed with --config
//
// Missing user and project files are skipped. An explicit file that cannot
// be read is an error.
//
// # Configuration Structure
//
//	settings:
//	  title: "THE NINE TAILS KITCHEN"
//	  operator: "Admin"
//	  darkMode: true
//	  notificationTimeout: 3s
//	  lowStockThreshold: 20
//	  initialSection: "Dashboard"
//
//	fixtures:
//	  inventory:
//	    - id: 1
//	      name: "Ramen Noodles"
//	      quantity: 100
//	      unit: "packs"
//	  menu:
//	    - id: 1
//	      name: "Spicy Ramen"
//	      price: 12.99
//
// Each non-empty fixture collection replaces the built-in one entirely.
// The merged fixtures are validated after all layers are applied.
package config
