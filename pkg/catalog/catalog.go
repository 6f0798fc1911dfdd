// Package catalog defines the showroom business data that grounds the
// assistant's answers: identity and contact channels, operating hours,
// vehicle inventory, promotions, financing plans, and services.
//
// A Snapshot is read-only for the duration of a request. The orchestrator
// and prompt composer only read it; mutation is the owning application's
// concern.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Snapshot holds all business facts for one showroom.
type Snapshot struct {
	Name      string `yaml:"name"`
	Address   string `yaml:"address"`
	City      string `yaml:"city"`
	Province  string `yaml:"province"`
	WhatsApp  string `yaml:"whatsapp"`
	Instagram string `yaml:"instagram"`
	Email     string `yaml:"email"`
	Website   string `yaml:"website"`
	Founded   int    `yaml:"founded"`

	Hours       []HoursEntry        `yaml:"hours"`
	Vehicles    []Vehicle           `yaml:"vehicles"`
	Promotions  []Promotion         `yaml:"promotions"`
	Financing   []FinancingPlan     `yaml:"financing"`
	Services    []string            `yaml:"services"`
	Facilities  []string            `yaml:"facilities"`
	Departments []DepartmentContact `yaml:"departments"`
}

// HoursEntry maps a day (or day range) to an opening-hours string.
// Entries are ordered; the order is preserved in prompts and display.
type HoursEntry struct {
	Days  string `yaml:"days"`
	Hours string `yaml:"hours"`
}

// Vehicle is one inventory entry. The ID is unique within a snapshot.
// Price and Installment are in whole rupiah.
type Vehicle struct {
	ID          int    `yaml:"id"`
	Brand       string `yaml:"brand"`
	Model       string `yaml:"model"`
	Year        int    `yaml:"year"`
	Category    string `yaml:"category"`
	Price       int64  `yaml:"price"`
	Installment int64  `yaml:"installment"`
	Specs       string `yaml:"specs"`
}

// Promotion is one active promotional offer.
type Promotion struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// FinancingPlan describes one credit tenor option.
type FinancingPlan struct {
	Tenor          string `yaml:"tenor"`
	Interest       string `yaml:"interest"`
	MinDownPayment string `yaml:"min_down_payment"`
	Notes          string `yaml:"notes"`
}

// DepartmentContact is a named contact person for one department.
type DepartmentContact struct {
	Department string `yaml:"department"`
	Name       string `yaml:"name"`
	WhatsApp   string `yaml:"whatsapp"`
}

// Load reads a YAML file and returns a Snapshot.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Snapshot{}, fmt.Errorf("catalog: load: %w", err)
	}

	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("catalog: parse: %w", err)
	}

	return s, nil
}

// Validate checks that the snapshot carries the fields the assistant
// depends on.
func (s Snapshot) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("catalog: name is required")
	}
	if s.WhatsApp == "" {
		return fmt.Errorf("catalog: whatsapp contact is required")
	}

	seen := make(map[int]struct{}, len(s.Vehicles))
	for _, v := range s.Vehicles {
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("catalog: duplicate vehicle id %d", v.ID)
		}
		seen[v.ID] = struct{}{}
	}

	return nil
}

// Search returns the vehicles whose brand, model, or category contains the
// keyword, case-insensitively, preserving snapshot order.
func (s Snapshot) Search(keyword string) []Vehicle {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil
	}

	var out []Vehicle
	for _, v := range s.Vehicles {
		if strings.Contains(strings.ToLower(v.Brand), keyword) ||
			strings.Contains(strings.ToLower(v.Model), keyword) ||
			strings.Contains(strings.ToLower(v.Category), keyword) {
			out = append(out, v)
		}
	}

	return out
}
