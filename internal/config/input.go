package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rpgo/loan-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Limits applied when validating a loan file.
const (
	MaxTermYears         = 50
	MaxAnnualRatePercent = 100
)

// InputParser handles parsing of loan configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a loan file, fills fallbacks for missing or invalid loan
// figures and validates the result.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Loans) == 0 {
		return fmt.Errorf("no loans provided")
	}

	seen := make(map[string]bool, len(config.Loans))
	for i, loan := range config.Loans {
		if loan.Name == "" {
			return fmt.Errorf("loan %d: name is required", i)
		}
		if seen[loan.Name] {
			return fmt.Errorf("loan %q: duplicate name", loan.Name)
		}
		seen[loan.Name] = true

		if err := ip.validateLoan(&loan); err != nil {
			return fmt.Errorf("loan %q validation failed: %w", loan.Name, err)
		}
	}

	return nil
}

// validateLoan validates a single loan's terms
func (ip *InputParser) validateLoan(loan *domain.Loan) error {
	if err := loan.Terms.Validate(); err != nil {
		return err
	}
	if loan.Terms.TermYears > MaxTermYears {
		return fmt.Errorf("term years must be at most %d, got %v", MaxTermYears, loan.Terms.TermYears)
	}
	if loan.Terms.AnnualRatePercent > MaxAnnualRatePercent {
		return fmt.Errorf("annual rate percent must be at most %d, got %v", MaxAnnualRatePercent, loan.Terms.AnnualRatePercent)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	homeStart, _ := time.Parse("2006-01-02", "2025-09-01")

	return &domain.Configuration{
		Loans: []domain.Loan{
			{
				Name:  "Student Loan",
				Terms: DefaultTerms(),
			},
			{
				Name:  "Car Loan",
				Terms: domain.LoanTerms{Principal: 24000, AnnualRatePercent: 6.5, TermYears: 5},
			},
			{
				Name:      "Home Loan",
				Terms:     domain.LoanTerms{Principal: 320000, AnnualRatePercent: 6.25, TermYears: 30},
				StartDate: &homeStart,
			},
		},
		IncludeSchedule: false,
		DefaultFormat:   "console",
	}
}
