package ratelimit

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Rule is a named limit applied to a group of endpoints.
type Rule struct {
	Name   string
	Limit  int
	Window time.Duration
}

// Rules maps request paths to rules by longest prefix match.
type Rules struct {
	Default  Rule
	Prefixes []PrefixRule
}

// PrefixRule binds a rule to a path prefix.
type PrefixRule struct {
	Prefix string
	Rule   Rule
}

// DefaultRules returns the built-in limits. Auth endpoints are kept
// tight since they are brute-force targets; read-heavy endpoints get
// more headroom.
func DefaultRules() *Rules {
	return &Rules{
		Default: Rule{Name: "default", Limit: 100, Window: time.Minute},
		Prefixes: []PrefixRule{
			{Prefix: "/api/v1/auth/login", Rule: Rule{Name: "login", Limit: 5, Window: time.Minute}},
			{Prefix: "/api/v1/auth/register", Rule: Rule{Name: "register", Limit: 3, Window: 5 * time.Minute}},
			{Prefix: "/api/v1/users", Rule: Rule{Name: "users", Limit: 100, Window: time.Minute}},
			{Prefix: "/api/v1/items", Rule: Rule{Name: "items", Limit: 200, Window: time.Minute}},
			{Prefix: "/api/v1/orders", Rule: Rule{Name: "orders", Limit: 50, Window: time.Minute}},
			{Prefix: "/api/v1/news", Rule: Rule{Name: "news", Limit: 100, Window: time.Minute}},
		},
	}
}

// For returns the rule whose prefix is the longest match for path,
// falling back to Default.
func (r *Rules) For(path string) Rule {
	best := r.Default
	bestLen := -1
	for _, pr := range r.Prefixes {
		if len(pr.Prefix) > bestLen && strings.HasPrefix(path, pr.Prefix) {
			best = pr.Rule
			bestLen = len(pr.Prefix)
		}
	}
	return best
}

// MaxWindow returns the longest window among all rules. Cleanup uses
// it as the retention cutoff.
func (r *Rules) MaxWindow() time.Duration {
	max := r.Default.Window
	for _, pr := range r.Prefixes {
		if pr.Rule.Window > max {
			max = pr.Rule.Window
		}
	}
	return max
}

type rulesFile struct {
	Default struct {
		Limit  int    `yaml:"limit"`
		Window string `yaml:"window"`
	} `yaml:"default"`
	Endpoints []struct {
		Name   string `yaml:"name"`
		Prefix string `yaml:"prefix"`
		Limit  int    `yaml:"limit"`
		Window string `yaml:"window"`
	} `yaml:"endpoints"`
}

// LoadRules reads limits from a YAML file. An empty path returns
// DefaultRules.
//
// Example file:
//
//	default:
//	  limit: 100
//	  window: 1m
//	endpoints:
//	  - name: login
//	    prefix: /api/v1/auth/login
//	    limit: 5
//	    window: 1m
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadRules: %w", err)
	}
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("LoadRules: parse %s: %w", path, err)
	}

	rules := DefaultRules()
	if f.Default.Limit > 0 {
		rules.Default.Limit = f.Default.Limit
	}
	if f.Default.Window != "" {
		w, err := time.ParseDuration(f.Default.Window)
		if err != nil {
			return nil, fmt.Errorf("LoadRules: default window: %w", err)
		}
		rules.Default.Window = w
	}
	if len(f.Endpoints) > 0 {
		rules.Prefixes = rules.Prefixes[:0]
		for _, e := range f.Endpoints {
			if e.Prefix == "" || e.Limit <= 0 {
				return nil, fmt.Errorf("LoadRules: endpoint %q needs a prefix and a positive limit", e.Name)
			}
			w, err := time.ParseDuration(e.Window)
			if err != nil {
				return nil, fmt.Errorf("LoadRules: endpoint %q window: %w", e.Name, err)
			}
			name := e.Name
			if name == "" {
				name = e.Prefix
			}
			rules.Prefixes = append(rules.Prefixes, PrefixRule{
				Prefix: e.Prefix,
				Rule:   Rule{Name: name, Limit: e.Limit, Window: w},
			})
		}
	}
	return rules, nil
}
