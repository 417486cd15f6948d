// Package config holds the policy switches controlling mute lifecycle
// behavior. Policies are plain values handed to constructors; they are
// read once at startup, never mutated mid-run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy enumerates the behavior switches of the mute lifecycle.
type Policy struct {
	// AutoMuteFailures inserts an ignore directive into the artifact
	// when a failure is suppressed.
	AutoMuteFailures bool `yaml:"auto_mute_failures"`

	// AutoUnmutePasses removes the stale directive from the artifact
	// when an ignored test passes.
	AutoUnmutePasses bool `yaml:"auto_unmute_passes"`

	// RequireCompatibleBackendAgreement suppresses a failure only when
	// the compatible backend is also declared ignored.
	RequireCompatibleBackendAgreement bool `yaml:"require_compatible_backend_agreement"`

	// RunIgnoredAsRegular disables failure suppression entirely.
	RunIgnoredAsRegular bool `yaml:"run_ignored_as_regular"`

	// VerboseIgnoredOutput prints full failure detail for suppressed
	// tests instead of a one-line notice.
	VerboseIgnoredOutput bool `yaml:"verbose_ignored_output"`

	// CI makes missing golden files a hard failure instead of
	// generating new baselines.
	CI bool `yaml:"ci"`
}

// Default returns the policy used when nothing is configured.
func Default() Policy {
	return Policy{CI: DetectCI()}
}

// FromEnv returns the default policy with environment overrides
// applied. Call once at process start.
func FromEnv() Policy {
	p := Default()
	p.applyEnvOverrides()
	return p
}

// Load reads a policy from a YAML file and applies environment
// overrides on top.
func Load(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, err
	}
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("failed to parse policy YAML: %w", err)
	}
	p.applyEnvOverrides()
	return p, nil
}

// Save writes the policy as YAML.
func (p Policy) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal policy: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (p *Policy) applyEnvOverrides() {
	overrideBool(&p.AutoMuteFailures, "SNAPCHECK_AUTO_MUTE")
	overrideBool(&p.AutoUnmutePasses, "SNAPCHECK_AUTO_UNMUTE")
	overrideBool(&p.RequireCompatibleBackendAgreement, "SNAPCHECK_REQUIRE_COMPATIBLE")
	overrideBool(&p.RunIgnoredAsRegular, "SNAPCHECK_RUN_IGNORED")
	overrideBool(&p.VerboseIgnoredOutput, "SNAPCHECK_VERBOSE_IGNORED")
	overrideBool(&p.CI, "SNAPCHECK_CI")
}

func overrideBool(target *bool, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	*target = v == "1" || v == "true" || v == "yes"
}

// DetectCI reports whether the process appears to run under a CI
// system, using the conventional environment markers.
func DetectCI() bool {
	return os.Getenv("CI") != "" || os.Getenv("TEAMCITY_VERSION") != ""
}
