// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"runtime/debug"
	"testing"

	"github.com/toeirei/paymentkit/buildvars"
)

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.2.3"},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", v)
	}
	if c != gitCommit {
		t.Fatalf("expected commit to equal package gitCommit (default) got %s", c)
	}
	if d != buildDate {
		t.Fatalf("expected date to equal package buildDate (default) got %s", d)
	}
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: modulePath, Version: "v0.3.1-0.20261012093000-a1b2c3d4e5f6"},
		},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "v0.3.1-0.20261012093000-a1b2c3d4e5f6" {
		t.Fatalf("expected dependency version fallback got %s", v)
	}
}

func TestResolveBuildVersion_GitCommitFallback(t *testing.T) {
	orig := gitCommit
	defer func() { gitCommit = orig }()
	gitCommit = "deadbeef"
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "deadbeef" {
		t.Fatalf("expected gitCommit fallback got %s", v)
	}
}

func TestResolveBuildVersion_LinkerVersion(t *testing.T) {
	orig := buildvars.Version
	defer func() { buildvars.Version = orig }()
	buildvars.Version = "v2.0.0"
	v, _, _ := resolveBuildVersion(&debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "(devel)"}})
	if v != "v2.0.0" {
		t.Fatalf("expected linker version got %s", v)
	}
}

func TestResolveBuildVersion_VCSSettings(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.0.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "cafe1234"},
			{Key: "vcs.time", Value: "2026-10-19T08:00:00Z"},
		},
	}
	_, c, d := resolveBuildVersion(info)
	if c != "cafe1234" || d != "2026-10-19T08:00:00Z" {
		t.Fatalf("expected vcs settings, got commit=%s date=%s", c, d)
	}
}
