package builtin

import "go.trai.ch/devflow/internal/core/domain"

// Rust returns the cargo-based extension.
func Rust() *Extension {
	return &Extension{
		name: domain.StackRust,
		capabilities: []string{
			"setup",
			"fmt:check",
			"fmt:fix",
			"lint:static",
			"build:debug",
			"build:release",
			"test:unit",
			"test:integration",
			"test:smoke",
			"package:artifact",
			"check",
			"release",
			"ci:generate",
			"ci:check",
		},
		actions: map[string]domain.ExecutionAction{
			"setup:toolchain":   action("rustup", "show"),
			"setup:deps":        action("cargo", "fetch"),
			"setup:doctor":      action("cargo", "--version"),
			"fmt:check":         action("cargo", "fmt", "--all", "--", "--check"),
			"fmt:fix":           action("cargo", "fmt", "--all"),
			"lint:static":       action("cargo", "clippy", "--all-targets", "--all-features", "--", "-D", "warnings"),
			"build:debug":       action("cargo", "build"),
			"build:release":     action("cargo", "build", "--release"),
			"test:unit":         action("cargo", "nextest", "run", "--lib", "--bins"),
			"test:integration":  action("cargo", "test", "--tests"),
			"test:smoke":        action("cargo", "test", "smoke"),
			"package:artifact":  action("cargo", "build", "--release"),
			"release:candidate": action("cargo", "build", "--release"),
		},
		mounts: []string{
			"rust/cargo:/workspace/.cargo-cache",
			"rust/target:/workspace/target/ci",
		},
		env: map[string]string{
			"CARGO_HOME":       "/workspace/.cargo-cache",
			"CARGO_TARGET_DIR": "/workspace/target/ci",
			"SCCACHE_DIR":      "/workspace/.cargo-cache/sccache",
			"RUSTC_WRAPPER":    "sccache",
		},
		fingerprint: []string{"Cargo.lock", "rust-toolchain.toml", "Cargo.toml"},
	}
}
