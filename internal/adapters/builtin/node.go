package builtin

import "go.trai.ch/devflow/internal/core/domain"

// Node returns the npm-based extension.
func Node() *Extension {
	return &Extension{
		name: domain.StackNode,
		capabilities: []string{
			"setup",
			"fmt:check",
			"fmt:fix",
			"lint:static",
			"build:debug",
			"build:release",
			"test:unit",
			"test:integration",
			"package:artifact",
			"check",
			"release",
			"ci:generate",
			"ci:check",
		},
		actions: map[string]domain.ExecutionAction{
			"setup:deps":       action("npm", "ci"),
			"setup:doctor":     action("npm", "--version"),
			"fmt:check":        action("npm", "run", "fmt:check"),
			"fmt:fix":          action("npm", "run", "fmt:fix"),
			"lint:static":      action("npm", "run", "lint"),
			"build:debug":      action("npm", "run", "build"),
			"build:release":    action("npm", "run", "build"),
			"test:unit":        action("npm", "run", "test:unit"),
			"test:integration": action("npm", "run", "test:integration"),
			"test:smoke":       action("npm", "run", "test:smoke"),
			"package:artifact": action("npm", "pack", "--dry-run"),
		},
		mounts:      []string{"node/npm:/root/.npm"},
		fingerprint: []string{"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "package.json"},
	}
}
