package fs_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/devflow/internal/adapters/fs"
)

func TestProject_StackApplicable(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		stack string
		want  bool
	}{
		{"rust with manifest", []string{"/repo/Cargo.toml"}, "rust", true},
		{"rust without manifest", nil, "rust", false},
		{"node with manifest", []string{"/repo/package.json"}, "node", true},
		{"node without manifest", []string{"/repo/Cargo.toml"}, "node", false},
		{"custom with justfile", []string{"/repo/justfile"}, "custom", true},
		{"custom with Makefile", []string{"/repo/Makefile"}, "custom", true},
		{"custom without targets", nil, "custom", false},
		{"extension stack always applies", nil, "python", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := afero.NewMemMapFs()
			for _, f := range tt.files {
				require.NoError(t, afero.WriteFile(mem, f, []byte("x"), 0o644))
			}

			project := fs.NewProject(mem)
			assert.Equal(t, tt.want, project.StackApplicable("/repo", tt.stack))
		})
	}
}

func TestProject_FileOperations(t *testing.T) {
	mem := afero.NewMemMapFs()
	project := fs.NewProject(mem)

	require.NoError(t, project.WriteFile("/repo/.github/workflows/devflow.yml", []byte("name: devflow\n")))
	assert.True(t, project.Exists("/repo/.github/workflows"))

	data, err := project.ReadFile("/repo/.github/workflows/devflow.yml")
	require.NoError(t, err)
	assert.Equal(t, "name: devflow\n", string(data))

	_, err = project.ReadFile("/repo/missing")
	require.Error(t, err)

	require.NoError(t, project.MkdirAll("/repo/.cache/devflow/rust/cargo"))
	assert.True(t, project.Exists("/repo/.cache/devflow/rust/cargo"))

	require.NoError(t, project.RemoveAll("/repo/.cache/devflow"))
	assert.False(t, project.Exists("/repo/.cache/devflow"))
	require.NoError(t, project.RemoveAll("/repo/.cache/devflow"), "removing a missing path succeeds")
}
