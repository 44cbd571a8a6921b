package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// newProject creates an empty project and makes it the working directory
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"), []byte("[profile.default]\nsrc = \"src\"\n"), 0644))
	t.Chdir(root)
	t.Setenv("TREBNET_NETWORK", "")
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Commands(t *testing.T) {
	root := NewRootCmd()

	tests := []struct {
		path  []string
		group string
	}{
		{path: []string{"networks"}, group: "main"},
		{path: []string{"resolve"}, group: "main"},
		{path: []string{"resolve", "deploy"}},
		{path: []string{"resolve", "verify"}},
		{path: []string{"check"}, group: "main"},
		{path: []string{"export"}, group: "management"},
		{path: []string{"watch"}, group: "management"},
		{path: []string{"config"}, group: "management"},
		{path: []string{"config", "set"}},
		{path: []string{"config", "remove"}},
		{path: []string{"version"}},
	}

	for _, tt := range tests {
		t.Run(filepath.Join(tt.path...), func(t *testing.T) {
			cmd, rest, err := root.Find(tt.path)
			require.NoError(t, err)
			assert.Empty(t, rest)
			assert.Equal(t, tt.path[len(tt.path)-1], cmd.Name())
			assert.Equal(t, tt.group, cmd.GroupID)
		})
	}

	for _, name := range []string{"network", "debug", "non-interactive", "json", "yaml", "strict", "vars-file"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
}

func TestVersionCmd(t *testing.T) {
	// no project needed
	t.Chdir(t.TempDir())

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "trebnet version dev")
}

func TestNetworksCmd_JSON(t *testing.T) {
	newProject(t)

	out, err := execute(t, "networks", "--local", "--json")
	require.NoError(t, err)

	var result struct {
		Networks []usecase.NetworkStatus `json:"networks"`
		Sources  []string                `json:"sources"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	names := lo.Map(result.Networks, func(n usecase.NetworkStatus, _ int) string { return n.Name })
	assert.ElementsMatch(t, []string{"hardhat", "localhost", "tenderly"}, names)
	assert.NotNil(t, result.Sources)
}

func TestResolveCmd(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		check      func(t *testing.T, out string)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "deploy to localhost",
			args: []string{"resolve", "deploy", "localhost", "--json"},
			check: func(t *testing.T, out string) {
				var target map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &target))
				assert.Equal(t, "localhost", target["network"])
				assert.Equal(t, true, target["local"])
				assert.NotContains(t, target, "signer")
			},
		},
		{
			name: "verify by chain id",
			args: []string{"resolve", "verify", "--chain-id", "11155111", "--yaml"},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "network: sepolia")
				assert.Contains(t, out, "chainId: 11155111")
			},
		},
		{
			name:    "numeric argument is a name not a chain id",
			args:    []string{"resolve", "deploy", "1", "--json"},
			wantErr: domain.ErrUnknownNetwork,
		},
		{
			name:    "upper case name is unknown",
			args:    []string{"resolve", "verify", "SEPOLIA", "--json"},
			wantErr: domain.ErrUnknownNetwork,
		},
		{
			name:    "unregistered chain id",
			args:    []string{"resolve", "verify", "--chain-id", "999999", "--json"},
			wantErr: domain.ErrUnknownNetwork,
		},
		{
			name:       "name and chain id together",
			args:       []string{"resolve", "deploy", "sepolia", "--chain-id", "11155111"},
			wantErrMsg: "not both",
		},
		{
			name:    "no network in non-interactive mode",
			args:    []string{"resolve", "deploy", "--non-interactive"},
			wantErr: usecase.ErrNoNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newProject(t)

			out, err := execute(t, tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantErrMsg != "" {
				assert.ErrorContains(t, err, tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			tt.check(t, out)
		})
	}
}

func TestConfigCmd_SetThenShow(t *testing.T) {
	root := newProject(t)

	_, err := execute(t, "config", "set", "network", "sepolia")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, ".trebnet", "config.local.json"))

	out, err := execute(t, "config", "--json")
	require.NoError(t, err)

	var shown struct {
		Exists bool `json:"exists"`
		Local  struct {
			Network string `json:"network"`
		} `json:"local"`
		Effective struct {
			Network string `json:"network"`
		} `json:"effective"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.True(t, shown.Exists)
	assert.Equal(t, "sepolia", shown.Local.Network)
	assert.Equal(t, "sepolia", shown.Effective.Network)

	// the configured network is now the default for resolve
	out, err = execute(t, "resolve", "verify", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"network": "sepolia"`)
}

func TestExportCmd_PrintsTables(t *testing.T) {
	root := newProject(t)

	out, err := execute(t, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "[rpc_endpoints]")
	assert.Contains(t, out, "localhost = ")

	// printing never touches foundry.toml
	data, err := os.ReadFile(filepath.Join(root, "foundry.toml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "rpc_endpoints")
}

func TestGetApp_NotInitialized(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(t.Context())

	_, err := getApp(cmd)
	assert.ErrorContains(t, err, "app not initialized")
}
