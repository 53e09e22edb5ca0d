package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diillson/ec2-metrics-reporter/internal/domain/entity"
	"github.com/diillson/ec2-metrics-reporter/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopConsole descarta toda a saída nos testes.
type nopConsole struct{}

func (nopConsole) Print(a ...interface{})                          {}
func (nopConsole) Printf(format string, a ...interface{})          {}
func (nopConsole) Println(a ...interface{})                        {}
func (nopConsole) LogInfo(format string, a ...interface{})         {}
func (nopConsole) LogWarning(format string, a ...interface{})      {}
func (nopConsole) LogError(format string, a ...interface{})        {}
func (nopConsole) LogSuccess(format string, a ...interface{})      {}
func (nopConsole) Status(message string) types.StatusHandle        { return nopHandle{} }
func (nopConsole) ProgressWithTotal(total int) types.ProgressHandle { return nopHandle{} }
func (nopConsole) CreateTable() types.TableInterface               { return &nopTable{} }

type nopHandle struct{}

func (nopHandle) Update(message string) {}
func (nopHandle) Increment()            {}
func (nopHandle) Stop()                 {}

type nopTable struct{}

func (*nopTable) AddColumn(name string, options ...interface{}) {}
func (*nopTable) AddRow(cells ...interface{})                   {}
func (*nopTable) Render() string                                { return "" }

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestListProfilesRegionFallback(t *testing.T) {
	path := writeConfig(t, `
[default]
region = us-east-1

[profile staging]
region = eu-west-1

[profile metrics]
output = json
`)

	repo := NewProfileRepository(path, nopConsole{})
	profiles, err := repo.ListProfiles()

	assert.NoError(t, err)
	assert.Equal(t, []entity.Profile{
		{Name: "default", Region: "us-east-1"},
		{Name: "staging", Region: "eu-west-1"},
		{Name: "metrics", Region: "us-east-1"},
	}, profiles)
}

func TestListProfilesMissingFileYieldsEmpty(t *testing.T) {
	repo := NewProfileRepository(filepath.Join(t.TempDir(), "does-not-exist"), nopConsole{})

	profiles, err := repo.ListProfiles()

	assert.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestListProfilesSkipsProfileWithoutAnyRegion(t *testing.T) {
	path := writeConfig(t, `
[profile orphan]
output = json

[profile pinned]
region = sa-east-1
`)

	repo := NewProfileRepository(path, nopConsole{})
	profiles, err := repo.ListProfiles()

	assert.NoError(t, err)
	assert.Equal(t, []entity.Profile{{Name: "pinned", Region: "sa-east-1"}}, profiles)
}

func TestListProfilesPreservesFileOrder(t *testing.T) {
	path := writeConfig(t, `
[profile c]
region = us-west-2

[profile a]
region = us-east-2

[profile b]
region = eu-central-1
`)

	repo := NewProfileRepository(path, nopConsole{})
	profiles, err := repo.ListProfiles()

	assert.NoError(t, err)
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestListProfilesUsesEnvPathWhenUnset(t *testing.T) {
	path := writeConfig(t, `
[default]
region = us-east-1
`)
	t.Setenv("AWS_CONFIG_FILE", path)

	repo := NewProfileRepository("", nopConsole{})
	profiles, err := repo.ListProfiles()

	assert.NoError(t, err)
	assert.Equal(t, []entity.Profile{{Name: "default", Region: "us-east-1"}}, profiles)
}
