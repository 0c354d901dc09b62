// Package paths resolves the skillreg directory layout. Everything lives
// under a single home directory, ~/.skillreg by default, overridable with the
// "home" config key or the SKILLREG_HOME environment variable.
package paths

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// HomeEnv is the environment variable overriding the home directory
const HomeEnv = "SKILLREG_HOME"

// Home returns the skillreg home directory.
// Precedence: "home" viper key (flag, env or config file) > SKILLREG_HOME > ~/.skillreg
func Home() (string, error) {
	if dir := viper.GetString("home"); dir != "" {
		return dir, nil
	}
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(userHome, ".skillreg"), nil
}

// SkillsDir returns the root of all home-managed skill directories
func SkillsDir(home string) string {
	return filepath.Join(home, "skills")
}

// ManagedSkillsDir holds skills installed by skillreg itself
func ManagedSkillsDir(home string) string {
	return filepath.Join(SkillsDir(home), "managed")
}

// UserSkillsDir holds skills written by the user
func UserSkillsDir(home string) string {
	return filepath.Join(SkillsDir(home), "user")
}

// ProposedSkillsDir holds skills proposed from usage patterns, pending approval
func ProposedSkillsDir(home string) string {
	return filepath.Join(SkillsDir(home), "proposed")
}

// WorkspaceSkillsDir holds skills checked into the current project
func WorkspaceSkillsDir() string {
	return filepath.Join(".agents", "skills")
}

// WorkspaceEvaluatorsDir holds evaluator skills checked into the current project
func WorkspaceEvaluatorsDir() string {
	return filepath.Join(".agents", "evaluators")
}
