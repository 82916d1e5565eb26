package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// ReleaseEnv is a target of live release tests. Releases created with it are not removed.
type ReleaseEnv struct {
	Token string
	Repo  string
	Tag   string
}

// LoadReleaseEnvOrSkip reads TEST_GITHUB_TOKEN, TEST_GITHUB_REPO and TEST_GITHUB_TAG
func LoadReleaseEnvOrSkip(t *testing.T) ReleaseEnv {
	t.Helper()
	return ReleaseEnv{
		Token: GetEnvOrSkip(t, "TEST_GITHUB_TOKEN"),
		Repo:  GetEnvOrSkip(t, "TEST_GITHUB_REPO"),
		Tag:   GetEnvOrSkip(t, "TEST_GITHUB_TAG"),
	}
}
