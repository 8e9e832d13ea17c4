package tack_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"testing"
	"time"

	"github.com/aussiebroadwan/tack/pkg/tacksdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testImageName = "tack-test:latest"
	testPassword  = "Passw0rd!"
)

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building tack Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up tack Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/tack/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// tackContainer is a running server plus the handle used to read its logs.
type tackContainer struct {
	testcontainers.Container
	BaseURL string
}

// setupTackContainer starts the API with relaxed rate limits.
func setupTackContainer(t *testing.T) *tackContainer {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"TACK_ACCESS_TOKEN_SECRET":  "e2e-access-secret-0123456789abcdef",
			"TACK_REFRESH_TOKEN_SECRET": "e2e-refresh-secret-0123456789abcdef",
			"ENV":                       "test",
			"LOG_LEVEL":                 "info",
			"LOG_FORMAT":                "json",
			// Tests make many rapid requests from one address
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return &tackContainer{
		Container: container,
		BaseURL:   fmt.Sprintf("http://%s:%s", host, mappedPort.Port()),
	}
}

// lastVerificationCode scans the container logs for the newest code sent to
// email. Emails are logged since no SMTP host is configured. It waits until
// at least sent codes have been logged for the address.
func (c *tackContainer) lastVerificationCode(t *testing.T, email string, sent int) string {
	t.Helper()
	pattern := regexp.MustCompile(`"to":"` + regexp.QuoteMeta(email) + `".*?verification code is ([A-Z0-9]{6})`)

	var code string
	require.Eventually(t, func() bool {
		logs, err := c.Logs(context.Background())
		if err != nil {
			return false
		}
		defer logs.Close()

		raw, err := io.ReadAll(logs)
		if err != nil {
			return false
		}
		matches := pattern.FindAllSubmatch(raw, -1)
		if len(matches) < sent {
			return false
		}
		code = string(matches[len(matches)-1][1])
		return true
	}, 5*time.Second, 100*time.Millisecond, "verification code should be logged")

	return code
}

// signUp registers, verifies and returns a logged in session.
func signUp(t *testing.T, c *tackContainer, client *tacksdk.SDKClient, name string) *tacksdk.Session {
	t.Helper()
	ctx := t.Context()
	email := name + "@example.com"

	_, err := client.Register(ctx, tacksdk.RegisterRequest{Name: name, Email: email, Password: testPassword})
	require.NoError(t, err, "register should succeed")

	_, err = client.Login(ctx, email, testPassword)
	require.ErrorIs(t, err, tacksdk.ErrVerificationRequired)

	// Logging in unverified replaced the code sent at registration
	session, err := client.VerifyEmail(ctx, email, c.lastVerificationCode(t, email, 2))
	require.NoError(t, err, "verify email should succeed")
	require.NotEmpty(t, session.AccessToken())
	require.NotEmpty(t, session.RefreshToken())

	return session
}

// assertStatus checks err is an API error with the given status.
func assertStatus(t *testing.T, err error, code int, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.Equal(t, code, tacksdk.StatusOf(err), "%s: got %v", context, err)
}
