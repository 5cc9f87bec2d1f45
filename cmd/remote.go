package cmd

import (
	"errors"
	"os"

	"industry-flow/internal/client"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultAPIURL = "http://localhost:8080/api"

// addRemoteFlags registers the connection flags of commands that talk to a running API.
func addRemoteFlags(cmd *cobra.Command) {
	cmd.Flags().String("api", envOr("INDUSTRY_FLOW_API", defaultAPIURL), "API base URL")
	cmd.Flags().String("email", os.Getenv("INDUSTRY_FLOW_EMAIL"), "Account email")
	cmd.Flags().String("password", "", "Account password (or INDUSTRY_FLOW_PASSWORD)")
	cmd.Flags().Duration("stale-time", client.DefaultStaleTime, "How long project reads are cached")
}

// login builds an API client from the connection flags and signs in.
func login(cmd *cobra.Command, log *zap.SugaredLogger) (*client.Client, error) {
	baseURL, _ := cmd.Flags().GetString("api")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	stale, _ := cmd.Flags().GetDuration("stale-time")
	if password == "" {
		password = os.Getenv("INDUSTRY_FLOW_PASSWORD")
	}
	if email == "" || password == "" {
		return nil, errors.New("--email and --password are required")
	}

	c := client.New(baseURL, log, client.Options{StaleTime: stale})
	if _, err := c.Login(cmd.Context(), email, password); err != nil {
		return nil, err
	}
	return c, nil
}

// connect signs in with a logger built from the flags.
func connect(cmd *cobra.Command) (*client.Client, error) {
	log, err := remoteLogger(cmd)
	if err != nil {
		return nil, err
	}
	return login(cmd, log)
}

// remoteLogger logs at warn unless --log-level says otherwise.
func remoteLogger(cmd *cobra.Command) (*zap.SugaredLogger, error) {
	return newLogger(cmd, "warn")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
