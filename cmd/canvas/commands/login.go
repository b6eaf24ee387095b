package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/canvascms/canvas-go/internal/constants"
	"github.com/canvascms/canvas-go/pkg/canvas"
	"github.com/canvascms/canvas-go/pkg/canvasclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		token     string
		projectID string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to Canvas",
		Long:  "Store an API token and project ID for subsequent commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get project ID
			if projectID == "" {
				projectID = viper.GetString("project")
			}

			if projectID == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Project ID: ")
				projectID, _ = reader.ReadString('\n')
				projectID = strings.TrimSpace(projectID)
			}

			if projectID == "" {
				return constants.ErrNoProject
			}

			// Get token, hidden input
			if token == "" {
				fmt.Print("API token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))

				fmt.Println()
			}

			if token == "" {
				return constants.ErrEmptyToken
			}

			// Verify the credentials with a real call before persisting
			client, err := canvasclient.New(&canvas.Config{
				Token:     token,
				ProjectID: projectID,
				BaseURL:   viper.GetString("base-url"),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			_, err = client.Categories().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			err = persistLogin(token, projectID)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Logged in to project %s\n", projectID)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "with-token", "", "API token (prompted when omitted)")
	cmd.Flags().StringVar(&projectID, "project-id", "", "project ID (prompted when omitted)")

	return cmd
}

// persistLogin writes the credentials to the CLI config file.
func persistLogin(token, projectID string) error {
	viper.Set("token", token)
	viper.Set("project", projectID)

	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}

		cfgDir := filepath.Join(home, ".canvas")

		err = os.MkdirAll(cfgDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		cfgFile = filepath.Join(cfgDir, "config.yml")
	}

	err := viper.WriteConfigAs(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	err = os.Chmod(cfgFile, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to restrict config permissions: %w", err)
	}

	return nil
}
