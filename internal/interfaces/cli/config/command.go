package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	appconfig "backoffice/internal/infrastructure/config"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newShowCommand())

	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the merged configuration (file, environment overrides and defaults) as YAML. Secrets are masked.`,
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	masked := *cfg
	masked.Database.Password = mask(cfg.Database.Password)
	masked.Auth.JWT.Secret = mask(cfg.Auth.JWT.Secret)
	masked.Redis.Password = mask(cfg.Redis.Password)
	masked.Email.SMTPPassword = mask(cfg.Email.SMTPPassword)

	out, err := yaml.Marshal(&masked)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	fmt.Print(string(out))
	return nil
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}
