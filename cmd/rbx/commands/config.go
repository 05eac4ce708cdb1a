package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rbxweb/rbxweb/internal/constants"
)

// fileConfig is the subset of settings persisted to the config file. The
// session cookie lives here too so login survives across invocations.
type fileConfig struct {
	Domain string `yaml:"domain,omitempty"`
	Output string `yaml:"output,omitempty"`
	Cookie string `yaml:"cookie,omitempty"`
}

func configFilePath() (string, error) {
	if path := viper.GetString("config"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".rbx", "config.yml"), nil
}

func loadFileConfig() fileConfig {
	var config fileConfig

	path, err := configFilePath()
	if err != nil {
		return config
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own config flag
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, &config)

	return config
}

func saveFileConfig(config fileConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// The file can hold the session cookie, keep it private.
	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the rbx CLI configuration file",
	}

	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigListCommand())

	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadFileConfig()

			switch args[0] {
			case "domain":
				fmt.Println(config.Domain)
			case "output":
				fmt.Println(config.Output)
			case "cookie":
				fmt.Println(maskSecret(config.Cookie))
			default:
				return fmt.Errorf("%w: %s", constants.ErrConfigKeyUnknown, args[0])
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadFileConfig()

			switch args[0] {
			case "domain":
				config.Domain = args[1]
			case "output":
				config.Output = args[1]
			case "cookie":
				return constants.ErrCookieUseLogin
			default:
				return fmt.Errorf("%w: %s", constants.ErrConfigKeyUnknown, args[0])
			}

			if err := saveFileConfig(config); err != nil {
				return err
			}

			fmt.Printf("Set %s to %s\n", args[0], args[1])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadFileConfig()

			switch args[0] {
			case "domain":
				config.Domain = ""
			case "output":
				config.Output = ""
			case "cookie":
				config.Cookie = ""
			default:
				return fmt.Errorf("%w: %s", constants.ErrConfigKeyUnknown, args[0])
			}

			if err := saveFileConfig(config); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadFileConfig()

			display := fileConfig{
				Domain: config.Domain,
				Output: config.Output,
				Cookie: maskSecret(config.Cookie),
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(display)
			default:
				return renderYAML(display)
			}
		},
	}
}
