package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := struct {
				Version   string `json:"version"   yaml:"version"`
				Commit    string `json:"commit"    yaml:"commit"`
				Date      string `json:"date"      yaml:"date"`
				GoVersion string `json:"goVersion" yaml:"goVersion"`
			}{
				Version:   version,
				Commit:    commit,
				Date:      date,
				GoVersion: runtime.Version(),
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(info)
			case OutputFormatYAML:
				return renderYAML(info)
			default:
				fmt.Printf("rbx version %s (commit: %s, built: %s, %s)\n",
					info.Version, info.Commit, info.Date, info.GoVersion)

				return nil
			}
		},
	}
}
