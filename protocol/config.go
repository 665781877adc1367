package protocol

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/datazip-inc/tablefilter/profile"
	"github.com/datazip-inc/tablefilter/utils/logger"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Read and write profiles",
	}
	configCmd.AddCommand(newConfigSetCmd(), newConfigGetCmd())
	return configCmd
}

func openStore() (*profile.Store, error) {
	path, err := profile.DefaultPath()
	if err != nil {
		return nil, err
	}
	return profile.NewStore(path), nil
}

// config set profile.key=value
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set PROFILE.KEY=VALUE",
		Short:   "Set a profile value, VALUE is parsed as JSON when possible",
		Example: `  tf config set pods.cols='["NAME","STATUS"]'` + "\n" + `  tf config set pods.sort-by=NAME`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			if err := store.Set(args[0]); err != nil {
				return err
			}
			logger.Infof("updated %s", store.Path())
			return nil
		},
	}
}

// config get -p profile | config get [--val] profile.key
func newConfigGetCmd() *cobra.Command {
	var (
		profileName string
		valueOnly   bool
		output      string
	)

	getCmd := &cobra.Command{
		Use:   "get [PROFILE.KEY]",
		Short: "Print a whole profile or a single profile value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case profileName != "":
				entry, err := store.Profile(profileName)
				if err != nil {
					return err
				}
				text, err := formatProfile(entry, output)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, text)
				return err
			case len(args) == 1:
				key, value, err := store.Get(args[0])
				if err != nil {
					return err
				}
				encoded, err := json.Marshal(value)
				if err != nil {
					return err
				}
				if valueOnly {
					_, err = fmt.Fprintln(out, string(encoded))
				} else {
					_, err = fmt.Fprintf(out, "%s=%s\n", key, encoded)
				}
				return err
			default:
				return fmt.Errorf("specify either --profile or key")
			}
		},
	}

	getCmd.Flags().StringVarP(&profileName, "profile", "p", "", "Print the whole profile")
	getCmd.Flags().BoolVar(&valueOnly, "val", false, "Print only the value")
	getCmd.Flags().StringVarP(&output, "output", "o", "json", "Output format of --profile (json or yaml)")
	return getCmd
}

func formatProfile(entry map[string]any, output string) (string, error) {
	switch strings.ToLower(output) {
	case "json":
		data, err := json.MarshalIndent(entry, "", "  ")
		return string(data), err
	case "yaml":
		data, err := yaml.Marshal(entry)
		return strings.TrimSuffix(string(data), "\n"), err
	default:
		return "", fmt.Errorf("unsupported output format '%s'", output)
	}
}
