package protocol

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/datazip-inc/tablefilter/constants"
	"github.com/datazip-inc/tablefilter/profile"
	"github.com/datazip-inc/tablefilter/types"
	"github.com/datazip-inc/tablefilter/utils"
	"github.com/datazip-inc/tablefilter/utils/logger"
)

// resolveOptions merges flags and the selected profile. A flag set on the
// command line wins, then the profile value, then the flag default.
func resolveOptions(cmd *cobra.Command) (*types.Options, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %s", err)
	}

	if name := v.GetString(constants.Profile); name != "" {
		path, err := profile.DefaultPath()
		if err != nil {
			return nil, err
		}
		selected, err := profile.NewStore(path).Resolve(name)
		if err != nil {
			return nil, err
		}
		logger.Debugf("using profile '%s' from %s", name, path)
		if err := applyProfile(v, selected); err != nil {
			return nil, err
		}
	}

	opts := &types.Options{
		HeadersRow:  v.GetInt(constants.HeadersRow),
		SkipLines:   v.GetInt(constants.SkipLines),
		SkipResults: v.GetInt(constants.SkipResults),
		Columns:     columnList(v.Get(constants.Cols)),
		Separator:   v.GetString(constants.Separator),
		Match:       v.GetString(constants.Match),
		Transform:   v.GetString(constants.Transform),
		SortBy:      v.GetString(constants.SortBy),
		SortOrder:   types.SortOrder(strings.ToLower(v.GetString(constants.SortOrder))),
		ShowHeaders: !v.GetBool(constants.NoHeaders),
	}
	if v.GetBool(constants.Quiet) {
		opts.Columns = []string{constants.QuietColumn}
	}
	return opts, nil
}

// applyProfile registers the profile values as defaults, below changed flags
func applyProfile(v *viper.Viper, selected *types.Profile) error {
	if selected.HeadersRow != nil {
		v.SetDefault(constants.HeadersRow, *selected.HeadersRow)
	}
	if selected.SkipLines != nil {
		v.SetDefault(constants.SkipLines, *selected.SkipLines)
	}
	if selected.SkipResults != nil {
		v.SetDefault(constants.SkipResults, *selected.SkipResults)
	}
	if selected.Cols != nil {
		v.SetDefault(constants.Cols, selected.Cols)
	}
	if selected.SortBy != nil {
		v.SetDefault(constants.SortBy, *selected.SortBy)
	}
	if selected.NoHeaders != nil {
		v.SetDefault(constants.NoHeaders, *selected.NoHeaders)
	}

	return utils.ErrExecSequential(
		func() error {
			match, err := selected.MatchJSON()
			if err == nil && match != "" {
				v.SetDefault(constants.Match, match)
			}
			return err
		},
		func() error {
			transform, err := selected.TransformJSON()
			if err == nil && transform != "" {
				v.SetDefault(constants.Transform, transform)
			}
			return err
		},
	)
}

// columnList accepts the comma separated flag form and the list form of profiles
func columnList(value any) []string {
	var columns []string
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		columns = utils.SplitAndTrim(v, ",")
	default:
		columns = cast.ToStringSlice(v)
	}
	return columns
}
