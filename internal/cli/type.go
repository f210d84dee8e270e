package cli

import (
	"github.com/spf13/cobra"
)

var typeCmd = GroupCommand{
	Use:   "type",
	Short: "Manage exercise types",
	Subcommands: []*cobra.Command{
		typeListCmd,
		typeAddCmd,
		typeRemoveCmd,
	},
}.Build()
