package cmd

import (
	"os"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brocaar/chirpstack-subnet/internal/config"
)

const configTemplate = `[general]
# Log level
#
# debug=5, info=4, warning=3, error=2, fatal=1, panic=0
log_level={{ .General.LogLevel }}


# Subnet resolver settings.
[subnet]
# Assigned NetIDs (HEX encoded).
#
# The ordered list of NetIDs assigned to this operator. The order defines
# the subnet address layout: each NetID claims a contiguous block of
# subnet addresses directly after the block of the NetID before it.
# Re-ordering or removing entries invalidates previously derived subnet
# addresses.
net_ids=[{{ range $i, $n := .Subnet.NetIDStrings }}{{ if $i }}, {{ end }}"{{ $n }}"{{ end }}]
`

var configCmd = &cobra.Command{
	Use:   "configfile",
	Short: "Print the ChirpStack Subnet Resolver configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := template.Must(template.New("config").Parse(configTemplate))
		err := t.Execute(os.Stdout, &config.C)
		if err != nil {
			return errors.Wrap(err, "execute config template error")
		}
		return nil
	},
}
