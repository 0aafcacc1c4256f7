package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brocaar/chirpstack-subnet/internal/config"
	"github.com/brocaar/chirpstack-subnet/internal/routing"
	"github.com/brocaar/chirpstack-subnet/internal/subnet"
	"github.com/brocaar/lorawan"
)

type resolveOutput struct {
	DevAddr    string  `json:"dev_addr"`
	NetID      string  `json:"net_id"`
	NetClass   uint8   `json:"net_class"`
	NwkAddr    uint32  `json:"nwk_addr"`
	IsLocal    bool    `json:"is_local"`
	SubnetAddr *uint32 `json:"subnet_addr"`
}

var resolveDevAddrCmd = &cobra.Command{
	Use:     "resolve-devaddr",
	Short:   "Resolve a DevAddr to a subnet address (for debugging)",
	Example: `chirpstack-subnet resolve-devaddr fc00d410`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			log.Fatal("hex encoded DevAddr must be given as an argument")
		}

		var devAddr lorawan.DevAddr
		if err := devAddr.UnmarshalText([]byte(args[0])); err != nil {
			log.WithError(err).Fatal("decode DevAddr error")
		}

		if err := routing.Setup(config.C); err != nil {
			log.Fatal(err)
		}

		d := subnet.DevAddrFromLoRaWAN(devAddr)
		out := resolveOutput{
			DevAddr:  d.String(),
			NetID:    d.NetID().String(),
			NetClass: uint8(d.NetClass()),
			NwkAddr:  d.NwkAddr(),
			IsLocal:  routing.IsLocalDevAddr(devAddr),
		}

		if addr, err := routing.SubnetAddrForDevAddr(devAddr); err == nil {
			v := uint32(addr)
			out.SubnetAddr = &v
		}

		printJSON(out)
	},
}

var resolveSubnetCmd = &cobra.Command{
	Use:     "resolve-subnet",
	Short:   "Resolve a subnet address to a DevAddr (for debugging)",
	Example: `chirpstack-subnet resolve-subnet 1160`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			log.Fatal("subnet address must be given as an argument")
		}

		v, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			log.WithError(err).Fatal("parse subnet address error")
		}

		if err := routing.Setup(config.C); err != nil {
			log.Fatal(err)
		}

		devAddr, err := routing.DevAddrForSubnetAddr(subnet.Addr(v))
		if err != nil {
			log.WithError(err).Fatal("resolve subnet address error")
		}

		d := subnet.DevAddrFromLoRaWAN(devAddr)
		addr := uint32(v)
		out := resolveOutput{
			DevAddr:    d.String(),
			NetID:      d.NetID().String(),
			NetClass:   uint8(d.NetClass()),
			NwkAddr:    d.NwkAddr(),
			IsLocal:    true,
			SubnetAddr: &addr,
		}

		printJSON(out)
	},
}

func printJSON(out resolveOutput) {
	b, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		log.WithError(err).Fatal("json marshal error")
	}

	fmt.Println(string(b))
}
